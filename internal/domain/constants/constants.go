// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Roles carried in admin tokens
const (
	RoleAdmin = "admin"
)

// Remote collections
const (
	CollectionProducts = "products"
	CollectionOrders   = "orders"
)
