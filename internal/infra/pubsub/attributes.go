package pubsub

import (
	"storefront/internal/domain/service"
)

const orderPlacedType = "order.placed"

// orderAttributes are attached to every message so consumers can filter without decoding the body
func orderAttributes(event *service.OrderPlacedEvent) map[string]string {
	attributes := map[string]string{
		"event_type": orderPlacedType,
		"order_id":   event.OrderID,
		"backend":    event.Backend,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
