package service

import (
	"context"
)

// OrderPlacedEvent is published after an order is appended to the order log
type OrderPlacedEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	OrderID   string `json:"order_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	ItemCount int    `json:"item_count"`
	Subtotal  int64  `json:"subtotal"`
	Discount  int64  `json:"discount"`
	Total     int64  `json:"total"`
	Coupon    string `json:"coupon,omitempty"`
	Backend   string `json:"backend"`
	CreatedAt int64  `json:"created_at"` // Unix milliseconds
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order event for downstream consumers
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
