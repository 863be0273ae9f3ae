package service

import (
	"context"
)

// OrderNotifier pushes a short notice to the admins when an order arrives
type OrderNotifier interface {
	// NotifyNewOrder sends title and body with data to the admin audience
	NotifyNewOrder(ctx context.Context, title, body string, data map[string]string) error
}
