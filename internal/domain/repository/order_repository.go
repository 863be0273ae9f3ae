package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderLog is one append-only order backend.
type OrderLog interface {
	// Append stores order and returns the backend id of the record.
	Append(ctx context.Context, order *entity.Order) (string, error)

	// List returns every order in append order.
	List(ctx context.Context) ([]entity.Order, error)
}

// SyncedOrderLog fronts the remote and local order backends.
type SyncedOrderLog interface {
	Append(ctx context.Context, order *entity.Order) (Outcome, error)
	List(ctx context.Context) ([]entity.Order, Outcome, error)
}
