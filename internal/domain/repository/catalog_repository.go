// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when an id does not address a product.
var ErrProductNotFound = errors.New("product not found")

// CatalogStore is one product backend. Ids are list positions for the local
// backend and document ids for the remote one.
type CatalogStore interface {
	// List returns every product in stored order.
	List(ctx context.Context) ([]entity.Product, error)

	// Get returns the product addressed by id.
	Get(ctx context.Context, id string) (*entity.Product, error)

	// Save replaces the whole product list.
	Save(ctx context.Context, products []entity.Product) error

	// Add stores a new product and returns its id.
	Add(ctx context.Context, product *entity.Product) (string, error)

	// Update overwrites the product addressed by id.
	Update(ctx context.Context, id string, product *entity.Product) error

	// Remove deletes the product addressed by id.
	Remove(ctx context.Context, id string) error
}

// SyncedCatalog fronts the remote and local catalog backends. Every call
// reports which backend served it and whether the remote one failed.
type SyncedCatalog interface {
	List(ctx context.Context) ([]entity.Product, Outcome, error)
	Get(ctx context.Context, id string) (*entity.Product, Outcome, error)
	Save(ctx context.Context, products []entity.Product) (Outcome, error)
	Add(ctx context.Context, product *entity.Product) (Outcome, error)
	Update(ctx context.Context, id string, product *entity.Product) (Outcome, error)
	Remove(ctx context.Context, id string) (Outcome, error)

	// PushLocal copies every local product to the remote backend and
	// returns how many were written.
	PushLocal(ctx context.Context) (int, error)

	// RemoteEnabled reports whether a remote backend is configured.
	RemoteEnabled() bool
}
