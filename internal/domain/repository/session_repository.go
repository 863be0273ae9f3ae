package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartStore keeps one cart per session. A session without a stored cart
// loads an empty one.
type CartStore interface {
	Load(ctx context.Context, sessionID string) (*entity.Cart, error)
	Save(ctx context.Context, sessionID string, cart *entity.Cart) error
}

// FilterStateStore keeps one browsing state per session.
type FilterStateStore interface {
	Load(ctx context.Context, sessionID string) (*entity.FilterState, error)
	Save(ctx context.Context, sessionID string, state *entity.FilterState) error
}

// CheckoutStateStore keeps one checkout state per session. A session
// without a stored state is editing.
type CheckoutStateStore interface {
	Load(ctx context.Context, sessionID string) (*entity.CheckoutState, error)
	Save(ctx context.Context, sessionID string, state *entity.CheckoutState) error
}
