package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartView is a cart with its derived totals.
type CartView struct {
	Items          []entity.CartItem `json:"items"`
	Count          int               `json:"count"`
	Total          int64             `json:"total"`
	FormattedTotal string            `json:"formattedTotal"`
}

// AddItemInput adds either a catalog product, resolved by ProductID, or a raw item.
type AddItemInput struct {
	ProductID string           `json:"productId"`
	Item      *entity.CartItem `json:"item"`
	Quantity  int              `json:"quantity"`
}

// CartUsecase mutates a session's cart. Every call persists the cart before returning.
type CartUsecase interface {
	GetCart(ctx context.Context, sessionID string) (*CartView, error)
	AddItem(ctx context.Context, sessionID string, input AddItemInput) (*CartView, error)
	SetQuantity(ctx context.Context, sessionID string, index, quantity int) (*CartView, error)
	Increment(ctx context.Context, sessionID string, index int) (*CartView, error)
	Decrement(ctx context.Context, sessionID string, index int) (*CartView, error)
	RemoveItem(ctx context.Context, sessionID string, index int) (*CartView, error)
	Clear(ctx context.Context, sessionID string) (*CartView, error)
}
