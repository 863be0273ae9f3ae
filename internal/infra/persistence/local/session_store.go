package local

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/kv"
)

type cartStore struct {
	docs documents
}

// NewCartStore returns the per-session cart store.
func NewCartStore(store kv.Store, logger *slog.Logger) repository.CartStore {
	return &cartStore{docs: newDocuments(store, logger)}
}

func (s *cartStore) Load(ctx context.Context, sessionID string) (*entity.Cart, error) {
	cart := &entity.Cart{}
	if _, err := s.docs.read(ctx, prefixCart+sessionID, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *cartStore) Save(ctx context.Context, sessionID string, cart *entity.Cart) error {
	if cart.IsEmpty() {
		return s.docs.remove(ctx, prefixCart+sessionID)
	}

	return s.docs.write(ctx, prefixCart+sessionID, cart)
}

type filterStateStore struct {
	docs documents
}

// NewFilterStateStore returns the per-session browsing state store.
func NewFilterStateStore(store kv.Store, logger *slog.Logger) repository.FilterStateStore {
	return &filterStateStore{docs: newDocuments(store, logger)}
}

func (s *filterStateStore) Load(ctx context.Context, sessionID string) (*entity.FilterState, error) {
	state := &entity.FilterState{}
	if _, err := s.docs.read(ctx, prefixFilter+sessionID, state); err != nil {
		return nil, err
	}
	state.Sort = entity.ParseSortMode(string(state.Sort))
	if state.Category != nil && state.Category.Group == "" {
		state.Category = nil
	}

	return state, nil
}

func (s *filterStateStore) Save(ctx context.Context, sessionID string, state *entity.FilterState) error {
	return s.docs.write(ctx, prefixFilter+sessionID, state)
}

type checkoutStateStore struct {
	docs documents
}

// NewCheckoutStateStore returns the per-session checkout state store.
func NewCheckoutStateStore(store kv.Store, logger *slog.Logger) repository.CheckoutStateStore {
	return &checkoutStateStore{docs: newDocuments(store, logger)}
}

func (s *checkoutStateStore) Load(ctx context.Context, sessionID string) (*entity.CheckoutState, error) {
	state := &entity.CheckoutState{Status: entity.CheckoutEditing}
	if _, err := s.docs.read(ctx, prefixCheckout+sessionID, state); err != nil {
		return nil, err
	}
	if state.Status != entity.CheckoutSubmitted {
		state.Status = entity.CheckoutEditing
		state.OrderID = ""
	}

	return state, nil
}

func (s *checkoutStateStore) Save(ctx context.Context, sessionID string, state *entity.CheckoutState) error {
	return s.docs.write(ctx, prefixCheckout+sessionID, state)
}
