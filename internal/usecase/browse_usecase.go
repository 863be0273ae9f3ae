package usecase

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// BrowseState is a session's filter state together with its display label.
type BrowseState struct {
	State entity.FilterState `json:"state"`
	Label string             `json:"label"`
}

// ProductListing is the catalog after the session's filter state was applied.
type ProductListing struct {
	catalog.Result
	Browse  BrowseState        `json:"browse"`
	Outcome repository.Outcome `json:"-"`
}

// BrowseUsecase serves the storefront catalog views.
type BrowseUsecase interface {
	GetState(ctx context.Context, sessionID string) (*BrowseState, error)

	// SetSearch stores the search query; a blank query clears it.
	SetSearch(ctx context.Context, sessionID, query string) (*BrowseState, error)

	// SetCategory filters by group and optional subcategory; a blank group clears the filter.
	SetCategory(ctx context.Context, sessionID, group, subcategory string) (*BrowseState, error)
	ClearCategory(ctx context.Context, sessionID string) (*BrowseState, error)

	// SetSort stores the sort mode; unknown modes are stored as default.
	SetSort(ctx context.Context, sessionID, mode string) (*BrowseState, error)

	ListProducts(ctx context.Context, sessionID string) (*ProductListing, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	Categories(ctx context.Context) (entity.Categories, error)
}
