package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// ProductInput is the admin product form.
type ProductInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       int64    `json:"price" validate:"gte=0"`
	Discount    float64  `json:"discount" validate:"gte=0,lte=100"`
	Published   bool     `json:"published"`
	Group       string   `json:"group"`
	Subcategory string   `json:"subcategory"`
	Images      []string `json:"images"`
}

// WriteResult reports where an admin write landed. Warning is set when the
// remote store failed and the write is local only.
type WriteResult struct {
	ID      string             `json:"id,omitempty"`
	Backend repository.Backend `json:"backend"`
	Warning string             `json:"warning,omitempty"`
}

// ProductList is the admin view of the catalog.
type ProductList struct {
	Products []entity.Product  `json:"products"`
	Backend  repository.Backend `json:"backend"`
	Warning  string             `json:"warning,omitempty"`
}

// ImportOutput summarises a spreadsheet import.
type ImportOutput struct {
	Added   int    `json:"added"`
	Skipped int    `json:"skipped"`
	Warning string `json:"warning,omitempty"`
}

// CatalogUsecase is the admin product management surface.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) (*ProductList, error)
	CreateProduct(ctx context.Context, input ProductInput) (*WriteResult, error)

	// UpdateProduct keeps the stored creation time, and the stored images when input has none.
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*WriteResult, error)
	DeleteProduct(ctx context.Context, id string) (*WriteResult, error)
	ClearProducts(ctx context.Context) (*WriteResult, error)

	// SyncProducts pushes every local product to the remote store.
	SyncProducts(ctx context.Context) (int, error)

	ExportProducts(ctx context.Context, w io.Writer) error
	ImportProducts(ctx context.Context, r io.ReaderAt, size int64) (*ImportOutput, error)

	SaveCategories(ctx context.Context, categories entity.Categories) error
}
