package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// OrderList is the admin order view, newest first.
type OrderList struct {
	Orders  []entity.Order     `json:"orders"`
	Backend repository.Backend `json:"backend"`
	Warning string             `json:"warning,omitempty"`
}

// OrderUsecase is the admin order surface.
type OrderUsecase interface {
	ListOrders(ctx context.Context) (*OrderList, error)
	ExportOrders(ctx context.Context, w io.Writer) error
}
