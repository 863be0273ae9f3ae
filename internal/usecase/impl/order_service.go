package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

type orderService struct {
	orders      repository.SyncedOrderLog
	spreadsheet service.Spreadsheet
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Orders      repository.SyncedOrderLog
	Spreadsheet service.Spreadsheet
	Logger      *slog.Logger
}

// NewOrderService creates the admin order service.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orders:      params.Orders,
		spreadsheet: params.Spreadsheet,
		logger:      params.Logger,
	}
}

// ListOrders returns the order log newest first.
func (s *orderService) ListOrders(ctx context.Context) (*usecase.OrderList, error) {
	orders, outcome, err := s.orders.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderList{
		Orders:  newestFirst(orders),
		Backend: outcome.Backend,
		Warning: warningFor(outcome, readFallbackWarning),
	}, nil
}

func (s *orderService) ExportOrders(ctx context.Context, w io.Writer) error {
	list, err := s.ListOrders(ctx)
	if err != nil {
		return err
	}

	loggerFor(ctx, s.logger).InfoContext(ctx, "Exporting orders", slog.Int("count", len(list.Orders)))

	return s.spreadsheet.WriteOrders(w, list.Orders)
}

// newestFirst reverses append order, then orders by creation time descending.
func newestFirst(orders []entity.Order) []entity.Order {
	out := slices.Clone(orders)
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b entity.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return out
}
