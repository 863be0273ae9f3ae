package local

import (
	"context"
	"log/slog"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/kv"
)

type orderLog struct {
	docs documents
}

// NewOrderLog returns the local order backend.
func NewOrderLog(store kv.Store, logger *slog.Logger) repository.OrderLog {
	return &orderLog{docs: newDocuments(store, logger)}
}

func (l *orderLog) List(ctx context.Context) ([]entity.Order, error) {
	orders := []entity.Order{}
	if _, err := l.docs.read(ctx, keyOrders, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (l *orderLog) Append(ctx context.Context, order *entity.Order) (string, error) {
	orders, err := l.List(ctx)
	if err != nil {
		return "", err
	}

	orders = append(orders, *order)
	if err := l.docs.write(ctx, keyOrders, orders); err != nil {
		return "", err
	}

	return strconv.Itoa(len(orders) - 1), nil
}
