package synced

import (
	"context"
	"log/slog"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/metrics"
)

type orderLog struct {
	remote  repository.OrderLog
	local   repository.OrderLog
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewOrderLog composes the order backends; remote may be nil.
func NewOrderLog(remote, localLog repository.OrderLog, logger *slog.Logger, m *metrics.Metrics) repository.SyncedOrderLog {
	return &orderLog{remote: remote, local: localLog, logger: logger, metrics: m}
}

func (l *orderLog) Append(ctx context.Context, order *entity.Order) (repository.Outcome, error) {
	var outcome repository.Outcome
	if l.remote != nil {
		id, err := l.remote.Append(ctx, order)
		if err == nil {
			return repository.Outcome{ID: id, Backend: repository.BackendRemote}, nil
		}
		outcome.Fallback = recordFallback(ctx, l.logger, l.metrics, constants.CollectionOrders, "append", err)
	}

	outcome.Backend = repository.BackendLocal
	id, err := l.local.Append(ctx, order)
	outcome.ID = id

	return outcome, err
}

func (l *orderLog) List(ctx context.Context) ([]entity.Order, repository.Outcome, error) {
	var outcome repository.Outcome
	if l.remote != nil {
		orders, err := l.remote.List(ctx)
		if err == nil {
			return orders, repository.Outcome{Backend: repository.BackendRemote}, nil
		}
		outcome.Fallback = recordFallback(ctx, l.logger, l.metrics, constants.CollectionOrders, "list", err)
	}

	outcome.Backend = repository.BackendLocal
	orders, err := l.local.List(ctx)

	return orders, outcome, err
}
