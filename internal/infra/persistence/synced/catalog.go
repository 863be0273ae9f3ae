// Package synced fronts the optional remote backend with the local one.
// A failed remote call is recorded as a PersistenceError on the Outcome and
// the local backend serves the call instead.
package synced

import (
	"context"
	"log/slog"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"
	"storefront/internal/infra/persistence/local"
)

// ErrRemoteDisabled is returned by operations that need the remote backend.
var ErrRemoteDisabled = errors.New("remote backend is not configured")

type catalog struct {
	remote  repository.CatalogStore
	local   repository.CatalogStore
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewCatalog composes the backends. remote may be nil, in which case local
// is authoritative and no call ever falls back.
func NewCatalog(remote, localStore repository.CatalogStore, logger *slog.Logger, m *metrics.Metrics) repository.SyncedCatalog {
	return &catalog{remote: remote, local: localStore, logger: logger, metrics: m}
}

func (c *catalog) RemoteEnabled() bool {
	return c.remote != nil
}

func (c *catalog) fallback(ctx context.Context, op string, err error) *domainerrors.PersistenceError {
	return recordFallback(ctx, c.logger, c.metrics, constants.CollectionProducts, op, err)
}

func (c *catalog) List(ctx context.Context) ([]entity.Product, repository.Outcome, error) {
	var outcome repository.Outcome
	if c.remote != nil {
		products, err := c.remote.List(ctx)
		if err == nil {
			return products, repository.Outcome{Backend: repository.BackendRemote}, nil
		}
		outcome.Fallback = c.fallback(ctx, "list", err)
	}

	outcome.Backend = repository.BackendLocal
	products, err := c.local.List(ctx)

	return products, outcome, err
}

func (c *catalog) Get(ctx context.Context, id string) (*entity.Product, repository.Outcome, error) {
	var outcome repository.Outcome
	if c.remote != nil {
		product, err := c.remote.Get(ctx, id)
		if err == nil || errors.Is(err, repository.ErrProductNotFound) {
			return product, repository.Outcome{ID: id, Backend: repository.BackendRemote}, err
		}
		outcome.Fallback = c.fallback(ctx, "get", err)
	}

	outcome.ID = id
	outcome.Backend = repository.BackendLocal
	product, err := c.local.Get(ctx, id)

	return product, outcome, err
}

func (c *catalog) Save(ctx context.Context, products []entity.Product) (repository.Outcome, error) {
	var outcome repository.Outcome
	if c.remote != nil {
		err := c.remote.Save(ctx, products)
		if err == nil {
			return repository.Outcome{Backend: repository.BackendRemote}, nil
		}
		outcome.Fallback = c.fallback(ctx, "save", err)
	}

	outcome.Backend = repository.BackendLocal

	return outcome, c.local.Save(ctx, products)
}

func (c *catalog) Add(ctx context.Context, product *entity.Product) (repository.Outcome, error) {
	var outcome repository.Outcome
	if c.remote != nil {
		id, err := c.remote.Add(ctx, product)
		if err == nil {
			return repository.Outcome{ID: id, Backend: repository.BackendRemote}, nil
		}
		outcome.Fallback = c.fallback(ctx, "add", err)
	}

	outcome.Backend = repository.BackendLocal
	id, err := c.local.Add(ctx, product)
	outcome.ID = id

	return outcome, err
}

// Update falls back only when id is a local position. A remote document id
// has no local counterpart, so its failure is returned to the caller.
func (c *catalog) Update(ctx context.Context, id string, product *entity.Product) (repository.Outcome, error) {
	var outcome repository.Outcome
	if c.remote != nil {
		err := c.remote.Update(ctx, id, product)
		if err == nil || errors.Is(err, repository.ErrProductNotFound) {
			return repository.Outcome{ID: id, Backend: repository.BackendRemote}, err
		}
		perr := c.fallback(ctx, "update", err)
		if _, ok := local.ParseIndex(id); !ok {
			return repository.Outcome{ID: id, Backend: repository.BackendRemote}, perr
		}
		outcome.Fallback = perr
	}

	outcome.ID = id
	outcome.Backend = repository.BackendLocal

	return outcome, c.local.Update(ctx, id, product)
}

// Remove follows the same fallback rule as Update.
func (c *catalog) Remove(ctx context.Context, id string) (repository.Outcome, error) {
	var outcome repository.Outcome
	if c.remote != nil {
		err := c.remote.Remove(ctx, id)
		if err == nil || errors.Is(err, repository.ErrProductNotFound) {
			return repository.Outcome{ID: id, Backend: repository.BackendRemote}, err
		}
		perr := c.fallback(ctx, "remove", err)
		if _, ok := local.ParseIndex(id); !ok {
			return repository.Outcome{ID: id, Backend: repository.BackendRemote}, perr
		}
		outcome.Fallback = perr
	}

	outcome.ID = id
	outcome.Backend = repository.BackendLocal

	return outcome, c.local.Remove(ctx, id)
}

// PushLocal adds every local product to the remote backend as a new document.
// It stops at the first failure and reports how many were written before it.
func (c *catalog) PushLocal(ctx context.Context) (int, error) {
	if c.remote == nil {
		return 0, ErrRemoteDisabled
	}

	products, err := c.local.List(ctx)
	if err != nil {
		return 0, err
	}

	for i := range products {
		product := products[i].Clone()
		product.ID = ""
		if _, err := c.remote.Add(ctx, &product); err != nil {
			return i, domainerrors.NewPersistenceError("sync", constants.CollectionProducts, err)
		}
	}

	return len(products), nil
}

func recordFallback(ctx context.Context, logger *slog.Logger, m *metrics.Metrics, collection, op string, err error) *domainerrors.PersistenceError {
	perr := domainerrors.NewPersistenceError(op, collection, err)
	m.PersistenceFallback(collection, op)
	if logger != nil {
		logger.WarnContext(ctx, "Remote store failed, using local backend",
			slog.String("collection", collection),
			slog.String("op", op),
			slog.Any("error", err),
		)
	}

	return perr
}
