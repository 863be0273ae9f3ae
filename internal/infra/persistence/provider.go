// Package persistence opens the storage backends selected by the config and
// provides the repositories built on them.
package persistence

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/firebase"
	"storefront/internal/infra/metrics"
	"storefront/internal/infra/persistence/firestore"
	"storefront/internal/infra/persistence/kv"
	"storefront/internal/infra/persistence/local"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/synced"

	gfirestore "cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Backends holds the opened engines. Firestore is nil when the remote
// backend is disabled or could not be reached at startup.
type Backends struct {
	KV          kv.Store
	FirebaseApp *fb.App
	Firestore   *gfirestore.Client

	logger  *slog.Logger
	closers []func() error
}

// Open connects the local engine and, when enabled, Firestore. A Firestore
// failure leaves the service running on the local backend.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backends, error) {
	b := &Backends{logger: logger}

	store, err := openKV(ctx, cfg, logger, b)
	if err != nil {
		return nil, err
	}
	b.KV = store
	b.closers = append(b.closers, store.Close)

	if cfg.RemoteEnabled() {
		if err := b.openRemote(ctx, cfg); err != nil {
			logger.WarnContext(ctx, "Firestore unavailable, running on the local backend only",
				slog.Any("error", err),
			)
		}
	}

	return b, nil
}

func openKV(ctx context.Context, cfg *config.Config, logger *slog.Logger, b *Backends) (kv.Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverFile:
		logger.Info("Using file storage", slog.String("dir", cfg.Storage.File.Dir))

		return kv.OpenFile(cfg.Storage.File.Dir)

	case config.StorageDriverMemory:
		logger.Warn("Using in-memory storage; data is lost on restart")

		return kv.OpenMemory(), nil

	case config.StorageDriverRedis:
		logger.Info("Using redis storage", slog.String("addr", cfg.Storage.Redis.Addr))

		return kv.OpenRedis(cfg.Storage.Redis.Addr, cfg.Storage.Redis.Password, cfg.Storage.Redis.DB)

	case config.StorageDriverPostgres:
		logger.Info("Using postgres storage")
		db, err := postgres.Open(cfg, logger)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
		}
		b.closers = append(b.closers, sqlDB.Close)

		return postgres.NewKVStore(ctx, db)

	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

func (b *Backends) openRemote(ctx context.Context, cfg *config.Config) error {
	app, err := firebase.NewApp(ctx, cfg.Firebase)
	if err != nil {
		return err
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get Firestore client")
	}

	b.FirebaseApp = app
	b.Firestore = client
	b.closers = append(b.closers, client.Close)
	b.logger.InfoContext(ctx, "Firestore remote backend enabled", slog.String("project_id", cfg.Firebase.ProjectID))

	return nil
}

// Close releases every engine in reverse opening order.
func (b *Backends) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Catalog returns the synced product store.
func (b *Backends) Catalog(m *metrics.Metrics) repository.SyncedCatalog {
	var remote repository.CatalogStore
	if b.Firestore != nil {
		remote = firestore.NewCatalogStore(b.Firestore)
	}

	return synced.NewCatalog(remote, local.NewCatalogStore(b.KV, b.logger), b.logger, m)
}

// Orders returns the synced order log.
func (b *Backends) Orders(m *metrics.Metrics) repository.SyncedOrderLog {
	var remote repository.OrderLog
	if b.Firestore != nil {
		remote = firestore.NewOrderLog(b.Firestore)
	}

	return synced.NewOrderLog(remote, local.NewOrderLog(b.KV, b.logger), b.logger, m)
}

// Params holds dependencies for the backends, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBackends opens the backends and closes them when the app stops
func NewBackends(params Params) (*Backends, error) {
	b, err := Open(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing storage backends")

			return b.Close()
		},
	})

	return b, nil
}

func provideCatalog(b *Backends, m *metrics.Metrics) repository.SyncedCatalog {
	return b.Catalog(m)
}

func provideOrders(b *Backends, m *metrics.Metrics) repository.SyncedOrderLog {
	return b.Orders(m)
}

func provideCoupons(b *Backends) repository.CouponStore {
	return local.NewCouponStore(b.KV, b.logger)
}

func provideCarts(b *Backends) repository.CartStore {
	return local.NewCartStore(b.KV, b.logger)
}

func provideFilters(b *Backends) repository.FilterStateStore {
	return local.NewFilterStateStore(b.KV, b.logger)
}

func provideCheckouts(b *Backends) repository.CheckoutStateStore {
	return local.NewCheckoutStateStore(b.KV, b.logger)
}

func provideCategories(b *Backends) repository.CategoryStore {
	return local.NewCategoryStore(b.KV, b.logger)
}

func provideAdminCredentials(b *Backends) repository.AdminCredentialStore {
	return local.NewAdminCredentialStore(b.KV, b.logger)
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewBackends,
		provideCatalog,
		provideOrders,
		provideCoupons,
		provideCarts,
		provideFilters,
		provideCheckouts,
		provideCategories,
		provideAdminCredentials,
	),
)
