package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/checkout"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/clock"
	"storefront/internal/infra/currency"
	"storefront/internal/infra/export"
	"storefront/internal/infra/metrics"
	"storefront/internal/infra/persistence/kv"
	"storefront/internal/infra/persistence/local"
	"storefront/internal/infra/persistence/synced"
	"storefront/internal/infra/qrcode"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/require"
)

const testSession = "session-1"

// storefrontFixtures wires every service over one in-memory kv store.
type storefrontFixtures struct {
	kv        kv.Store
	clock     *clock.Fixed
	metrics   *metrics.Metrics
	remote    *mockRepo.MockCatalogStore
	catalog   repository.SyncedCatalog
	orders    repository.SyncedOrderLog
	coupons   repository.CouponStore
	carts     repository.CartStore
	checkouts repository.CheckoutStateStore
	creds     repository.AdminCredentialStore
	publisher *mockService.MockEventPublisher
	notifier  *mockService.MockOrderNotifier

	browse      usecase.BrowseUsecase
	cart        usecase.CartUsecase
	checkout    usecase.CheckoutUsecase
	admin       usecase.CatalogUsecase
	couponAdmin usecase.CouponUsecase
	orderAdmin  usecase.OrderUsecase
	auth        usecase.AdminUsecase
}

type fixtureOption func(*fixtureConfig)

type fixtureConfig struct {
	withRemote bool
	cfg        *config.Config
}

func withRemoteCatalog() fixtureOption {
	return func(c *fixtureConfig) { c.withRemote = true }
}

func withConfig(cfg *config.Config) fixtureOption {
	return func(c *fixtureConfig) { c.cfg = cfg }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStorefrontFixtures(t *testing.T, opts ...fixtureOption) *storefrontFixtures {
	t.Helper()

	fc := &fixtureConfig{cfg: testConfig()}
	for _, opt := range opts {
		opt(fc)
	}

	store := kv.OpenMemory()
	t.Cleanup(func() { _ = store.Close() })

	logger := discardLogger()
	m := metrics.New()
	fixed := &clock.Fixed{At: time.UnixMilli(1_700_000_000_000).UTC()}
	formatter := currency.New("ل.س", ",")
	sheet := export.New()

	f := &storefrontFixtures{
		kv:        store,
		clock:     fixed,
		metrics:   m,
		coupons:   local.NewCouponStore(store, logger),
		carts:     local.NewCartStore(store, logger),
		checkouts: local.NewCheckoutStateStore(store, logger),
		creds:     local.NewAdminCredentialStore(store, logger),
		publisher: mockService.NewMockEventPublisher(t),
		notifier:  mockService.NewMockOrderNotifier(t),
	}

	var remote repository.CatalogStore
	if fc.withRemote {
		f.remote = mockRepo.NewMockCatalogStore(t)
		remote = f.remote
	}
	f.catalog = synced.NewCatalog(remote, local.NewCatalogStore(store, logger), logger, m)
	f.orders = synced.NewOrderLog(nil, local.NewOrderLog(store, logger), logger, m)
	categories := local.NewCategoryStore(store, logger)

	f.browse = NewBrowseService(BrowseServiceParams{
		Catalog:    f.catalog,
		Filters:    local.NewFilterStateStore(store, logger),
		Categories: categories,
		Logger:     logger,
	})
	f.cart = NewCartService(CartServiceParams{
		Carts:     f.carts,
		Checkouts: f.checkouts,
		Catalog:   f.catalog,
		Formatter: formatter,
		Metrics:   m,
		Logger:    logger,
	})
	f.checkout = NewCheckoutService(CheckoutServiceParams{
		Carts:     f.carts,
		Checkouts: f.checkouts,
		Coupons:   f.coupons,
		Orders:    f.orders,
		Publisher: f.publisher,
		Notifier:  f.notifier,
		QRCode:    qrcode.NewQRCodeService(128, "M"),
		Clock:     fixed,
		Formatter: formatter,
		Metrics:   m,
		Logger:    logger,
	})
	f.admin = NewCatalogService(CatalogServiceParams{
		Catalog:     f.catalog,
		Categories:  categories,
		Spreadsheet: sheet,
		Clock:       fixed,
		Logger:      logger,
	})
	f.couponAdmin = NewCouponService(CouponServiceParams{Coupons: f.coupons, Clock: fixed, Logger: logger})
	f.orderAdmin = NewOrderService(OrderServiceParams{Orders: f.orders, Spreadsheet: sheet, Logger: logger})

	tokens, err := auth.NewJWTService(fc.cfg)
	require.NoError(t, err)
	f.auth = NewAdminService(AdminServiceParams{
		Credentials: f.creds,
		Hasher:      auth.NewBcryptHasherWithCost(4),
		Tokens:      tokens,
		Config:      fc.cfg,
		Logger:      logger,
	})

	return f
}

func (f *storefrontFixtures) seedProducts(t *testing.T, products ...entity.Product) {
	t.Helper()
	_, err := f.catalog.Save(context.Background(), products)
	require.NoError(t, err)
}

func (f *storefrontFixtures) seedCoupons(t *testing.T, coupons ...entity.Coupon) {
	t.Helper()
	for i := range coupons {
		require.NoError(t, f.coupons.Add(context.Background(), &coupons[i]))
	}
}

func testConfig() *config.Config {
	cfg := &config.Config{Admin: config.AdminConfig{Username: "Ali", TokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test-secret"

	return cfg
}

func validForm() checkout.Form {
	return checkout.Form{
		Name:        "Rana",
		Phone:       "0991234567",
		Email:       "rana@example.com",
		Governorate: "دمشق",
		Address:     "المزة",
		Payment:     "cod",
	}
}
