package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/clock"
	"storefront/internal/infra/currency"
	"storefront/internal/infra/export"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/metrics"
	"storefront/internal/infra/notification"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		newMetricsRecorder,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		persistence.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			clock.New,
			currency.NewFormatter,
			export.New,
			qrcode.NewFromConfig,
			notification.NewOrderNotifier,
		),
	)
}

// newMetricsRecorder exposes the prometheus collectors to the usecases
func newMetricsRecorder(m *metrics.Metrics) service.MetricsRecorder {
	return m
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBrowseService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewCatalogService,
			impl.NewCouponService,
			impl.NewOrderService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBrowseHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewAdminHandler,
			handler.NewProductAdminHandler,
			handler.NewOrderAdminHandler,
			handler.NewCouponAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
