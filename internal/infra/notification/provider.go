// Package notification pushes new-order notices to the admins through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence"

	"go.uber.org/fx"
)

// Params holds dependencies for the notifier, injected by Fx
type Params struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Backends *persistence.Backends
}

// NewOrderNotifier returns the FCM notifier when Firebase is up and a topic is
// configured; otherwise a no-op notifier.
func NewOrderNotifier(params Params) service.OrderNotifier {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.OrdersTopic == "" || params.Backends.FirebaseApp == nil {
		params.Logger.Info("Order push notifications disabled")

		return NewNoopNotifier()
	}

	notifier, err := NewFirebaseNotifier(params.Ctx, params.Backends.FirebaseApp, cfg.OrdersTopic, params.Logger)
	if err != nil {
		params.Logger.Warn("Order push notifications unavailable", slog.Any("error", err))

		return NewNoopNotifier()
	}

	return notifier
}
