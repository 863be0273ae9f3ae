// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

const (
	// writeFallbackWarning tells the admin a write only reached the local backend.
	writeFallbackWarning = "تم الحفظ محلياً (تعذر الحفظ في Firebase)"

	// readFallbackWarning tells the admin a list was served from the local backend.
	readFallbackWarning = "تم عرض البيانات المحلية (تعذر الاتصال بـ Firebase)"
)

// loggerFor returns a request-scoped logger if available, otherwise the fallback.
func loggerFor(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

func newCartView(cart *entity.Cart, formatter service.MoneyFormatter) *usecase.CartView {
	total := cart.Total()

	return &usecase.CartView{
		Items:          cart.Snapshot(),
		Count:          cart.Count(),
		Total:          total,
		FormattedTotal: formatter.Format(total),
	}
}

func warningFor(outcome repository.Outcome, message string) string {
	if outcome.FellBack() {
		return message
	}

	return ""
}
