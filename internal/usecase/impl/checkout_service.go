package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/checkout"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

const (
	couponAppliedMessage = "تم تطبيق الكوبون: "
	couponInvalidMessage = "الكود غير صالح أو غير مفعل."

	newOrderTitle = "طلب جديد"
)

type checkoutService struct {
	carts     repository.CartStore
	checkouts repository.CheckoutStateStore
	coupons   repository.CouponStore
	orders    repository.SyncedOrderLog
	publisher service.EventPublisher
	notifier  service.OrderNotifier
	qrcode    service.QRCodeService
	clock     service.Clock
	formatter service.MoneyFormatter
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Carts     repository.CartStore
	Checkouts repository.CheckoutStateStore
	Coupons   repository.CouponStore
	Orders    repository.SyncedOrderLog
	Publisher service.EventPublisher
	Notifier  service.OrderNotifier
	QRCode    service.QRCodeService
	Clock     service.Clock
	Formatter service.MoneyFormatter
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewCheckoutService creates the checkout service.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		carts:     params.Carts,
		checkouts: params.Checkouts,
		coupons:   params.Coupons,
		orders:    params.Orders,
		publisher: params.Publisher,
		notifier:  params.Notifier,
		qrcode:    params.QRCode,
		clock:     params.Clock,
		formatter: params.Formatter,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (s *checkoutService) GetState(ctx context.Context, sessionID string) (*usecase.CheckoutView, error) {
	state, err := s.checkouts.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load checkout state")
	}

	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return &usecase.CheckoutView{State: *state, Cart: newCartView(cart, s.formatter)}, nil
}

// PreviewCoupon prices the cart exactly as Submit will for the same code.
func (s *checkoutService) PreviewCoupon(ctx context.Context, sessionID, code string) (*usecase.CouponPreview, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, checkout.CouponCodeRequired()
	}

	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	coupon := s.resolveCoupon(ctx, code)
	quote := pricing.PriceCart(cart.Items, coupon)

	preview := &usecase.CouponPreview{
		Quote:             quote,
		Applied:           coupon != nil,
		FormattedSubtotal: s.formatter.Format(quote.Subtotal),
		FormattedDiscount: "- " + s.formatter.Format(quote.Discount),
		FormattedTotal:    s.formatter.Format(quote.Total),
	}
	if coupon != nil {
		preview.Message = couponAppliedMessage + coupon.Code + "."
	} else {
		preview.Message = couponInvalidMessage
	}

	return preview, nil
}

// resolveCoupon looks code up in the current coupons. A failing coupon
// store prices without a discount.
func (s *checkoutService) resolveCoupon(ctx context.Context, code string) *entity.Coupon {
	if code == "" {
		return nil
	}

	coupons, err := s.coupons.List(ctx)
	if err != nil {
		loggerFor(ctx, s.logger).WarnContext(ctx, "Coupons unavailable, pricing without discount", slog.Any("error", err))

		return nil
	}

	coupon, found := pricing.ResolveCoupon(code, coupons)
	s.metrics.CouponLookup(found)

	return coupon
}

// Submit moves the session from Editing to Submitted.
func (s *checkoutService) Submit(ctx context.Context, sessionID string, form checkout.Form) (*usecase.OrderConfirmation, error) {
	logger := loggerFor(ctx, s.logger)

	state, err := s.checkouts.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load checkout state")
	}
	if state.Submitted() {
		return nil, domainerrors.ErrCheckoutSubmitted.WithDetails(state.OrderID)
	}

	form = form.Normalize()
	if verr := checkout.Validate(form); verr != nil {
		logger.InfoContext(ctx, "Checkout rejected", slog.String("field", verr.Field))

		return nil, verr
	}

	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	items := cart.Snapshot()
	quote := pricing.PriceCart(items, s.resolveCoupon(ctx, form.CouponCode))
	now := s.clock.Now()

	order := &entity.Order{
		ID:          entity.NewOrderID(now),
		Name:        form.Name,
		Phone:       form.Phone,
		Email:       form.Email,
		Governorate: form.Governorate,
		Address:     form.Address,
		Payment:     form.Payment,
		Items:       items,
		Coupon:      quote.Coupon.Snapshot(),
		Discount:    quote.Discount,
		Subtotal:    quote.Subtotal,
		Total:       quote.Total,
		CreatedAt:   now,
	}

	outcome, err := s.orders.Append(ctx, order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to append order")
	}

	// The order is placed once appended; session save failures are only logged.
	submitted := &entity.CheckoutState{Status: entity.CheckoutSubmitted, OrderID: order.ID}
	if err := s.checkouts.Save(ctx, sessionID, submitted); err != nil {
		logger.ErrorContext(ctx, "Failed to save checkout state", slog.String("order_id", order.ID), slog.Any("error", err))
	}
	cart.Clear()
	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		logger.ErrorContext(ctx, "Failed to clear cart", slog.String("order_id", order.ID), slog.Any("error", err))
	}

	logger.InfoContext(ctx, "Order placed",
		slog.String("order_id", order.ID),
		slog.Int64("total", order.Total),
		slog.String("backend", string(outcome.Backend)),
	)

	s.afterOrder(ctx, order, outcome)

	return &usecase.OrderConfirmation{
		Order:          order,
		FormattedTotal: s.formatter.Format(order.Total),
		Outcome:        outcome,
	}, nil
}

// afterOrder runs the side effects of a placed order. Failures are logged only.
func (s *checkoutService) afterOrder(ctx context.Context, order *entity.Order, outcome repository.Outcome) {
	logger := loggerFor(ctx, s.logger)
	s.metrics.OrderPlaced(string(outcome.Backend), order.Total)

	event := &service.OrderPlacedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:   order.ID,
		Name:      order.Name,
		Phone:     order.Phone,
		ItemCount: countItems(order.Items),
		Subtotal:  order.Subtotal,
		Discount:  order.Discount,
		Total:     order.Total,
		Backend:   string(outcome.Backend),
		CreatedAt: order.CreatedAt.UnixMilli(),
	}
	if order.Coupon != nil {
		event.Coupon = order.Coupon.Code
	}
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish order event", slog.String("order_id", order.ID), slog.Any("error", err))
	}

	body := order.Name + " - " + s.formatter.Format(order.Total)
	data := map[string]string{
		"order_id": order.ID,
		"total":    strconv.FormatInt(order.Total, 10),
	}
	if err := s.notifier.NotifyNewOrder(ctx, newOrderTitle, body, data); err != nil {
		logger.ErrorContext(ctx, "Failed to notify admins", slog.String("order_id", order.ID), slog.Any("error", err))
	}
}

// OrderQR renders the QR code of a placed order.
func (s *checkoutService) OrderQR(ctx context.Context, orderID string) ([]byte, error) {
	orders, _, err := s.orders.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	found := false
	for i := range orders {
		if orders[i].ID == orderID {
			found = true

			break
		}
	}
	if !found {
		return nil, domainerrors.ErrOrderNotFound.WithDetails(orderID)
	}

	png, err := s.qrcode.GenerateOrderQR(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR")
	}

	return png, nil
}

func countItems(items []entity.CartItem) int {
	n := 0
	for _, item := range items {
		n += item.Quantity
	}

	return n
}
