package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/currency"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (f *storefrontFixtures) fillCart(t *testing.T, items ...entity.CartItem) {
	t.Helper()
	for _, item := range items {
		_, err := f.cart.AddItem(context.Background(), testSession, usecase.AddItemInput{Item: &item, Quantity: item.Quantity})
		require.NoError(t, err)
	}
}

func (f *storefrontFixtures) expectSideEffects() {
	f.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.AnythingOfType("*service.OrderPlacedEvent")).Return(nil)
	f.notifier.EXPECT().NotifyNewOrder(mock.Anything, "طلب جديد", mock.AnythingOfType("string"), mock.Anything).Return(nil)
}

func TestCheckoutService_PreviewCoupon(t *testing.T) {
	f := newStorefrontFixtures(t)
	f.seedCoupons(t,
		entity.Coupon{Code: "SAVE10", Type: entity.CouponPercent, Value: 10, Active: true},
		entity.Coupon{Code: "BIG", Type: entity.CouponFixed, Value: 5000, Active: true},
		entity.Coupon{Code: "OLD", Type: entity.CouponPercent, Value: 50, Active: false},
	)
	f.fillCart(t, entity.CartItem{Title: "Shirt", Price: 1000, Quantity: 2})
	ctx := context.Background()

	tests := []struct {
		code         string
		wantApplied  bool
		wantDiscount int64
		wantTotal    int64
		wantMessage  string
	}{
		{code: "save10", wantApplied: true, wantDiscount: 200, wantTotal: 1800, wantMessage: "تم تطبيق الكوبون: SAVE10."},
		{code: " BIG ", wantApplied: true, wantDiscount: 2000, wantTotal: 0, wantMessage: "تم تطبيق الكوبون: BIG."},
		{code: "OLD", wantDiscount: 0, wantTotal: 2000, wantMessage: "الكود غير صالح أو غير مفعل."},
		{code: "NOPE", wantDiscount: 0, wantTotal: 2000, wantMessage: "الكود غير صالح أو غير مفعل."},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			preview, err := f.checkout.PreviewCoupon(ctx, testSession, tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.wantApplied, preview.Applied)
			assert.Equal(t, int64(2000), preview.Subtotal)
			assert.Equal(t, tt.wantDiscount, preview.Discount)
			assert.Equal(t, tt.wantTotal, preview.Total)
			assert.Equal(t, tt.wantMessage, preview.Message)
		})
	}
}

func TestCheckoutService_PreviewCouponBlankCode(t *testing.T) {
	f := newStorefrontFixtures(t)

	_, err := f.checkout.PreviewCoupon(context.Background(), testSession, "   ")

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "COUPON_CODE_REQUIRED", verr.Code)
}

func TestCheckoutService_SubmitPlacesOrder(t *testing.T) {
	f := newStorefrontFixtures(t)
	f.seedCoupons(t, entity.Coupon{Code: "SAVE10", Type: entity.CouponPercent, Value: 10, Active: true})
	f.fillCart(t, entity.CartItem{Title: "Shirt", Price: 1000, Quantity: 2, Img: "shirt.jpg"})
	ctx := context.Background()

	var published *service.OrderPlacedEvent
	f.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Run(func(_ context.Context, event *service.OrderPlacedEvent) { published = event }).
		Return(nil)
	f.notifier.EXPECT().NotifyNewOrder(mock.Anything, "طلب جديد", "Rana - 1,800 ل.س", mock.Anything).Return(nil)

	form := validForm()
	form.CouponCode = "save10"
	confirmation, err := f.checkout.Submit(ctx, testSession, form)
	require.NoError(t, err)

	order := confirmation.Order
	assert.Equal(t, "ORD-loyw3v28", order.ID)
	assert.Equal(t, int64(2000), order.Subtotal)
	assert.Equal(t, int64(200), order.Discount)
	assert.Equal(t, int64(1800), order.Total)
	assert.Equal(t, &entity.CouponSnapshot{Code: "SAVE10", Type: entity.CouponPercent, Value: 10}, order.Coupon)
	assert.Equal(t, "1,800 ل.س", confirmation.FormattedTotal)
	assert.Equal(t, "0", confirmation.Outcome.ID)

	orders, _, err := f.orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, []entity.CartItem{{Title: "Shirt", Price: 1000, Quantity: 2, Img: "shirt.jpg"}}, orders[0].Items)

	cart, err := f.carts.Load(ctx, testSession)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	state, err := f.checkouts.Load(ctx, testSession)
	require.NoError(t, err)
	assert.True(t, state.Submitted())
	assert.Equal(t, order.ID, state.OrderID)

	require.NotNil(t, published)
	assert.Equal(t, 2, published.ItemCount)
	assert.Equal(t, "SAVE10", published.Coupon)
	assert.Equal(t, "local", published.Backend)
}

func TestCheckoutService_SubmitReResolvesCoupon(t *testing.T) {
	f := newStorefrontFixtures(t)
	f.seedCoupons(t, entity.Coupon{Code: "SAVE10", Type: entity.CouponPercent, Value: 10, Active: true})
	f.fillCart(t, entity.CartItem{Title: "Shirt", Price: 1000, Quantity: 2})
	ctx := context.Background()

	preview, err := f.checkout.PreviewCoupon(ctx, testSession, "SAVE10")
	require.NoError(t, err)
	require.True(t, preview.Applied)

	// coupon deleted between preview and submit
	require.NoError(t, f.couponAdmin.DeleteCoupon(ctx, 0))
	f.expectSideEffects()

	form := validForm()
	form.CouponCode = "SAVE10"
	confirmation, err := f.checkout.Submit(ctx, testSession, form)

	require.NoError(t, err)
	assert.Nil(t, confirmation.Order.Coupon)
	assert.Equal(t, int64(0), confirmation.Order.Discount)
	assert.Equal(t, int64(2000), confirmation.Order.Total)
}

func TestCheckoutService_SubmitValidationKeepsEditing(t *testing.T) {
	f := newStorefrontFixtures(t)
	f.fillCart(t, entity.CartItem{Title: "Shirt", Price: 1000, Quantity: 2})
	ctx := context.Background()

	form := validForm()
	form.Phone = "  "
	_, err := f.checkout.Submit(ctx, testSession, form)

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "phone", verr.Field)

	state, err := f.checkouts.Load(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutEditing, state.Status)

	orders, _, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	cart, err := f.carts.Load(ctx, testSession)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCheckoutService_SubmitEmptyCart(t *testing.T) {
	f := newStorefrontFixtures(t)

	_, err := f.checkout.Submit(context.Background(), testSession, validForm())

	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}

func TestCheckoutService_SubmittedSessionRejectsUntilCartRefilled(t *testing.T) {
	f := newStorefrontFixtures(t)
	f.fillCart(t, entity.CartItem{Title: "Shirt", Price: 1000, Quantity: 1})
	ctx := context.Background()
	f.expectSideEffects()

	first, err := f.checkout.Submit(ctx, testSession, validForm())
	require.NoError(t, err)

	_, err = f.checkout.Submit(ctx, testSession, validForm())
	assert.True(t, errors.Is(err, domainerrors.ErrCheckoutSubmitted))

	f.clock.Advance(time.Second)
	f.fillCart(t, entity.CartItem{Title: "Bag", Price: 500, Quantity: 1})
	second, err := f.checkout.Submit(ctx, testSession, validForm())
	require.NoError(t, err)
	assert.NotEqual(t, first.Order.ID, second.Order.ID)

	view, err := f.checkout.GetState(ctx, testSession)
	require.NoError(t, err)
	assert.True(t, view.State.Submitted())
	assert.Empty(t, view.Cart.Items)
}

func TestCheckoutService_SideEffectFailuresDoNotFailOrder(t *testing.T) {
	f := newStorefrontFixtures(t)
	f.fillCart(t, entity.CartItem{Title: "Shirt", Price: 1000, Quantity: 1})
	f.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	f.notifier.EXPECT().NotifyNewOrder(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("fcm down"))

	confirmation, err := f.checkout.Submit(context.Background(), testSession, validForm())

	require.NoError(t, err)
	assert.Equal(t, int64(1000), confirmation.Order.Total)
}

type unsavableCheckouts struct {
	repository.CheckoutStateStore
}

func (unsavableCheckouts) Save(context.Context, string, *entity.CheckoutState) error {
	return errors.New("kv down")
}

type unsavableCarts struct {
	repository.CartStore
}

func (unsavableCarts) Save(context.Context, string, *entity.Cart) error {
	return errors.New("kv down")
}

func TestCheckoutService_SessionSaveFailureAfterAppendStillConfirms(t *testing.T) {
	f := newStorefrontFixtures(t)
	f.fillCart(t, entity.CartItem{Title: "Shirt", Price: 1000, Quantity: 2})
	f.expectSideEffects()
	ctx := context.Background()

	svc := NewCheckoutService(CheckoutServiceParams{
		Carts:     unsavableCarts{f.carts},
		Checkouts: unsavableCheckouts{f.checkouts},
		Coupons:   f.coupons,
		Orders:    f.orders,
		Publisher: f.publisher,
		Notifier:  f.notifier,
		QRCode:    qrcode.NewQRCodeService(128, "M"),
		Clock:     f.clock,
		Formatter: currency.New("ل.س", ","),
		Metrics:   f.metrics,
		Logger:    discardLogger(),
	})

	confirmation, err := svc.Submit(ctx, testSession, validForm())

	require.NoError(t, err)
	assert.Equal(t, int64(2000), confirmation.Order.Total)

	orders, _, err := f.orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, confirmation.Order.ID, orders[0].ID)
}

func TestCheckoutService_OrderQR(t *testing.T) {
	f := newStorefrontFixtures(t)
	f.fillCart(t, entity.CartItem{Title: "Shirt", Price: 1000, Quantity: 1})
	f.expectSideEffects()
	ctx := context.Background()

	confirmation, err := f.checkout.Submit(ctx, testSession, validForm())
	require.NoError(t, err)

	png, err := f.checkout.OrderQR(ctx, confirmation.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])

	_, err = f.checkout.OrderQR(ctx, "ORD-missing")
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
