package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponService_CreateListDelete(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()

	coupon, err := f.couponAdmin.CreateCoupon(ctx, usecase.CouponInput{Code: " SAVE10 ", Type: "Percent", Value: 10, Active: true})
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", coupon.Code)
	assert.Equal(t, entity.CouponPercent, coupon.Type)
	require.NotNil(t, coupon.CreatedAt)

	_, err = f.couponAdmin.CreateCoupon(ctx, usecase.CouponInput{Code: "FLAT", Type: "fixed", Value: 500})
	require.NoError(t, err)

	coupons, err := f.couponAdmin.ListCoupons(ctx)
	require.NoError(t, err)
	require.Len(t, coupons, 2)
	assert.False(t, coupons[1].Active)

	require.NoError(t, f.couponAdmin.DeleteCoupon(ctx, 0))
	coupons, err = f.couponAdmin.ListCoupons(ctx)
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.Equal(t, "FLAT", coupons[0].Code)

	err = f.couponAdmin.DeleteCoupon(ctx, 4)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponNotFound))
}

func TestCouponService_CreateValidation(t *testing.T) {
	f := newStorefrontFixtures(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     usecase.CouponInput
		wantField string
	}{
		{name: "blank code", input: usecase.CouponInput{Code: " ", Type: "percent"}, wantField: "code"},
		{name: "unknown type", input: usecase.CouponInput{Code: "X", Type: "bogo"}, wantField: "type"},
		{name: "negative value", input: usecase.CouponInput{Code: "X", Type: "fixed", Value: -1}, wantField: "value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.couponAdmin.CreateCoupon(ctx, tt.input)

			var verr *domainerrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}

	coupons, err := f.couponAdmin.ListCoupons(ctx)
	require.NoError(t, err)
	assert.Empty(t, coupons)
}
