package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CouponInput is the admin coupon form.
type CouponInput struct {
	Code   string  `json:"code" validate:"required"`
	Type   string  `json:"type" validate:"required,oneof=percent fixed"`
	Value  float64 `json:"value" validate:"gte=0"`
	Active bool    `json:"active"`
}

// CouponUsecase manages the coupon list.
type CouponUsecase interface {
	ListCoupons(ctx context.Context) ([]entity.Coupon, error)
	CreateCoupon(ctx context.Context, input CouponInput) (*entity.Coupon, error)
	DeleteCoupon(ctx context.Context, index int) error
}
