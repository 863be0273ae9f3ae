package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCouponNotFound is returned when an index does not address a coupon.
var ErrCouponNotFound = errors.New("coupon not found")

// CouponStore keeps the admin's coupons. Coupons only live in the local backend.
type CouponStore interface {
	List(ctx context.Context) ([]entity.Coupon, error)
	Add(ctx context.Context, coupon *entity.Coupon) error
	Remove(ctx context.Context, index int) error
}
