// Package pricing resolves coupons and turns a cart into subtotal, discount and total.
// Both the checkout preview and order creation go through PriceCart.
package pricing

import (
	"strings"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Quote is the priced view of a cart.
type Quote struct {
	Subtotal int64          `json:"subtotal"`
	Discount int64          `json:"discount"`
	Total    int64          `json:"total"`
	Coupon   *entity.Coupon `json:"coupon,omitempty"`
}

// Subtotal sums price times quantity over items.
func Subtotal(items []entity.CartItem) int64 {
	return entity.SumLineTotals(items)
}

// ResolveCoupon finds the coupon whose code matches code ignoring case and
// surrounding spaces. Inactive coupons are treated as missing.
func ResolveCoupon(code string, coupons []entity.Coupon) (*entity.Coupon, bool) {
	needle := strings.ToLower(strings.TrimSpace(code))
	if needle == "" {
		return nil, false
	}

	for i := range coupons {
		if !coupons[i].Active || strings.ToLower(strings.TrimSpace(coupons[i].Code)) != needle {
			continue
		}
		found := coupons[i]

		return &found, true
	}

	return nil, false
}

// ComputeDiscount returns the discount coupon grants on subtotal, always
// within [0, subtotal]. A nil coupon grants nothing.
func ComputeDiscount(coupon *entity.Coupon, subtotal int64) int64 {
	if coupon == nil || subtotal <= 0 {
		return 0
	}

	value := decimal.NewFromFloat(coupon.Value)

	var discount decimal.Decimal
	switch coupon.Type {
	case entity.CouponPercent:
		discount = decimal.NewFromInt(subtotal).Mul(value).Div(hundred)
	case entity.CouponFixed:
		discount = value
	default:
		return 0
	}

	discount = discount.Round(0)
	if discount.IsNegative() {
		return 0
	}
	if discount.GreaterThan(decimal.NewFromInt(subtotal)) {
		return subtotal
	}

	return discount.IntPart()
}

// PriceCart prices items with an already resolved coupon.
func PriceCart(items []entity.CartItem, coupon *entity.Coupon) Quote {
	subtotal := Subtotal(items)
	discount := ComputeDiscount(coupon, subtotal)

	return Quote{
		Subtotal: subtotal,
		Discount: discount,
		Total:    max(0, subtotal-discount),
		Coupon:   coupon,
	}
}
