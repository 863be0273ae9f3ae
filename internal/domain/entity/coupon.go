package entity

import (
	"time"
)

// CouponType selects how a coupon's value is applied.
type CouponType string

const (
	CouponPercent CouponType = "percent" // Value is a percentage of the subtotal.
	CouponFixed   CouponType = "fixed"   // Value is an absolute amount.
)

// Valid reports whether t is a known coupon type.
func (t CouponType) Valid() bool {
	return t == CouponPercent || t == CouponFixed
}

// Coupon is a discount code managed by the admin.
type Coupon struct {
	Code      string     `json:"code"`                // Matched case-insensitively.
	Type      CouponType `json:"type"`                // percent or fixed.
	Value     float64    `json:"value"`               // Percentage or amount depending on Type.
	Active    bool       `json:"active"`              // Inactive coupons never resolve.
	CreatedAt *time.Time `json:"createdAt,omitempty"` // When the admin created it.
}

// CouponSnapshot is the coupon as it was when an order was placed.
type CouponSnapshot struct {
	Code  string     `json:"code" firestore:"code"`
	Type  CouponType `json:"type" firestore:"type"`
	Value float64    `json:"value" firestore:"value"`
}

// Snapshot captures the fields an order keeps.
func (c *Coupon) Snapshot() *CouponSnapshot {
	if c == nil {
		return nil
	}

	return &CouponSnapshot{Code: c.Code, Type: c.Type, Value: c.Value}
}
