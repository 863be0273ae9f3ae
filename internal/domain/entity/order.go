package entity

import (
	"strconv"
	"time"
)

// OrderIDPrefix starts every order id.
const OrderIDPrefix = "ORD-"

// Order is an immutable record of a submitted checkout.
type Order struct {
	ID          string          `json:"id" firestore:"id"`
	Name        string          `json:"name" firestore:"name"`
	Phone       string          `json:"phone" firestore:"phone"`
	Email       string          `json:"email" firestore:"email"`
	Governorate string          `json:"governorate" firestore:"governorate"`
	Address     string          `json:"address" firestore:"address"`
	Payment     string          `json:"payment" firestore:"payment"`
	Items       []CartItem      `json:"items" firestore:"items"`
	Coupon      *CouponSnapshot `json:"coupon" firestore:"coupon"`
	Discount    int64           `json:"discount" firestore:"discount"`
	Subtotal    int64           `json:"subtotal" firestore:"subtotal"`
	Total       int64           `json:"total" firestore:"total"`
	CreatedAt   time.Time       `json:"createdAt" firestore:"createdAt"`
}

// NewOrderID derives an order id from a timestamp: the prefix followed by
// the millisecond epoch in base 36.
func NewOrderID(at time.Time) string {
	return OrderIDPrefix + strconv.FormatInt(at.UnixMilli(), 36)
}
