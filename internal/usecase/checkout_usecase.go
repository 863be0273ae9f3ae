// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/checkout"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
)

// CouponPreview is the priced cart for a coupon code entered at checkout.
type CouponPreview struct {
	pricing.Quote
	Applied           bool   `json:"applied"`
	Message           string `json:"message"`
	FormattedSubtotal string `json:"formattedSubtotal"`
	FormattedDiscount string `json:"formattedDiscount"`
	FormattedTotal    string `json:"formattedTotal"`
}

// CheckoutView is the session's checkout state with its cart.
type CheckoutView struct {
	State entity.CheckoutState `json:"state"`
	Cart  *CartView            `json:"cart"`
}

// OrderConfirmation is returned once an order was appended.
type OrderConfirmation struct {
	Order          *entity.Order      `json:"order"`
	FormattedTotal string             `json:"formattedTotal"`
	Outcome        repository.Outcome `json:"-"`
}

// CheckoutUsecase drives the checkout form from Editing to Submitted.
type CheckoutUsecase interface {
	GetState(ctx context.Context, sessionID string) (*CheckoutView, error)

	// PreviewCoupon prices the session's cart with code. An unknown or
	// inactive code prices with no discount.
	PreviewCoupon(ctx context.Context, sessionID, code string) (*CouponPreview, error)

	// Submit validates form, appends the order and clears the cart.
	Submit(ctx context.Context, sessionID string, form checkout.Form) (*OrderConfirmation, error)

	// OrderQR renders the confirmation QR code of an order id.
	OrderQR(ctx context.Context, orderID string) ([]byte, error)
}
