package entity

// CheckoutStatus is where a session's checkout stands.
type CheckoutStatus string

const (
	CheckoutEditing   CheckoutStatus = "editing"
	CheckoutSubmitted CheckoutStatus = "submitted"
)

// CheckoutState is persisted per session. OrderID is set once submitted.
type CheckoutState struct {
	Status  CheckoutStatus `json:"status"`
	OrderID string         `json:"orderId,omitempty"`
}

// Submitted reports whether the session already placed its order.
func (s CheckoutState) Submitted() bool {
	return s.Status == CheckoutSubmitted
}
