package service

// MetricsRecorder counts storefront business events.
type MetricsRecorder interface {
	OrderPlaced(backend string, total int64)
	CouponLookup(found bool)
	CartMutation(op string)
}
