// Package metrics exposes the storefront's Prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters on a private registry. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	ordersPlaced        *prometheus.CounterVec
	orderRevenue        prometheus.Counter
	persistenceFallback *prometheus.CounterVec
	couponLookups       *prometheus.CounterVec
	cartMutations       *prometheus.CounterVec
}

// New registers the counters plus the Go and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		ordersPlaced: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Total number of orders appended to the order log",
		}, []string{"backend"}),
		orderRevenue: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_order_revenue_total",
			Help: "Sum of order totals in whole currency units",
		}),
		persistenceFallback: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_persistence_fallback_total",
			Help: "Remote store failures served by the local backend",
		}, []string{"collection", "op"}),
		couponLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_coupon_lookups_total",
			Help: "Coupon codes checked at checkout",
		}, []string{"result"}),
		cartMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_cart_mutations_total",
			Help: "Cart operations applied",
		}, []string{"op"}),
	}
}

// Registry returns the registry backing the counters.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// OrderPlaced counts an appended order and its total.
func (m *Metrics) OrderPlaced(backend string, total int64) {
	if m == nil {
		return
	}
	m.ordersPlaced.WithLabelValues(backend).Inc()
	m.orderRevenue.Add(float64(total))
}

// PersistenceFallback counts a remote failure that the local backend absorbed.
func (m *Metrics) PersistenceFallback(collection, op string) {
	if m == nil {
		return
	}
	m.persistenceFallback.WithLabelValues(collection, op).Inc()
}

// CouponLookup counts a coupon resolution by outcome.
func (m *Metrics) CouponLookup(found bool) {
	if m == nil {
		return
	}
	result := "miss"
	if found {
		result = "hit"
	}
	m.couponLookups.WithLabelValues(result).Inc()
}

// CartMutation counts a cart operation.
func (m *Metrics) CartMutation(op string) {
	if m == nil {
		return
	}
	m.cartMutations.WithLabelValues(op).Inc()
}
