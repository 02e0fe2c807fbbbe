package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics tracks cart activity across live sessions. The gauges are fed
// by the cart store's synchronous observer callback.
type CartMetrics struct {
	items     *prometheus.GaugeVec
	mutations *prometheus.CounterVec
	checkouts *prometheus.CounterVec
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	items := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "cart_items",
		Help: "Current item count per live cart session.",
	}, []string{"session"})
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations, by operation.",
	}, []string{"op"})
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_attempts_total",
		Help: "Checkout submissions, by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(items, mutations, checkouts)
	return &CartMetrics{
		items:     items,
		mutations: mutations,
		checkouts: checkouts,
	}
}

// SetItems records the current item count for a session's cart.
func (c *CartMetrics) SetItems(sessionID string, count int) {
	if c == nil || c.items == nil {
		return
	}
	c.items.WithLabelValues(normalizeLabel(sessionID)).Set(float64(count))
}

// DropSession removes the gauge series once a session ends.
func (c *CartMetrics) DropSession(sessionID string) {
	if c == nil || c.items == nil {
		return
	}
	c.items.DeleteLabelValues(normalizeLabel(sessionID))
}

// IncMutation counts one cart mutation.
func (c *CartMetrics) IncMutation(op string) {
	if c == nil || c.mutations == nil {
		return
	}
	c.mutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncCheckout counts one checkout attempt.
func (c *CartMetrics) IncCheckout(outcome string) {
	if c == nil || c.checkouts == nil {
		return
	}
	c.checkouts.WithLabelValues(normalizeLabel(outcome)).Inc()
}
