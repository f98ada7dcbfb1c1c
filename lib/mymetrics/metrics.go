package mymetrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeCreated         = "created"
	OutcomeInvalidInput    = "invalid_input"
	OutcomeNotConfigured   = "not_configured"
	OutcomeProviderFailure = "provider_failure"
)

// Metrics groups the shop counters. Each instance owns its registry so tests do not collide.
type Metrics struct {
	registry      *prometheus.Registry
	orders        *prometheus.CounterVec
	verifications *prometheus.CounterVec
	placed        prometheus.Counter
	revenue       prometheus.Counter
	statusChanges *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shopfront",
			Subsystem: "razorpay",
			Name:      "orders_total",
			Help:      "Payment orders requested, by outcome.",
		}, []string{"outcome"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shopfront",
			Subsystem: "razorpay",
			Name:      "verifications_total",
			Help:      "Payment signature verifications, by verdict.",
		}, []string{"valid"}),
		placed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shopfront",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Orders placed after a verified payment.",
		}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shopfront",
			Subsystem: "orders",
			Name:      "revenue_minor_units_total",
			Help:      "Sum of placed order totals in minor currency units.",
		}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shopfront",
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Order status changes, by new status.",
		}, []string{"status"}),
	}
	m.registry.MustRegister(m.orders, m.verifications, m.placed, m.revenue, m.statusChanges)
	return m
}

func (m *Metrics) OrderRequested(outcome string) {
	m.orders.WithLabelValues(outcome).Inc()
}

func (m *Metrics) PaymentVerified(valid bool) {
	m.verifications.WithLabelValues(strconv.FormatBool(valid)).Inc()
}

func (m *Metrics) OrderPlaced(totalInMinorUnits int64) {
	m.placed.Inc()
	if totalInMinorUnits > 0 {
		m.revenue.Add(float64(totalInMinorUnits))
	}
}

func (m *Metrics) OrderStatusChanged(status string) {
	m.statusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
