package mymetrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.OrderRequested(OutcomeCreated)
	m.OrderRequested(OutcomeCreated)
	m.OrderRequested(OutcomeInvalidInput)
	m.PaymentVerified(true)
	m.PaymentVerified(false)
	m.PaymentVerified(false)
	m.OrderPlaced(12900)
	m.OrderPlaced(7999)
	m.OrderStatusChanged("shipped")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.orders.WithLabelValues(OutcomeCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.orders.WithLabelValues(OutcomeInvalidInput)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.verifications.WithLabelValues("true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.verifications.WithLabelValues("false")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.placed))
	assert.Equal(t, 20899.0, testutil.ToFloat64(m.revenue))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusChanges.WithLabelValues("shipped")))

	request, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	response := httptest.NewRecorder()
	m.Handler().ServeHTTP(response, request)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), `shopfront_razorpay_orders_total{outcome="created"} 2`)
	assert.Contains(t, response.Body.String(), `shopfront_razorpay_verifications_total{valid="false"} 2`)
}
