package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_BookingTransition(t *testing.T) {
	m := New("carwash-test")

	m.BookingTransition("provider", "PENDING", "ACCEPTED")
	m.BookingTransition("provider", "PENDING", "ACCEPTED")

	got := testutil.ToFloat64(m.BookingTransitions.WithLabelValues("provider", "PENDING", "ACCEPTED"))
	assert.Equal(t, 2.0, got)
}

func TestMetrics_SubmittedAndSessions(t *testing.T) {
	m := New("carwash-test")

	m.BookingSubmitted("customer", "Premium Wash")
	m.SetActiveSessions("provider", 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsSubmitted.WithLabelValues("customer", "Premium Wash")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ActiveSessions.WithLabelValues("provider")))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.BookingTransition("provider", "PENDING", "CANCELLED")
		m.BookingSubmitted("provider", "Basic Wash")
		m.SetActiveSessions("customer", 1)
		m.ToastShown("info")
		m.SimulatedArrival()
		m.ObserveHTTPRequest("GET", "/x", "200", 0.1)
	})
}

func TestNew_HandlerServesMetrics(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() { m = New("carwash-dashboard") })

	m.BookingTransition("provider", "PENDING", "ACCEPTED")
	m.BookingSubmitted("customer", "Premium Wash")
	m.SetActiveSessions("customer", 2)
	m.ToastShown("success")
	m.SimulatedArrival()
	m.ObserveHTTPRequest("GET", "/api/v1/provider/overview", "200", 0.02)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `bookings_submitted_total{dashboard="customer",service="carwash-dashboard",service_type="Premium Wash"} 1`)
	assert.Contains(t, body, "booking_transitions_total")
	assert.Contains(t, body, "dashboard_sessions")
	assert.Contains(t, body, "toasts_shown_total")
	assert.Contains(t, body, "simulated_arrivals_total")
	assert.Contains(t, body, "http_requests_total")
}
