package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics метрики Prometheus сервиса
// Использует собственный registry, чтобы несколько экземпляров не конфликтовали
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingTransitions  *prometheus.CounterVec
	BookingsSubmitted   *prometheus.CounterVec
	ActiveSessions      *prometheus.GaugeVec
	ToastsShown         *prometheus.CounterVec
	SimulatedArrivals   prometheus.Counter
}

// New создает и регистрирует метрики
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		BookingTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_transitions_total",
			Help:        "Applied booking status transitions",
			ConstLabels: constLabels,
		}, []string{"dashboard", "from", "to"}),

		BookingsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_submitted_total",
			Help:        "Bookings created per dashboard and service",
			ConstLabels: constLabels,
		}, []string{"dashboard", "service_type"}),

		ActiveSessions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "dashboard_sessions",
			Help:        "Open dashboard sessions",
			ConstLabels: constLabels,
		}, []string{"dashboard"}),

		ToastsShown: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "toasts_shown_total",
			Help:        "Toast notifications shown by type",
			ConstLabels: constLabels,
		}, []string{"type"}),

		SimulatedArrivals: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "simulated_arrivals_total",
			Help:        "Bookings injected by the arrival simulator",
			ConstLabels: constLabels,
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingTransitions,
		m.BookingsSubmitted,
		m.ActiveSessions,
		m.ToastsShown,
		m.SimulatedArrivals,
	)

	return m
}

// Handler HTTP-обработчик для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает registry (используется в тестах)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Все методы ниже безопасны для nil-получателя: при выключенных метриках
// в компоненты передаётся (*Metrics)(nil)

// BookingTransition учитывает применённый переход статуса
func (m *Metrics) BookingTransition(dashboard, from, to string) {
	if m == nil {
		return
	}
	m.BookingTransitions.WithLabelValues(dashboard, from, to).Inc()
}

// BookingSubmitted учитывает созданное бронирование
// Метка service занята константной меткой сервиса, поэтому тип услуги пишется в service_type
func (m *Metrics) BookingSubmitted(dashboard, serviceType string) {
	if m == nil {
		return
	}
	m.BookingsSubmitted.WithLabelValues(dashboard, serviceType).Inc()
}

// SetActiveSessions публикует количество открытых сессий дашборда
func (m *Metrics) SetActiveSessions(dashboard string, n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.WithLabelValues(dashboard).Set(float64(n))
}

// ToastShown учитывает показанное уведомление
func (m *Metrics) ToastShown(toastType string) {
	if m == nil {
		return
	}
	m.ToastsShown.WithLabelValues(toastType).Inc()
}

// SimulatedArrival учитывает симулированное бронирование
func (m *Metrics) SimulatedArrival() {
	if m == nil {
		return
	}
	m.SimulatedArrivals.Inc()
}

// ObserveHTTPRequest учитывает обработанный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}
