package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	UpstreamRequests    *prometheus.CounterVec
	UpstreamDuration    *prometheus.HistogramVec
	HTTPRequestDuration *prometheus.HistogramVec
	EmployeesCreated    prometheus.Counter
	EmployeesDeleted    prometheus.Counter
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UpstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "employee_api_upstream_requests_total",
			Help: "Upstream HTTP attempts by operation and outcome",
		}, []string{"op", "outcome"}),
		UpstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employee_api_upstream_request_duration_seconds",
			Help:    "Latency of single upstream HTTP attempts",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employee_api_http_request_duration_seconds",
			Help:    "Latency of inbound HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		EmployeesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "employee_api_employees_created_total",
			Help: "Employees created through the upstream",
		}),
		EmployeesDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "employee_api_employees_deleted_total",
			Help: "Employees deleted through the upstream",
		}),
	}
}

// ObserveUpstream records one upstream attempt.
func (m *Metrics) ObserveUpstream(op, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(op, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(op).Observe(d.Seconds())
}

// ObserveHTTPRequest records one inbound request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// IncrementEmployeesCreated increments the created counter by 1.
func (m *Metrics) IncrementEmployeesCreated() {
	if m == nil {
		return
	}
	m.EmployeesCreated.Inc()
}

// IncrementEmployeesDeleted increments the deleted counter by 1.
func (m *Metrics) IncrementEmployeesDeleted() {
	if m == nil {
		return
	}
	m.EmployeesDeleted.Inc()
}
