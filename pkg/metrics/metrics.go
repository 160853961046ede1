package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер Prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	ProviderRequestsTotal *prometheus.CounterVec
	WizardSessionsActive  prometheus.Gauge
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		ProviderRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_provider_requests_total",
			Help:        "Total number of availability provider calls",
			ConstLabels: labels,
		}, []string{"operation", "outcome"}),

		WizardSessionsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "wizard_sessions_active",
			Help:        "Number of booking wizard sessions currently held in memory",
			ConstLabels: labels,
		}),
	}
}
