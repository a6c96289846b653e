package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DatesProjected     prometheus.Counter
	TimeSlotsProjected prometheus.Counter
	ValidationFailures prometheus.Counter
	CacheLookups       *prometheus.CounterVec
}

// New регистрирует метрики в глобальном registry (используется promhttp.Handler())
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном registry
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DatesProjected: factory.NewCounter(prometheus.CounterOpts{
			Name:        "availability_dates_projected_total",
			Help:        "Calendar dates produced by availability projection",
			ConstLabels: constLabels,
		}),

		TimeSlotsProjected: factory.NewCounter(prometheus.CounterOpts{
			Name:        "availability_time_slots_projected_total",
			Help:        "Bookable time slots produced by availability projection",
			ConstLabels: constLabels,
		}),

		ValidationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name:        "availability_validation_failures_total",
			Help:        "Availability submissions rejected by start/end validation",
			ConstLabels: constLabels,
		}),

		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_cache_lookups_total",
			Help:        "Availability cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}
}

// Методы ниже безопасны для nil-получателя: при выключенных метриках передаётся nil *Metrics.

// CacheLookup учитывает обращение к кешу расписаний (hit, miss, error)
func (m *Metrics) CacheLookup(result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// DatesProduced учитывает количество спроецированных дат
func (m *Metrics) DatesProduced(n int) {
	if m == nil {
		return
	}
	m.DatesProjected.Add(float64(n))
}

// TimeSlotsProduced учитывает количество спроецированных слотов
func (m *Metrics) TimeSlotsProduced(n int) {
	if m == nil {
		return
	}
	m.TimeSlotsProjected.Add(float64(n))
}

// ValidationFailed учитывает отклонённое сохранение расписания
func (m *Metrics) ValidationFailed() {
	if m == nil {
		return
	}
	m.ValidationFailures.Inc()
}
