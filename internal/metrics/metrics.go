// Package metrics содержит метрики Prometheus сервиса аналитики.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry - собственный реестр метрик приложения
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// =============================================================================
// Аналитика и SLA
// =============================================================================

// ComputationDurationSeconds - время вычисления агрегата по операциям
var ComputationDurationSeconds = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "complaint_analytics",
	Name:      "computation_duration_seconds",
	Help:      "Time taken to fetch the snapshot and compute an aggregate",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
}, []string{"operation"})

// ComplaintsScanned - размер снимка обращений, обработанного за один вызов
var ComplaintsScanned = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "complaint_analytics",
	Name:      "complaints_scanned",
	Help:      "Number of complaints in the snapshot processed per call",
	Buckets:   []float64{0, 10, 50, 100, 500, 1000, 5000, 10000, 50000},
}, []string{"operation"})

// SLAEvaluationsTotal - количество оценок SLA по итоговому состоянию
var SLAEvaluationsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "complaint_analytics",
	Name:      "sla_evaluations_total",
	Help:      "SLA evaluations by resulting state",
}, []string{"state"})

// SLAConfigCacheTotal - обращения к кэшу конфигурации SLA (hit/miss)
var SLAConfigCacheTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "complaint_analytics",
	Name:      "sla_config_cache_total",
	Help:      "SLA configuration cache lookups by result",
}, []string{"result"})

// ReportsDeliveredTotal - доставка отчетов во внешний webhook
var ReportsDeliveredTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "complaint_analytics",
	Name:      "reports_delivered_total",
	Help:      "Report webhook deliveries by report kind and outcome",
}, []string{"kind", "outcome"})

// =============================================================================
// HTTP
// =============================================================================

// HTTPRequestsTotal - количество HTTP запросов
var HTTPRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by method, route and status code",
}, []string{"method", "route", "status"})

// HTTPRequestDurationSeconds - длительность HTTP запросов
var HTTPRequestDurationSeconds = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by method and route",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

// =============================================================================
// Helper Functions
// =============================================================================

// ObserveComputation записывает длительность операции, начатой в start
func ObserveComputation(operation string, start time.Time) {
	ComputationDurationSeconds.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveScanned записывает размер обработанного снимка
func ObserveScanned(operation string, count int) {
	ComplaintsScanned.WithLabelValues(operation).Observe(float64(count))
}
