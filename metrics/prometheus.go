// Package metrics exports operation metrics to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/moogo"
)

var _ moogo.MetricsCollector = (*PrometheusCollector)(nil)

// PrometheusCollector implements moogo.MetricsCollector.
type PrometheusCollector struct {
	operations *prometheus.CounterVec
	rows       *prometheus.CounterVec
	latency    *prometheus.HistogramVec
}

// NewPrometheusCollector creates the collector and registers it with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &PrometheusCollector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moogo_operations_total",
			Help: "Total indicator operations by outcome",
		}, []string{"op", "status"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moogo_rows_processed_total",
			Help: "Total input points processed",
		}, []string{"op"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "moogo_operation_duration_seconds",
			Help:    "Latency of indicator operations",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"op"}),
	}
	for _, col := range []prometheus.Collector{c.operations, c.rows, c.latency} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordOperation implements moogo.MetricsCollector.
func (c *PrometheusCollector) RecordOperation(op string, rows int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.operations.WithLabelValues(op, status).Inc()
	c.rows.WithLabelValues(op).Add(float64(rows))
	c.latency.WithLabelValues(op).Observe(d.Seconds())
}
