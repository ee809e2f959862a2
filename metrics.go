package moogo

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the metrics
// package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordOperation is called after each engine operation.
	// op is the operation name, rows the number of input points, d the time
	// taken and err is nil if successful.
	RecordOperation(op string, rows int, d time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOperation(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	OperationCount  atomic.Int64
	OperationErrors atomic.Int64
	RowsProcessed   atomic.Int64
	TotalNanos      atomic.Int64

	perOp sync.Map // op name -> *atomic.Int64
}

// RecordOperation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOperation(op string, rows int, d time.Duration, err error) {
	b.OperationCount.Add(1)
	b.RowsProcessed.Add(int64(rows))
	b.TotalNanos.Add(d.Nanoseconds())
	if err != nil {
		b.OperationErrors.Add(1)
	}
	v, _ := b.perOp.LoadOrStore(op, new(atomic.Int64))
	v.(*atomic.Int64).Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		OperationCount:  b.OperationCount.Load(),
		OperationErrors: b.OperationErrors.Load(),
		RowsProcessed:   b.RowsProcessed.Load(),
		AvgNanos:        b.getAvgNanos(),
		ByOperation:     make(map[string]int64),
	}
	b.perOp.Range(func(k, v any) bool {
		stats.ByOperation[k.(string)] = v.(*atomic.Int64).Load()
		return true
	})
	return stats
}

func (b *BasicMetricsCollector) getAvgNanos() int64 {
	count := b.OperationCount.Load()
	if count == 0 {
		return 0
	}
	return b.TotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	OperationCount  int64
	OperationErrors int64
	RowsProcessed   int64
	AvgNanos        int64
	ByOperation     map[string]int64
}
