package radiogo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordMatch is called after each match operation.
	// k is the number of neighbors requested (1 for FindNearest), duration
	// is the time taken, err is nil if successful.
	RecordMatch(k int, duration time.Duration, err error)

	// RecordBatchMatch is called after each batch match operation.
	// queries is the number of queries attempted, failed is the number that
	// failed, duration is the total time taken.
	RecordBatchMatch(queries, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordMatch(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordBatchMatch(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	MatchCount        atomic.Int64
	MatchErrors       atomic.Int64
	MatchTotalNanos   atomic.Int64
	BatchMatchCount   atomic.Int64
	BatchMatchQueries atomic.Int64
	BatchMatchFailed  atomic.Int64
}

// RecordMatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMatch(k int, duration time.Duration, err error) {
	b.MatchCount.Add(1)
	b.MatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MatchErrors.Add(1)
	}
}

// RecordBatchMatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchMatch(queries, failed int, duration time.Duration) {
	b.BatchMatchCount.Add(1)
	b.BatchMatchQueries.Add(int64(queries))
	b.BatchMatchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		MatchCount:        b.MatchCount.Load(),
		MatchErrors:       b.MatchErrors.Load(),
		MatchAvgNanos:     b.getAvgMatchNanos(),
		BatchMatchCount:   b.BatchMatchCount.Load(),
		BatchMatchQueries: b.BatchMatchQueries.Load(),
		BatchMatchFailed:  b.BatchMatchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgMatchNanos() int64 {
	count := b.MatchCount.Load()
	if count == 0 {
		return 0
	}
	return b.MatchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	MatchCount        int64
	MatchErrors       int64
	MatchAvgNanos     int64
	BatchMatchCount   int64
	BatchMatchQueries int64
	BatchMatchFailed  int64
}
