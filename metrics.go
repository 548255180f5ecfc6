package labelset

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives learner events.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordLearn is called after each Learn call with the number of nodes in
	// the resulting tree. err is nil if successful.
	RecordLearn(duration time.Duration, nodes int, err error)

	// RecordSplit is called for every split node with the size of the point
	// set it divides.
	RecordSplit(attr int, points uint64)

	// RecordLeaf is called for every leaf with the size of the point set it
	// covers.
	RecordLeaf(label int, points uint64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLearn(time.Duration, int, error) {}
func (NoopMetricsCollector) RecordSplit(int, uint64)              {}
func (NoopMetricsCollector) RecordLeaf(int, uint64)               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	LearnCount      atomic.Int64
	LearnErrors     atomic.Int64
	LearnTotalNanos atomic.Int64
	NodeCount       atomic.Int64
	SplitCount      atomic.Int64
	SplitPoints     atomic.Int64
	LeafCount       atomic.Int64
	LeafPoints      atomic.Int64
}

// RecordLearn implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLearn(duration time.Duration, nodes int, err error) {
	b.LearnCount.Add(1)
	b.LearnTotalNanos.Add(duration.Nanoseconds())
	b.NodeCount.Add(int64(nodes))
	if err != nil {
		b.LearnErrors.Add(1)
	}
}

// RecordSplit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSplit(attr int, points uint64) {
	b.SplitCount.Add(1)
	b.SplitPoints.Add(int64(points)) //nolint:gosec // point counts stay far below 2^63
}

// RecordLeaf implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLeaf(label int, points uint64) {
	b.LeafCount.Add(1)
	b.LeafPoints.Add(int64(points)) //nolint:gosec // point counts stay far below 2^63
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LearnCount:    b.LearnCount.Load(),
		LearnErrors:   b.LearnErrors.Load(),
		LearnAvgNanos: b.getAvgLearnNanos(),
		NodeCount:     b.NodeCount.Load(),
		SplitCount:    b.SplitCount.Load(),
		SplitPoints:   b.SplitPoints.Load(),
		LeafCount:     b.LeafCount.Load(),
		LeafPoints:    b.LeafPoints.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgLearnNanos() int64 {
	count := b.LearnCount.Load()
	if count == 0 {
		return 0
	}
	return b.LearnTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LearnCount    int64
	LearnErrors   int64
	LearnAvgNanos int64
	NodeCount     int64
	SplitCount    int64
	SplitPoints   int64
	LeafCount     int64
	LeafPoints    int64
}
