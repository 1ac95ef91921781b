package stateset

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting construction metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    buildCounter   prometheus.Counter
//	    buildHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordBuild(states int, duration time.Duration, err error) {
//	    p.buildCounter.Inc()
//	    p.buildHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordBuild is called after each subset construction.
	// states is the number of DFA states produced, err is nil if successful.
	RecordBuild(states int, duration time.Duration, err error)

	// RecordConfiguration is called for every configuration computed during
	// construction. duplicate is true when it matched an existing state.
	RecordConfiguration(duplicate bool)

	// RecordPrune is called after a dead-state elimination pass.
	RecordPrune(before, after int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordConfiguration(bool)               {}
func (NoopMetricsCollector) RecordPrune(int, int)                   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Safe for concurrent use by parallel construction workers.
type BasicMetricsCollector struct {
	BuildCount        atomic.Int64
	BuildErrors       atomic.Int64
	BuildTotalNanos   atomic.Int64
	StatesBuilt       atomic.Int64
	Configurations    atomic.Int64
	DuplicateConfigs  atomic.Int64
	PruneCount        atomic.Int64
	PrunedStatesTotal atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(states int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.StatesBuilt.Add(int64(states))
}

// RecordConfiguration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConfiguration(duplicate bool) {
	b.Configurations.Add(1)
	if duplicate {
		b.DuplicateConfigs.Add(1)
	}
}

// RecordPrune implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPrune(before, after int) {
	b.PruneCount.Add(1)
	b.PrunedStatesTotal.Add(int64(before - after))
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	BuildCount       int64
	BuildErrors      int64
	AvgBuildNanos    int64
	StatesBuilt      int64
	Configurations   int64
	DuplicateConfigs int64
	DedupRatio       float64
	PrunedStates     int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		BuildCount:       b.BuildCount.Load(),
		BuildErrors:      b.BuildErrors.Load(),
		StatesBuilt:      b.StatesBuilt.Load(),
		Configurations:   b.Configurations.Load(),
		DuplicateConfigs: b.DuplicateConfigs.Load(),
		PrunedStates:     b.PrunedStatesTotal.Load(),
	}
	if stats.BuildCount > 0 {
		stats.AvgBuildNanos = b.BuildTotalNanos.Load() / stats.BuildCount
	}
	if stats.Configurations > 0 {
		stats.DedupRatio = float64(stats.DuplicateConfigs) / float64(stats.Configurations)
	}
	return stats
}
