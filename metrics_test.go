package stateset

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector

	m.RecordBuild(10, 2*time.Millisecond, nil)
	m.RecordBuild(0, 4*time.Millisecond, errors.New("too many states"))
	m.RecordConfiguration(false)
	m.RecordConfiguration(true)
	m.RecordConfiguration(true)
	m.RecordConfiguration(false)
	m.RecordPrune(10, 6)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.BuildCount)
	assert.Equal(t, int64(1), stats.BuildErrors)
	assert.Equal(t, int64(10), stats.StatesBuilt)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.AvgBuildNanos)
	assert.Equal(t, int64(4), stats.Configurations)
	assert.InDelta(t, 0.5, stats.DedupRatio, 1e-9)
	assert.Equal(t, int64(4), stats.PrunedStates)
}

func TestBasicMetricsCollector_Concurrent(t *testing.T) {
	var m BasicMetricsCollector
	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				m.RecordConfiguration(true)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(800), m.GetStats().DuplicateConfigs)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	m.RecordBuild(1, time.Second, nil)
	m.RecordConfiguration(true)
	m.RecordPrune(2, 1)
}
