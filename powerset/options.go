package powerset

import (
	"runtime"

	"github.com/hupe1980/stateset"
	"github.com/hupe1980/stateset/backing"
)

// DefaultMaxStates bounds the number of DFA states a single construction may
// produce.
const DefaultMaxStates = 10000

type options struct {
	kind            backing.Kind
	autoKind        bool
	sparseThreshold uint32
	maxStates       int
	prune           bool
	parallelism     int
	logger          *stateset.Logger
	metrics         stateset.MetricsCollector
}

func defaultOptions() options {
	return options{
		kind:        backing.Dense,
		maxStates:   DefaultMaxStates,
		parallelism: runtime.GOMAXPROCS(0),
		logger:      stateset.NoopLogger(),
		metrics:     stateset.NoopMetricsCollector{},
	}
}

// Option configures a Builder.
type Option func(*options)

// WithKind fixes the state-set representation used for configurations.
// Disables WithAutoKind.
func WithKind(k backing.Kind) Option {
	return func(o *options) {
		o.kind = k
		o.autoKind = false
	}
}

// WithAutoKind picks the representation per automaton with backing.Select.
// A zero threshold uses backing.DefaultSparseThreshold.
func WithAutoKind(threshold uint32) Option {
	return func(o *options) {
		o.autoKind = true
		o.sparseThreshold = threshold
	}
}

// WithMaxStates bounds the number of DFA states, including the dead state.
// Values <= 0 remove the bound.
func WithMaxStates(n int) Option {
	return func(o *options) {
		o.maxStates = n
	}
}

// WithPrune eliminates dead NFA states before construction.
func WithPrune() Option {
	return func(o *options) {
		o.prune = true
	}
}

// WithParallelism bounds the number of fragments BuildAll constructs at once.
// Values <= 0 use GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.parallelism = n
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(l *stateset.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = stateset.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
func WithMetricsCollector(m stateset.MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = stateset.NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
