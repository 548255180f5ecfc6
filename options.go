package labelset

import (
	"log/slog"
	"runtime"
)

// DefaultMaxDepth bounds the tree depth unless WithMaxDepth says otherwise.
const DefaultMaxDepth = 64

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	parallelism      int
	maxDepth         int
}

// Option configures a Learner.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring learning.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &labelset.BasicMetricsCollector{}
//	learner := labelset.New(labelset.WithMetricsCollector(metrics))
//	// ... learn ...
//	stats := metrics.GetStats()
//	fmt.Printf("Splits: %d, Leaves: %d\n", stats.SplitCount, stats.LeafCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithParallelism bounds the number of attributes scored concurrently.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithMaxDepth bounds the number of splits on any root-to-leaf path.
// Values below 0 select DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		maxDepth:         DefaultMaxDepth,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.parallelism < 1 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}
	if o.maxDepth < 0 {
		o.maxDepth = DefaultMaxDepth
	}
	return o
}
