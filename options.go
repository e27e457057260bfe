package radiogo

import (
	"log/slog"
	"runtime"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	maxConcurrency   int
}

// Option configures Matcher behavior.
//
// Options exist to avoid exploding the constructor surface; the matching
// semantics themselves are not configurable.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &radiogo.BasicMetricsCollector{}
//	m, _ := radiogo.New(library, radiogo.WithMetricsCollector(metrics))
//	// ... use m ...
//	stats := metrics.GetStats()
//	fmt.Printf("Matches: %d, Avg latency: %dns\n", stats.MatchCount, stats.MatchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := radiogo.NewJSONLogger(slog.LevelInfo)
//	m, _ := radiogo.New(library, radiogo.WithLogger(logger))
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

// WithMaxConcurrency bounds the number of queries FindKNearestBatch
// evaluates in parallel. Values < 1 fall back to GOMAXPROCS.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.maxConcurrency = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		maxConcurrency:   runtime.GOMAXPROCS(0),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
