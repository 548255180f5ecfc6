package labelset

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with learner-specific context.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithUniverse adds the number of points to the logger.
func (l *Logger) WithUniverse(n uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("universe", n),
	}
}

// WithDepth adds a tree depth field to the logger.
func (l *Logger) WithDepth(depth int) *Logger {
	return &Logger{
		Logger: l.Logger.With("depth", depth),
	}
}

// LogLearn logs a completed Learn call.
func (l *Logger) LogLearn(ctx context.Context, attributes, labels, nodes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "learn failed",
			"attributes", attributes,
			"labels", labels,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "learn completed",
			"attributes", attributes,
			"labels", labels,
			"nodes", nodes,
		)
	}
}

// LogSplit logs the attribute chosen for a point set.
func (l *Logger) LogSplit(ctx context.Context, attr int, points uint64, score float64) {
	l.DebugContext(ctx, "split",
		"attribute", attr,
		"points", points,
		"entropy", score,
	)
}

// LogLeaf logs a leaf emitted for a point set.
func (l *Logger) LogLeaf(ctx context.Context, label int, points uint64) {
	l.DebugContext(ctx, "leaf",
		"label", label,
		"points", points,
	)
}
