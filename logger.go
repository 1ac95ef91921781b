package stateset

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with stateset-specific context.
// This provides structured logging with consistent field names.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithUniverse adds the universe size to the logger.
func (l *Logger) WithUniverse(size uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("universe", size),
	}
}

// WithBacking adds the backing representation name to the logger.
func (l *Logger) WithBacking(kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("backing", kind),
	}
}

// WithFragment tags the logger with the index of an automaton fragment
// built in parallel with others.
func (l *Logger) WithFragment(idx int) *Logger {
	return &Logger{
		Logger: l.Logger.With("fragment", idx),
	}
}

// LogBuild logs the outcome of one subset construction.
func (l *Logger) LogBuild(ctx context.Context, states, dedupHits int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "construction failed",
			"states", states,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "construction completed",
			"states", states,
			"dedup_hits", dedupHits,
			"duration", duration,
		)
	}
}

// LogPrune logs a dead-state elimination pass.
func (l *Logger) LogPrune(ctx context.Context, before, after int) {
	if after == before {
		l.DebugContext(ctx, "prune found no dead states",
			"states", before,
		)
	} else {
		l.InfoContext(ctx, "pruned dead states",
			"before", before,
			"after", after,
			"removed", before-after,
		)
	}
}
