// Package logging builds the per-call debug logger and aggregates the
// non-fatal "silently ignored" notices (unknown tag, class, property, or
// malformed style value) the render pipeline is allowed to swallow
// rather than fail on, using zap/zapcore for structured logging rather
// than hand-rolled log.Printf calls.
package logging

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a *zap.Logger plus a running multierr chain of ignored-input
// notices for one Generate call. It is always constructed fresh inside
// Generate and discarded at return — never shared across calls.
type Logger struct {
	zl       *zap.Logger
	warnings error
}

// New builds a Logger. When debug is false the zap core discards
// everything below panic level, so the library stays silent by default.
func New(debug bool) *Logger {
	level := zapcore.PanicLevel
	if debug {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	zl, err := cfg.Build()
	if err != nil {
		zl = zap.NewNop()
	}
	return &Logger{zl: zl}
}

// Ignore records a silently-ignored input (unknown tag/class/property or
// malformed value) as a debug-level log line and folds it into the
// call's aggregated warning chain.
func (l *Logger) Ignore(reason string, fields ...zap.Field) {
	l.zl.Debug(reason, fields...)
	l.warnings = multierr.Append(l.warnings, errIgnored(reason))
}

// Warnings returns the accumulated ignored-input notices for this call,
// joined with multierr, or nil if nothing was ignored. This is
// diagnostic only — it never surfaces through Generate's returned error.
func (l *Logger) Warnings() error { return l.warnings }

// Sync flushes the underlying zap core.
func (l *Logger) Sync() { _ = l.zl.Sync() }

type errIgnored string

func (e errIgnored) Error() string { return string(e) }
