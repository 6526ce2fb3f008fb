package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes dispatch events to an slog.Logger.
// Useful for development when you want to see dispatch events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Successful operations are
// logged at Debug level, failures at Warn level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("op", event.Op.String()),
		slog.String("outcome", event.Outcome.String()),
	}

	if event.Interface != "" {
		attrs = append(attrs, slog.String("interface", event.Interface))
	}
	if event.Member != "" {
		attrs = append(attrs, slog.String("member", event.Member))
	}
	if event.Convention != ConventionNone {
		attrs = append(attrs, slog.String("convention", event.Convention.String()))
	}
	if event.Async {
		attrs = append(attrs, slog.Bool("async", true))
	}
	if event.Elapsed > 0 {
		attrs = append(attrs, slog.Duration("elapsed", event.Elapsed))
	}
	if event.Detail != "" {
		attrs = append(attrs, slog.String("detail", event.Detail))
	}

	level := slog.LevelDebug
	if event.Outcome != OutcomeOK {
		level = slog.LevelWarn
	}
	a.logger.LogAttrs(context.Background(), level, "dispatch", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
