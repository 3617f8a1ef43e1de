// Package logging builds the slog handler chain used across the module:
// stdout in text or JSON, plus the systemd journal when running under it.
package logging

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
)

// Logger is a duck-typed interface satisfied by *slog.Logger.
// Use this interface instead of *slog.Logger to decouple from the concrete type.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config represents logging configuration.
type Config struct {
	Level  string `toml:"level" env:"LED_LOG_LEVEL"`
	Format string `toml:"format" env:"LED_LOG_FORMAT"`
}

// New creates a logger from the configuration. Unknown levels fall back to
// info; any format other than "json" means text.
func New(config Config) *slog.Logger {
	level := slog.LevelInfo
	if parsed := parseLevel(config.Level); parsed != nil {
		level = *parsed
	}
	return slog.New(newHandler(config.Format, level))
}

// newHandler creates the handler chain for the given format and level.
// Logs go to stdout and, when available, the systemd journal.
func newHandler(format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}

	var stdoutHandler slog.Handler
	if format == "json" {
		stdoutHandler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		stdoutHandler = slog.NewTextHandler(os.Stdout, opts)
	}

	if !IsJournalAvailable() {
		return stdoutHandler
	}
	return fanout{stdoutHandler, NewJournalHandler(level)}
}

// fanout duplicates each record to every target handler. Targets keep
// their own level filtering, so the journal can sit at a different
// threshold than stdout.
type fanout []slog.Handler

// Enabled reports whether at least one target would accept the level.
func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, target := range f {
		if target.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers the record to every accepting target. One failing
// target does not stop delivery to the rest; failures are joined.
func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, target := range f {
		if !target.Enabled(ctx, r.Level) {
			continue
		}
		if err := target.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs applies the attributes to every target.
func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(fanout, len(f))
	for i, target := range f {
		next[i] = target.WithAttrs(attrs)
	}
	return next
}

// WithGroup applies the group to every target.
func (f fanout) WithGroup(name string) slog.Handler {
	next := make(fanout, len(f))
	for i, target := range f {
		next[i] = target.WithGroup(name)
	}
	return next
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) *slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		l := slog.LevelDebug
		return &l
	case "info":
		l := slog.LevelInfo
		return &l
	case "warn", "warning":
		l := slog.LevelWarn
		return &l
	case "error":
		l := slog.LevelError
		return &l
	default:
		return nil
	}
}
