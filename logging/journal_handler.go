package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

const syslogIdentifier = "rgb-status-led"

// JournalHandler is a slog.Handler that sends logs to the systemd journal.
type JournalHandler struct {
	level  slog.Level
	attrs  []slog.Attr
	prefix string
}

// NewJournalHandler creates a new journal handler.
func NewJournalHandler(level slog.Level) *JournalHandler {
	return &JournalHandler{level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *JournalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle sends the log record to the systemd journal.
func (h *JournalHandler) Handle(_ context.Context, r slog.Record) error {
	priority := mapLevelToPriority(r.Level)

	fields := map[string]string{
		"SYSLOG_IDENTIFIER": syslogIdentifier,
	}
	for _, attr := range h.attrs {
		addAttrToFields(fields, attr, h.prefix)
	}
	r.Attrs(func(attr slog.Attr) bool {
		addAttrToFields(fields, attr, h.prefix)
		return true
	})

	return journal.Send(r.Message, priority, fields)
}

// WithAttrs returns a new handler with additional attributes.
func (h *JournalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newAttrs = append(newAttrs, h.attrs...)
	newAttrs = append(newAttrs, attrs...)
	return &JournalHandler{level: h.level, attrs: newAttrs, prefix: h.prefix}
}

// WithGroup returns a new handler with a group prefix. Groups are folded
// into the attribute keys since journal fields are flat.
func (h *JournalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	prefix := name
	if h.prefix != "" {
		prefix = h.prefix + "_" + name
	}
	return &JournalHandler{level: h.level, attrs: h.attrs, prefix: prefix}
}

// mapLevelToPriority maps slog levels to journal priorities.
func mapLevelToPriority(level slog.Level) journal.Priority {
	switch {
	case level >= slog.LevelError:
		return journal.PriErr
	case level >= slog.LevelWarn:
		return journal.PriWarning
	case level >= slog.LevelInfo:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

// addAttrToFields flattens an slog attribute into journal fields.
// Journal field names are uppercase by convention.
func addAttrToFields(fields map[string]string, attr slog.Attr, prefix string) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if prefix != "" {
		key = prefix + "_" + key
	}
	if attr.Value.Kind() == slog.KindGroup {
		for _, a := range attr.Value.Group() {
			addAttrToFields(fields, a, key)
		}
		return
	}
	fields[strings.ToUpper(key)] = fmt.Sprint(attr.Value.Any())
}

// IsJournalAvailable checks if the systemd journal is available.
func IsJournalAvailable() bool {
	return journal.Enabled()
}
