package logger

import (
	"context"
	"errors"
	"log/slog"
	"slices"
)

// MultiHandler writes each record to the local JSON handler and to the
// remote sink. Every sink gets its own clone of the record.
type MultiHandler struct {
	sinks []slog.Handler
}

// NewMultiHandler fans out to sinks, skipping nil entries.
func NewMultiHandler(sinks ...slog.Handler) *MultiHandler {
	sinks = slices.DeleteFunc(slices.Clone(sinks), func(h slog.Handler) bool { return h == nil })
	return &MultiHandler{sinks: sinks}
}

// Enabled reports whether at least one sink accepts level.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(h.sinks, func(s slog.Handler) bool {
		return s.Enabled(ctx, level)
	})
}

// Handle passes r to every sink that accepts its level. A failing sink does
// not stop the others; all failures are joined.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	for _, s := range h.sinks {
		if s.Enabled(ctx, r.Level) {
			err = errors.Join(err, s.Handle(ctx, r.Clone()))
		}
	}
	return err
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(s slog.Handler) slog.Handler { return s.WithAttrs(attrs) })
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(s slog.Handler) slog.Handler { return s.WithGroup(name) })
}

func (h *MultiHandler) derive(apply func(slog.Handler) slog.Handler) *MultiHandler {
	sinks := make([]slog.Handler, len(h.sinks))
	for i, s := range h.sinks {
		sinks[i] = apply(s)
	}
	return &MultiHandler{sinks: sinks}
}
