package logger

import (
	"context"
	"log/slog"

	"github.com/garyellow/showrank-lexbot/internal/ctxutil"
)

// ContextHandler stamps every record with the dialog identifiers carried in
// the context: the invocation's request ID, the Lex intent and the Lex user.
// Empty values are omitted.
type ContextHandler struct {
	handler slog.Handler
}

// NewContextHandler wraps handler.
func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{handler: handler}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle adds the dialog identifiers found in ctx and delegates.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(dialogAttrs(ctx)...)
	return h.handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

func dialogAttrs(ctx context.Context) []slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
	if requestID, ok := ctxutil.GetRequestID(ctx); ok && requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}
	if intent := ctxutil.GetIntent(ctx); intent != "" {
		attrs = append(attrs, slog.String("intent", intent))
	}
	if userID := ctxutil.GetUserID(ctx); userID != "" {
		attrs = append(attrs, slog.String("user_id", userID))
	}
	return attrs
}
