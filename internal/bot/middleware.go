package bot

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/garyellow/showrank-lexbot/internal/lex"
	"github.com/garyellow/showrank-lexbot/internal/logger"
	"github.com/garyellow/showrank-lexbot/internal/metrics"
)

// HandlerFunc invokes a handler for one event.
type HandlerFunc func(ctx context.Context, h Handler, event *lex.Event) (*lex.Response, error)

// Middleware wraps handler execution. It must call next exactly once unless
// it short-circuits with its own result.
type Middleware func(ctx context.Context, h Handler, event *lex.Event, next HandlerFunc) (*lex.Response, error)

// Outcome classifies a handler result for logs and metrics.
func Outcome(resp *lex.Response, err error) string {
	if err != nil || resp == nil {
		return metrics.OutcomeError
	}
	switch resp.DialogAction.Type {
	case lex.ActionElicitSlot:
		return metrics.OutcomeElicit
	case lex.ActionDelegate:
		return metrics.OutcomeDelegate
	}
	if resp.DialogAction.FulfillmentState == lex.Failed {
		return metrics.OutcomeFailed
	}
	return metrics.OutcomeFulfilled
}

// LoggingMiddleware logs handler execution with timing and result info.
func LoggingMiddleware(log *logger.Logger) Middleware {
	return func(ctx context.Context, h Handler, event *lex.Event, next HandlerFunc) (*lex.Response, error) {
		start := time.Now()

		log.DebugContext(ctx, "Handler started",
			"module", h.Name(),
			"invocation_source", string(event.InvocationSource))

		resp, err := next(ctx, h, event)

		outcome := Outcome(resp, err)
		entry := log.WithField("module", h.Name()).
			WithField("outcome", outcome).
			WithField("duration_ms", time.Since(start).Milliseconds())
		switch outcome {
		case metrics.OutcomeError:
			entry.WithError(err).ErrorContext(ctx, "Handler failed")
		case metrics.OutcomeFailed:
			entry.WarnContext(ctx, "Lookup miss")
		default:
			entry.DebugContext(ctx, "Handler completed")
		}

		return resp, err
	}
}

// MetricsMiddleware records handler execution metrics.
func MetricsMiddleware(m *metrics.Metrics) Middleware {
	return func(ctx context.Context, h Handler, event *lex.Event, next HandlerFunc) (*lex.Response, error) {
		start := time.Now()

		resp, err := next(ctx, h, event)

		if m != nil {
			m.RecordDialog(h.IntentName(), Outcome(resp, err), time.Since(start).Seconds())
		}

		return resp, err
	}
}

// RecoveryMiddleware turns a handler panic into an error so one bad
// invocation cannot take down the process.
func RecoveryMiddleware(log *logger.Logger) Middleware {
	return func(ctx context.Context, h Handler, event *lex.Event, next HandlerFunc) (resp *lex.Response, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.WithField("module", h.Name()).
					WithField("panic", r).
					WithField("stack", string(debug.Stack())).
					ErrorContext(ctx, "Handler panicked")
				resp = nil
				err = fmt.Errorf("handler %s panicked: %v", h.Name(), r)
			}
		}()

		return next(ctx, h, event)
	}
}
