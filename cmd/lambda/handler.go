package main

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/garyellow/showrank-lexbot/internal/ctxutil"
	"github.com/garyellow/showrank-lexbot/internal/lex"
	"github.com/garyellow/showrank-lexbot/internal/logger"
	"github.com/garyellow/showrank-lexbot/internal/sentry"
	"github.com/garyellow/showrank-lexbot/internal/webhook"
)

// sentryFlushTimeout bounds the wait for error reports before the runtime
// freezes the sandbox.
const sentryFlushTimeout = 2 * time.Second

type handler struct {
	dispatcher webhook.Dispatcher
	logger     *logger.Logger
}

func newHandler(dispatcher webhook.Dispatcher, log *logger.Logger) *handler {
	return &handler{dispatcher: dispatcher, logger: log}
}

// Handle serves one code hook invocation. Dispatch errors are returned to
// the runtime so Lex reports the invocation as failed.
func (h *handler) Handle(ctx context.Context, event *lex.Event) (*lex.Response, error) {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		ctx = ctxutil.WithRequestID(ctx, lc.AwsRequestID)
	}

	resp, err := h.dispatcher.Dispatch(ctx, event)
	if err != nil {
		if event != nil {
			ctx = ctxutil.WithIntent(ctx, event.CurrentIntent.Name)
		}
		h.logger.WithError(err).ErrorContext(ctx, "Code hook dispatch failed")
		sentry.CaptureExceptionWithContext(ctx, err)
		if sentry.IsEnabled() {
			sentry.Flush(sentryFlushTimeout)
		}
		return nil, err
	}
	return resp, nil
}
