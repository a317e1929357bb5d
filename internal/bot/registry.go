package bot

import (
	"context"
	"fmt"
	"slices"

	"github.com/garyellow/showrank-lexbot/internal/ctxutil"
	domerrors "github.com/garyellow/showrank-lexbot/internal/errors"
	"github.com/garyellow/showrank-lexbot/internal/lex"
)

// Registry manages intent handlers and dispatches code hook events.
type Registry struct {
	handlers    map[string]Handler
	middlewares []Middleware
}

// NewRegistry creates a new handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Use appends middlewares. The first one registered runs outermost.
func (r *Registry) Use(mw ...Middleware) {
	r.middlewares = append(r.middlewares, mw...)
}

// Register adds a handler to the registry.
// Registering two handlers for the same intent is a programming error and panics.
func (r *Registry) Register(h Handler) {
	intent := h.IntentName()
	if _, exists := r.handlers[intent]; exists {
		panic(fmt.Sprintf("bot: duplicate handler for intent %s", intent))
	}
	r.handlers[intent] = h
}

// GetHandler returns the handler for an intent, or nil.
func (r *Registry) GetHandler(intent string) Handler {
	return r.handlers[intent]
}

// Intents lists the supported intent names in sorted order.
func (r *Registry) Intents() []string {
	intents := make([]string, 0, len(r.handlers))
	for intent := range r.handlers {
		intents = append(intents, intent)
	}
	slices.Sort(intents)
	return intents
}

// Dispatch routes event to the handler for currentIntent.name.
//
// A malformed event yields an error wrapping ErrInvalidInput; an intent with
// no handler yields an *UnknownIntentError wrapping ErrUnknownIntent. Both are
// fatal for the invocation and no response is produced.
func (r *Registry) Dispatch(ctx context.Context, event *lex.Event) (*lex.Response, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	intent := event.CurrentIntent.Name
	h := r.GetHandler(intent)
	if h == nil {
		return nil, domerrors.NewUnknownIntentError(intent)
	}

	ctx = ctxutil.WithIntent(ctx, intent)
	if event.UserID != "" {
		ctx = ctxutil.WithUserID(ctx, event.UserID)
	}

	return r.chain()(ctx, h, event)
}

func (r *Registry) chain() HandlerFunc {
	next := func(ctx context.Context, h Handler, event *lex.Event) (*lex.Response, error) {
		return h.Handle(ctx, event)
	}
	for _, mw := range slices.Backward(r.middlewares) {
		inner := next
		next = func(ctx context.Context, h Handler, event *lex.Event) (*lex.Response, error) {
			return mw(ctx, h, event, inner)
		}
	}
	return next
}
