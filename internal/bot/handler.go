// Package bot provides the handler interface, the shared dialog state machine
// and the intent dispatcher for the Lex code hook. Each module (bestshow,
// topfive, imdbscore) implements the Handler interface for one intent.
package bot

import (
	"context"

	"github.com/garyellow/showrank-lexbot/internal/lex"
)

// Handler defines the interface that all intent modules must implement
type Handler interface {
	// Name returns the module name used in logs and metrics
	Name() string

	// IntentName returns the Lex intent this handler serves.
	// Dispatch matches it against currentIntent.name exactly.
	IntentName() string

	// Handle answers one code hook invocation for the intent.
	// A non-nil error is fatal for the invocation; expected outcomes such as
	// a rejected slot or a lookup miss are returned as responses.
	Handle(ctx context.Context, event *lex.Event) (*lex.Response, error)
}
