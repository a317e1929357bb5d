package bot

import (
	"context"

	domerrors "github.com/garyellow/showrank-lexbot/internal/errors"
	"github.com/garyellow/showrank-lexbot/internal/lex"
)

// ValidateFunc validates the slots of a DialogCodeHook invocation.
type ValidateFunc func(slots lex.Slots) lex.ValidationResult

// FulfillFunc computes the answer for a FulfillmentCodeHook invocation.
// An error wrapping ErrNotFound closes the intent as Failed with the error's
// user message. Any other error is returned to the caller.
type FulfillFunc func(ctx context.Context, slots lex.Slots) (string, error)

// RunDialog drives the code hook state machine shared by every intent.
//
// DialogCodeHook runs validate: an invalid slot is elicited again with its
// value cleared in a copy of the slot map, otherwise control is delegated
// back to Lex with the slots untouched. FulfillmentCodeHook runs fulfill and
// closes the intent.
func RunDialog(ctx context.Context, event *lex.Event, validate ValidateFunc, fulfill FulfillFunc) (*lex.Response, error) {
	intent := event.CurrentIntent
	session := event.SessionAttributes

	if event.InvocationSource == lex.DialogCodeHook {
		result := validate(intent.Slots)
		if result.IsValid || result.ViolatedSlot == nil {
			return lex.Delegate(session, intent.Slots), nil
		}

		slots := intent.Slots.Clone()
		slots[*result.ViolatedSlot] = nil
		return lex.ElicitSlot(session, intent.Name, slots, *result.ViolatedSlot, result.Message), nil
	}

	answer, err := fulfill(ctx, intent.Slots)
	if err != nil {
		if domerrors.IsNotFound(err) {
			return lex.Close(session, lex.Failed, lex.PlainText(domerrors.GetUserMessage(err))), nil
		}
		return nil, err
	}
	return lex.Close(session, lex.Fulfilled, lex.PlainText(answer)), nil
}

// AlwaysValid is a ValidateFunc for intents whose slots are checked only at
// fulfillment.
func AlwaysValid(lex.Slots) lex.ValidationResult {
	return lex.Valid()
}
