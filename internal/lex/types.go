// Package lex models the Amazon Lex (V1) code hook protocol: the event the
// dialog manager sends to a fulfillment function and the dialog actions it
// accepts in return.
package lex

import (
	"encoding/json"
	"maps"

	domerrors "github.com/garyellow/showrank-lexbot/internal/errors"
)

// InvocationSource tells the code hook which phase of the conversation it
// is serving.
type InvocationSource string

const (
	// DialogCodeHook is sent while slots are still being collected.
	DialogCodeHook InvocationSource = "DialogCodeHook"
	// FulfillmentCodeHook is sent once every slot has been confirmed.
	FulfillmentCodeHook InvocationSource = "FulfillmentCodeHook"
)

// Valid reports whether s is one of the two sources Lex sends.
func (s InvocationSource) Valid() bool {
	return s == DialogCodeHook || s == FulfillmentCodeHook
}

// DialogActionType tags the variant of a Response.
type DialogActionType string

const (
	ActionElicitSlot DialogActionType = "ElicitSlot"
	ActionDelegate   DialogActionType = "Delegate"
	ActionClose      DialogActionType = "Close"
)

// FulfillmentState is the terminal state carried by a Close action.
type FulfillmentState string

const (
	Fulfilled FulfillmentState = "Fulfilled"
	Failed    FulfillmentState = "Failed"
)

// ContentTypePlainText is the only message content type this bot emits.
const ContentTypePlainText = "PlainText"

// Slots maps slot names to values. Lex sends unfilled slots as JSON null.
type Slots map[string]*string

// Clone returns a shallow copy. Values are pointers to immutable strings so
// sharing them is safe.
func (s Slots) Clone() Slots {
	if s == nil {
		return Slots{}
	}
	return maps.Clone(s)
}

// Value returns the slot value and whether the slot is filled.
func (s Slots) Value(name string) (string, bool) {
	v, ok := s[name]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// SessionAttributes is opaque state the dialog manager round-trips.
type SessionAttributes map[string]string

// Bot identifies the Lex bot that produced the event.
type Bot struct {
	Name    string `json:"name,omitempty"`
	Alias   string `json:"alias,omitempty"`
	Version string `json:"version,omitempty"`
}

// Intent is the intent Lex recognized for the current turn.
type Intent struct {
	Name               string `json:"name"`
	Slots              Slots  `json:"slots"`
	ConfirmationStatus string `json:"confirmationStatus,omitempty"`
}

// Event is the request Lex sends to the code hook.
type Event struct {
	MessageVersion    string            `json:"messageVersion,omitempty"`
	InvocationSource  InvocationSource  `json:"invocationSource"`
	UserID            string            `json:"userId,omitempty"`
	InputTranscript   string            `json:"inputTranscript,omitempty"`
	OutputDialogMode  string            `json:"outputDialogMode,omitempty"`
	Bot               *Bot              `json:"bot,omitempty"`
	CurrentIntent     Intent            `json:"currentIntent"`
	SessionAttributes SessionAttributes `json:"sessionAttributes"`
	RequestAttributes map[string]string `json:"requestAttributes,omitempty"`
}

// Validate checks the parts of the event the dispatcher relies on.
func (e *Event) Validate() error {
	if e == nil {
		return domerrors.NewValidationError("event", "must not be null")
	}
	if !e.InvocationSource.Valid() {
		return domerrors.NewValidationError("invocationSource", "unsupported value "+string(e.InvocationSource))
	}
	if e.CurrentIntent.Name == "" {
		return domerrors.NewValidationError("currentIntent.name", "must not be empty")
	}
	return nil
}

// Message is a user-facing message.
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// PlainText builds a plain text message.
func PlainText(content string) *Message {
	return &Message{ContentType: ContentTypePlainText, Content: content}
}

// DialogAction is the instruction returned to Lex. Which fields are set
// depends on Type.
type DialogAction struct {
	Type             DialogActionType `json:"type"`
	FulfillmentState FulfillmentState `json:"fulfillmentState,omitempty"`
	IntentName       string           `json:"intentName,omitempty"`
	Slots            Slots            `json:"slots,omitempty"`
	SlotToElicit     string           `json:"slotToElicit,omitempty"`
	Message          *Message         `json:"message,omitempty"`
}

// MarshalJSON always emits the slot map for ElicitSlot and Delegate, which
// Lex requires even when it is empty.
func (a DialogAction) MarshalJSON() ([]byte, error) {
	type plain DialogAction
	if a.Type == ActionClose {
		return json.Marshal(plain(a))
	}
	slots := a.Slots
	if slots == nil {
		slots = Slots{}
	}
	return json.Marshal(struct {
		plain
		Slots Slots `json:"slots"`
	}{plain(a), slots})
}

// Response is what the code hook returns to Lex.
type Response struct {
	SessionAttributes SessionAttributes `json:"sessionAttributes"`
	DialogAction      DialogAction      `json:"dialogAction"`
}

// ValidationResult is the verdict of a slot validator.
//
// Invariant: when IsValid is true, ViolatedSlot and Message are nil; when it
// is false, both are set.
type ValidationResult struct {
	IsValid      bool     `json:"isValid"`
	ViolatedSlot *string  `json:"violatedSlot"`
	Message      *Message `json:"message,omitempty"`
}
