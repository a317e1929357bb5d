package lex

// BuildValidationResult assembles a validator verdict. A nil messageText
// leaves the message out of the result entirely.
func BuildValidationResult(isValid bool, violatedSlot *string, messageText *string) ValidationResult {
	result := ValidationResult{
		IsValid:      isValid,
		ViolatedSlot: violatedSlot,
	}
	if messageText != nil {
		result.Message = PlainText(*messageText)
	}
	return result
}

// Valid is the verdict for a slot that passed validation.
func Valid() ValidationResult {
	return BuildValidationResult(true, nil, nil)
}

// Invalid is the verdict for a slot that must be asked for again.
func Invalid(slot, messageText string) ValidationResult {
	return BuildValidationResult(false, &slot, &messageText)
}

// ElicitSlot asks Lex to prompt the user for slotToElicit again.
func ElicitSlot(session SessionAttributes, intentName string, slots Slots, slotToElicit string, message *Message) *Response {
	return &Response{
		SessionAttributes: session,
		DialogAction: DialogAction{
			Type:         ActionElicitSlot,
			IntentName:   intentName,
			Slots:        slots,
			SlotToElicit: slotToElicit,
			Message:      message,
		},
	}
}

// Delegate hands control back to Lex to choose the next step.
func Delegate(session SessionAttributes, slots Slots) *Response {
	return &Response{
		SessionAttributes: session,
		DialogAction: DialogAction{
			Type:  ActionDelegate,
			Slots: slots,
		},
	}
}

// Close ends the intent with a final state and message.
func Close(session SessionAttributes, state FulfillmentState, message *Message) *Response {
	return &Response{
		SessionAttributes: session,
		DialogAction: DialogAction{
			Type:             ActionClose,
			FulfillmentState: state,
			Message:          message,
		},
	}
}
