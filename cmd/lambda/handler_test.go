package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyellow/showrank-lexbot/internal/lex"
	"github.com/garyellow/showrank-lexbot/internal/logger"
	"github.com/garyellow/showrank-lexbot/internal/modules"
)

func newTestHandler(buf *bytes.Buffer) *handler {
	log := logger.NewWithWriter("debug", buf)
	return newHandler(modules.NewRegistry(modules.Options{Logger: log}), log)
}

func decodeEvent(t *testing.T, payload string) *lex.Event {
	t.Helper()
	var event lex.Event
	require.NoError(t, json.Unmarshal([]byte(payload), &event))
	return &event
}

func TestHandleFulfillsTopFive(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf)

	event := decodeEvent(t, `{
		"invocationSource": "FulfillmentCodeHook",
		"userId": "user-1",
		"currentIntent": {"name": "GetTopFive", "slots": {"year": "2018"}},
		"sessionAttributes": {}
	}`)

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "aws-req-1"})
	resp, err := h.Handle(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, lex.ActionClose, resp.DialogAction.Type)
	assert.Equal(t, lex.Fulfilled, resp.DialogAction.FulfillmentState)
	assert.Contains(t, buf.String(), `"request_id":"aws-req-1"`)
}

func TestHandleElicitsInvalidYear(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf)

	event := decodeEvent(t, `{
		"invocationSource": "DialogCodeHook",
		"currentIntent": {"name": "GetBestShow", "slots": {"year": "1999"}},
		"sessionAttributes": {"k": "v"}
	}`)

	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, lex.ActionElicitSlot, resp.DialogAction.Type)
	assert.Equal(t, "year", resp.DialogAction.SlotToElicit)
	assert.Nil(t, resp.DialogAction.Slots["year"])
	assert.Equal(t, "v", resp.SessionAttributes["k"])
}

func TestHandleReturnsUnknownIntentError(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf)

	event := decodeEvent(t, `{
		"invocationSource": "FulfillmentCodeHook",
		"currentIntent": {"name": "GetWorstShow", "slots": {}}
	}`)

	resp, err := h.Handle(context.Background(), event)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, "intent with name GetWorstShow not supported", err.Error())
	assert.Contains(t, buf.String(), `"intent":"GetWorstShow"`)
}

func TestHandleRejectsNilEvent(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf)

	_, err := h.Handle(context.Background(), nil)
	assert.Error(t, err)
}
