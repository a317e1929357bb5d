// Package bestshow implements the GetBestShow intent: the highest rated
// series of a given year.
package bestshow

import (
	"context"
	"fmt"

	"github.com/garyellow/showrank-lexbot/internal/bot"
	"github.com/garyellow/showrank-lexbot/internal/data"
	domerrors "github.com/garyellow/showrank-lexbot/internal/errors"
	"github.com/garyellow/showrank-lexbot/internal/lex"
	"github.com/garyellow/showrank-lexbot/internal/metrics"
)

// Module constants
const (
	ModuleName = "bestshow"
	IntentName = "GetBestShow"

	lookupTable = "best_show"
)

// Handler answers GetBestShow.
type Handler struct {
	validator bot.YearValidator
	metrics   *metrics.Metrics
	wrapper   *domerrors.ErrorWrapper
}

// NewHandler creates a GetBestShow handler. m may be nil.
func NewHandler(validator bot.YearValidator, m *metrics.Metrics) *Handler {
	return &Handler{
		validator: validator,
		metrics:   m,
		wrapper:   domerrors.NewWrapper(ModuleName, "lookup_year"),
	}
}

// Name returns the module name
func (h *Handler) Name() string {
	return ModuleName
}

// IntentName returns the Lex intent name
func (h *Handler) IntentName() string {
	return IntentName
}

// Handle runs the dialog for one invocation.
func (h *Handler) Handle(ctx context.Context, event *lex.Event) (*lex.Response, error) {
	return bot.RunDialog(ctx, event, h.validator.ValidateSlots, h.fulfill)
}

func (h *Handler) fulfill(_ context.Context, slots lex.Slots) (string, error) {
	raw, _ := slots.Value(bot.SlotYear)
	year, ok := bot.ParseYear(raw)
	var title string
	if ok {
		title, ok = data.BestShow(year)
	}
	if !ok {
		if h.metrics != nil {
			h.metrics.RecordLookupMiss(lookupTable)
		}
		return "", h.wrapper.Wrapf(domerrors.ErrNotFound, "Sorry! I have no ranking data for the year %s.", raw)
	}

	return fmt.Sprintf(
		"Based on our data, it seems that in the year %d, the tv show titled %s received the highest IMDb score.",
		year, title), nil
}
