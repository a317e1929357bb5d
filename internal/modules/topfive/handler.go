// Package topfive implements the GetTopFive intent: the five highest rated
// series of a given year.
package topfive

import (
	"context"
	"fmt"
	"strings"

	"github.com/garyellow/showrank-lexbot/internal/bot"
	"github.com/garyellow/showrank-lexbot/internal/data"
	domerrors "github.com/garyellow/showrank-lexbot/internal/errors"
	"github.com/garyellow/showrank-lexbot/internal/lex"
	"github.com/garyellow/showrank-lexbot/internal/metrics"
)

// Module constants
const (
	ModuleName = "topfive"
	IntentName = "GetTopFive"

	lookupTable = "top_five"
)

// Handler answers GetTopFive.
type Handler struct {
	validator bot.YearValidator
	metrics   *metrics.Metrics
	wrapper   *domerrors.ErrorWrapper
}

// NewHandler creates a GetTopFive handler. m may be nil.
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
	var shows [5]data.RankedShow
	if ok {
		shows, ok = data.TopFive(year)
	}
	if !ok {
		if h.metrics != nil {
			h.metrics.RecordLookupMiss(lookupTable)
		}
		return "", h.wrapper.Wrapf(domerrors.ErrNotFound, "Sorry! I have no ranking data for the year %s.", raw)
	}

	return fmt.Sprintf(
		"Based on our data, it seems that in the year %d, the tv shows titled %s were the top five series receiving the highest IMDb score.",
		year, joinTitles(shows)), nil
}

// joinTitles renders "A, B, C, D, and E" keeping the stored order.
func joinTitles(shows [5]data.RankedShow) string {
	titles := make([]string, len(shows))
	for i, show := range shows {
		titles[i] = show.Title
	}
	last := len(titles) - 1
	return strings.Join(titles[:last], ", ") + ", and " + titles[last]
}
