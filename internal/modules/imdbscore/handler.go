// Package imdbscore implements the GetIMDbScore intent: the IMDb score of a
// series looked up by its exact title.
package imdbscore

import (
	"context"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/garyellow/showrank-lexbot/internal/bot"
	"github.com/garyellow/showrank-lexbot/internal/data"
	domerrors "github.com/garyellow/showrank-lexbot/internal/errors"
	"github.com/garyellow/showrank-lexbot/internal/lex"
	"github.com/garyellow/showrank-lexbot/internal/metrics"
)

// Module constants
const (
	ModuleName = "imdbscore"
	IntentName = "GetIMDbScore"

	// SlotTitle holds the series title, matched case-sensitively.
	SlotTitle = "SeriesTitle"

	lookupTable = "imdb_score"
)

// Handler answers GetIMDbScore.
type Handler struct {
	metrics *metrics.Metrics
	wrapper *domerrors.ErrorWrapper
	printer *message.Printer
}

// NewHandler creates a GetIMDbScore handler. m may be nil.
func NewHandler(m *metrics.Metrics) *Handler {
	return &Handler{
		metrics: m,
		wrapper: domerrors.NewWrapper(ModuleName, "lookup_title"),
		printer: message.NewPrinter(language.English),
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

// Handle runs the dialog for one invocation. Titles are not checked while
// slots are being collected; unknown titles surface at fulfillment.
func (h *Handler) Handle(ctx context.Context, event *lex.Event) (*lex.Response, error) {
	return bot.RunDialog(ctx, event, bot.AlwaysValid, h.fulfill)
}

func (h *Handler) fulfill(_ context.Context, slots lex.Slots) (string, error) {
	title, _ := slots.Value(SlotTitle)
	score, ok := data.IMDbScore(title)
	if !ok {
		if h.metrics != nil {
			h.metrics.RecordLookupMiss(lookupTable)
		}
		if strings.TrimSpace(title) == "" {
			return "", h.wrapper.Wrap(domerrors.ErrNotFound,
				"Sorry! I did not catch the title of the tv show. Please try again.")
		}
		return "", h.wrapper.Wrapf(domerrors.ErrNotFound,
			"Sorry! I could not find an IMDb score for the tv show titled %s. Please check the spelling and try again.", title)
	}

	return h.printer.Sprintf("Based on our data, the tv show titled %s has an IMDb score of %.1f.", title, score), nil
}
