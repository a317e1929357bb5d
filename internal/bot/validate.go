package bot

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/garyellow/showrank-lexbot/internal/data"
	"github.com/garyellow/showrank-lexbot/internal/lex"
)

// SlotYear is the slot holding the year for the ranking intents.
const SlotYear = "year"

// YearValidator checks the year slot against a closed range.
type YearValidator struct {
	Min int
	Max int

	// Lenient lets values that are not integers through, as earlier
	// deployments did. Fulfillment then reports a lookup miss.
	Lenient bool
}

// NewYearValidator returns a validator for the years covered by the
// ranking tables.
func NewYearValidator(lenient bool) YearValidator {
	return YearValidator{Min: data.FirstYear, Max: data.LastYear, Lenient: lenient}
}

// Validate checks one slot value. A nil value has not been supplied yet and
// is valid so the dialog manager keeps eliciting.
func (v YearValidator) Validate(value *string) lex.ValidationResult {
	if value == nil {
		return lex.Valid()
	}

	year, ok := ParseYear(*value)
	if !ok {
		if v.Lenient {
			return lex.Valid()
		}
		return lex.Invalid(SlotYear, fmt.Sprintf(
			"Sorry! I could not understand the year %q. Please try again with a year between %d and %d.",
			*value, v.Min, v.Max))
	}

	switch {
	case year > v.Max:
		return lex.Invalid(SlotYear, fmt.Sprintf(
			"Sorry! The maximum year for this service is %d. Please try again.", v.Max))
	case year < v.Min:
		return lex.Invalid(SlotYear, fmt.Sprintf(
			"Sorry! The minimum year is %d. Please try again.", v.Min))
	}
	return lex.Valid()
}

// ValidateSlots validates the year slot of slots.
func (v YearValidator) ValidateSlots(slots lex.Slots) lex.ValidationResult {
	return v.Validate(slots[SlotYear])
}

// ParseYear converts a slot value to a year. Surrounding whitespace is
// ignored. Integers too large for an int saturate to math.MaxInt or
// math.MinInt so they still fail the range check rather than the parse.
func ParseYear(value string) (int, bool) {
	s := strings.TrimSpace(value)
	year, err := strconv.Atoi(s)
	switch {
	case err == nil:
		return year, true
	case errors.Is(err, strconv.ErrRange):
		if strings.HasPrefix(s, "-") {
			return math.MinInt, true
		}
		return math.MaxInt, true
	default:
		return 0, false
	}
}
