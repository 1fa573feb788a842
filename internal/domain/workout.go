package domain

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the on-disk date format for a workout set.
// Dates carry no time component.
const DateLayout = "2006-01-02"

// WorkoutSet represents one logged performance of an exercise:
// a weight (kilograms) lifted for a number of reps on a given date.
// A set with Reps == 0 is a catalog placeholder, not a performed set:
// it registers a category/exercise as selectable before it has history,
// and is excluded from every statistical computation.
type WorkoutSet struct {
	Date     string  `json:"date"`     // YYYY-MM-DD
	Category string  `json:"category"` // e.g. "Chest", "Legs"
	Exercise string  `json:"exercise"`
	Weight   float64 `json:"weight"` // kilograms; 0 means bodyweight / not applicable
	Reps     int     `json:"reps"`
}

// IsPlaceholder reports whether the set is a zero-reps catalog placeholder.
func (s WorkoutSet) IsPlaceholder() bool {
	return s.Reps == 0
}

// Volume is the training-load proxy for one set: weight times reps.
func (s WorkoutSet) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// NewPlaceholderSet builds the zero-reps row that registers a
// category/exercise in the store, dated with the given day.
func NewPlaceholderSet(date time.Time, category, exercise string) WorkoutSet {
	return WorkoutSet{
		Date:     date.Format(DateLayout),
		Category: category,
		Exercise: exercise,
		Weight:   0,
		Reps:     0,
	}
}

// NormalizeSet coerces raw field values into a well-formed WorkoutSet.
// It is the single normalization step applied on every load, so the rest
// of the system never sees malformed field values: weight falls back to
// 0.0 and reps to 0 when unparsable, and negatives are clamped to zero.
func NormalizeSet(date, category, exercise, weight, reps string) WorkoutSet {
	w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil || w < 0 {
		w = 0
	}
	r, err := strconv.Atoi(strings.TrimSpace(reps))
	if err != nil || r < 0 {
		r = 0
	}
	return WorkoutSet{
		Date:     strings.TrimSpace(date),
		Category: strings.TrimSpace(category),
		Exercise: strings.TrimSpace(exercise),
		Weight:   w,
		Reps:     r,
	}
}
