// Package catalog computes the selectable categories and exercises:
// the union of the built-in default catalog and whatever distinct
// (category, exercise) pairs appear in the stored workout data.
package catalog

import (
	"sort"

	"alcyxob/irontrack/internal/domain"
)

// Categories returns the sorted union of default category names and all
// distinct non-empty categories present in the given sets.
func Categories(sets []domain.WorkoutSet) []string {
	seen := make(map[string]struct{})
	for _, entry := range domain.DefaultCatalog {
		seen[entry.Category] = struct{}{}
	}
	for _, set := range sets {
		if set.Category != "" {
			seen[set.Category] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// ExercisesFor returns the sorted union of the default exercise list for
// the category and all distinct non-empty exercises stored under it.
// Category matching is exact and case-sensitive.
func ExercisesFor(category string, sets []domain.WorkoutSet) []string {
	seen := make(map[string]struct{})
	for _, exercise := range domain.DefaultExercisesFor(category) {
		seen[exercise] = struct{}{}
	}
	for _, set := range sets {
		if set.Category == category && set.Exercise != "" {
			seen[set.Exercise] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// AllExercises returns every distinct non-empty exercise name in the sets,
// sorted; the dashboard uses it to populate the progress-chart selector.
func AllExercises(sets []domain.WorkoutSet) []string {
	seen := make(map[string]struct{})
	for _, set := range sets {
		if set.Exercise != "" {
			seen[set.Exercise] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
