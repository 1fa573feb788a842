package domain

// CatalogEntry maps a workout category to its built-in exercise list.
type CatalogEntry struct {
	Category  string
	Exercises []string
}

// DefaultCatalog is the built-in set of categories and exercises every
// store starts with. The effective catalog at runtime is the union of
// these entries and whatever (category, exercise) pairs appear in the
// stored data. Kept as a slice so initialization order is stable.
var DefaultCatalog = []CatalogEntry{
	{Category: "Chest", Exercises: []string{"Barbell Bench Press", "Dumbbell Fly"}},
	{Category: "Back", Exercises: []string{"Pull Ups", "Barbell Row"}},
	{Category: "Arms", Exercises: []string{"Dumbbell Curls", "Tricep Pushdown"}},
	{Category: "Legs", Exercises: []string{"Squat", "Leg Press"}},
	{Category: "Shoulders", Exercises: []string{"Shoulder Press", "Lateral Raise"}},
}

// DefaultExercisesFor returns the built-in exercise list for a category,
// or nil when the category is not a default one.
func DefaultExercisesFor(category string) []string {
	for _, entry := range DefaultCatalog {
		if entry.Category == category {
			return entry.Exercises
		}
	}
	return nil
}
