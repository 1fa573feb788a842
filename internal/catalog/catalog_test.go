package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alcyxob/irontrack/internal/catalog"
	"alcyxob/irontrack/internal/domain"
)

func TestCategories_EmptyTableStillHasDefaults(t *testing.T) {
	categories := catalog.Categories(nil)
	assert.Equal(t, []string{"Arms", "Back", "Chest", "Legs", "Shoulders"}, categories)
}

func TestCategories_UnionWithStoredData(t *testing.T) {
	sets := []domain.WorkoutSet{
		{Date: "2025-05-01", Category: "Cardio", Exercise: "Rowing", Reps: 10},
		{Date: "2025-05-01", Category: "Chest", Exercise: "Dumbbell Fly", Reps: 8},
		{Date: "2025-05-02", Category: "", Exercise: "Mystery", Reps: 5}, // empty category ignored
	}
	categories := catalog.Categories(sets)
	assert.Equal(t, []string{"Arms", "Back", "Cardio", "Chest", "Legs", "Shoulders"}, categories)
}

func TestExercisesFor_UnionSorted(t *testing.T) {
	sets := []domain.WorkoutSet{
		{Date: "2025-05-01", Category: "Chest", Exercise: "Incline Press", Reps: 0},
	}
	exercises := catalog.ExercisesFor("Chest", sets)
	assert.Equal(t, []string{"Barbell Bench Press", "Dumbbell Fly", "Incline Press"}, exercises)
}

func TestExercisesFor_CategoryMatchIsCaseSensitive(t *testing.T) {
	sets := []domain.WorkoutSet{
		{Date: "2025-05-01", Category: "chest", Exercise: "Incline Press", Reps: 5},
	}
	exercises := catalog.ExercisesFor("Chest", sets)
	assert.Equal(t, []string{"Barbell Bench Press", "Dumbbell Fly"}, exercises)
}

func TestExercisesFor_NonDefaultCategory(t *testing.T) {
	assert.Empty(t, catalog.ExercisesFor("Cardio", nil))

	sets := []domain.WorkoutSet{
		{Date: "2025-05-01", Category: "Cardio", Exercise: "Rowing", Reps: 0},
		{Date: "2025-05-02", Category: "Cardio", Exercise: "Assault Bike", Reps: 0},
		{Date: "2025-05-03", Category: "Cardio", Exercise: "Rowing", Reps: 10},
	}
	assert.Equal(t, []string{"Assault Bike", "Rowing"}, catalog.ExercisesFor("Cardio", sets))
}

func TestAllExercises(t *testing.T) {
	sets := []domain.WorkoutSet{
		{Category: "Chest", Exercise: "Dumbbell Fly", Reps: 8},
		{Category: "Back", Exercise: "Barbell Row", Reps: 0},
		{Category: "Chest", Exercise: "Dumbbell Fly", Reps: 12},
	}
	assert.Equal(t, []string{"Barbell Row", "Dumbbell Fly"}, catalog.AllExercises(sets))
}
