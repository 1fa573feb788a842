// Command seed generates a synthetic workout history CSV: a fixed
// weekday split with base weights and a simple linear progression, plus
// randomized reps, so the dashboard has something realistic to chart.
package main

import (
	"encoding/csv"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"

	"alcyxob/irontrack/internal/domain"
)

const (
	setsPerExercise = 3
	repsMin         = 8
	repsMax         = 12

	// Progression: every interval add weight, or reps for bodyweight work.
	progressionIntervalWeeks = 2
	weightIncreasePerStep    = 2.5
	repIncreasePerStep       = 1
)

type planDay struct {
	weekday   time.Weekday
	category  string
	exercises []string
}

var workoutPlan = []planDay{
	{time.Monday, "Chest", []string{"Barbell Bench Press", "Incline Dumbbell Press", "Dumbbell Fly", "Push Ups"}},
	{time.Tuesday, "Legs", []string{"Barbell Squat", "Leg Press", "Romanian Deadlift", "Leg Extension", "Calf Raises"}},
	{time.Thursday, "Back", []string{"Pull Ups", "Barbell Row", "Seated Cable Row", "Face Pulls"}},
	{time.Friday, "Shoulders", []string{"Overhead Press", "Lateral Raise", "Dumbbell Bicep Curl", "Tricep Pushdown", "Hammer Curls"}},
}

// Base weights in kilograms; 0 marks bodyweight exercises.
var baseWeights = map[string]float64{
	"Barbell Bench Press":    40,
	"Incline Dumbbell Press": 15,
	"Dumbbell Fly":           10,
	"Push Ups":               0,
	"Barbell Squat":          50,
	"Leg Press":              80,
	"Romanian Deadlift":      30,
	"Leg Extension":          20,
	"Calf Raises":            30,
	"Pull Ups":               0,
	"Barbell Row":            35,
	"Seated Cable Row":       30,
	"Face Pulls":             10,
	"Overhead Press":         20,
	"Lateral Raise":          5,
	"Dumbbell Bicep Curl":    8,
	"Tricep Pushdown":        15,
	"Hammer Curls":           7,
}

func main() {
	var (
		out   = flag.String("out", "workouts.csv", "output CSV file")
		weeks = flag.Int("weeks", 16, "number of weeks of history to generate")
		start = flag.String("start", "", "first day of the plan (YYYY-MM-DD), default: weeks ago from today")
	)
	flag.Parse()

	startDate := time.Now().AddDate(0, 0, -7*(*weeks))
	if *start != "" {
		parsed, err := time.Parse(domain.DateLayout, *start)
		if err != nil {
			log.Fatalf("invalid -start date %q: %s", *start, err)
		}
		startDate = parsed
	}

	sets := generate(startDate, *weeks)
	if err := writeCSV(*out, sets); err != nil {
		log.Fatalf("write %s: %s", *out, err)
	}
	log.Infof("generated %d sets over %d weeks into %s", len(sets), *weeks, *out)
}

func generate(start time.Time, weeks int) []domain.WorkoutSet {
	var sets []domain.WorkoutSet
	for week := 0; week < weeks; week++ {
		step := week / progressionIntervalWeeks
		for dayOffset := 0; dayOffset < 7; dayOffset++ {
			day := start.AddDate(0, 0, week*7+dayOffset)
			plan, ok := planFor(day.Weekday())
			if !ok {
				continue
			}
			for _, exercise := range plan.exercises {
				weight := baseWeights[exercise]
				reps := gofakeit.Number(repsMin, repsMax)
				if weight > 0 {
					weight += float64(step) * weightIncreasePerStep
				} else {
					// Bodyweight work progresses through reps instead.
					minReps := repsMin + step*repIncreasePerStep
					if reps < minReps {
						reps = minReps
					}
				}
				for set := 0; set < setsPerExercise; set++ {
					sets = append(sets, domain.WorkoutSet{
						Date:     day.Format(domain.DateLayout),
						Category: plan.category,
						Exercise: exercise,
						Weight:   weight,
						Reps:     reps,
					})
				}
			}
		}
	}
	return sets
}

func planFor(weekday time.Weekday) (planDay, bool) {
	for _, plan := range workoutPlan {
		if plan.weekday == weekday {
			return plan, true
		}
	}
	return planDay{}, false
}

func writeCSV(path string, sets []domain.WorkoutSet) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"date", "category", "exercise", "weight", "reps"}); err != nil {
		return err
	}
	for _, set := range sets {
		if err := writer.Write([]string{
			set.Date,
			set.Category,
			set.Exercise,
			strconv.FormatFloat(set.Weight, 'f', -1, 64),
			strconv.Itoa(set.Reps),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
