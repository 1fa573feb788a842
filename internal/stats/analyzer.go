// Package stats derives the chart-feeding aggregates from the workout
// log: per-exercise progress series, workout consistency per period, and
// category/exercise distributions. Placeholder rows (reps == 0) never
// count towards any aggregate.
package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"alcyxob/irontrack/internal/domain"
)

// DefaultTopN is the number of exercises returned by TopExercises when
// the caller does not ask for a specific count.
const DefaultTopN = 5

// Period selects the bucket size for consistency aggregation.
type Period string

const (
	PeriodWeek  Period = "week"  // ISO calendar week, keyed YYYY-Www
	PeriodMonth Period = "month" // calendar month, keyed YYYY-MM
)

// Metric selects how distribution aggregates are measured.
type Metric string

const (
	MetricSets   Metric = "sets"   // number of logged sets
	MetricVolume Metric = "volume" // sum of weight * reps
)

type setsRepo interface {
	Load(ctx context.Context) ([]domain.WorkoutSet, error)
}

// Analyzer computes derived views over the current content of a set
// repository. It holds no state of its own, so results always reflect
// the latest persisted data.
type Analyzer struct {
	repo setsRepo
}

func NewAnalyzer(repo setsRepo) *Analyzer {
	return &Analyzer{repo: repo}
}

// ProgressPoint is one day of an exercise progress series. Reps, weight
// and volume are summed across all sets of that day; the summed weight is
// intentional (the trend charts downstream expect summed values).
type ProgressPoint struct {
	Date   string  `json:"date"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
	Volume float64 `json:"volume"`
}

// ConsistencyBucket counts distinct workout days within one period.
type ConsistencyBucket struct {
	Period      string `json:"period"`
	WorkoutDays int    `json:"workoutDays"`
}

// DistributionEntry is one bar of a distribution chart: a category or
// exercise label with its metric value.
type DistributionEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ExerciseProgress returns the day-by-day totals for one exercise,
// ordered by ascending date.
func (a *Analyzer) ExerciseProgress(ctx context.Context, exercise string) ([]ProgressPoint, error) {
	sets, err := a.loggedSets(ctx)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*ProgressPoint)
	for _, set := range sets {
		if set.Exercise != exercise {
			continue
		}
		point, ok := byDate[set.Date]
		if !ok {
			point = &ProgressPoint{Date: set.Date}
			byDate[set.Date] = point
		}
		point.Reps += set.Reps
		point.Weight += set.Weight
		point.Volume += set.Volume()
	}

	points := make([]ProgressPoint, 0, len(byDate))
	for _, point := range byDate {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points, nil
}

// Consistency counts the distinct dates with at least one logged set in
// each period, ordered by ascending period.
func (a *Analyzer) Consistency(ctx context.Context, period Period) ([]ConsistencyBucket, error) {
	sets, err := a.loggedSets(ctx)
	if err != nil {
		return nil, err
	}

	days := make(map[string]map[string]struct{})
	for _, set := range sets {
		key, ok := periodKey(set.Date, period)
		if !ok {
			continue
		}
		if days[key] == nil {
			days[key] = make(map[string]struct{})
		}
		days[key][set.Date] = struct{}{}
	}

	buckets := make([]ConsistencyBucket, 0, len(days))
	for key, dates := range days {
		buckets = append(buckets, ConsistencyBucket{Period: key, WorkoutDays: len(dates)})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Period < buckets[j].Period
	})
	return buckets, nil
}

// CategoryDistribution measures how the logged sets spread across
// categories, ordered by descending metric value.
func (a *Analyzer) CategoryDistribution(ctx context.Context, metric Metric) ([]DistributionEntry, error) {
	sets, err := a.loggedSets(ctx)
	if err != nil {
		return nil, err
	}
	return distribution(sets, metric, func(s domain.WorkoutSet) string { return s.Category }), nil
}

// TopExercises returns the topN exercises by the given metric,
// descending. topN <= 0 falls back to DefaultTopN.
func (a *Analyzer) TopExercises(ctx context.Context, metric Metric, topN int) ([]DistributionEntry, error) {
	sets, err := a.loggedSets(ctx)
	if err != nil {
		return nil, err
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	entries := distribution(sets, metric, func(s domain.WorkoutSet) string { return s.Exercise })
	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries, nil
}

// loggedSets loads the table and drops placeholder rows, the shared
// first step of every aggregate.
func (a *Analyzer) loggedSets(ctx context.Context) ([]domain.WorkoutSet, error) {
	sets, err := a.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	logged := make([]domain.WorkoutSet, 0, len(sets))
	for _, set := range sets {
		if !set.IsPlaceholder() {
			logged = append(logged, set)
		}
	}
	return logged, nil
}

func distribution(sets []domain.WorkoutSet, metric Metric, label func(domain.WorkoutSet) string) []DistributionEntry {
	totals := make(map[string]float64)
	for _, set := range sets {
		switch metric {
		case MetricSets:
			totals[label(set)]++
		default: // MetricVolume
			totals[label(set)] += set.Volume()
		}
	}

	entries := make([]DistributionEntry, 0, len(totals))
	for key, value := range totals {
		entries = append(entries, DistributionEntry{Label: key, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}

// periodKey buckets an ISO date string into its week or month key.
// Rows with unparsable dates are skipped rather than mis-bucketed.
func periodKey(date string, period Period) (string, bool) {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return "", false
	}
	if period == PeriodMonth {
		return day.Format("2006-01"), true
	}
	year, week := day.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week), true
}
