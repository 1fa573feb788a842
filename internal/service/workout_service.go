package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"alcyxob/irontrack/internal/catalog"
	"alcyxob/irontrack/internal/domain"
	"alcyxob/irontrack/internal/repository"
)

// --- Error Definitions ---
var (
	ErrValidationFailed = errors.New("workout set validation failed")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD form")
)

// SetFilter narrows a history query. Zero values mean "no filter".
type SetFilter struct {
	Date       string // exact date match, YYYY-MM-DD
	Exercise   string // exact exercise match
	OnlyLogged bool   // drop zero-reps placeholder rows
}

// WorkoutService is the application boundary the API layer talks to:
// logging sets, registering custom exercises and reading back history
// and catalog data.
type WorkoutService interface {
	LogSet(ctx context.Context, date, category, exercise string, weight float64, reps int) (*domain.WorkoutSet, error)
	RegisterExercise(ctx context.Context, category, exercise string) (*domain.WorkoutSet, error)
	Sets(ctx context.Context, filter SetFilter) ([]domain.WorkoutSet, error)
	Categories(ctx context.Context) ([]string, error)
	ExercisesFor(ctx context.Context, category string) ([]string, error)
	Exercises(ctx context.Context) ([]string, error)
}

type workoutService struct {
	repo repository.SetRepository
}

// NewWorkoutService creates a new workout service over the given store.
func NewWorkoutService(repo repository.SetRepository) WorkoutService {
	return &workoutService{repo: repo}
}

// LogSet appends one performed set. The date defaults to today when
// empty; reps must be at least 1, since zero reps is reserved for
// catalog placeholder rows.
func (s *workoutService) LogSet(ctx context.Context, date, category, exercise string, weight float64, reps int) (*domain.WorkoutSet, error) {
	if category == "" || exercise == "" || reps < 1 {
		return nil, ErrValidationFailed
	}
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	} else if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	set := domain.WorkoutSet{
		Date:     date,
		Category: category,
		Exercise: exercise,
		Weight:   weight,
		Reps:     reps,
	}
	if err := s.repo.Append(ctx, set); err != nil {
		return nil, err
	}
	return &set, nil
}

// RegisterExercise makes a custom category/exercise pair selectable by
// appending its zero-reps placeholder row. User-entered labels are
// title-cased by convention.
func (s *workoutService) RegisterExercise(ctx context.Context, category, exercise string) (*domain.WorkoutSet, error) {
	if category == "" || exercise == "" {
		return nil, ErrValidationFailed
	}
	// A Caser carries internal state, so build one per call instead of
	// sharing it across handler goroutines.
	title := cases.Title(language.English)
	set := domain.NewPlaceholderSet(time.Now(), title.String(category), title.String(exercise))
	if err := s.repo.Append(ctx, set); err != nil {
		return nil, err
	}
	return &set, nil
}

func (s *workoutService) Sets(ctx context.Context, filter SetFilter) ([]domain.WorkoutSet, error) {
	sets, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.WorkoutSet, 0, len(sets))
	for _, set := range sets {
		if filter.Date != "" && set.Date != filter.Date {
			continue
		}
		if filter.Exercise != "" && set.Exercise != filter.Exercise {
			continue
		}
		if filter.OnlyLogged && set.IsPlaceholder() {
			continue
		}
		filtered = append(filtered, set)
	}
	return filtered, nil
}

func (s *workoutService) Categories(ctx context.Context) ([]string, error) {
	sets, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Categories(sets), nil
}

func (s *workoutService) ExercisesFor(ctx context.Context, category string) ([]string, error) {
	sets, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.ExercisesFor(category, sets), nil
}

func (s *workoutService) Exercises(ctx context.Context) ([]string, error) {
	sets, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.AllExercises(sets), nil
}
