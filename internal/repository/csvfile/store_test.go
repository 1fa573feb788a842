package csvfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/irontrack/internal/domain"
	"alcyxob/irontrack/internal/repository/csvfile"
)

func newTestStore(t *testing.T) *csvfile.Store {
	t.Helper()
	return csvfile.NewStore(filepath.Join(t.TempDir(), "workouts.csv"))
}

func TestInitialize_SeedsDefaultCatalog(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Initialize(ctx))

	sets, err := store.Load(ctx)
	require.NoError(t, err)

	wantRows := 0
	for _, entry := range domain.DefaultCatalog {
		wantRows += len(entry.Exercises)
	}
	require.Len(t, sets, wantRows)

	for _, set := range sets {
		assert.True(t, set.IsPlaceholder())
		assert.Zero(t, set.Weight)
		assert.Zero(t, set.Reps)
		assert.NotEmpty(t, set.Date)
	}
}

func TestInitialize_IsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Initialize(ctx))
	require.NoError(t, store.Append(ctx, domain.WorkoutSet{
		Date: "2025-05-01", Category: "Chest", Exercise: "Barbell Bench Press", Weight: 60, Reps: 8,
	}))

	before, err := store.Load(ctx)
	require.NoError(t, err)

	// A second Initialize must not touch the existing file.
	require.NoError(t, store.Initialize(ctx))

	after, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLoad_MissingFile(t *testing.T) {
	store := newTestStore(t)

	sets, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workouts.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,category\n\"unclosed,quote\n"), 0o644))

	sets, err := csvfile.NewStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestAppend_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := domain.WorkoutSet{Date: "2025-05-01", Category: "Chest", Exercise: "Dumbbell Fly", Weight: 12.5, Reps: 10}
	second := domain.WorkoutSet{Date: "2025-05-01", Category: "Chest", Exercise: "Dumbbell Fly", Weight: 12.5, Reps: 8}

	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))

	sets, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, sets, 2)

	// Same-day same-exercise sets are kept as separate rows, in order.
	assert.Equal(t, first, sets[0])
	assert.Equal(t, second, sets[1])
}

func TestLoad_NormalizesTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workouts.csv")
	raw := "date,category,exercise,weight,reps\n" +
		"2025-05-01,Chest,Barbell Bench Press, 60.5 , 5 \n" +
		"2025-05-02,Back,Pull Ups,not-a-number,oops\n" +
		"2025-05-03,Legs,Squat,-10,-3\n" +
		"2025-05-04,Arms\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	sets, err := csvfile.NewStore(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, sets, 3) // the short row is dropped

	assert.Equal(t, domain.WorkoutSet{Date: "2025-05-01", Category: "Chest", Exercise: "Barbell Bench Press", Weight: 60.5, Reps: 5}, sets[0])

	// Unparsable weight/reps coerce to zero.
	assert.Zero(t, sets[1].Weight)
	assert.Zero(t, sets[1].Reps)

	// Negative values clamp to zero.
	assert.Zero(t, sets[2].Weight)
	assert.Zero(t, sets[2].Reps)
}

func TestAppend_CreatesMissingFile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	set := domain.WorkoutSet{Date: "2025-05-01", Category: "Legs", Exercise: "Leg Press", Weight: 100, Reps: 12}
	require.NoError(t, store.Append(ctx, set))

	sets, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, set, sets[0])
}
