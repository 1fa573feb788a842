package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"alcyxob/irontrack/internal/domain"
	"alcyxob/irontrack/internal/repository"
)

// header is the fixed column layout of the backing file.
var header = []string{"date", "category", "exercise", "weight", "reps"}

// Store implements repository.SetRepository on top of a single CSV file.
// Every operation is a complete read or write of the whole file; the
// mutex serializes the read-modify-write cycle of Append so concurrent
// HTTP callers cannot lose updates.
type Store struct {
	path string
	mu   sync.RWMutex
}

// NewStore creates a CSV-backed set repository persisting to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Initialize seeds the backing file with one zero-reps placeholder row per
// default (category, exercise) pair, dated today. If the file already
// exists this is a no-op.
func (s *Store) Initialize(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}

	today := time.Now()
	var sets []domain.WorkoutSet
	for _, entry := range domain.DefaultCatalog {
		for _, exercise := range entry.Exercises {
			sets = append(sets, domain.NewPlaceholderSet(today, entry.Category, exercise))
		}
	}

	log.Infof("workout store %s not found, seeding %d default catalog rows", s.path, len(sets))
	return s.writeAll(sets)
}

// Load returns all stored sets with field types normalized. A missing or
// malformed file degrades to an empty result: the caller treats that as a
// non-fatal "no data yet" condition.
func (s *Store) Load(_ context.Context) ([]domain.WorkoutSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readAll()
}

// Append persists exactly one new set by rewriting the whole file.
// Write failures are reported to the caller.
func (s *Store) Append(_ context.Context, set domain.WorkoutSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sets, err := s.readAll()
	if err != nil {
		return err
	}
	sets = append(sets, set)
	return s.writeAll(sets)
}

func (s *Store) readAll() ([]domain.WorkoutSet, error) {
	file, err := os.Open(s.path)
	if os.IsNotExist(err) {
		log.Warnf("workout store %s does not exist, returning empty table", s.path)
		return []domain.WorkoutSet{}, nil
	}
	if err != nil {
		log.Warnf("open workout store %s: %s, returning empty table", s.path, err)
		return []domain.WorkoutSet{}, nil
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, normalization handles them
	records, err := reader.ReadAll()
	if err != nil {
		log.Warnf("malformed workout store %s: %s, returning empty table", s.path, err)
		return []domain.WorkoutSet{}, nil
	}

	sets := make([]domain.WorkoutSet, 0, len(records))
	for i, record := range records {
		if i == 0 && isHeader(record) {
			continue
		}
		if len(record) < 5 {
			log.Warnf("workout store %s: skipping short row %d (%d fields)", s.path, i, len(record))
			continue
		}
		sets = append(sets, domain.NormalizeSet(record[0], record[1], record[2], record[3], record[4]))
	}
	return sets, nil
}

// writeAll persists the full table via a temp file in the same directory
// followed by a rename, so a failed write never leaves the store in a
// worse state than before the call.
func (s *Store) writeAll(sets []domain.WorkoutSet) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir %s: %s", repository.ErrWriteFailed, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "workouts-*.csv.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %s", repository.ErrWriteFailed, err)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	writeErr := writer.Write(header)
	for _, set := range sets {
		if writeErr != nil {
			break
		}
		writeErr = writer.Write([]string{
			set.Date,
			set.Category,
			set.Exercise,
			strconv.FormatFloat(set.Weight, 'f', -1, 64),
			strconv.Itoa(set.Reps),
		})
	}
	writer.Flush()
	if writeErr == nil {
		writeErr = writer.Error()
	}
	if closeErr := tmp.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s", repository.ErrWriteFailed, writeErr)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %s", repository.ErrWriteFailed, s.path, err)
	}
	return nil
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "date")
}
