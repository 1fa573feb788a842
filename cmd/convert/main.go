// Command convert translates a workout log between its JSON and CSV
// representations. Both sides use the same schema: date, category,
// exercise, weight, reps.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"alcyxob/irontrack/internal/domain"
)

func main() {
	var (
		in  = flag.String("in", "workout_data.json", "input file (.json or .csv)")
		out = flag.String("out", "", "output file; defaults to the input name with the other extension")
		to  = flag.String("to", "csv", "target format: csv or json")
	)
	flag.Parse()

	if *out == "" {
		*out = defaultOutName(*in, *to)
	}

	var err error
	switch *to {
	case "csv":
		err = jsonToCSV(*in, *out)
	case "json":
		err = csvToJSON(*in, *out)
	default:
		err = fmt.Errorf("unknown target format %q", *to)
	}
	if err != nil {
		log.Fatalf("convert %s -> %s: %s", *in, *out, err)
	}
	log.Infof("converted %s -> %s", *in, *out)
}

func jsonToCSV(in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	var sets []domain.WorkoutSet
	if err := json.Unmarshal(data, &sets); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}

	file, err := os.Create(out)
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

func csvToJSON(in, out string) error {
	file, err := os.Open(in)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("parse CSV: %w", err)
	}

	sets := make([]domain.WorkoutSet, 0, len(records))
	for i, record := range records {
		if i == 0 && len(record) > 0 && record[0] == "date" {
			continue
		}
		if len(record) < 5 {
			return fmt.Errorf("row %d: expected 5 fields, got %d", i, len(record))
		}
		sets = append(sets, domain.NormalizeSet(record[0], record[1], record[2], record[3], record[4]))
	}

	data, err := json.MarshalIndent(sets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(out, data, 0o644)
}

func defaultOutName(in, to string) string {
	base := in
	if ext := len(base) - 5; ext > 0 && base[ext:] == ".json" {
		base = base[:ext]
	} else if ext := len(base) - 4; ext > 0 && base[ext:] == ".csv" {
		base = base[:ext]
	}
	return base + "." + to
}
