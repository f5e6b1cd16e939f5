package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/coughlin/pdsnd-github/internal/trips"
)

// requiredColumns must be present in every city file.
var requiredColumns = []string{
	trips.ColumnStartTime,
	trips.ColumnEndTime,
	trips.ColumnDuration,
	trips.ColumnStartStation,
	trips.ColumnEndStation,
}

// optionalColumns are provided by some cities only.
var optionalColumns = []string{
	trips.ColumnUserType,
	trips.ColumnGender,
	trips.ColumnBirthYear,
}

// ReadCSVFile loads a city CSV file.
func ReadCSVFile(path, city string) (*trips.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	ds, err := ReadCSV(file, city)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// ReadCSV parses city trips from r.
//
// The first row is the header. The first column is the unnamed row index;
// the remaining columns are matched by name. Unknown columns are ignored.
func ReadCSV(r io.Reader, city string) (*trips.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file: missing header row")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			continue // row index
		}
		index[strings.TrimSpace(name)] = i
	}

	var columns []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		columns = append(columns, name)
	}
	for _, name := range optionalColumns {
		if _, ok := index[name]; ok {
			columns = append(columns, name)
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var all []trips.Trip
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		trip, err := parseTrip(record, field)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		all = append(all, trip)
	}

	return trips.NewDataset(city, columns, all), nil
}

func parseTrip(record []string, field func([]string, string) string) (trips.Trip, error) {
	var t trips.Trip
	var err error

	if len(record) > 0 {
		t.ID = record[0]
	}
	if t.StartTime, err = parseTime(field(record, trips.ColumnStartTime)); err != nil {
		return t, fmt.Errorf("%s: %w", trips.ColumnStartTime, err)
	}
	if t.EndTime, err = parseTime(field(record, trips.ColumnEndTime)); err != nil {
		return t, fmt.Errorf("%s: %w", trips.ColumnEndTime, err)
	}
	if t.Duration, err = strconv.ParseFloat(field(record, trips.ColumnDuration), 64); err != nil {
		return t, fmt.Errorf("%s: %w", trips.ColumnDuration, err)
	}
	t.StartStation = field(record, trips.ColumnStartStation)
	t.EndStation = field(record, trips.ColumnEndStation)
	t.UserType = field(record, trips.ColumnUserType)
	t.Gender = field(record, trips.ColumnGender)

	if raw := field(record, trips.ColumnBirthYear); raw != "" {
		year, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return t, fmt.Errorf("%s: %w", trips.ColumnBirthYear, err)
		}
		t.BirthYear = year
		t.HasBirthYear = true
	}

	return t, nil
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(trips.TimeLayout, s)
}
