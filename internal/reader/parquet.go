package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/coughlin/pdsnd-github/internal/trips"
)

// parquetTrip is the on-disk parquet layout of a trip. Optional columns are
// nullable so that cities without gender or birth year data round-trip.
type parquetTrip struct {
	ID           string   `parquet:"id"`
	StartTime    string   `parquet:"start_time"`
	EndTime      string   `parquet:"end_time"`
	TripDuration float64  `parquet:"trip_duration"`
	StartStation string   `parquet:"start_station"`
	EndStation   string   `parquet:"end_station"`
	UserType     *string  `parquet:"user_type,optional"`
	Gender       *string  `parquet:"gender,optional"`
	BirthYear    *float64 `parquet:"birth_year,optional"`
}

// sourceColumnsKey is the file metadata key listing the dataset's source
// columns, comma separated, as they were when the file was written.
const sourceColumnsKey = "bikeshare.source_columns"

// parquetColumns maps parquet column names back to their CSV header names.
var parquetColumns = map[string]string{
	"user_type":  trips.ColumnUserType,
	"gender":     trips.ColumnGender,
	"birth_year": trips.ColumnBirthYear,
}

// Reader reads trips from a parquet city file.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type Reader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewReader creates a new parquet reader for the specified file path.
//
// The file is opened and validated as a parquet file. Returns an error if
// the file doesn't exist or is not a valid parquet file.
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &Reader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// ReadAll reads every trip of the file into a dataset for city.
//
// Optional columns are present as recorded in the file metadata. Files
// without that record count an optional column as present when the schema
// declares it and at least one row carries a value.
func (r *Reader) ReadAll(city string) (*trips.Dataset, error) {
	declared := make(map[string]bool)
	for _, f := range r.Schema().Fields() {
		declared[f.Name()] = true
	}
	for _, name := range []string{"start_time", "end_time", "trip_duration", "start_station", "end_station"} {
		if !declared[name] {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	reader := parquet.NewGenericReader[parquetTrip](r.pqFile)
	defer func() { _ = reader.Close() }()

	seen := make(map[string]bool)
	all := make([]trips.Trip, 0, reader.NumRows())
	buf := make([]parquetTrip, 256)

	for {
		n, err := reader.Read(buf)
		for i := 0; i < n; i++ {
			trip, convErr := buf[i].toTrip(seen)
			if convErr != nil {
				return nil, fmt.Errorf("row %d: %w", len(all)+1, convErr)
			}
			all = append(all, trip)
		}
		if err != nil {
			// Use errors.Is for proper EOF detection
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
	}

	if listed, ok := r.pqFile.Lookup(sourceColumnsKey); ok {
		seen = make(map[string]bool)
		recorded := make(map[string]bool)
		for _, name := range strings.Split(listed, ",") {
			recorded[name] = true
		}
		for name, column := range parquetColumns {
			seen[name] = recorded[column]
		}
	}

	columns := append([]string(nil), requiredColumns...)
	for _, name := range []string{"user_type", "gender", "birth_year"} {
		if declared[name] && seen[name] {
			columns = append(columns, parquetColumns[name])
		}
	}

	return trips.NewDataset(city, columns, all), nil
}

// Schema returns the parquet file schema.
func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Close closes the parquet reader and releases associated resources.
//
// Should be called when done reading to avoid resource leaks. It is safe
// to call Close multiple times.
func (r *Reader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// ReadParquetFile loads a parquet city file.
func ReadParquetFile(path, city string) (*trips.Dataset, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	ds, err := r.ReadAll(city)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// WriteParquet writes every trip of ds to w in the parquet layout read by
// ReadParquetFile. Columns the dataset lacks are written as nulls, and the
// source column list is stored in the file metadata so that a column with
// only blank values is still present when read back.
func WriteParquet(w io.Writer, ds *trips.Dataset) error {
	writer := parquet.NewGenericWriter[parquetTrip](w,
		parquet.KeyValueMetadata(sourceColumnsKey, strings.Join(ds.SourceColumns(), ",")))

	hasUserType := ds.HasColumn(trips.ColumnUserType)
	hasGender := ds.HasColumn(trips.ColumnGender)

	rows := make([]parquetTrip, 0, ds.Len())
	for _, t := range ds.Trips() {
		row := parquetTrip{
			ID:           t.ID,
			StartTime:    t.StartTime.Format(trips.TimeLayout),
			EndTime:      t.EndTime.Format(trips.TimeLayout),
			TripDuration: t.Duration,
			StartStation: t.StartStation,
			EndStation:   t.EndStation,
		}
		if hasUserType && t.UserType != "" {
			row.UserType = stringPtr(t.UserType)
		}
		if hasGender && t.Gender != "" {
			row.Gender = stringPtr(t.Gender)
		}
		if t.HasBirthYear {
			year := t.BirthYear
			row.BirthYear = &year
		}
		rows = append(rows, row)
	}

	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

func (p parquetTrip) toTrip(seen map[string]bool) (trips.Trip, error) {
	start, err := time.Parse(trips.TimeLayout, p.StartTime)
	if err != nil {
		return trips.Trip{}, fmt.Errorf("start_time: %w", err)
	}
	end, err := time.Parse(trips.TimeLayout, p.EndTime)
	if err != nil {
		return trips.Trip{}, fmt.Errorf("end_time: %w", err)
	}

	t := trips.Trip{
		ID:           p.ID,
		StartTime:    start,
		EndTime:      end,
		Duration:     p.TripDuration,
		StartStation: p.StartStation,
		EndStation:   p.EndStation,
	}
	if p.UserType != nil {
		t.UserType = *p.UserType
		seen["user_type"] = true
	}
	if p.Gender != nil {
		t.Gender = *p.Gender
		seen["gender"] = true
	}
	if p.BirthYear != nil {
		t.BirthYear = *p.BirthYear
		t.HasBirthYear = true
		seen["birth_year"] = true
	}
	return t, nil
}

func stringPtr(s string) *string {
	return &s
}
