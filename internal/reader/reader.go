// Package reader loads bikeshare city files into trip datasets.
//
// City data is read from CSV files (the format the cities publish) or from
// parquet files produced by the csv2parquet tool. Both yield the same
// trips.Dataset, including which optional columns the city provides.
package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/coughlin/pdsnd-github/internal/trips"
)

// ErrMissingColumn is returned when a city file lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// Load reads the city file at path, choosing the format by extension.
func Load(path, city string) (*trips.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSVFile(path, city)
	case ".parquet":
		return ReadParquetFile(path, city)
	default:
		return nil, fmt.Errorf("unsupported city file format: %s", path)
	}
}
