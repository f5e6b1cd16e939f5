// Package config holds the startup configuration of the bikeshare explorer:
// the city table, pager and rendering settings, and logging options.
//
// A Config is built once in main and passed down; nothing in it is mutated
// after New returns.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Page formats understood by the pager.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSONL = "jsonl"
)

// City maps a prompt key to a city name and its data file.
type City struct {
	Key  string // lower-case first letter accepted at the city prompt
	Name string
	File string // relative to Config.DataDir; .csv or .parquet
}

// Config holds all settings needed to run a session.
type Config struct {
	DataDir     string
	PageSize    int
	LabelWidth  int
	PageFormat  string
	ClearScreen bool

	// ShowRemainder makes the pager print the rows after the last full page.
	ShowRemainder bool

	LogFile  string
	LogLevel string

	Cities []City
}

// DefaultCities returns the three supported cities.
func DefaultCities() []City {
	return []City{
		{Key: "c", Name: "Chicago", File: "chicago.csv"},
		{Key: "n", Name: "New York city", File: "new_york_city.csv"},
		{Key: "w", Name: "Washington DC", File: "washington.csv"},
	}
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		DataDir:     ".",
		PageSize:    5,
		LabelWidth:  48,
		PageFormat:  FormatTable,
		ClearScreen: true,
		LogLevel:    "info",
		Cities:      DefaultCities(),
	}
}

// New validates cfg and returns a copy of it.
func New(cfg Config) (*Config, error) {
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", cfg.PageSize)
	}
	if cfg.LabelWidth < 0 {
		return nil, fmt.Errorf("label width must be non-negative, got %d", cfg.LabelWidth)
	}
	switch cfg.PageFormat {
	case FormatTable, FormatCSV, FormatJSONL:
	default:
		return nil, fmt.Errorf("unsupported page format %q (supported: table, csv, jsonl)", cfg.PageFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("unsupported log level %q", cfg.LogLevel)
	}
	if len(cfg.Cities) == 0 {
		return nil, errors.New("at least one city must be configured")
	}

	seen := make(map[string]bool)
	cities := make([]City, 0, len(cfg.Cities))
	for _, c := range cfg.Cities {
		key := strings.ToLower(c.Key)
		if len(key) != 1 {
			return nil, fmt.Errorf("city %q: key must be a single letter, got %q", c.Name, c.Key)
		}
		if seen[key] {
			return nil, fmt.Errorf("city %q: duplicate key %q", c.Name, key)
		}
		if c.Name == "" || c.File == "" {
			return nil, fmt.Errorf("city with key %q needs both a name and a file", key)
		}
		seen[key] = true
		c.Key = key
		cities = append(cities, c)
	}
	cfg.Cities = cities

	return &cfg, nil
}

// CityByKey looks up a city by its prompt key.
func (c *Config) CityByKey(key string) (City, bool) {
	for _, city := range c.Cities {
		if city.Key == key {
			return city, true
		}
	}
	return City{}, false
}

// CityByName looks up a city by its display name.
func (c *Config) CityByName(name string) (City, bool) {
	for _, city := range c.Cities {
		if city.Name == name {
			return city, true
		}
	}
	return City{}, false
}

// Path returns the location of a city's data file.
func (c *Config) Path(city City) string {
	if filepath.IsAbs(city.File) {
		return city.File
	}
	return filepath.Join(c.DataDir, city.File)
}
