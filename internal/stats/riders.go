package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/coughlin/pdsnd-github/internal/query"
	"github.com/coughlin/pdsnd-github/internal/trips"
)

// Distribution is the frequency of each value of one column, highest first.
// Available is false when the city file has no such column.
type Distribution struct {
	Column    string
	Available bool
	Counts    []query.Count
}

// BirthYears holds the birth-year statistics, floored to whole years.
type BirthYears struct {
	Available  bool
	Oldest     int
	Youngest   int
	MostCommon int
}

// Entries returns the birth-year statistics in display order.
func (b BirthYears) Entries() []Entry {
	return []Entry{
		{"Birth year of oldest rider", fmt.Sprint(b.Oldest)},
		{"Birth year of youngest rider", fmt.Sprint(b.Youngest)},
		{"Most common birth year", fmt.Sprint(b.MostCommon)},
	}
}

// RiderStats holds the rider demographics of a view.
type RiderStats struct {
	UserTypes  Distribution
	Genders    Distribution
	Weekdays   Distribution
	BirthYears BirthYears
}

// Riders computes the user type, gender and weekday distributions and the
// birth-year statistics of a view. Gender and birth year degrade to
// unavailable for cities that do not record them.
func Riders(view *trips.View) (RiderStats, error) {
	if view.Empty() {
		return RiderStats{}, ErrEmptyView
	}

	s := RiderStats{
		UserTypes: distribution(view, trips.ColumnUserType),
		Genders:   distribution(view, trips.ColumnGender),
		Weekdays:  distribution(view, trips.ColumnWeekday),
	}

	years, err := birthYears(view)
	if err != nil {
		return RiderStats{}, err
	}
	s.BirthYears = years

	return s, nil
}

func distribution(view *trips.View, column string) Distribution {
	if !view.HasColumn(column) {
		return Distribution{Column: column}
	}
	return Distribution{
		Column:    column,
		Available: true,
		Counts:    query.ValueCounts(view.Trips(), query.Column(column)),
	}
}

// birthYears reports the statistics as unavailable when the column is absent
// or holds no values for the view.
func birthYears(view *trips.View) (BirthYears, error) {
	if !view.HasColumn(trips.ColumnBirthYear) {
		return BirthYears{}, nil
	}

	rows := view.Trips()
	project := query.Column(trips.ColumnBirthYear)

	oldest, err := query.Min(rows, project)
	if errors.Is(err, query.ErrNoValues) {
		return BirthYears{}, nil
	}
	if err != nil {
		return BirthYears{}, fmt.Errorf("birth year: %w", err)
	}
	youngest, err := query.Max(rows, project)
	if err != nil {
		return BirthYears{}, fmt.Errorf("birth year: %w", err)
	}
	common, err := query.Mode(rows, project)
	if err != nil {
		return BirthYears{}, fmt.Errorf("birth year: %w", err)
	}

	return BirthYears{
		Available:  true,
		Oldest:     int(math.Floor(oldest)),
		Youngest:   int(math.Floor(youngest)),
		MostCommon: int(math.Floor(common.(float64))),
	}, nil
}
