// Package stats computes the summary statistics printed for a filtered view
// of trips.
//
// Each computation reads the view and derives any scratch values (start hour,
// start+end journey key) as private projections, so a view can be summarised
// any number of times with identical results.
package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/coughlin/pdsnd-github/internal/calendar"
	"github.com/coughlin/pdsnd-github/internal/filter"
	"github.com/coughlin/pdsnd-github/internal/query"
	"github.com/coughlin/pdsnd-github/internal/trips"
)

// ErrEmptyView is returned when a statistic is requested over a view with no
// trips. Callers check View.Empty before summarising.
var ErrEmptyView = errors.New("no trips in view")

// Entry is one labelled statistic.
type Entry struct {
	Label string
	Value string
}

// TimeStats holds the most frequent times of travel. BusiestMonth and
// BusiestDay are empty when the filter already fixes them.
type TimeStats struct {
	BusiestMonth string
	BusiestDay   string
	BusiestHour  string
}

// Entries returns the statistics in display order.
func (s TimeStats) Entries() []Entry {
	var entries []Entry
	if s.BusiestMonth != "" {
		entries = append(entries, Entry{"Busiest month", s.BusiestMonth})
	}
	if s.BusiestDay != "" {
		entries = append(entries, Entry{"Busiest day of the week", s.BusiestDay})
	}
	return append(entries, Entry{"Busiest Start Hour", s.BusiestHour})
}

// Time computes the busiest month, weekday and start hour of a view.
func Time(view *trips.View, spec filter.Spec) (TimeStats, error) {
	rows := view.Trips()
	if len(rows) == 0 {
		return TimeStats{}, ErrEmptyView
	}

	var s TimeStats
	if spec.AllMonths() {
		v, err := query.Mode(rows, query.Column(trips.ColumnMonth))
		if err != nil {
			return TimeStats{}, fmt.Errorf("busiest month: %w", err)
		}
		s.BusiestMonth = calendar.MonthName(int(v.(int64)))
	}

	if spec.AllDays() {
		v, err := query.Mode(rows, query.Column(trips.ColumnWeekday))
		if err != nil {
			return TimeStats{}, fmt.Errorf("busiest day: %w", err)
		}
		s.BusiestDay = v.(string)
	}

	v, err := query.Mode(rows, query.Column(trips.ColumnStartHour))
	if err != nil {
		return TimeStats{}, fmt.Errorf("busiest hour: %w", err)
	}
	s.BusiestHour = calendar.Hour12(int(v.(int64)))

	return s, nil
}

// StationStats holds the most popular stations and journey.
type StationStats struct {
	StartStation string
	EndStation   string
	Journey      string
}

// Entries returns the statistics in display order.
func (s StationStats) Entries() []Entry {
	return []Entry{
		{"Most frequented Start Station", s.StartStation},
		{"Most frequented End Station", s.EndStation},
		{"Most common journey (Start+End)", s.Journey},
	}
}

// Stations computes the most frequent start station, end station and
// start/end pair of a view.
func Stations(view *trips.View) (StationStats, error) {
	rows := view.Trips()
	if len(rows) == 0 {
		return StationStats{}, ErrEmptyView
	}

	start, err := modeText(rows, query.Column(trips.ColumnStartStation))
	if err != nil {
		return StationStats{}, fmt.Errorf("start station: %w", err)
	}
	end, err := modeText(rows, query.Column(trips.ColumnEndStation))
	if err != nil {
		return StationStats{}, fmt.Errorf("end station: %w", err)
	}
	journey, err := modeText(rows, journeyKey)
	if err != nil {
		return StationStats{}, fmt.Errorf("journey: %w", err)
	}

	return StationStats{StartStation: start, EndStation: end, Journey: journey}, nil
}

func journeyKey(row query.Row) interface{} {
	t := row.(trips.Trip)
	return fmt.Sprintf("%s to %s", t.StartStation, t.EndStation)
}

func modeText(rows []trips.Trip, project query.Projection) (string, error) {
	v, err := query.Mode(rows, project)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}

// DurationStats holds total and mean trip durations in seconds.
type DurationStats struct {
	Total float64
	Mean  float64
}

// Entries returns the durations rendered as clock strings.
func (s DurationStats) Entries() []Entry {
	return []Entry{
		{"Total duration of trips", FormatClock(s.Total)},
		{"Mean duration of trips", FormatClock(s.Mean)},
	}
}

// Durations computes the total and mean trip duration of a view.
func Durations(view *trips.View) (DurationStats, error) {
	rows := view.Trips()
	if len(rows) == 0 {
		return DurationStats{}, ErrEmptyView
	}

	total, err := query.Sum(rows, query.Column(trips.ColumnDuration))
	if err != nil {
		return DurationStats{}, err
	}
	mean, err := query.Mean(rows, query.Column(trips.ColumnDuration))
	if err != nil {
		return DurationStats{}, err
	}

	return DurationStats{Total: total, Mean: mean}, nil
}

// FormatClock rounds seconds to the nearest whole second, halves to even,
// and renders them as H:MM:SS. Hours are not wrapped into days.
func FormatClock(seconds float64) string {
	total := int64(math.RoundToEven(seconds))
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	return fmt.Sprintf("%s%d:%02d:%02d", sign, total/3600, total/60%60, total%60)
}
