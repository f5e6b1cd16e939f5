package stats

import (
	"github.com/coughlin/pdsnd-github/internal/filter"
	"github.com/coughlin/pdsnd-github/internal/trips"
)

// Summary is every statistic group of a view, in display order.
type Summary struct {
	Time      TimeStats
	Stations  StationStats
	Durations DurationStats
	Riders    RiderStats
}

// Summarize runs the time, station, duration and rider computations in that
// order. The view must not be empty.
func Summarize(view *trips.View, spec filter.Spec) (Summary, error) {
	var (
		s   Summary
		err error
	)

	if s.Time, err = Time(view, spec); err != nil {
		return Summary{}, err
	}
	if s.Stations, err = Stations(view); err != nil {
		return Summary{}, err
	}
	if s.Durations, err = Durations(view); err != nil {
		return Summary{}, err
	}
	if s.Riders, err = Riders(view); err != nil {
		return Summary{}, err
	}

	return s, nil
}
