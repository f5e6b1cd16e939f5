package filter

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/coughlin/pdsnd-github/internal/calendar"
	"github.com/coughlin/pdsnd-github/internal/config"
	"github.com/coughlin/pdsnd-github/internal/query"
	"github.com/coughlin/pdsnd-github/internal/trips"
)

// LoadFunc loads the dataset stored at path for city.
type LoadFunc func(path, city string) (*trips.Dataset, error)

// Resolver loads city datasets and applies filter specs to them.
type Resolver struct {
	cfg    *config.Config
	load   LoadFunc
	logger *log.Logger
}

// NewResolver creates a resolver reading city files with load.
func NewResolver(cfg *config.Config, load LoadFunc, logger *log.Logger) *Resolver {
	return &Resolver{cfg: cfg, load: load, logger: logger}
}

// Resolve loads the spec's city and returns the trips matching its month and
// day. An empty view is a valid result.
//
// Resolve panics if the city is not configured: cities only come from the
// configuration table, so an unknown one is a programming error.
func (r *Resolver) Resolve(spec Spec) (*trips.View, error) {
	city, ok := r.cfg.CityByName(spec.City.Name)
	if !ok {
		panic(fmt.Sprintf("filter: unknown city %q", spec.City.Name))
	}

	path := r.cfg.Path(city)
	start := time.Now()
	ds, err := r.load(path, city.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s data: %w", city.Name, err)
	}
	r.logger.Debug("loaded city data", "city", city.Name, "path", path, "rows", ds.Len(), "elapsed", time.Since(start))

	expr, err := Expression(spec)
	if err != nil {
		return nil, err
	}

	matched, err := query.ApplyFilter(ds.Trips(), expr)
	if err != nil {
		return nil, fmt.Errorf("failed to apply filter: %w", err)
	}
	r.logger.Debug("resolved filter", "city", city.Name, "month", spec.Month, "day", spec.Day, "matched", len(matched))

	return ds.Restrict(matched), nil
}

// Expression builds the predicate for a spec's month and day. It returns nil
// when neither is restricted.
func Expression(spec Spec) (query.Expression, error) {
	var month, day query.Expression

	if !spec.AllMonths() {
		n, ok := calendar.MonthNumber(spec.Month)
		if !ok {
			return nil, fmt.Errorf("unknown month %q", spec.Month)
		}
		month = &query.ComparisonExpr{Column: trips.ColumnMonth, Operator: query.OpEqual, Value: int64(n)}
	}

	if !spec.AllDays() {
		name, ok := calendar.DayName(spec.Day)
		if !ok {
			return nil, fmt.Errorf("unknown day %q", spec.Day)
		}
		day = &query.ComparisonExpr{Column: trips.ColumnWeekday, Operator: query.OpEqual, Value: name}
	}

	return query.And(month, day), nil
}
