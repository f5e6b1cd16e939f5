package filter

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/coughlin/pdsnd-github/internal/calendar"
	"github.com/coughlin/pdsnd-github/internal/config"
	"github.com/coughlin/pdsnd-github/internal/logging"
	"github.com/coughlin/pdsnd-github/internal/trips"
)

// fixture spans every weekday of January to June 2017, one trip per day.
func fixture() *trips.Dataset {
	var all []trips.Trip
	day := time.Date(2017, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; day.Month() <= time.June; i++ {
		all = append(all, trips.Trip{
			ID:           fmt.Sprint(i),
			StartTime:    day,
			EndTime:      day.Add(10 * time.Minute),
			Duration:     600,
			StartStation: "A",
			EndStation:   "B",
		})
		day = day.AddDate(0, 0, 1)
	}
	return trips.NewDataset("Chicago", []string{trips.ColumnStartTime, trips.ColumnEndTime}, all)
}

func newResolver(t *testing.T, ds *trips.Dataset) (*Resolver, config.City) {
	t.Helper()
	cfg, err := config.New(config.Default())
	if err != nil {
		t.Fatalf("config.New() error = %v", err)
	}
	load := func(path, city string) (*trips.Dataset, error) {
		return ds, nil
	}
	city, _ := cfg.CityByKey("c")
	return NewResolver(cfg, load, logging.Discard()), city
}

func TestResolve_AllAll(t *testing.T) {
	ds := fixture()
	r, city := newResolver(t, ds)

	view, err := r.Resolve(Spec{City: city, Month: All, Day: All})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if view.Len() != ds.Len() {
		t.Errorf("Resolve(all, all) = %d rows, want %d", view.Len(), ds.Len())
	}
}

func TestResolve_EveryCombination(t *testing.T) {
	ds := fixture()
	r, city := newResolver(t, ds)

	months := append([]string{All}, calendar.MonthAbbrs()...)
	days := append([]string{All}, calendar.DayAbbrs()...)

	for _, month := range months {
		for _, day := range days {
			spec, err := NewSpec(city, month, day)
			if err != nil {
				t.Fatalf("NewSpec(%s, %s) error = %v", month, day, err)
			}
			view, err := r.Resolve(spec)
			if err != nil {
				t.Fatalf("Resolve(%s, %s) error = %v", month, day, err)
			}

			wantMonth, _ := calendar.MonthNumber(month)
			wantDay, _ := calendar.DayName(day)
			for _, trip := range view.Trips() {
				if month != All && trip.Month() != wantMonth {
					t.Errorf("Resolve(%s, %s) kept trip in month %d", month, day, trip.Month())
				}
				if day != All && trip.Weekday() != wantDay {
					t.Errorf("Resolve(%s, %s) kept trip on %s", month, day, trip.Weekday())
				}
			}

			// The fixture has trips on every weekday of Jan-Jun only.
			if wantMonth > 6 && view.Len() != 0 {
				t.Errorf("Resolve(%s, %s) = %d rows, want 0", month, day, view.Len())
			}
			if (wantMonth >= 1 && wantMonth <= 6) || month == All {
				if view.Empty() {
					t.Errorf("Resolve(%s, %s) unexpectedly empty", month, day)
				}
			}
		}
	}
}

func TestResolve_BothFilters(t *testing.T) {
	r, city := newResolver(t, fixture())

	view, err := r.Resolve(Spec{City: city, Month: "Feb", Day: "Mon"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	// February 2017 has four Mondays: 6, 13, 20, 27.
	if view.Len() != 4 {
		t.Errorf("Resolve(Feb, Mon) = %d rows, want 4", view.Len())
	}
}

func TestResolve_EmptyIsNotAnError(t *testing.T) {
	r, city := newResolver(t, fixture())

	view, err := r.Resolve(Spec{City: city, Month: "Sep", Day: All})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !view.Empty() {
		t.Errorf("Resolve(Sep) = %d rows, want 0", view.Len())
	}
}

func TestResolve_LoadError(t *testing.T) {
	cfg, _ := config.New(config.Default())
	boom := errors.New("disk on fire")
	r := NewResolver(cfg, func(string, string) (*trips.Dataset, error) { return nil, boom }, logging.Discard())
	city, _ := cfg.CityByKey("n")

	_, err := r.Resolve(Spec{City: city, Month: All, Day: All})
	if !errors.Is(err, boom) {
		t.Errorf("Resolve() error = %v, want wrapped load error", err)
	}
}

func TestResolve_UnknownCityPanics(t *testing.T) {
	r, _ := newResolver(t, fixture())

	defer func() {
		if recover() == nil {
			t.Error("Resolve() with an unknown city should panic")
		}
	}()
	_, _ = r.Resolve(Spec{City: config.City{Key: "x", Name: "Atlantis"}, Month: All, Day: All})
}

func TestResolve_PassesConfiguredPath(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = "/data"
	c, _ := config.New(cfg)

	var gotPath, gotCity string
	load := func(path, city string) (*trips.Dataset, error) {
		gotPath, gotCity = path, city
		return fixture(), nil
	}
	city, _ := c.CityByKey("w")
	if _, err := NewResolver(c, load, logging.Discard()).Resolve(Spec{City: city, Month: All, Day: All}); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if gotPath != c.Path(city) || gotCity != "Washington DC" {
		t.Errorf("load(%q, %q), want (%q, Washington DC)", gotPath, gotCity, c.Path(city))
	}
}
