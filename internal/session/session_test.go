package session

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coughlin/pdsnd-github/internal/config"
	"github.com/coughlin/pdsnd-github/internal/filter"
	"github.com/coughlin/pdsnd-github/internal/logging"
	"github.com/coughlin/pdsnd-github/internal/trips"
)

var (
	fullColumns = []string{
		trips.ColumnStartTime, trips.ColumnEndTime, trips.ColumnDuration,
		trips.ColumnStartStation, trips.ColumnEndStation, trips.ColumnUserType,
		trips.ColumnGender, trips.ColumnBirthYear,
	}
	washingtonColumns = fullColumns[:6]
)

// daily returns one trip per day starting at first.
func daily(first time.Time, n int, withDemographics bool) []trips.Trip {
	all := make([]trips.Trip, n)
	for i := range all {
		start := first.AddDate(0, 0, i)
		all[i] = trips.Trip{
			ID:           fmt.Sprint(1000 + i),
			StartTime:    start,
			EndTime:      start.Add(time.Minute),
			Duration:     60,
			StartStation: "Canal St",
			EndStation:   "Clark St",
			UserType:     "Subscriber",
		}
		if withDemographics {
			all[i].Gender = "Female"
			all[i].BirthYear, all[i].HasBirthYear = 1985, true
		}
	}
	return all
}

func datasets() map[string]*trips.Dataset {
	return map[string]*trips.Dataset{
		// March 1-10 2017, Wednesday to Friday.
		"Chicago": trips.NewDataset("Chicago", fullColumns,
			daily(time.Date(2017, 3, 1, 8, 0, 0, 0, time.UTC), 10, true)),
		"Washington DC": trips.NewDataset("Washington DC", washingtonColumns,
			daily(time.Date(2017, 6, 1, 17, 0, 0, 0, time.UTC), 7, false)),
	}
}

func newSession(t *testing.T, input string, load filter.LoadFunc) *bytes.Buffer {
	t.Helper()
	return newSessionWith(t, input, load, func(*config.Config) {})
}

func newSessionWith(t *testing.T, input string, load filter.LoadFunc, configure func(*config.Config)) *bytes.Buffer {
	t.Helper()

	cfg := config.Default()
	cfg.ClearScreen = false
	configure(&cfg)
	c, err := config.New(cfg)
	require.NoError(t, err)

	if load == nil {
		data := datasets()
		load = func(path, city string) (*trips.Dataset, error) {
			ds, ok := data[city]
			if !ok {
				return nil, fmt.Errorf("no fixture for %s", city)
			}
			return ds, nil
		}
	}

	var out bytes.Buffer
	logger := logging.Discard()
	s, err := New(c, filter.NewResolver(c, load, logger), strings.NewReader(input), &out, logger)
	require.NoError(t, err)
	require.NoError(t, s.Run())
	return &out
}

func TestRun_InvalidCityThenChicago(t *testing.T) {
	out := newSession(t, "x\nc\nn\ns\nn\n", nil).String()

	require.Equal(t, 2, strings.Count(out, "Which city Chicago [C], New York city [N], or Washington DC [W] would you like to select? "))
	require.Equal(t, 1, strings.Count(out, "Invalid input, please try again"))
	require.Contains(t, out, "------- All rentals for city Chicago -------")
	require.Contains(t, out, "Matched 10 of 10 trips")
	require.Contains(t, out, "******* Summary Statistics *******")
	require.Contains(t, out, "Busiest month"+strings.Repeat(" ", 35)+"March")
	require.Contains(t, out, "Busiest Start Hour"+strings.Repeat(" ", 30)+"8 am")
	require.Contains(t, out, "Most common journey (Start+End)")
	require.Contains(t, out, "Canal St to Clark St")
	require.Contains(t, out, "Total duration of trips"+strings.Repeat(" ", 25)+"0:10:00")
	require.Contains(t, out, "Mean duration of trips"+strings.Repeat(" ", 26)+"0:01:00")
	require.Contains(t, out, "* Total ridership over all weekdays (highest to lowest) *")
	require.Contains(t, out, "Most common birth year")
	require.Contains(t, out, "(end of Summary Statistics)")
	require.Contains(t, out, "[OK, skipping dataset view ...]")
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "Bye! See you again soon, thanks :-) !"))
	require.NotContains(t, out, "** Dataset rows **")
}

func TestRun_NoMatchingData(t *testing.T) {
	out := newSession(t, "c\nb\nmon\nFEB\nn\n", nil).String()

	// Both mode asks for the weekday first.
	require.Less(t, strings.Index(out, "day of week"), strings.Index(out, "specify the month"))
	require.Contains(t, out, "Rental Summary Statistics & Dataset Rows for Chicago in February on Mondays")
	require.Contains(t, out, "Sorry, no matching data found with the selected filters!")
	require.NotContains(t, out, "Summary Statistics *******")
	require.NotContains(t, out, "view the dataset")
	require.Contains(t, out, "Would you like to make a new query?")
}

func TestRun_CityWithoutDemographics(t *testing.T) {
	out := newSession(t, "w\nn\ns\nn\n", nil).String()

	require.Contains(t, out, "Sorry, no data available about Gender for the selected city")
	require.Contains(t, out, "Sorry, no rider age data available for this city")
	require.Contains(t, out, "Subscriber    7")
	require.Contains(t, out, "Thursday")
	require.Contains(t, out, "Busiest Start Hour"+strings.Repeat(" ", 30)+"5 pm")
}

func TestRun_SelectedDayHeading(t *testing.T) {
	out := newSession(t, "c\nd\nwednesday\ns\nn\n", nil).String()

	require.Contains(t, out, "Rental Summary Statistics & Dataset Rows for Chicago on Wednesdays")
	require.Contains(t, out, "Matched 2 of 10 trips")
	require.Contains(t, out, "* Total ridership on selected day *")
	require.Contains(t, out, "Wednesday    2")
	require.NotContains(t, out, "Busiest day of the week")
}

func TestRun_PagesThroughRows(t *testing.T) {
	// city, mode, view (Enter), next, next, no restart
	out := newSession(t, "c\nn\n\n\n\nn\n", nil).String()

	require.Contains(t, out, "** Dataset rows **")
	require.Equal(t, 2, strings.Count(out, "Press [Enter] key to view next page"))
	require.Contains(t, out, "1000")
	require.Contains(t, out, "1009")
	require.Contains(t, out, "End of dataset.")
	require.Less(t, strings.Index(out, "End of dataset."), strings.Index(out, "Would you like to make a new query?"))
}

func TestRun_NoticeSpacing(t *testing.T) {
	out := newSession(t, "c\nn\n\n\n\ny\nc\nn\ns\nn\n", nil).String()

	require.Contains(t, out, "\n** Dataset rows **\n\n")
	require.Contains(t, out, "\nRestarting ...\n\n")
	require.Contains(t, out, "\nEnd of dataset.\n\n")
}

func TestRun_RemainderRows(t *testing.T) {
	// Washington DC has seven trips: one full page and two remaining rows.
	skipped := newSession(t, "w\nn\n\n\nn\n", nil).String()
	require.Contains(t, skipped, "1004")
	require.NotContains(t, skipped, "1005")
	require.Contains(t, skipped, "End of dataset.")

	shown := newSessionWith(t, "w\nn\n\n\nn\n", nil, func(c *config.Config) { c.ShowRemainder = true }).String()
	require.Contains(t, shown, "1006")
	require.Contains(t, shown, "End of dataset.")
	require.Equal(t, 1, strings.Count(shown, "Press [Enter] key to view next page"))
}

func TestRun_QuitPaging(t *testing.T) {
	out := newSession(t, "c\nn\ny\nq\nn\n", nil).String()

	require.Contains(t, out, "1004")
	require.NotContains(t, out, "1005")
	require.Contains(t, out, "[Exiting query results view]")
	require.NotContains(t, out, "End of dataset.")
}

func TestRun_InvalidViewAnswerReprompts(t *testing.T) {
	out := newSession(t, "c\nn\nmaybe\ns\nn\n", nil).String()

	require.Equal(t, 2, strings.Count(out, "Would you now like to view the dataset for this query?"))
	require.Contains(t, out, "[OK, skipping dataset view ...]")
}

func TestRun_Restart(t *testing.T) {
	out := newSession(t, "c\nn\ns\nY\nw\nm\njun\ns\nn\n", nil).String()

	require.Equal(t, 1, strings.Count(out, "Restarting ..."))
	require.Equal(t, 2, strings.Count(out, "******* Summary Statistics *******"))
	require.Equal(t, 2, strings.Count(out, Title))
	require.Contains(t, out, "Rental Summary Statistics & Dataset Rows for Washington DC in June")
	require.Equal(t, 1, strings.Count(out, "Bye!"))
}

func TestRun_EndOfInputQuits(t *testing.T) {
	out := newSession(t, "c\n", nil).String()

	require.Contains(t, out, "filter city data by month")
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "Bye! See you again soon, thanks :-) !"))
}

func TestRun_LoadError(t *testing.T) {
	boom := errors.New("permission denied")

	cfg := config.Default()
	cfg.ClearScreen = false
	c, err := config.New(cfg)
	require.NoError(t, err)

	load := func(string, string) (*trips.Dataset, error) { return nil, boom }
	s, err := New(c, filter.NewResolver(c, load, logging.Discard()), strings.NewReader("n\nn\n"), &bytes.Buffer{}, logging.Discard())
	require.NoError(t, err)

	err = s.Run()
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "New York city")
}

func TestNew_UnknownFormat(t *testing.T) {
	cfg := &config.Config{PageFormat: "xml", LabelWidth: 48}
	_, err := New(cfg, nil, strings.NewReader(""), &bytes.Buffer{}, logging.Discard())
	require.Error(t, err)
}

func TestParseAnswers(t *testing.T) {
	for _, answer := range []string{"", "y", "Yes", "yeah"} {
		v, ok := parseView(answer)
		require.True(t, ok, answer)
		require.True(t, v, answer)
	}
	v, ok := parseView("S")
	require.True(t, ok)
	require.False(t, v)
	_, ok = parseView("n")
	require.False(t, ok)

	month, ok := parseMonth("december")
	require.True(t, ok)
	require.Equal(t, "Dec", month)
	_, ok = parseMonth("d")
	require.False(t, ok)

	day, ok := parseDay("SUNDAY")
	require.True(t, ok)
	require.Equal(t, "Sun", day)
	_, ok = parseDay("xyz")
	require.False(t, ok)
}
