// Package filter turns a user's city, month and weekday choices into a
// filtered view of that city's trips.
package filter

import (
	"fmt"

	"github.com/coughlin/pdsnd-github/internal/calendar"
	"github.com/coughlin/pdsnd-github/internal/config"
)

// All is the month or day value that applies no restriction.
const All = "all"

// Spec is a validated (city, month, day) choice.
type Spec struct {
	City  config.City
	Month string // All or a three-letter code, Jan..Dec
	Day   string // All or a three-letter code, Mon..Sun
}

// NewSpec validates month and day against the calendar tables.
func NewSpec(city config.City, month, day string) (Spec, error) {
	if month != All {
		if _, ok := calendar.MonthNumber(month); !ok {
			return Spec{}, fmt.Errorf("unknown month %q", month)
		}
	}
	if day != All {
		if _, ok := calendar.DayName(day); !ok {
			return Spec{}, fmt.Errorf("unknown day %q", day)
		}
	}
	return Spec{City: city, Month: month, Day: day}, nil
}

// AllMonths reports whether the spec spans every month.
func (s Spec) AllMonths() bool {
	return s.Month == All
}

// AllDays reports whether the spec spans every weekday.
func (s Spec) AllDays() bool {
	return s.Day == All
}

// MonthName returns the full month name, or "" when all months are selected.
func (s Spec) MonthName() string {
	n, _ := calendar.MonthNumber(s.Month)
	return calendar.MonthName(n)
}

// DayName returns the full weekday name, or "" when all days are selected.
func (s Spec) DayName() string {
	name, _ := calendar.DayName(s.Day)
	return name
}

// Title describes the selection for the heading printed when a query starts.
func (s Spec) Title() string {
	switch {
	case s.AllMonths() && s.AllDays():
		return fmt.Sprintf("All rentals for city %s", s.City.Name)
	case s.AllMonths():
		return fmt.Sprintf("Rental Summary Statistics & Dataset Rows for %s on %ss", s.City.Name, s.DayName())
	case s.AllDays():
		return fmt.Sprintf("Rental Summary Statistics & Dataset Rows for %s in %s", s.City.Name, s.MonthName())
	default:
		return fmt.Sprintf("Rental Summary Statistics & Dataset Rows for %s in %s on %ss", s.City.Name, s.MonthName(), s.DayName())
	}
}

// Mode selects which filters the user wants to set.
type Mode int

const (
	ModeNone Mode = iota
	ModeMonth
	ModeDay
	ModeBoth
)

// ParseMode maps the lower-cased first letter of the filter prompt answer
// to a mode.
func ParseMode(letter string) (Mode, bool) {
	switch letter {
	case "m":
		return ModeMonth, true
	case "d":
		return ModeDay, true
	case "b":
		return ModeBoth, true
	case "n":
		return ModeNone, true
	default:
		return ModeNone, false
	}
}

// WantsMonth reports whether the mode asks for a month.
func (m Mode) WantsMonth() bool {
	return m == ModeMonth || m == ModeBoth
}

// WantsDay reports whether the mode asks for a weekday.
func (m Mode) WantsDay() bool {
	return m == ModeDay || m == ModeBoth
}
