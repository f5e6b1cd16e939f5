// Package trips holds the bikeshare ridership data model.
//
// A Dataset is the full set of trips loaded from one city file. A View is a
// Dataset restricted to the trips matching a filter. Calendar attributes such
// as the month number and weekday name are derived from a trip's start time
// on every access and are never stored.
package trips

import (
	"strconv"
	"time"
)

// Source column names as they appear in the city CSV header.
const (
	ColumnStartTime    = "Start Time"
	ColumnEndTime      = "End Time"
	ColumnDuration     = "Trip Duration"
	ColumnStartStation = "Start Station"
	ColumnEndStation   = "End Station"
	ColumnUserType     = "User Type"
	ColumnGender       = "Gender"
	ColumnBirthYear    = "Birth Year"
)

// Derived column names. These are computed from the start time.
const (
	ColumnMonth     = "Month Number"
	ColumnWeekday   = "Weekday Name"
	ColumnStartHour = "Start Hour"
)

// TimeLayout is the timestamp format used by the city files.
const TimeLayout = "2006-01-02 15:04:05"

// Trip is one bikeshare rental.
type Trip struct {
	ID           string
	StartTime    time.Time
	EndTime      time.Time
	Duration     float64 // seconds
	StartStation string
	EndStation   string
	UserType     string
	Gender       string
	BirthYear    float64
	HasBirthYear bool
}

// Month returns the 1-based month of the start time.
func (t Trip) Month() int {
	return int(t.StartTime.Month())
}

// Weekday returns the full English weekday name of the start time.
func (t Trip) Weekday() string {
	return t.StartTime.Weekday().String()
}

// StartHour returns the hour of day (0-23) of the start time.
func (t Trip) StartHour() int {
	return t.StartTime.Hour()
}

// Get returns the value of the named column for this trip.
//
// The second result reports whether the column name is known. Empty text
// values and an absent birth year are returned as nil so that aggregations
// treat them as missing.
func (t Trip) Get(column string) (interface{}, bool) {
	switch column {
	case ColumnStartTime:
		return t.StartTime, true
	case ColumnEndTime:
		return t.EndTime, true
	case ColumnDuration:
		return t.Duration, true
	case ColumnStartStation:
		return nonEmpty(t.StartStation), true
	case ColumnEndStation:
		return nonEmpty(t.EndStation), true
	case ColumnUserType:
		return nonEmpty(t.UserType), true
	case ColumnGender:
		return nonEmpty(t.Gender), true
	case ColumnBirthYear:
		if !t.HasBirthYear {
			return nil, true
		}
		return t.BirthYear, true
	case ColumnMonth:
		return int64(t.Month()), true
	case ColumnWeekday:
		return t.Weekday(), true
	case ColumnStartHour:
		return int64(t.StartHour()), true
	default:
		return nil, false
	}
}

// Field returns the display text of the named column.
func (t Trip) Field(column string) string {
	v, ok := t.Get(column)
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case time.Time:
		return val.Format(TimeLayout)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return ""
	}
}

func nonEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
