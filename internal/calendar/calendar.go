// Package calendar provides the closed month and weekday enumerations
// accepted at the prompts, and conversions to their full names.
package calendar

import (
	"strconv"
	"time"
)

// weekdays in the Monday-first order used by the prompts.
var weekdays = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// MonthAbbrs returns the three-letter month codes Jan..Dec.
func MonthAbbrs() []string {
	out := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, m.String()[:3])
	}
	return out
}

// DayAbbrs returns the three-letter weekday codes Mon..Sun.
func DayAbbrs() []string {
	out := make([]string, 0, len(weekdays))
	for _, d := range weekdays {
		out = append(out, d.String()[:3])
	}
	return out
}

// MonthNumber returns the 1-based index of a three-letter month code.
func MonthNumber(abbr string) (int, bool) {
	for i, a := range MonthAbbrs() {
		if a == abbr {
			return i + 1, true
		}
	}
	return 0, false
}

// MonthName returns the full name of month n (1-12).
func MonthName(n int) string {
	if n < 1 || n > 12 {
		return ""
	}
	return time.Month(n).String()
}

// DayName returns the full weekday name of a three-letter day code,
// e.g. "Mon" -> "Monday".
func DayName(abbr string) (string, bool) {
	for i, a := range DayAbbrs() {
		if a == abbr {
			return weekdays[i].String(), true
		}
	}
	return "", false
}

// Hour12 renders an hour of day (0-23) with an am/pm suffix. Midnight is
// "0 am" and noon is "12 pm".
func Hour12(hour int) string {
	if hour < 12 {
		return strconv.Itoa(hour) + " am"
	}
	if hour > 12 {
		hour -= 12
	}
	return strconv.Itoa(hour) + " pm"
}
