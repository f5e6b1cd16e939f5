package session

import (
	"fmt"

	"github.com/coughlin/pdsnd-github/internal/calendar"
	"github.com/coughlin/pdsnd-github/internal/filter"
	"github.com/coughlin/pdsnd-github/internal/prompt"
	"github.com/coughlin/pdsnd-github/internal/stats"
)

func parseView(answer string) (bool, bool) {
	switch prompt.FirstLetter(answer) {
	case "", "y":
		return true, true
	case "s":
		return false, true
	default:
		return false, false
	}
}

func parseMonth(answer string) (string, bool) {
	month := prompt.FirstThreeTitle(answer)
	_, ok := calendar.MonthNumber(month)
	return month, ok
}

func parseDay(answer string) (string, bool) {
	day := prompt.FirstThreeTitle(answer)
	_, ok := calendar.DayName(day)
	return day, ok
}

func (s *Session) printSummary(sum stats.Summary, spec filter.Spec) {
	p := s.printer

	p.Heading("******* Summary Statistics *******\n")

	p.Heading("*** Most Frequent Times of Travel ***\n")
	s.printEntries(sum.Time.Entries())

	p.Heading("\n*** Station Statistics ***\n")
	s.printEntries(sum.Stations.Entries())

	p.Heading("\n*** Trip Duration Statistics ***\n")
	s.printEntries(sum.Durations.Entries())

	p.Heading("\n*** Rider Statistics ***\n")
	s.printDistribution(sum.Riders.UserTypes)
	s.printDistribution(sum.Riders.Genders)

	if spec.AllDays() {
		p.Heading("\n* Total ridership over all weekdays (highest to lowest) *")
	} else {
		p.Heading("\n* Total ridership on selected day *")
	}
	s.printDistribution(sum.Riders.Weekdays)

	if sum.Riders.BirthYears.Available {
		s.printEntries(sum.Riders.BirthYears.Entries())
	} else {
		p.Notice("\nSorry, no rider age data available for this city")
	}

	p.Println("(end of Summary Statistics)")
	p.Println()
}

func (s *Session) printEntries(entries []stats.Entry) {
	for _, e := range entries {
		s.printer.Entry(e.Label, e.Value)
	}
}

func (s *Session) printDistribution(d stats.Distribution) {
	if !d.Available {
		s.printer.Notice(fmt.Sprintf("\nSorry, no data available about %s for the selected city", d.Column))
		return
	}
	s.printer.Counts(d.Counts)
	s.printer.Println()
}
