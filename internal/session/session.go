// Package session runs the interactive query cycle: choose a city and
// filters, print the summary statistics, optionally page through the rows,
// then start again or quit.
package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/coughlin/pdsnd-github/internal/config"
	"github.com/coughlin/pdsnd-github/internal/filter"
	"github.com/coughlin/pdsnd-github/internal/output"
	"github.com/coughlin/pdsnd-github/internal/pager"
	"github.com/coughlin/pdsnd-github/internal/prompt"
	"github.com/coughlin/pdsnd-github/internal/stats"
	"github.com/coughlin/pdsnd-github/internal/trips"
)

// Title is shown in the banner at start and after every restart.
const Title = "US Bikeshare Data Explorer"

const (
	instructions    = "\nPlease select which parts of the bikeshare data & associated statistics you want to view below."
	modeQuestion    = "\nWould you like to filter city data by month [M], day [D], both month & day [B], or not at all [N]? "
	monthQuestion   = "\nPlease specify the month (enter the first 3 letters: [Jan], [Feb], .. [Dec]): "
	dayQuestion     = "\nPlease specify the day of week (first 3 letters: [Mon], [Tue], .. [Sun]): "
	viewQuestion    = "\nWould you now like to view the dataset for this query? Press [Enter] or enter [y] to proceed, or [s] to skip "
	restartQuestion = "\nWould you like to make a new query? Enter [y] to start again, otherwise enter anything else to quit completely.\n"

	noMatches  = "\nSorry, no matching data found with the selected filters! Please try changing your filter options."
	skipping   = "[OK, skipping dataset view ...]"
	rowsTitle  = "\n** Dataset rows **\n"
	restarting = "\nRestarting ...\n"
	goodbye    = "Bye! See you again soon, thanks :-) !"
)

type state int

const (
	stateCollect state = iota
	stateResolve
	stateEmpty
	stateSummary
	stateOfferPaging
	statePaging
	stateOfferRestart
	stateDone
)

var stateNames = [...]string{"collect", "resolve", "empty", "summary", "offer-paging", "paging", "offer-restart", "done"}

func (s state) String() string {
	return stateNames[s]
}

// cycle is the state owned by one query cycle. It is replaced wholesale on
// restart.
type cycle struct {
	spec filter.Spec
	view *trips.View
}

// Session drives query cycles over one input and output stream.
type Session struct {
	cfg       *config.Config
	resolver  *filter.Resolver
	prompter  *prompt.Prompter
	printer   *output.Printer
	formatter output.Formatter
	out       io.Writer
	logger    *log.Logger
}

// New creates a session reading answers from in and writing to out.
func New(cfg *config.Config, resolver *filter.Resolver, in io.Reader, out io.Writer, logger *log.Logger) (*Session, error) {
	formatter, err := output.NewFormatter(cfg.PageFormat, out)
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg:       cfg,
		resolver:  resolver,
		prompter:  prompt.New(in, out),
		printer:   output.NewPrinter(out, cfg.LabelWidth),
		formatter: formatter,
		out:       out,
		logger:    logger,
	}, nil
}

// Run executes query cycles until the user declines to restart or input
// ends. It returns an error only when a city's data cannot be loaded.
func (s *Session) Run() error {
	s.greet()

	var c cycle
	st := stateCollect
	for st != stateDone {
		next, err := s.step(st, &c)
		if errors.Is(err, io.EOF) {
			s.logger.Info("input closed", "state", st)
			s.printer.Println()
			s.printer.Println(goodbye)
			return nil
		}
		if err != nil {
			return err
		}
		s.logger.Debug("state transition", "from", st, "to", next)
		st = next
	}
	return nil
}

func (s *Session) step(st state, c *cycle) (state, error) {
	switch st {
	case stateCollect:
		*c = cycle{}
		spec, err := s.collectFilters()
		if err != nil {
			return st, err
		}
		c.spec = spec
		return stateResolve, nil

	case stateResolve:
		view, err := s.resolver.Resolve(c.spec)
		if err != nil {
			return st, err
		}
		c.view = view
		s.logger.Info("query resolved",
			"city", c.spec.City.Name, "month", c.spec.Month, "day", c.spec.Day,
			"matched", view.Len(), "total", view.Source().Len())
		if view.Empty() {
			return stateEmpty, nil
		}
		return stateSummary, nil

	case stateEmpty:
		s.printer.Println(noMatches)
		return stateOfferRestart, nil

	case stateSummary:
		s.printer.Notice(fmt.Sprintf("Matched %s of %s trips\n",
			humanize.Comma(int64(c.view.Len())), humanize.Comma(int64(c.view.Source().Len()))))
		summary, err := stats.Summarize(c.view, c.spec)
		if err != nil {
			return st, fmt.Errorf("failed to summarise %s data: %w", c.spec.City.Name, err)
		}
		s.printSummary(summary, c.spec)
		return stateOfferPaging, nil

	case stateOfferPaging:
		wantRows, err := prompt.Until(s.prompter, viewQuestion, parseView)
		if err != nil {
			return st, err
		}
		if !wantRows {
			s.printer.Notice(skipping)
			return stateOfferRestart, nil
		}
		return statePaging, nil

	case statePaging:
		s.printer.Heading(rowsTitle)
		pg := pager.New(c.view, s.cfg.PageSize, s.prompter, s.formatter, s.printer)
		pg.ShowRemainder = s.cfg.ShowRemainder
		if err := pg.Run(); err != nil {
			return st, err
		}
		return stateOfferRestart, nil

	case stateOfferRestart:
		answer, err := s.prompter.Ask(restartQuestion)
		if err != nil {
			return st, err
		}
		if prompt.FirstLetter(answer) != "y" {
			s.printer.Println(goodbye)
			return stateDone, nil
		}
		s.printer.Notice(restarting)
		s.greet()
		return stateCollect, nil
	}

	panic(fmt.Sprintf("session: unexpected state %v", st))
}

func (s *Session) greet() {
	if s.cfg.ClearScreen {
		output.ClearScreen(s.out)
	}
	s.printer.Banner(Title)
}

// collectFilters asks for the city, the filter mode and then the weekday
// and month the mode calls for.
func (s *Session) collectFilters() (filter.Spec, error) {
	s.printer.Println(instructions)

	city, err := prompt.Until(s.prompter, s.cityQuestion(), func(answer string) (config.City, bool) {
		return s.cfg.CityByKey(prompt.FirstLetter(answer))
	})
	if err != nil {
		return filter.Spec{}, err
	}

	mode, err := prompt.Until(s.prompter, modeQuestion, func(answer string) (filter.Mode, bool) {
		return filter.ParseMode(prompt.FirstLetter(answer))
	})
	if err != nil {
		return filter.Spec{}, err
	}

	month, day := filter.All, filter.All
	if mode.WantsDay() {
		if day, err = prompt.Until(s.prompter, dayQuestion, parseDay); err != nil {
			return filter.Spec{}, err
		}
	}
	if mode.WantsMonth() {
		if month, err = prompt.Until(s.prompter, monthQuestion, parseMonth); err != nil {
			return filter.Spec{}, err
		}
	}

	spec, err := filter.NewSpec(city, month, day)
	if err != nil {
		return filter.Spec{}, err
	}
	s.printer.Heading(fmt.Sprintf("\n------- %s -------\n", spec.Title()))
	return spec, nil
}

// cityQuestion lists the configured cities with their keys, e.g.
// "Chicago [C], New York city [N], or Washington DC [W]".
func (s *Session) cityQuestion() string {
	choices := make([]string, len(s.cfg.Cities))
	for i, c := range s.cfg.Cities {
		choices[i] = fmt.Sprintf("%s [%s]", c.Name, strings.ToUpper(c.Key))
	}

	list := choices[0]
	if n := len(choices); n > 1 {
		list = strings.Join(choices[:n-1], ", ") + ", or " + choices[n-1]
		if n == 2 {
			list = choices[0] + " or " + choices[1]
		}
	}
	return fmt.Sprintf("\nWhich city %s would you like to select? ", list)
}
