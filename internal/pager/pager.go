// Package pager shows a view's rows one fixed-size page at a time.
package pager

import (
	"fmt"

	"github.com/coughlin/pdsnd-github/internal/output"
	"github.com/coughlin/pdsnd-github/internal/prompt"
	"github.com/coughlin/pdsnd-github/internal/trips"
)

const (
	question    = "\nPress [Enter] key to view next page, [b] to view previous page, or enter [q] to exit ...\n"
	endNotice   = "\nEnd of dataset.\n"
	exitNotice  = "\n[Exiting query results view]"
	indexHeader = ""
)

type command int

const (
	next command = iota
	back
	quit
)

// parseCommand reads the first character of an answer. Commands are case
// sensitive.
func parseCommand(answer string) (command, bool) {
	switch prompt.Prefix(answer, 1) {
	case "":
		return next, true
	case "b":
		return back, true
	case "q":
		return quit, true
	default:
		return 0, false
	}
}

// Pager walks a view in steps of pageSize rows.
type Pager struct {
	// ShowRemainder prints the rows after the last full page before the end
	// notice. When false those rows are skipped, as are views shorter than
	// one page.
	ShowRemainder bool

	view      *trips.View
	pageSize  int
	prompter  *prompt.Prompter
	formatter output.Formatter
	printer   *output.Printer
	offset    int
}

// New creates a pager positioned at the first row.
func New(view *trips.View, pageSize int, prompter *prompt.Prompter, formatter output.Formatter, printer *output.Printer) *Pager {
	if pageSize <= 0 {
		panic(fmt.Sprintf("pager: invalid page size %d", pageSize))
	}
	return &Pager{
		view:      view,
		pageSize:  pageSize,
		prompter:  prompter,
		formatter: formatter,
		printer:   printer,
	}
}

// Offset returns the index of the first row of the current page.
func (p *Pager) Offset() int {
	return p.offset
}

// Run shows pages until the user quits or the offset passes the last full
// page. In the latter case the end notice is printed and no further command
// is read. Read errors, including io.EOF, are returned unchanged.
func (p *Pager) Run() error {
	for {
		total := p.view.Len()
		if p.offset > total-p.pageSize {
			if p.ShowRemainder && p.offset < total {
				if err := p.render(total - p.offset); err != nil {
					return err
				}
			}
			p.printer.Notice(endNotice)
			return nil
		}

		if err := p.render(p.pageSize); err != nil {
			return err
		}

		cmd, err := prompt.Until(p.prompter, question, parseCommand)
		if err != nil {
			return err
		}

		switch cmd {
		case next:
			p.offset += p.pageSize
		case back:
			p.offset -= p.pageSize
			if p.offset < 0 {
				p.offset = 0
			}
		case quit:
			p.printer.Println(exitNotice)
			return nil
		}
	}
}

func (p *Pager) render(n int) error {
	header := append([]string{indexHeader}, p.view.Columns()...)
	if err := p.formatter.Format(header, p.view.Records(p.offset, n)); err != nil {
		return fmt.Errorf("failed to render rows %d-%d: %w", p.offset, p.offset+n-1, err)
	}
	return nil
}
