package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/coughlin/pdsnd-github/internal/query"
)

// Printer writes report text to a terminal. Write errors are not reported;
// the terminal is the only sink.
type Printer struct {
	w          io.Writer
	labelWidth int
	heading    lipgloss.Style
	notice     lipgloss.Style
	banner     lipgloss.Style
}

// NewPrinter creates a printer whose label/value tables pad labels to
// labelWidth columns. Styling is only applied when w is a color terminal.
func NewPrinter(w io.Writer, labelWidth int) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:          w,
		labelWidth: labelWidth,
		heading:    r.NewStyle().Bold(true),
		notice:     r.NewStyle().Faint(true),
		banner: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2).
			Bold(true),
	}
}

// Println writes a line of plain text.
func (p *Printer) Println(a ...interface{}) {
	fmt.Fprintln(p.w, a...)
}

// Heading writes a bold line. Leading and trailing newlines in text are
// written unstyled.
func (p *Printer) Heading(text string) {
	p.styled(p.heading, text)
}

// Notice writes a dimmed informational line.
func (p *Printer) Notice(text string) {
	p.styled(p.notice, text)
}

// styled renders text with style, keeping its surrounding blank lines out of
// the style so they are not padded with spaces.
func (p *Printer) styled(style lipgloss.Style, text string) {
	body := strings.TrimLeft(text, "\n")
	before := len(text) - len(body)
	trimmed := strings.TrimRight(body, "\n")
	after := len(body) - len(trimmed)

	fmt.Fprintf(p.w, "%s%s%s\n", strings.Repeat("\n", before), style.Render(trimmed), strings.Repeat("\n", after))
}

// Banner writes title inside a box.
func (p *Printer) Banner(title string) {
	fmt.Fprintln(p.w, p.banner.Render(title))
}

// Entry writes one label/value line, the value starting at the label
// width. Labels at or beyond the width are followed by a single space.
func (p *Printer) Entry(label, value string) {
	pad := p.labelWidth - runewidth.StringWidth(label)
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintf(p.w, "%s%s%s\n", label, strings.Repeat(" ", pad), value)
}

// Counts writes a frequency distribution, one value per line, with the
// counts right-aligned after the widest value.
func (p *Printer) Counts(counts []query.Count) {
	labels := make([]string, len(counts))
	numbers := make([]string, len(counts))
	labelWidth, numberWidth := 0, 0

	for i, c := range counts {
		labels[i] = fmt.Sprint(c.Value)
		numbers[i] = humanize.Comma(int64(c.N))
		if w := runewidth.StringWidth(labels[i]); w > labelWidth {
			labelWidth = w
		}
		if w := len(numbers[i]); w > numberWidth {
			numberWidth = w
		}
	}

	for i := range counts {
		fmt.Fprintf(p.w, "%s    %*s\n", runewidth.FillRight(labels[i], labelWidth), numberWidth, numbers[i])
	}
}

// ClearScreen clears the terminal and moves the cursor home.
func ClearScreen(w io.Writer) {
	termenv.NewOutput(w).ClearScreen()
}
