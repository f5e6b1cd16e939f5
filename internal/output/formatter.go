package output

import (
	"fmt"
	"io"

	"github.com/coughlin/pdsnd-github/internal/config"
)

// Formatter renders rows of display strings under a header.
type Formatter interface {
	// Format writes the rows in the formatter's specific format
	Format(header []string, rows [][]string) error
}

// NewFormatter returns the formatter for a page format name.
func NewFormatter(format string, w io.Writer) (Formatter, error) {
	switch format {
	case config.FormatTable:
		return NewTableFormatter(w), nil
	case config.FormatCSV:
		return NewCSVFormatter(w), nil
	case config.FormatJSONL:
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported page format %q", format)
	}
}
