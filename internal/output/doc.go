// Package output renders statistics and dataset rows to the terminal.
//
// A Printer writes headings, notices and aligned label/value tables. A
// Formatter renders a window of dataset rows; three formats are supported:
//
//   - table: an aligned text table (the default)
//   - csv: comma-separated values with a header row
//   - jsonl: one JSON object per line
//
// Using a formatter:
//
//	formatter, err := output.NewFormatter(config.FormatTable, os.Stdout)
//	if err != nil {
//	    return err
//	}
//	if err := formatter.Format(header, rows); err != nil {
//	    return err
//	}
package output
