// Command csv2parquet converts a bikeshare city CSV file to parquet so it can
// be listed as a city data file in place of the CSV.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/coughlin/pdsnd-github/internal/reader"
	"github.com/coughlin/pdsnd-github/internal/trips"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("csv2parquet", flag.ContinueOnError)
	flags.SetOutput(stderr)
	city := flags.String("city", "", "City name stored with the dataset (default: derived from the file name)")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: csv2parquet [options] <in.csv> <out.parquet>\n\n")
		fmt.Fprintf(stderr, "Convert a bikeshare city CSV file to parquet.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  csv2parquet chicago.csv chicago.parquet\n")
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if flags.NArg() != 2 {
		fmt.Fprintf(stderr, "Error: expected an input and an output file\n\n")
		flags.Usage()
		return 1
	}
	in, out := flags.Arg(0), flags.Arg(1)

	if strings.ToLower(filepath.Ext(out)) != ".parquet" {
		fmt.Fprintf(stderr, "Error: output file %s must have a .parquet extension\n", out)
		return 1
	}

	name := *city
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	}

	ds, err := reader.Load(in, name)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := writeFile(out, ds); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Wrote %d trips to %s\n", ds.Len(), out)
	return 0
}

// writeFile writes ds to path, removing the file again if writing fails.
func writeFile(path string, ds *trips.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := reader.WriteParquet(f, ds); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("failed to write parquet: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
