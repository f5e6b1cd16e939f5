package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/coughlin/pdsnd-github/internal/config"
	"github.com/coughlin/pdsnd-github/internal/filter"
	"github.com/coughlin/pdsnd-github/internal/logging"
	"github.com/coughlin/pdsnd-github/internal/reader"
	"github.com/coughlin/pdsnd-github/internal/session"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses flags and runs an interactive session, returning the process
// exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	defaults := config.Default()

	flags := flag.NewFlagSet("bikeshare", flag.ContinueOnError)
	flags.SetOutput(stderr)
	dataDir := flags.String("data", defaults.DataDir, "Directory holding the city data files")
	pageSize := flags.Int("page-size", defaults.PageSize, "Rows shown per page of the dataset view")
	format := flags.String("format", defaults.PageFormat, "Dataset view format: table, csv, jsonl")
	logFile := flags.String("log", "", "Append structured logs to this file (default: no logging)")
	logLevel := flags.String("log-level", defaults.LogLevel, "Log level: debug, info, warn, error")
	noClear := flags.Bool("no-clear", false, "Do not clear the screen at start and on restart")
	showRemainder := flags.Bool("show-remainder", false, "Show the rows after the last full page before ending the dataset view")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: bikeshare [options]\n\n")
		fmt.Fprintf(stderr, "Interactively explore US bikeshare trip data for Chicago, New York city and Washington DC.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  bikeshare\n")
		fmt.Fprintf(stderr, "  bikeshare -data ./data -page-size 10\n")
		fmt.Fprintf(stderr, "  bikeshare -format csv -log bikeshare.log -log-level debug\n")
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected argument %q\n\n", flags.Arg(0))
		flags.Usage()
		return 1
	}

	cfg := defaults
	cfg.DataDir = *dataDir
	cfg.PageSize = *pageSize
	cfg.PageFormat = *format
	cfg.LogFile = *logFile
	cfg.LogLevel = *logLevel
	cfg.ClearScreen = !*noClear
	cfg.ShowRemainder = *showRemainder

	c, err := config.New(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger, cleanup, err := logging.Setup(c.LogFile, c.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer cleanup()

	s, err := session.New(c, filter.NewResolver(c, reader.Load, logger), stdin, stdout, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := s.Run(); err != nil {
		logger.Error("session failed", "err", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(stderr, "Please check that the city data files are in %s.\n", c.DataDir)
		}
		return 1
	}

	return 0
}
