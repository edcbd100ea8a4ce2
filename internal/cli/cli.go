// Package cli parses command-line arguments into a config.Config and
// carries process exit codes for usage errors.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvlpath/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the merged
// configuration, a boolean indicating the program should exit cleanly
// (after -h), or an *ExitError.
//
// Values come from config.Default(), then the -config file, then any flag
// given explicitly on the command line.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("lvlpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
lvlpath - single-source and all-pairs shortest paths over a weighted graph.

Usage:
  lvlpath [options] [INPUT]

Arguments:
  INPUT
    Problem file (default in.txt). Overrides -input and the config file.

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	configFlag := flagSet.String("config", "", "Path to a TOML configuration file.")
	inputFlag := flagSet.String("input", def.Input, "Problem file to read.")
	enginesFlag := flagSet.String("engines", strings.Join(def.Engines, ","), "Comma-separated engines to run.")
	lookupFlag := flagSet.String("lookup", def.Lookup, "Edge lookup: 'symmetric' or 'directed'.")
	concurrentFlag := flagSet.Bool("concurrent", def.Concurrent, "Run the engines concurrently.")
	outDirFlag := flagSet.String("out-dir", def.Output.Dir, "Directory for relative output files.")
	logLevelFlag := flagSet.String("log-level", def.Logging.Level, "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", def.Logging.Format, "Log output format: 'text' or 'json'.")
	logfileFlag := flagSet.String("logfile", def.Logging.Logfile, "Write logs to a rotating file instead of stderr.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one input file, got %d", flagSet.NArg())}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := def
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *inputFlag
		case "engines":
			cfg.Engines = splitList(*enginesFlag)
		case "lookup":
			cfg.Lookup = strings.ToLower(*lookupFlag)
		case "concurrent":
			cfg.Concurrent = *concurrentFlag
		case "out-dir":
			cfg.Output.Dir = *outDirFlag
		case "log-level":
			cfg.Logging.Level = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.Logging.Format = strings.ToLower(*logFormatFlag)
		case "logfile":
			cfg.Logging.Logfile = *logfileFlag
		}
	})
	if flagSet.NArg() == 1 {
		cfg.Input = flagSet.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}

	return out
}
