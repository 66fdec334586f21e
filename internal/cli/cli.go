package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/hclcad/internal/app"
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

// pathList collects a repeatable, comma separated flag.
type pathList []string

func (p *pathList) String() string { return strings.Join(*p, ",") }

func (p *pathList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*p = append(*p, part)
		}
	}
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("hclcad", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
hclcad - A parametric CAD language evaluator with an HCL syntax.

Usage:
  hclcad [options] [ROOT_FILE]

Arguments:
  ROOT_FILE
    Path to the .hcl file to evaluate.

Options:
`)
		flagSet.PrintDefaults()
	}

	var searchPaths pathList
	fileFlag := flagSet.String("file", "", "Path to the root source file.")
	fFlag := flagSet.String("f", "", "Path to the root source file (shorthand).")
	flagSet.Var(&searchPaths, "search-path", "Directory searched for external source files. Repeatable, comma separated.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	symbolsFlag := flagSet.Bool("symbols", false, "Print the resolved symbol tree before evaluating.")
	interactiveFlag := flagSet.Bool("i", false, "Start an interactive prompt after evaluating the root file.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable colored diagnostics.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *fileFlag != "" {
		path = *fileFlag
	} else if *fFlag != "" {
		path = *fFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Root path determined.", "path", path)

	if path == "" && !*interactiveFlag {
		slog.Debug("No root file provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		RootPath:     path,
		SearchPaths:  searchPaths,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		PrintSymbols: *symbolsFlag,
		Interactive:  *interactiveFlag,
		NoColor:      *noColorFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
