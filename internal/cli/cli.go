// Package cli turns command-line arguments into a config.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/hillclimb/internal/config"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the merged Config, a
// boolean telling the caller to exit cleanly (help was printed), or an
// *ExitError for usage mistakes.
//
// Precedence, lowest first: config.Default, the -config file, explicit flags,
// the positional input path.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	fs := flag.NewFlagSet("hillclimb", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
hillclimb - fewest steps across a letter heightmap.

Usage:
  hillclimb [options] [INPUT]

Arguments:
  INPUT
    Heightmap file: rows of a-z with one 'S' (source) and one 'E' (peak).

Options:
`)
		fs.PrintDefaults()
	}

	configFlag := fs.String("config", "", "Path to a YAML config file.")
	inputFlag := fs.String("input", "", "Path to the heightmap file.")
	modeFlag := fs.String("mode", "both", "Traversal to run: 'forward', 'reverse' or 'both'.")
	pathFlag := fs.Bool("path", false, "Print the walked path under each answer.")
	statsFlag := fs.Bool("stats", false, "Print search counters under each answer.")
	maxCostFlag := fs.Int("max-cost", 0, "Give up beyond this many steps. 0 disables the cap.")
	logLevelFlag := fs.String("log-level", "info", "Logging level: 'trace', 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := fs.String("log-format", "text", "Log output format: 'text' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	// Only flags the user actually set override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *inputFlag
		case "mode":
			cfg.Modes = modesFromFlag(*modeFlag)
		case "path":
			cfg.ShowPath = *pathFlag
		case "stats":
			cfg.Stats = *statsFlag
		case "max-cost":
			cfg.MaxCost = *maxCostFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		}
	})
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}

	if cfg.Input == "" {
		fs.Usage()
		return nil, false, &ExitError{Code: 2, Message: "hillclimb: no input file given"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}

// modesFromFlag expands "both" and splits comma-separated lists.
func modesFromFlag(v string) []string {
	if strings.EqualFold(strings.TrimSpace(v), "both") {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
