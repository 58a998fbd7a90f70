// Command hillclimb reads a letter heightmap and prints the fewest steps for
// the forward climb (part 1) and the reverse descent (part 2).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/internal/cli"
	"github.com/katalvlaran/hillclimb/internal/config"
	"github.com/katalvlaran/hillclimb/search"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is main without the process exit, so tests can drive it. Answers go to
// out, logs to logOut.
func run(out, logOut io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	log, err := newLogger(cfg, logOut)
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("hillclimb: %w", err)
	}
	defer f.Close()

	hm, err := gridgraph.ParseHeightmap(f)
	if err != nil {
		return fmt.Errorf("hillclimb: %s: %w", cfg.Input, err)
	}
	log.WithFields(logrus.Fields{
		"input":  cfg.Input,
		"width":  hm.Grid.Width(),
		"height": hm.Grid.Height(),
		"start":  hm.Start.String(),
		"end":    hm.End.String(),
	}).Info("heightmap loaded")

	modes, err := cfg.ParsedModes()
	if err != nil {
		return err
	}

	began := time.Now()
	results, err := climb.SolveAll(context.Background(), hm, modes, searchOptions(cfg, log)...)
	if err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(began)).Debug("searches finished")

	for _, m := range modes {
		report(out, log, cfg, hm, m, results[m])
	}
	return nil
}

// searchOptions maps the config onto search options. Frontier tracing is
// only wired when trace logging is on; logrus serialises concurrent writes.
func searchOptions(cfg *config.Config, log *logrus.Logger) []search.Option {
	var opts []search.Option
	if cfg.ShowPath {
		opts = append(opts, search.WithReturnPath())
	}
	if cfg.MaxCost > 0 {
		opts = append(opts, search.WithMaxCost(cfg.MaxCost))
	}
	if log.IsLevelEnabled(logrus.TraceLevel) {
		opts = append(opts, search.WithOnPop(func(e search.Entry) {
			log.WithFields(logrus.Fields{
				"cost":      e.Cost,
				"coord":     e.Coord.String(),
				"elevation": int(e.Elevation),
			}).Trace("expand")
		}))
	}
	return opts
}

// report prints one answer block for mode m.
func report(out io.Writer, log *logrus.Logger, cfg *config.Config, hm *gridgraph.Heightmap, m climb.Mode, res *search.Result) {
	entry := log.WithFields(logrus.Fields{
		"mode":     m.String(),
		"expanded": res.Expanded,
		"visited":  res.Visited,
	})
	if !res.Found {
		entry.Warn("no path")
		fmt.Fprintf(out, "Part %d: no path\n", m.Part())
	} else {
		entry.WithField("cost", res.Cost).Info("path found")
		fmt.Fprintf(out, "Part %d: %d\n", m.Part(), res.Cost)
	}

	if cfg.ShowPath && res.Found {
		steps := make([]string, len(res.Path))
		for i, c := range res.Path {
			steps[i] = c.String()
		}
		fmt.Fprintf(out, "  path: %s\n", strings.Join(steps, " -> "))
	}
	if cfg.Stats {
		reachable := 0
		if start, legal, _, err := climb.Plan(hm, m); err == nil {
			reachable = len(hm.Grid.Reachable(start, legal))
		}
		fmt.Fprintf(out, "  expanded: %d, visited: %d, reachable: %d of %d cells\n",
			res.Expanded, res.Visited, reachable, hm.Grid.Len())
	}
}
