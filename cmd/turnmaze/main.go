// Command turnmaze reads a maze and prints the minimal route cost and the
// number of cells lying on any minimal route.
//
// Usage:
//
//	turnmaze -input maze.txt [-turn 1001] [-step 1] [-render] [-early-exit] [-log-level info]
//
// Flag defaults may be set through TURNMAZE_* environment variables or a
// .env file in the working directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/turnmaze/grid"
	"github.com/katalvlaran/turnmaze/turnpath"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	g, err := readGrid(cfg.Input, stdin)
	if err != nil {
		logger.Error("read maze", "input", cfg.Input, "err", err)
		return 1
	}
	logger.Debug("maze loaded", "width", g.Width, "height", g.Height,
		"start", g.Start().String(), "end", g.End().String())

	began := time.Now()
	res, err := turnpath.Search(g, cfg.Options()...)
	if err != nil {
		logger.Error("search failed", "err", err, "unreachable", errors.Is(err, turnpath.ErrUnreachable))
		return 1
	}
	cells := res.OptimalCells()
	logger.Info("solved",
		"cost", res.MinCost(),
		"tiles", cells.Size(),
		"expanded", res.Expanded(),
		"end_states", len(res.EndStates()),
		"dur", time.Since(began).Round(time.Microsecond),
	)

	fmt.Fprintln(stdout, res.MinCost())
	fmt.Fprintln(stdout, cells.Size())
	if cfg.Render {
		fmt.Fprint(stdout, g.Render(cells.Has))
	}

	return 0
}

// readGrid parses the maze at path, or from stdin when path is "-".
func readGrid(path string, stdin io.Reader) (*grid.Grid, error) {
	if path == "-" {
		return grid.ParseReader(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return grid.ParseReader(f)
}
