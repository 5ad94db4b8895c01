package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/turnmaze/turnpath"
)

// Environment variables that provide flag defaults.
const (
	envInput    = "TURNMAZE_INPUT"
	envTurnCost = "TURNMAZE_TURN_COST"
	envStepCost = "TURNMAZE_STEP_COST"
	envLogLevel = "TURNMAZE_LOG_LEVEL"
)

// Config holds the resolved command-line configuration.
type Config struct {
	Input     string     // Maze file path, "-" for stdin
	TurnCost  int64      // Cost of a 90° turn plus step
	StepCost  int64      // Cost of a straight step
	Render    bool       // Print the maze with optimal cells marked
	EarlyExit bool       // Stop relaxing once the answer is settled
	LogLevel  slog.Level // Minimum level written to stderr
}

// loadDotEnv loads a .env file if present. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

// parseConfig resolves flags over environment defaults.
func parseConfig(args []string, stderr io.Writer) (Config, error) {
	turnDefault, err := envInt64(envTurnCost, turnpath.DefaultTurnCost)
	if err != nil {
		return Config{}, err
	}
	stepDefault, err := envInt64(envStepCost, turnpath.DefaultStepCost)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("turnmaze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("input", getEnvWithDefault(envInput, "-"), "maze file, - for stdin")
	turn := fs.Int64("turn", turnDefault, "cost of turning 90° and stepping")
	step := fs.Int64("step", stepDefault, "cost of stepping straight")
	render := fs.Bool("render", false, "print the maze with optimal cells marked O")
	early := fs.Bool("early-exit", false, "stop once the minimal cost is settled")
	levelStr := fs.String("log-level", getEnvWithDefault(envLogLevel, "info"), "debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return Config{
		Input:     *input,
		TurnCost:  *turn,
		StepCost:  *step,
		Render:    *render,
		EarlyExit: *early,
		LogLevel:  parseLevel(*levelStr),
	}, nil
}

// Options converts the configuration into search options.
func (c Config) Options() []turnpath.Option {
	opts := []turnpath.Option{
		turnpath.WithStepCost(c.StepCost),
		turnpath.WithTurnCost(c.TurnCost),
	}
	if c.EarlyExit {
		opts = append(opts, turnpath.WithEarlyExit())
	}

	return opts
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// getEnvWithDefault retrieves an environment variable or returns def if not set.
func getEnvWithDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return def
}

// envInt64 retrieves an environment variable as int64, or def if not set.
func envInt64(key string, def int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}

	return n, nil
}
