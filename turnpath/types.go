// Package turnpath defines states, options and sentinel errors for the
// directional grid search.
package turnpath

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/turnmaze/grid"
)

// Sentinel errors returned by Search and its helpers.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("turnpath: grid is nil")

	// ErrUnreachable indicates that the frontier was exhausted before any
	// State on the end cell was reached.
	ErrUnreachable = errors.New("turnpath: end is unreachable from start")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("turnpath: invalid option supplied")

	// ErrBadStepCost indicates a step cost that is zero or negative.
	ErrBadStepCost = errors.New("turnpath: step cost must be positive")

	// ErrBadTurnCost indicates a turn cost lower than the step cost.
	ErrBadTurnCost = errors.New("turnpath: turn cost must be at least the step cost")

	// ErrBadFacing indicates an initial facing outside North..West.
	ErrBadFacing = errors.New("turnpath: initial facing is not a valid direction")
)

// Default move costs.
const (
	DefaultStepCost int64 = 1
	DefaultTurnCost int64 = 1001
)

// State is an oriented position: the vertex of the search graph.
type State struct {
	Cell   grid.Cell
	Facing grid.Direction
}

// String formats s as "x,y/Facing".
func (s State) String() string {
	return s.Cell.String() + "/" + s.Facing.String()
}

// Options configures Search.
//
// StepCost     : cost of moving one cell forward. Must be > 0.
// TurnCost     : cost of turning 90° and moving one cell in the new facing.
//
//	Must be ≥ StepCost.
//
// InitialFacing: facing of the walker on the start cell.
// EarlyExit    : stop once popped costs exceed the best end cost.
// OnExpand     : called once for every State expanded, with its final cost.
type Options struct {
	StepCost      int64
	TurnCost      int64
	InitialFacing grid.Direction
	EarlyExit     bool
	OnExpand      func(s State, cost int64)

	// internal error recorded during option parsing
	err error
}

// Option configures Search via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Search runs.
type Option func(*Options)

// DefaultOptions returns Options with the puzzle's conventions:
//   - StepCost:      1
//   - TurnCost:      1001
//   - InitialFacing: grid.East
//   - EarlyExit:     false (full relaxation)
//   - OnExpand:      no-op.
func DefaultOptions() Options {
	return Options{
		StepCost:      DefaultStepCost,
		TurnCost:      DefaultTurnCost,
		InitialFacing: grid.East,
		EarlyExit:     false,
		OnExpand:      func(State, int64) {},
	}
}

// WithStepCost sets the cost of a straight move.
func WithStepCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrBadStepCost, c)
			return
		}
		o.StepCost = c
	}
}

// WithTurnCost sets the cost of a 90° turn plus the move that follows it.
// It is checked against StepCost after all options are applied.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		o.TurnCost = c
	}
}

// WithInitialFacing sets the walker's facing on the start cell.
func WithInitialFacing(d grid.Direction) Option {
	return func(o *Options) {
		if !d.IsValid() {
			o.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrBadFacing, d)
			return
		}
		o.InitialFacing = d
	}
}

// WithEarlyExit stops the relaxation as soon as the frontier's minimum
// exceeds the best end cost, instead of draining the frontier.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// WithOnExpand registers a callback run for each expanded State.
func WithOnExpand(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// buildOptions applies opts over the defaults and validates cross-field rules.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	if cfg.TurnCost < cfg.StepCost {
		return cfg, fmt.Errorf("%w: %w (turn=%d step=%d)", ErrOptionViolation, ErrBadTurnCost, cfg.TurnCost, cfg.StepCost)
	}

	return cfg, nil
}
