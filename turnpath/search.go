// Package turnpath implements the oriented Dijkstra relaxation.
//
// Notes on implementation choices:
//
//   - Every State gets a stable integer id: cellIndex*4 + facing. The best
//     cost table and the predecessor sets are flat slices indexed by id.
//   - We use a lazy decrease-key strategy: improved States are pushed again
//     and stale heap entries are skipped when popped.
//   - A transition that ties the recorded cost adds its source as an extra
//     predecessor; a strictly better one replaces the predecessor set.
package turnpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/turnmaze/frontier"
	"github.com/katalvlaran/turnmaze/grid"
)

// unset marks a State that has not been relaxed yet.
const unset = math.MaxInt64

// Search runs the oriented relaxation over g from (g.Start(), InitialFacing)
// and returns the best-cost table together with predecessor sets.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. Some State on g.End() must be reachable (ErrUnreachable).
//
// Complexity:
//
//   - Time:  O(S log S), S = W×H×4
//   - Space: O(S)
func Search(g *grid.Grid, opts ...Option) (*Result, error) {
	// 1) Validate grid is non-nil
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2) Build and validate Options
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 3) Guard against cost overflow: no route visits more than S States.
	states := int64(g.Size()) * grid.NumDirections
	if cfg.TurnCost > math.MaxInt64/states {
		return nil, fmt.Errorf("%w: turn cost %d may overflow on a %dx%d grid",
			ErrOptionViolation, cfg.TurnCost, g.Width, g.Height)
	}

	// 4) Fail fast when no 4-connected path exists at all.
	if !g.Connected(g.Start(), g.End()) {
		return nil, unreachable(g)
	}

	// 5) Prepare the arenas and run.
	r := &runner{
		g:       g,
		options: cfg,
		cost:    make([]int64, states),
		preds:   make([][]int, states),
		done:    make([]bool, states),
		pq:      frontier.New[int](),
		endCost: unset,
	}
	r.init()
	r.process()

	// 6) The frontier drained without touching the end cell.
	if r.endCost == unset {
		return nil, unreachable(g)
	}

	return r.result(), nil
}

// MinCost returns only the minimal cost from start to end.
// It runs Search with WithEarlyExit appended.
func MinCost(g *grid.Grid, opts ...Option) (int64, error) {
	res, err := Search(g, append(opts, WithEarlyExit())...)
	if err != nil {
		return 0, err
	}

	return res.MinCost(), nil
}

func unreachable(g *grid.Grid) error {
	return fmt.Errorf("%w: start %s, end %s", ErrUnreachable, g.Start(), g.End())
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g        *grid.Grid              // The input grid; read-only.
	options  Options                 // Validated configuration.
	cost     []int64                 // State id → best cost so far (unset if never relaxed).
	preds    [][]int                 // State id → ids of predecessors achieving cost.
	done     []bool                  // State id → expanded (cost final).
	pq       *frontier.Frontier[int] // Min-heap of State ids.
	endCost  int64                   // Best cost of an expanded end State.
	expanded int                     // Number of States expanded.
}

// id maps a State to its arena index.
func (r *runner) id(c grid.Cell, d grid.Direction) int {
	return r.g.Index(c)*grid.NumDirections + int(d)
}

// state maps an arena index back to its State.
func (r *runner) state(id int) State {
	return State{
		Cell:   r.g.CellAt(id / grid.NumDirections),
		Facing: grid.Direction(id % grid.NumDirections),
	}
}

// init marks every State unset and seeds the start State at cost 0.
func (r *runner) init() {
	for i := range r.cost {
		r.cost[i] = unset
	}
	src := r.id(r.g.Start(), r.options.InitialFacing)
	r.cost[src] = 0
	r.pq.Push(src, 0)
}

// process is the main loop. It pops the cheapest State, skips stale
// entries, and relaxes the transitions out of it.
//
// Loop termination conditions:
//
//   - The frontier becomes empty (default).
//   - EarlyExit is set and the popped cost exceeds the best end cost.
func (r *runner) process() {
	end := r.g.End()
	for {
		// 1) Pop the smallest-cost entry.
		u, d, ok := r.pq.PopMin()
		if !ok {
			return
		}

		// 2) Skip stale entries: already expanded, or superseded by a cheaper push.
		if r.done[u] || d > r.cost[u] {
			continue
		}

		// 3) With EarlyExit, everything left costs more than the answer.
		if r.options.EarlyExit && d > r.endCost {
			return
		}

		// 4) Finalize u.
		r.done[u] = true
		r.expanded++
		s := r.state(u)
		r.options.OnExpand(s, d)

		// 5) End States are absorbing: record and do not expand further.
		if s.Cell == end {
			if d < r.endCost {
				r.endCost = d
			}
			continue
		}

		// 6) Relax forward and both perpendicular moves. Never reverse.
		r.relax(u, s, s.Facing, d+r.options.StepCost)
		for _, turn := range s.Facing.Perpendicular() {
			r.relax(u, s, turn, d+r.options.TurnCost)
		}
	}
}

// relax tries the move from State u (= s) one cell in direction dir at
// total cost nc. A strictly cheaper arrival replaces the destination's
// predecessor set; an equal one extends it.
func (r *runner) relax(u int, s State, dir grid.Direction, nc int64) {
	next := s.Cell.Add(dir)
	if r.g.IsWall(next) {
		return
	}
	v := r.id(next, dir)

	switch {
	case nc < r.cost[v]:
		r.cost[v] = nc
		r.preds[v] = append(r.preds[v][:0], u)
		r.pq.Push(v, nc)
	case nc == r.cost[v]:
		r.preds[v] = append(r.preds[v], u)
	}
}

// result freezes the runner's arenas into a Result.
func (r *runner) result() *Result {
	end := r.g.End()
	var ends []int
	for _, d := range grid.AllDirections() {
		if id := r.id(end, d); r.cost[id] == r.endCost {
			ends = append(ends, id)
		}
	}

	return &Result{
		g:        r.g,
		options:  r.options,
		cost:     r.cost,
		preds:    r.preds,
		minCost:  r.endCost,
		ends:     ends,
		expanded: r.expanded,
	}
}
