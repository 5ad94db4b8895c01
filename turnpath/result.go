package turnpath

import (
	"github.com/katalvlaran/turnmaze/grid"
)

// Result is the read-only outcome of a Search: the best-cost table, the
// predecessor sets, and the minimal cost at the end cell.
type Result struct {
	g        *grid.Grid
	options  Options
	cost     []int64
	preds    [][]int
	minCost  int64
	ends     []int
	expanded int
}

// Grid returns the grid the Result was computed on.
func (r *Result) Grid() *grid.Grid { return r.g }

// Options returns the validated options used by the Search.
func (r *Result) Options() Options { return r.options }

// MinCost returns the minimal cost of standing on the end cell in any facing.
func (r *Result) MinCost() int64 { return r.minCost }

// Expanded returns how many States were popped and expanded.
func (r *Result) Expanded() int { return r.expanded }

// id maps s to its arena index, or -1 if s is outside the grid.
func (r *Result) id(s State) int {
	if !r.g.InBounds(s.Cell) || !s.Facing.IsValid() {
		return -1
	}

	return r.g.Index(s.Cell)*grid.NumDirections + int(s.Facing)
}

func (r *Result) state(id int) State {
	return State{
		Cell:   r.g.CellAt(id / grid.NumDirections),
		Facing: grid.Direction(id % grid.NumDirections),
	}
}

// Cost returns the best cost recorded for s. ok is false when s was never
// relaxed or lies outside the grid.
func (r *Result) Cost(s State) (cost int64, ok bool) {
	id := r.id(s)
	if id < 0 || r.cost[id] == unset {
		return 0, false
	}

	return r.cost[id], true
}

// Table returns a snapshot of every relaxed State and its best cost.
// The map is freshly allocated; mutating it does not affect r.
func (r *Result) Table() map[State]int64 {
	out := make(map[State]int64)
	for id, c := range r.cost {
		if c != unset {
			out[r.state(id)] = c
		}
	}

	return out
}

// EndStates returns the States on the end cell whose cost equals MinCost,
// in facing order (North, East, South, West).
func (r *Result) EndStates() []State {
	out := make([]State, 0, len(r.ends))
	for _, id := range r.ends {
		out = append(out, r.state(id))
	}

	return out
}

// Predecessors returns every State from which s is reached at its best
// cost. The start State and unrelaxed States have none.
func (r *Result) Predecessors(s State) []State {
	id := r.id(s)
	if id < 0 {
		return nil
	}
	out := make([]State, 0, len(r.preds[id]))
	for _, p := range r.preds[id] {
		out = append(out, r.state(p))
	}

	return out
}
