package turnpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnmaze/grid"
)

// smallMaze has one main corridor plus a loop; several routes tie.
const smallMaze = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############`

// largeMaze has multiple equal-cost routes of different shapes.
const largeMaze = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################`

// mustParse parses text or fails the test.
func mustParse(t testing.TB, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)

	return g
}

// routeCost replays a cell route from facing and prices it with the given
// step and turn costs. It fails the test on an illegal move.
func routeCost(t testing.TB, g *grid.Grid, route []grid.Cell, facing grid.Direction, step, turn int64) int64 {
	t.Helper()
	var total int64
	for i := 1; i < len(route); i++ {
		from, to := route[i-1], route[i]
		require.True(t, g.Passable(to), "route enters wall at %s", to)
		moved := false
		for _, d := range grid.AllDirections() {
			if from.Add(d) != to {
				continue
			}
			require.NotEqual(t, facing.Opposite(), d, "route reverses at %s", from)
			if d == facing {
				total += step
			} else {
				total += turn
			}
			facing = d
			moved = true
		}
		require.True(t, moved, "cells %s and %s are not adjacent", from, to)
	}

	return total
}
