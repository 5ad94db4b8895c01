package turnpath_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/turnmaze/grid"
	"github.com/katalvlaran/turnmaze/turnpath"
)

// randomMaze builds an n×n maze with a solid border, roughly one wall in
// five inside, S in the bottom-left and E in the top-right corner.
func randomMaze(n int, seed int64) string {
	r := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch {
			case x == 0 || y == 0 || x == n-1 || y == n-1:
				sb.WriteByte('#')
			case x == 1 && y == n-2:
				sb.WriteByte('S')
			case x == n-2 && y == 1:
				sb.WriteByte('E')
			case r.Intn(5) == 0:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// benchGrid returns a solvable random maze, trying seeds until one works.
func benchGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	for seed := int64(42); ; seed++ {
		g, err := grid.Parse(randomMaze(n, seed))
		if err != nil {
			b.Fatalf("setup Parse failed: %v", err)
		}
		if _, err := turnpath.MinCost(g); err == nil {
			return g
		}
	}
}

// BenchmarkSearch measures full relaxation plus extraction on a 141×141 maze.
// Complexity: O(S log S), S = W×H×4
func BenchmarkSearch(b *testing.B) {
	g := benchGrid(b, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := turnpath.Search(g)
		if err != nil {
			b.Fatal(err)
		}
		_ = res.OptimalCells().Size()
	}
}

// BenchmarkMinCost measures the early-exit search alone.
func BenchmarkMinCost(b *testing.B) {
	g := benchGrid(b, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := turnpath.MinCost(g); err != nil {
			b.Fatal(err)
		}
	}
}
