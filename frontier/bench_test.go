package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/turnmaze/frontier"
)

// BenchmarkPushPop measures a push-heavy workload followed by a full drain.
// Complexity: O(N log N)
func BenchmarkPushPop(b *testing.B) {
	const n = 10000
	r := rand.New(rand.NewSource(42))
	costs := make([]int64, n)
	for i := range costs {
		costs[i] = int64(r.Intn(1 << 20))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := frontier.New[int]()
		for j, c := range costs {
			f.Push(j, c)
		}
		for f.Len() > 0 {
			_, _, _ = f.PopMin()
		}
	}
}
