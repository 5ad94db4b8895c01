package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnmaze/frontier"
)

// TestPopMin_Empty verifies that an empty frontier reports ok=false.
func TestPopMin_Empty(t *testing.T) {
	f := frontier.New[string]()
	v, cost, ok := f.PopMin()
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, int64(0), cost)
	assert.Equal(t, 0, f.Len())
}

// TestPopMin_Order verifies cost ordering regardless of push order.
func TestPopMin_Order(t *testing.T) {
	f := frontier.New[string]()
	f.Push("c", 30)
	f.Push("a", 10)
	f.Push("d", 1001)
	f.Push("b", 20)
	require.Equal(t, 4, f.Len())

	var got []string
	var costs []int64
	for {
		v, c, ok := f.PopMin()
		if !ok {
			break
		}
		got = append(got, v)
		costs = append(costs, c)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
	assert.Equal(t, []int64{10, 20, 30, 1001}, costs)
}

// TestPopMin_TiesFIFO verifies that equal costs pop in insertion order.
func TestPopMin_TiesFIFO(t *testing.T) {
	f := frontier.New[int]()
	for i := 0; i < 50; i++ {
		f.Push(i, 7)
	}
	f.Push(-1, 3)

	v, _, ok := f.PopMin()
	require.True(t, ok)
	assert.Equal(t, -1, v)
	for i := 0; i < 50; i++ {
		v, c, ok := f.PopMin()
		require.True(t, ok)
		assert.Equal(t, i, v, "tie #%d popped out of insertion order", i)
		assert.Equal(t, int64(7), c)
	}
}

// TestPopMin_Interleaved mixes pushes and pops and checks that each pop
// returns the minimum of what is currently queued.
func TestPopMin_Interleaved(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	f := frontier.New[int64]()
	var shadow []int64

	for step := 0; step < 2000; step++ {
		if len(shadow) == 0 || r.Intn(3) > 0 {
			c := int64(r.Intn(100))
			f.Push(c, c)
			shadow = append(shadow, c)
			continue
		}
		sort.Slice(shadow, func(i, j int) bool { return shadow[i] < shadow[j] })
		v, c, ok := f.PopMin()
		require.True(t, ok)
		require.Equal(t, shadow[0], c)
		require.Equal(t, c, v)
		shadow = shadow[1:]
		require.Equal(t, len(shadow), f.Len())
	}
}
