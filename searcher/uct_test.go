package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		policy := newUCT(2.0, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + 2.0*math.Sqrt(math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + c*sqrt(ln(N)/n)")
	})

	t.Run("unvisited child is infinitely urgent", func(t *testing.T) {
		policy := newUCT(2.0, 100)

		require.True(t, math.IsInf(policy.evaluate(5.0, 0), 1), "Should prioritize unexplored children")
	})

	t.Run("unvisited parent has no exploration term", func(t *testing.T) {
		policy := newUCT(2.0, 0)

		require.Equal(t, 0.5, policy.evaluate(5.0, 10))
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		policy1 := newUCT(2.0, 100)
		policy2 := newUCT(2.0, 1000)

		require.Greater(t, policy2.evaluate(5.0, 10), policy1.evaluate(5.0, 10),
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCT(2.0, 100)

		require.Greater(t, policy.evaluate(5.0, 10), policy.evaluate(10.0, 20),
			"More child visits should decrease exploration term")
	})

	t.Run("exploitation term increases with rewards", func(t *testing.T) {
		policy := newUCT(2.0, 100)

		require.Greater(t, policy.evaluate(10.0, 10), policy.evaluate(5.0, 10),
			"More rewards should increase exploitation term")
	})
}
