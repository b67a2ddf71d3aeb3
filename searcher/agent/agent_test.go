package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"twenty48/game"
	"twenty48/meta"
	"twenty48/searcher"
)

func TestNew(t *testing.T) {
	state := game.Setup(4, rand.New(rand.NewSource(1)))

	t.Run("building each kind", func(t *testing.T) {
		configs := []meta.AgentConfig{
			{Kind: meta.MCTS, Episodes: 20},
			{Kind: meta.Expectimax, Depth: 2, Heuristic: "blend", Parallel: true},
			{Kind: meta.Random},
		}
		for _, config := range configs {
			a, err := New(config, 3)
			require.NoError(t, err, "Kind %s", config.Kind)
			require.Contains(t, state.LegalMoves(), a.Play(state), "Kind %s should play a legal move", config.Kind)
		}
	})

	t.Run("searching agents report metrics", func(t *testing.T) {
		a, err := New(meta.AgentConfig{Kind: meta.MCTS, Episodes: 20}, 3)
		require.NoError(t, err)

		s, ok := a.(searcher.Searcher)
		require.True(t, ok)
		_, metric := s.Search(state)
		require.Equal(t, 20, metric.Episodes)
	})

	t.Run("rejecting unknown heuristics", func(t *testing.T) {
		_, err := New(meta.AgentConfig{Kind: meta.Expectimax, Heuristic: "magic"}, 1)
		require.Error(t, err)
	})

	t.Run("rejecting unknown kinds", func(t *testing.T) {
		_, err := New(meta.AgentConfig{Kind: "human"}, 1)
		require.Error(t, err)
	})
}
