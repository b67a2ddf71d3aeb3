package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"twenty48/game"
	"twenty48/searcher"
)

// stubborn always plays the same move, legal or not
type stubborn struct {
	move game.Move
}

func (s stubborn) Play(state *game.State) game.Move {
	return s.move
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("playing a random agent to the end", func(t *testing.T) {
		e := New(searcher.NewRandom(rand.New(rand.NewSource(1))), 4, 7)

		gameMetric, moveMetrics := e.Run()

		require.True(t, e.State.IsTerminal(), "Game should end on a terminal state")
		require.Equal(t, uint64(7), gameMetric.Seed)
		require.Equal(t, e.State.Score(), gameMetric.Score)
		require.Equal(t, e.State.MaxTile(), gameMetric.MaxTile)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Zero(t, gameMetric.Fallbacks, "Random agent only plays legal moves")
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))

		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			if i > 0 {
				require.GreaterOrEqual(t, mm.Score, moveMetrics[i-1].Score, "Score should never decrease")
			}
		}
	})

	t.Run("replacing illegal moves", func(t *testing.T) {
		e := New(stubborn{move: game.Up}, 4, 3)

		gameMetric, moveMetrics := e.Run()

		require.True(t, e.State.IsTerminal())
		require.Positive(t, gameMetric.Fallbacks, "UP alone cannot finish a game")
		for _, mm := range moveMetrics {
			require.NotEmpty(t, mm.Move)
		}
	})

	t.Run("recording search metrics", func(t *testing.T) {
		mcts := searcher.NewMCTS(searcher.WithEpisodes(5), searcher.WithSeed(2), searcher.WithMetrics())
		e := New(mcts, 3, 5)

		_, moveMetrics := e.Run()

		require.NotEmpty(t, moveMetrics)
		for _, mm := range moveMetrics {
			require.Equal(t, 5, mm.Episodes)
			require.Positive(t, mm.Nodes)
		}
	})

	t.Run("same seed replays the same game", func(t *testing.T) {
		play := func() []string {
			e := New(searcher.NewRandom(rand.New(rand.NewSource(4))), 4, 11)
			_, moveMetrics := e.Run()
			moves := make([]string, len(moveMetrics))
			for i, mm := range moveMetrics {
				moves[i] = mm.Move
			}
			return moves
		}

		require.Equal(t, play(), play())
	})
}
