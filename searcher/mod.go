package searcher

import (
	"twenty48/experiments/metrics"
	"twenty48/game"
)

// Searcher picks moves and reports how the search went
type Searcher interface {
	Play(state *game.State) game.Move
	Search(state *game.State) (game.Move, metrics.SearchMetric)
}

var (
	_ Searcher = (*MCTS)(nil)
	_ Searcher = (*Expectimax)(nil)
)
