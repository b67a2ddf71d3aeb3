package agent

import (
	"twenty48/game"
	"twenty48/searcher"
)

type Agent interface {
	// Play returns the agent's move for the state. The state must not be modified.
	Play(state *game.State) game.Move
}

var (
	_ Agent = (*searcher.MCTS)(nil)
	_ Agent = (*searcher.Expectimax)(nil)
	_ Agent = (*searcher.Random)(nil)
)
