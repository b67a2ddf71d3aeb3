package searcher

import (
	"twenty48/game"
)

// Policy chooses moves during rollouts
type Policy interface {
	Choose(state *game.State) game.Move
}

// Random picks a uniformly random legal move. It doubles as the rollout
// policy of MCTS and as a baseline agent.
type Random struct {
	rng game.Rand
}

func NewRandom(rng game.Rand) *Random {
	return &Random{rng: rng}
}

// Choose returns a random legal move, or game.DefaultMove when there is none
func (r *Random) Choose(state *game.State) game.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.DefaultMove
	}
	return moves[r.rng.Intn(len(moves))]
}

func (r *Random) Play(state *game.State) game.Move {
	return r.Choose(state)
}

// rollout plays full turns on state until the policy's move leaves the grid
// unchanged, and returns the final score. The state is consumed.
func rollout(state *game.State, policy Policy, rng game.Rand) int {
	for state.Step(policy.Choose(state), rng) {
	}
	return state.Score()
}
