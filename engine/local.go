package engine

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"twenty48/experiments/metrics"
	"twenty48/game"
	"twenty48/searcher"
	"twenty48/searcher/agent"
)

// LocalEngine drives a single agent through one game. The engine owns the
// live state and the RNG that places new tiles.
type LocalEngine struct {
	State *game.State
	agent agent.Agent
	rng   *rand.Rand
	seed  uint64
}

// New sets up a size x size game with two random tiles. Games with the same
// seed start from the same grid and see the same tile sequence for the same
// moves.
func New(a agent.Agent, size int, seed uint64) *LocalEngine {
	rng := rand.New(rand.NewSource(seed))
	return &LocalEngine{
		State: game.Setup(size, rng),
		agent: a,
		rng:   rng,
		seed:  seed,
	}
}

// Run executes the entire game loop until the game is over.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Seed:      e.seed,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Uint64("seed", e.seed).Int("size", e.State.Size()).Msg("game started")

	for step := 1; step <= MaxMoves && !e.State.IsTerminal(); step++ {
		move, search := e.decide()

		next, err := e.State.Play(move, e.rng)
		if err != nil {
			fallback, ok := e.fallback(err)
			if !ok {
				break
			}
			gameMetric.Fallbacks++
			move = fallback
			next, _ = e.State.Play(move, e.rng)
		}
		e.State = next

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Move:         move.String(),
			Score:        e.State.Score(),
			SearchMetric: search,
		})
		log.Debug().
			Int("step", step).
			Str("move", move.String()).
			Int("score", e.State.Score()).
			Msg("move played")
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Score = e.State.Score()
	gameMetric.MaxTile = e.State.MaxTile()
	gameMetric.TotalMoves = len(moveMetrics)

	if !e.State.IsTerminal() {
		log.Warn().Int("moves", gameMetric.TotalMoves).Msg("game stopped before the end")
	}
	log.Info().
		Uint64("seed", e.seed).
		Int("score", gameMetric.Score).
		Int("max_tile", gameMetric.MaxTile).
		Int("moves", gameMetric.TotalMoves).
		Dur("duration", gameMetric.Duration).
		Msg("game over")

	return gameMetric, moveMetrics
}

// decide asks the agent for a move on a copy of the live state
func (e *LocalEngine) decide() (game.Move, metrics.SearchMetric) {
	state := e.State.Clone()
	if s, ok := e.agent.(searcher.Searcher); ok {
		return s.Search(state)
	}
	return e.agent.Play(state), metrics.SearchMetric{}
}

// fallback replaces an illegal agent move with the first legal one
func (e *LocalEngine) fallback(err error) (game.Move, bool) {
	moves := e.State.LegalMoves()
	if len(moves) == 0 {
		return game.DefaultMove, false
	}

	event := log.Warn().Err(err).Str("fallback", moves[0].String())
	var invalid *game.InvalidMoveError
	if errors.As(err, &invalid) {
		event = event.Str("move", invalid.Move.String())
	}
	event.Msg("agent returned an illegal move")
	return moves[0], true
}
