package searcher

import (
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"twenty48/experiments/metrics"
	"twenty48/game"
	"twenty48/meta"
)

type ExpectimaxOption func(e *Expectimax)

// Expectimax alternates move layers (max) and tile layers (chance) down to a
// fixed depth. Both kinds of layer count toward the depth.
type Expectimax struct {
	depth    int
	evaluate game.Evaluate
	parallel bool
	metrics  metrics.Collector
}

func WithDepth(depth int) ExpectimaxOption {
	return func(e *Expectimax) {
		e.depth = max(depth, 0)
	}
}

// WithHeuristic sets the leaf evaluation, the accumulated score by default
func WithHeuristic(evaluate game.Evaluate) ExpectimaxOption {
	return func(e *Expectimax) {
		if evaluate != nil {
			e.evaluate = evaluate
		}
	}
}

// WithParallel evaluates root moves concurrently. Results match the
// sequential search.
func WithParallel() ExpectimaxOption {
	return func(e *Expectimax) {
		e.parallel = true
	}
}

func WithExpectimaxMetrics() ExpectimaxOption {
	return func(e *Expectimax) {
		e.metrics = metrics.NewCollector()
	}
}

func NewExpectimax(options ...ExpectimaxOption) *Expectimax {
	e := &Expectimax{
		depth:    meta.DEPTH,
		evaluate: game.EvaluateScore,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Expectimax) Play(state *game.State) game.Move {
	move, _ := e.Search(state)
	return move
}

func (e *Expectimax) Search(state *game.State) (game.Move, metrics.SearchMetric) {
	goroutines := 1
	if e.parallel {
		goroutines = game.NumMoves
	}
	e.metrics.Start(goroutines)
	move, ok, value := e.BestMove(state)
	e.metrics.SetDepth(e.depth)
	metric := e.metrics.Complete()

	if !ok {
		log.Debug().Float64("value", value).Msg("expectimax found no move, using default move")
		return game.DefaultMove, metric
	}
	log.Debug().Str("move", move.String()).Float64("value", value).Msg("expectimax decision")
	return move, metric
}

// BestMove searches from a max node at depth 0. ok is false when the search
// stopped before choosing a move: depth 0, or no legal move.
func (e *Expectimax) BestMove(state *game.State) (move game.Move, ok bool, value float64) {
	if e.parallel {
		return e.evaluateRoot(state)
	}
	return e.evaluateNode(false, state, 0)
}

func (e *Expectimax) evaluateNode(chance bool, state *game.State, depth int) (game.Move, bool, float64) {
	e.metrics.AddNodes(1)
	if depth >= e.depth {
		return game.DefaultMove, false, e.evaluate(state)
	}
	if chance {
		return game.DefaultMove, false, e.expectation(state, depth)
	}

	moves := state.LegalMoves()
	if len(moves) == 0 { // Terminal leaf
		return game.DefaultMove, false, e.evaluate(state)
	}

	values := make([]float64, len(moves))
	for i, move := range moves {
		next, _ := state.Apply(move)
		_, _, values[i] = e.evaluateNode(true, next, depth+1)
	}
	move, value := argmax(moves, values)
	return move, true, value
}

// expectation averages max nodes over every tile insertion
func (e *Expectimax) expectation(state *game.State, depth int) float64 {
	outcomes := state.Outcomes()
	if len(outcomes) == 0 {
		return e.evaluate(state)
	}
	expected := 0.0
	for _, outcome := range outcomes {
		_, _, value := e.evaluateNode(false, outcome.State, depth+1)
		expected += outcome.Probability * value
	}
	return expected
}

// evaluateRoot is evaluateNode at depth 0 with one goroutine per legal move
func (e *Expectimax) evaluateRoot(state *game.State) (game.Move, bool, float64) {
	e.metrics.AddNodes(1)
	if e.depth == 0 {
		return game.DefaultMove, false, e.evaluate(state)
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.DefaultMove, false, e.evaluate(state)
	}

	values := make([]float64, len(moves))
	var g errgroup.Group
	for i, move := range moves {
		g.Go(func() error {
			next, _ := state.Apply(move)
			_, _, values[i] = e.evaluateNode(true, next, 1)
			return nil
		})
	}
	_ = g.Wait() // Branches never fail

	move, value := argmax(moves, values)
	return move, true, value
}

// argmax keeps the first move on ties
func argmax(moves []game.Move, values []float64) (game.Move, float64) {
	best := moves[0]
	bestValue := math.Inf(-1)
	for i, value := range values {
		if i == 0 || value > bestValue {
			best = moves[i]
			bestValue = value
		}
	}
	return best, bestValue
}
