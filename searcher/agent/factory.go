package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"twenty48/game"
	"twenty48/meta"
	"twenty48/searcher"
)

// New builds the agent described by the config. Searching agents collect
// metrics so the engine can record them.
func New(config meta.AgentConfig, seed uint64) (Agent, error) {
	config = config.WithDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Kind {
	case meta.MCTS:
		return newMCTS(config, seed), nil
	case meta.Expectimax:
		return newExpectimax(config)
	case meta.Random:
		return searcher.NewRandom(rand.New(rand.NewSource(seed))), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func newMCTS(config meta.AgentConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithExploration(config.Exploration),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	} else {
		options = append(options, searcher.WithDuration(config.Duration))
	}

	return searcher.NewMCTS(options...)
}

func newExpectimax(config meta.AgentConfig) (*searcher.Expectimax, error) {
	evaluate, err := game.LookupEvaluate(config.Heuristic)
	if err != nil {
		return nil, err
	}

	options := []searcher.ExpectimaxOption{
		searcher.WithDepth(config.Depth),
		searcher.WithHeuristic(evaluate),
		searcher.WithExpectimaxMetrics(),
	}
	if config.Parallel {
		options = append(options, searcher.WithParallel())
	}

	return searcher.NewExpectimax(options...), nil
}
