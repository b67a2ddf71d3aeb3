package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"twenty48/engine"
	"twenty48/experiments/metrics"
	"twenty48/meta"
	"twenty48/searcher/agent"
)

// Summary aggregates the games of one agent
type Summary struct {
	Agent     int
	Games     int
	MeanScore float64
	BestScore int
	MaxTile   int
	Fallbacks int
}

// Run plays config.Games games for every agent and stores the records as CSV
// files under outDir. Game i uses seed config.Seed+i for every agent, so all
// agents see the same starting grids.
func Run(config meta.Config, outDir string) ([]Summary, error) {
	config.Agents = lo.Map(config.Agents, func(a meta.AgentConfig, _ int) meta.AgentConfig {
		return a.WithDefaults()
	})
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid experiment: %w", err)
	}

	log.Info().
		Str("name", config.Name).
		Int("agents", len(config.Agents)).
		Int("games", config.Games).
		Msg("starting experiment...")

	// One slot per (agent, game) so records keep a stable order
	games := make([]metrics.GameRecord, len(config.Agents)*config.Games)
	moves := make([][]metrics.MoveRecord, len(games))

	var g errgroup.Group
	g.SetLimit(config.Parallel)
	for ai, agentConfig := range config.Agents {
		for i := 0; i < config.Games; i++ {
			slot := ai*config.Games + i
			seed := config.Seed + uint64(i)
			g.Go(func() error {
				gameMetric, moveMetrics, err := runGame(agentConfig, config.Size, seed)
				if err != nil {
					return fmt.Errorf("agent %d game %d: %w", agentConfig.ID, i+1, err)
				}

				games[slot] = metrics.GameRecord{
					ID:         slot + 1,
					Agent:      agentConfig.ID,
					GameMetric: gameMetric,
				}
				moves[slot] = lo.Map(moveMetrics, func(mm metrics.MoveMetric, _ int) metrics.MoveRecord {
					return metrics.MoveRecord{Game: slot + 1, Agent: agentConfig.ID, MoveMetric: mm}
				})

				log.Info().Msgf("completed agent %d game %d of %d with score %d",
					agentConfig.ID, i+1, config.Games, gameMetric.Score)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	if err := store(config, outDir, games, lo.Flatten(moves)); err != nil {
		return nil, err
	}

	summaries := Summarize(config.Agents, games)
	for _, s := range summaries {
		log.Info().
			Int("agent", s.Agent).
			Float64("mean_score", s.MeanScore).
			Int("best_score", s.BestScore).
			Int("max_tile", s.MaxTile).
			Int("fallbacks", s.Fallbacks).
			Msg("agent summary")
	}
	return summaries, nil
}

// runGame executes a single game for the agent and returns its metrics
func runGame(config meta.AgentConfig, size int, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	a, err := agent.New(config, seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	gameMetric, moveMetrics := engine.New(a, size, seed).Run()
	return gameMetric, moveMetrics, nil
}

func store(config meta.Config, outDir string, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(outDir, config.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(config.Agents); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}

// Summarize aggregates game records per agent, in agent order
func Summarize(agents []meta.AgentConfig, games []metrics.GameRecord) []Summary {
	byAgent := lo.GroupBy(games, func(r metrics.GameRecord) int {
		return r.Agent
	})

	summaries := make([]Summary, 0, len(agents))
	for _, a := range agents {
		records := byAgent[a.ID]
		s := Summary{Agent: a.ID, Games: len(records)}
		if len(records) > 0 {
			total := lo.SumBy(records, func(r metrics.GameRecord) int { return r.Score })
			s.MeanScore = float64(total) / float64(len(records))
			s.BestScore = lo.MaxBy(records, func(x, y metrics.GameRecord) bool { return x.Score > y.Score }).Score
			s.MaxTile = lo.MaxBy(records, func(x, y metrics.GameRecord) bool { return x.MaxTile > y.MaxTile }).MaxTile
			s.Fallbacks = lo.SumBy(records, func(r metrics.GameRecord) int { return r.Fallbacks })
		}
		summaries = append(summaries, s)
	}
	return summaries
}
