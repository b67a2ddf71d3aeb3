package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"twenty48/engine"
	"twenty48/experiments"
	"twenty48/meta"
	"twenty48/searcher/agent"
)

func main() {
	kind := flag.String("agent", meta.MCTS, "Agent kind: mcts, expectimax or random")
	size := flag.Int("size", meta.BOARD_SIZE, "Board dimension")
	duration := flag.Duration("duration", meta.DURATION, "MCTS time budget per move")
	episodes := flag.Int("episodes", 0, "MCTS episodes per move, overrides -duration")
	exploration := flag.Float64("uct", meta.EXPLORATION, "UCT exploration constant")
	goroutines := flag.Int("goroutines", 1, "Number of goroutines for parallel playouts")
	depth := flag.Int("depth", meta.DEPTH, "Expectimax depth, counting move and tile layers")
	heuristic := flag.String("heuristic", "score", "Expectimax leaf evaluation")
	parallel := flag.Bool("parallel", false, "Evaluate expectimax root moves concurrently")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the game and the agent")
	experiment := flag.String("experiment", "", "YAML experiment file, runs it instead of a single game")
	out := flag.String("out", "results", "Directory for experiment results")
	level := flag.String("log-level", "info", "Log level: debug, info, warn, error or disabled")
	flag.Parse()

	setupLogging(*level)

	if *experiment != "" {
		config, err := meta.Load(*experiment)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment")
		}
		if _, err := experiments.Run(config, *out); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	config := meta.AgentConfig{
		ID:          1,
		Kind:        *kind,
		Goroutines:  *goroutines,
		Duration:    *duration,
		Episodes:    *episodes,
		Exploration: *exploration,
		Depth:       *depth,
		Heuristic:   *heuristic,
		Parallel:    *parallel,
	}
	a, err := agent.New(config, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create agent")
	}

	e := engine.New(a, *size, *seed)
	gameMetric, _ := e.Run()

	log.Info().
		Int("score", gameMetric.Score).
		Int("max_tile", gameMetric.MaxTile).
		Int("moves", gameMetric.TotalMoves).
		Msgf("final board\n%s", e.State)
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	l, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		l = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(l)
}
