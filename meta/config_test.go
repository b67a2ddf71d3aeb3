package meta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("decoding agents with defaults", func(t *testing.T) {
		data := []byte(`
name: baseline
games: 3
seed: 9
parallel: 2
agents:
  - kind: mcts
    duration: 20ms
    exploration: 500
  - kind: expectimax
    heuristic: blend
  - id: 7
    kind: random
`)

		config, err := Parse(data)

		require.NoError(t, err)
		require.Equal(t, "baseline", config.Name)
		require.Equal(t, 3, config.Games)
		require.Equal(t, BOARD_SIZE, config.Size, "Size should default")
		require.Equal(t, uint64(9), config.Seed)
		require.Len(t, config.Agents, 3)

		require.Equal(t, 1, config.Agents[0].ID, "IDs should default to positions")
		require.Equal(t, 20*time.Millisecond, config.Agents[0].Duration)
		require.Equal(t, 500.0, config.Agents[0].Exploration)
		require.Equal(t, 1, config.Agents[0].Goroutines)

		require.Equal(t, DEPTH, config.Agents[1].Depth)
		require.Equal(t, "blend", config.Agents[1].Heuristic)

		require.Equal(t, 7, config.Agents[2].ID)
	})

	t.Run("rejecting unknown agent kinds", func(t *testing.T) {
		_, err := Parse([]byte("agents:\n  - kind: human\n"))
		require.Error(t, err)
	})

	t.Run("rejecting duplicate ids", func(t *testing.T) {
		_, err := Parse([]byte("agents:\n  - id: 1\n  - id: 1\n"))
		require.Error(t, err)
	})

	t.Run("rejecting an empty agent list", func(t *testing.T) {
		_, err := Parse([]byte("games: 2\n"))
		require.Error(t, err)
	})

	t.Run("rejecting malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("games: [\n"))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte("agents:\n  - kind: random\n"), 0o644))

	config, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, GAMES, config.Games)
	require.Equal(t, Random, config.Agents[0].Kind)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestAgentDefaults(t *testing.T) {
	mcts := AgentConfig{}.WithDefaults()
	require.Equal(t, MCTS, mcts.Kind)
	require.Equal(t, DURATION, mcts.Duration)
	require.Equal(t, EXPLORATION, mcts.Exploration)

	episodes := AgentConfig{Kind: MCTS, Episodes: 50}.WithDefaults()
	require.Zero(t, episodes.Duration, "Episode budget should not get a duration")
}
