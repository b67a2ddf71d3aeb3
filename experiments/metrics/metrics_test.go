package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"twenty48/meta"
)

func TestCollector(t *testing.T) {
	t.Run("collecting search statistics", func(t *testing.T) {
		c := NewCollector()
		c.Start(2)
		c.AddEpisode()
		c.AddEpisode()
		c.AddNodes(5)
		c.AddNodes(3)
		c.SetDepth(4)

		got := c.Complete()

		require.Equal(t, 2, got.Goroutines)
		require.Equal(t, 2, got.Episodes)
		require.Equal(t, 8, got.Nodes)
		require.Equal(t, 4, got.Depth)
	})

	t.Run("restarting resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddEpisode()
		c.Start(1)

		require.Zero(t, c.Complete().Episodes)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(8)
		c.AddEpisode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]meta.AgentConfig{{ID: 1, Kind: meta.MCTS, Duration: time.Second}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, Agent: 1, GameMetric: GameMetric{Score: 1024, MaxTile: 128}}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, Agent: 1, MoveMetric: MoveMetric{Step: 1, Move: "UP"}}}))

	rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2, "Header and one record")
	require.Equal(t, "score", rows[0][3])
	require.Equal(t, "1024", rows[1][3])

	rows = readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, "1s", rows[1][3])

	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Equal(t, "UP", rows[1][3])
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
