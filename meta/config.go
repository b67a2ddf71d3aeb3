package meta

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Agent kinds understood by the agent factory
const (
	MCTS       = "mcts"
	Expectimax = "expectimax"
	Random     = "random"
)

// AgentConfig describes one agent. Zero values fall back to package defaults.
type AgentConfig struct {
	ID          int           `yaml:"id"`
	Kind        string        `yaml:"kind"`
	Goroutines  int           `yaml:"goroutines"`
	Duration    time.Duration `yaml:"duration"`
	Episodes    int           `yaml:"episodes"`
	Exploration float64       `yaml:"exploration"`
	Depth       int           `yaml:"depth"`
	Heuristic   string        `yaml:"heuristic"`
	Parallel    bool          `yaml:"parallel"`
}

// Config describes an experiment: every agent plays the same seeded games.
type Config struct {
	Name     string        `yaml:"name"`
	Games    int           `yaml:"games"`
	Size     int           `yaml:"size"`
	Seed     uint64        `yaml:"seed"`
	Parallel int           `yaml:"parallel"` // Games played concurrently
	Agents   []AgentConfig `yaml:"agents"`
}

func DefaultConfig() Config {
	return Config{
		Name:     "experiment",
		Games:    GAMES,
		Size:     BOARD_SIZE,
		Seed:     1,
		Parallel: 1,
	}
}

// Load reads an experiment configuration from a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	for i := range config.Agents {
		config.Agents[i] = config.Agents[i].WithDefaults()
		if config.Agents[i].ID == 0 {
			config.Agents[i].ID = i + 1
		}
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Size < 2 {
		return fmt.Errorf("board size must be at least 2, got %d", c.Size)
	}
	if c.Parallel <= 0 {
		return fmt.Errorf("parallel must be positive, got %d", c.Parallel)
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("no agents configured")
	}
	seen := make(map[int]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if err := agent.Validate(); err != nil {
			return fmt.Errorf("agent %d: %w", agent.ID, err)
		}
		if seen[agent.ID] {
			return fmt.Errorf("duplicate agent id %d", agent.ID)
		}
		seen[agent.ID] = true
	}
	return nil
}

// WithDefaults fills unset knobs for the agent's kind.
func (a AgentConfig) WithDefaults() AgentConfig {
	if a.Kind == "" {
		a.Kind = MCTS
	}
	if a.Goroutines <= 0 {
		a.Goroutines = 1
	}
	switch a.Kind {
	case MCTS:
		if a.Duration == 0 && a.Episodes == 0 {
			a.Duration = DURATION
		}
		if a.Exploration == 0 {
			a.Exploration = EXPLORATION
		}
	case Expectimax:
		if a.Depth == 0 {
			a.Depth = DEPTH
		}
	}
	return a
}

func (a AgentConfig) Validate() error {
	switch a.Kind {
	case MCTS, Expectimax, Random:
	default:
		return fmt.Errorf("unknown agent kind %q", a.Kind)
	}
	if a.Episodes < 0 {
		return fmt.Errorf("episodes must not be negative, got %d", a.Episodes)
	}
	if a.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", a.Depth)
	}
	return nil
}
