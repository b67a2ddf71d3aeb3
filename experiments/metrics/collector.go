package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Duration   time.Duration
	Episodes   int // MCTS simulations completed
	Nodes      int // Tree nodes (MCTS) or evaluated nodes (expectimax)
	Depth      int // Deepest tree level reached
}

type MoveMetric struct {
	Step  int
	Move  string
	Score int // Score after the move
	SearchMetric
}

type GameMetric struct {
	Seed       uint64
	Score      int
	MaxTile    int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Fallbacks  int // Illegal agent moves replaced by the engine
}

type Collector interface {
	Start(goroutines int)
	AddEpisode()
	AddNodes(n int)
	SetDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	startTime  time.Time
	episodes   atomic.Int64
	nodes      atomic.Int64
	depth      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.episodes.Store(0)
	m.nodes.Store(0)
	m.depth.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int64(n))
}

func (m *collector) SetDepth(depth int) {
	m.depth.Store(int64(depth))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Episodes:   int(m.episodes.Load()),
		Nodes:      int(m.nodes.Load()),
		Depth:      int(m.depth.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)   {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddNodes(n int)         {}
func (m *dummyCollector) SetDepth(depth int)     {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
