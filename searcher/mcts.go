package searcher

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"twenty48/experiments/metrics"
	"twenty48/game"
	"twenty48/meta"
)

type Option func(mcts *MCTS)

type MCTS struct {
	goroutines  int
	duration    time.Duration
	episodes    int
	exploration float64
	rng         *rand.Rand
	metrics     metrics.Collector
}

// WithDuration bounds each decision by wall-clock time. At least one episode
// always runs, so zero or negative durations still produce a decision.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		m.duration = max(duration, 0)
		m.episodes = 0
	}
}

// WithEpisodes runs a fixed number of episodes per decision instead of a
// time budget, which makes searches reproducible.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithExploration sets the UCT exploration constant. Rewards are raw game
// scores, so the constant lives on the same scale.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		m.exploration = c
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithGoroutines runs episodes on a shared tree. Selection, expansion and
// backup are serialized, rollouts run concurrently.
func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines:  1,
		duration:    meta.DURATION,
		exploration: meta.EXPLORATION,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

func (m *MCTS) Play(state *game.State) game.Move {
	move, _ := m.Search(state)
	return move
}

// Search builds a fresh tree for the state and returns the root move with the
// best average score. Without legal moves it returns game.DefaultMove at once.
func (m *MCTS) Search(state *game.State) (game.Move, metrics.SearchMetric) {
	m.metrics.Start(m.goroutines)
	if len(state.LegalMoves()) == 0 {
		return game.DefaultMove, m.metrics.Complete()
	}

	t := m.buildTree(state)
	m.metrics.AddNodes(t.size())
	m.metrics.SetDepth(t.depth())
	metric := m.metrics.Complete()

	move, ok := t.bestMove()
	if !ok {
		log.Warn().Msg("search finished without root children, using default move")
		return game.DefaultMove, metric
	}

	root := &t.nodes[rootHandle]
	log.Debug().
		Str("move", move.String()).
		Int("simulations", root.visits).
		Int("nodes", t.size()).
		Int("depth", t.depth()).
		Msg("mcts decision")
	return move, metric
}

type worker struct {
	rng    *rand.Rand
	policy Policy
}

type search struct {
	sync.Mutex
	tree        *tree
	exploration float64
	metrics     metrics.Collector
}

func (m *MCTS) buildTree(state *game.State) *tree {
	s := &search{
		tree:        newTree(state),
		exploration: m.exploration,
		metrics:     m.metrics,
	}

	// Every worker owns an RNG so rollouts never share one
	workers := make([]*worker, m.goroutines)
	for i := range workers {
		rng := rand.New(rand.NewSource(m.rng.Uint64()))
		workers[i] = &worker{rng: rng, policy: NewRandom(rng)}
	}

	if m.episodes > 0 {
		m.iterate(s, workers)
	} else {
		m.countdown(s, workers)
	}
	return s.tree
}

func (m *MCTS) iterate(s *search, workers []*worker) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for _, w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				s.episode(w)
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(s *search, workers []*worker) {
	start := time.Now()
	var wg sync.WaitGroup

	for _, w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				s.episode(w)
				if time.Since(start) >= m.duration {
					return
				}
			}
		}()
	}

	wg.Wait()
}

// episode runs selection, expansion, rollout and backup once
func (s *search) episode(w *worker) {
	s.Lock()
	leaf := s.tree.selectLeaf(s.exploration)
	simulated := s.tree.expand(leaf, w.rng)
	state := s.tree.nodes[simulated].state.Clone()
	s.Unlock()

	score := rollout(state, w.policy, w.rng)

	s.Lock()
	s.tree.backup(simulated, float64(score))
	s.Unlock()
	s.metrics.AddEpisode()
}
