package engine

import (
	"twenty48/experiments/metrics"
	"twenty48/meta"
)

const MaxMoves = meta.MAX_MOVES

type Engine interface {
	// Run plays a game until no move changes the grid or MaxMoves is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

var _ Engine = (*LocalEngine)(nil)
