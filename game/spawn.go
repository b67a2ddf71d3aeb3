package game

// Outcome is one stochastic tile insertion and its probability.
type Outcome struct {
	Probability float64
	State       *State
}

// InsertRandomTile places a rank 1 (p=0.9) or rank 2 tile in a uniformly
// chosen empty cell. A full grid is left unchanged and false is returned.
func (s *State) InsertRandomTile(rng Rand) bool {
	cells := s.EmptyCells()
	if len(cells) == 0 {
		return false
	}
	rank := uint8(SmallTileRank)
	if rng.Float64() >= SmallTileProbability {
		rank = LargeTileRank
	}
	s.grid[cells[rng.Intn(len(cells))]] = rank
	return true
}

// Outcomes enumerates every possible insertion: for each empty cell in
// row-major order a small tile then a large tile. Probabilities sum to 1 when
// the grid has an empty cell; a full grid has no outcomes.
func (s *State) Outcomes() []Outcome {
	cells := s.EmptyCells()
	if len(cells) == 0 {
		return nil
	}
	n := float64(len(cells))
	outcomes := make([]Outcome, 0, 2*len(cells))
	for _, cell := range cells {
		small := s.Clone()
		small.grid[cell] = SmallTileRank
		large := s.Clone()
		large.grid[cell] = LargeTileRank
		outcomes = append(outcomes,
			Outcome{Probability: SmallTileProbability / n, State: small},
			Outcome{Probability: LargeTileProbability / n, State: large},
		)
	}
	return outcomes
}
