package game

// Swipe slides, merges and slides again along the move's vector, in place.
// Returns whether the grid changed.
func (s *State) Swipe(move Move) bool {
	if !move.Valid() {
		return false
	}
	dRow, dCol := move.Vector()
	rows, cols := s.order(dRow, dCol)
	moved1 := s.slide(dRow, dCol, rows, cols)
	moved2 := s.merge(dRow, dCol, rows, cols)
	moved3 := s.slide(dRow, dCol, rows, cols)
	return moved1 || moved2 || moved3
}

// Apply returns a copy of the state after the swipe, without a random tile.
func (s *State) Apply(move Move) (*State, bool) {
	next := s.Clone()
	changed := next.Swipe(move)
	return next, changed
}

// Step plays a full turn in place: the swipe, then a random tile if the grid
// changed. An unchanged grid is a no-op.
func (s *State) Step(move Move, rng Rand) bool {
	if !s.Swipe(move) {
		return false
	}
	s.InsertRandomTile(rng)
	return true
}

// Play returns a copy of the state after a full turn. The move must be legal.
func (s *State) Play(move Move, rng Rand) (*State, error) {
	next := s.Clone()
	if !next.Step(move, rng) {
		return nil, &InvalidMoveError{Move: move}
	}
	return next, nil
}

// LegalMoves returns, in enumeration order, every move that changes the grid.
func (s *State) LegalMoves() []Move {
	moves := make([]Move, 0, NumMoves)
	for _, move := range Moves {
		if s.Clone().Swipe(move) {
			moves = append(moves, move)
		}
	}
	return moves
}

// IsLegal reports whether the move changes the grid.
func (s *State) IsLegal(move Move) bool {
	return s.Clone().Swipe(move)
}

// IsTerminal reports a full grid where no move changes anything.
func (s *State) IsTerminal() bool {
	if !s.IsFull() {
		return false
	}
	for _, move := range Moves {
		if s.IsLegal(move) {
			return false
		}
	}
	return true
}

// order visits tiles from the far end of the move first so one pass is enough
func (s *State) order(dRow, dCol int) (rows, cols []int) {
	rows = make([]int, s.size)
	cols = make([]int, s.size)
	for i := 0; i < s.size; i++ {
		rows[i], cols[i] = i, i
	}
	if dRow == 1 {
		reverse(rows)
	}
	if dCol == 1 {
		reverse(cols)
	}
	return rows, cols
}

func (s *State) slide(dRow, dCol int, rows, cols []int) bool {
	moved := false
	for _, i := range rows {
		for _, j := range cols {
			rank := s.At(i, j)
			if rank == 0 {
				continue
			}
			r, c := i, j
			for s.inGrid(r+dRow, c+dCol) && s.At(r+dRow, c+dCol) == 0 {
				r += dRow
				c += dCol
			}
			if r != i || c != j {
				s.Set(i, j, 0)
				s.Set(r, c, rank)
				moved = true
			}
		}
	}
	return moved
}

// merge folds each tile into the leading one ahead of it. The trailing cell is
// emptied, so a tile takes part in at most one merge per swipe.
func (s *State) merge(dRow, dCol int, rows, cols []int) bool {
	moved := false
	for _, i := range rows {
		for _, j := range cols {
			rank := s.At(i, j)
			if rank == 0 {
				continue
			}
			bi, bj := i-dRow, j-dCol
			if !s.inGrid(bi, bj) || s.At(bi, bj) != rank {
				continue
			}
			s.Set(i, j, rank+1)
			s.Set(bi, bj, 0)
			s.score += TileValue(rank + 1)
			moved = true
		}
	}
	return moved
}

func (s *State) inGrid(row, col int) bool {
	return row >= 0 && row < s.size && col >= 0 && col < s.size
}

func reverse(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
