package game

import (
	"fmt"
	"strings"
)

// State is a square grid of tile ranks plus the accumulated score. A rank of 0
// is an empty cell, a rank k >= 1 is a tile of value 2^k.
//
// Operations named Apply, Play and Outcomes return new states. Swipe, Step and
// InsertRandomTile mutate the receiver, so callers must Clone first when the
// prior state is still needed.
type State struct {
	size  int
	grid  []uint8 // Row-major, size*size ranks
	score int
}

// NewState returns an empty grid of the given dimension.
func NewState(size int) *State {
	if size <= 0 {
		panic(fmt.Sprintf("invalid board size %d", size))
	}
	return &State{
		size: size,
		grid: make([]uint8, size*size),
	}
}

// Setup returns a new game: an empty grid with two random tiles.
func Setup(size int, rng Rand) *State {
	s := NewState(size)
	for i := 0; i < 2; i++ {
		s.InsertRandomTile(rng)
	}
	return s
}

// FromRanks builds a state from rows of ranks. Rows must form a square.
func FromRanks(rows [][]uint8, score int) *State {
	s := NewState(len(rows))
	for i, row := range rows {
		if len(row) != s.size {
			panic(fmt.Sprintf("row %d has %d cells, expected %d", i, len(row), s.size))
		}
		copy(s.grid[i*s.size:], row)
	}
	s.score = score
	return s
}

// Clone returns a deep copy: the grid is never shared between states.
func (s *State) Clone() *State {
	grid := make([]uint8, len(s.grid))
	copy(grid, s.grid)
	return &State{
		size:  s.size,
		grid:  grid,
		score: s.score,
	}
}

func (s *State) Size() int {
	return s.size
}

func (s *State) Score() int {
	return s.score
}

// At returns the rank at (row, col).
func (s *State) At(row, col int) uint8 {
	return s.grid[row*s.size+col]
}

// Set places a rank at (row, col) without touching the score.
func (s *State) Set(row, col int, rank uint8) {
	s.grid[row*s.size+col] = rank
}

// Ranks returns a copy of the grid as rows.
func (s *State) Ranks() [][]uint8 {
	rows := make([][]uint8, s.size)
	for i := range rows {
		rows[i] = make([]uint8, s.size)
		copy(rows[i], s.grid[i*s.size:(i+1)*s.size])
	}
	return rows
}

// EmptyCells returns the row-major indices of empty cells.
func (s *State) EmptyCells() []int {
	cells := make([]int, 0, len(s.grid))
	for i, rank := range s.grid {
		if rank == 0 {
			cells = append(cells, i)
		}
	}
	return cells
}

func (s *State) IsFull() bool {
	for _, rank := range s.grid {
		if rank == 0 {
			return false
		}
	}
	return true
}

// MaxTile returns the value of the largest tile, 0 for an empty grid.
func (s *State) MaxTile() int {
	var top uint8
	for _, rank := range s.grid {
		top = max(top, rank)
	}
	if top == 0 {
		return 0
	}
	return TileValue(top)
}

// Equal compares grids and scores.
func (s *State) Equal(other *State) bool {
	if s.size != other.size || s.score != other.score {
		return false
	}
	for i, rank := range s.grid {
		if other.grid[i] != rank {
			return false
		}
	}
	return true
}

// String renders tile values row by row, "." for empty cells.
func (s *State) String() string {
	var b strings.Builder
	for i := 0; i < s.size; i++ {
		for j := 0; j < s.size; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			rank := s.At(i, j)
			if rank == 0 {
				b.WriteString(".")
			} else {
				fmt.Fprintf(&b, "%d", TileValue(rank))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// TileValue returns 2^rank.
func TileValue(rank uint8) int {
	return 1 << int(rank)
}
