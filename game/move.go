package game

import "fmt"

// Move is a swipe direction.
type Move int

const (
	Up Move = iota
	Right
	Down
	Left
)

const NumMoves = 4

// DefaultMove is returned by agents when no legal move exists
const DefaultMove = Up

// Moves lists every direction in enumeration order.
var Moves = [NumMoves]Move{Up, Right, Down, Left}

var vectors = [NumMoves][2]int{
	Up:    {-1, 0},
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
}

var names = [NumMoves]string{"UP", "RIGHT", "DOWN", "LEFT"}

// Vector returns the unit (row, col) displacement of the move.
func (m Move) Vector() (int, int) {
	v := vectors[m]
	return v[0], v[1]
}

func (m Move) Valid() bool {
	return m >= Up && m <= Left
}

func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return names[m]
}

// ParseMove parses a direction name as printed by Move.String.
func ParseMove(s string) (Move, error) {
	for _, m := range Moves {
		if names[m] == s {
			return m, nil
		}
	}
	return DefaultMove, fmt.Errorf("unknown move %q", s)
}

// InvalidMoveError reports a move that would not change the grid.
type InvalidMoveError struct {
	Move Move
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("illegal move %s: grid would not change", e.Move)
}
