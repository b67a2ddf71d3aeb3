// meta/meta.go
package meta

import "time"

// BOARD_SIZE is the default board dimension.
const BOARD_SIZE = 4

// DURATION is the default MCTS time budget per move.
const DURATION = 500 * time.Millisecond

// EXPLORATION is the default UCT exploration constant, on the scale of game scores.
const EXPLORATION = 1000.0

// DEPTH is the default expectimax depth, counting both move and chance layers.
const DEPTH = 3

// MAX_MOVES caps the length of a game played by the engine.
const MAX_MOVES = 100000

// GAMES is the default number of games per agent in an experiment.
const GAMES = 10
