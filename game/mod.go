package game

// Spawn probabilities for the tile inserted after every move
const (
	SmallTileRank = 1 // Tile 2
	LargeTileRank = 2 // Tile 4

	SmallTileProbability = 0.9
	LargeTileProbability = 1 - SmallTileProbability
)

// Rand is the source of randomness for tile insertion and rollouts.
// *golang.org/x/exp/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Evaluates a game state to a scalar, higher is better for the player.
type Evaluate func(*State) float64
