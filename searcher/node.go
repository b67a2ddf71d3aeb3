package searcher

import (
	"math"

	"twenty48/game"
)

// Handle into the tree's node arena. The root is never a child, so its handle
// doubles as the "no child" marker.
type handle int32

const (
	rootHandle handle = 0
	noChild    handle = 0
	noParent   handle = -1
)

type node struct {
	parent   handle
	move     game.Move // Move from the parent
	children [game.NumMoves]handle
	expanded bool
	state    *game.State // Owned by the node
	rewards  float64     // Sum of rollout scores through the node
	visits   int
	playouts int // Rollouts that started at this node
}

func (n *node) hasChildren() bool {
	for _, child := range n.children {
		if child != noChild {
			return true
		}
	}
	return false
}

// tree is an arena of nodes. Handles stay valid while it grows, pointers
// into nodes do not survive an append.
type tree struct {
	nodes []node
}

func newTree(state *game.State) *tree {
	t := &tree{nodes: make([]node, 1, 256)}
	t.nodes[rootHandle] = node{parent: noParent, state: state.Clone()}
	return t
}

func (t *tree) size() int {
	return len(t.nodes)
}

// selectLeaf descends by max UCT until a node without children
func (t *tree) selectLeaf(c float64) handle {
	current := rootHandle
	for t.nodes[current].hasChildren() {
		current = t.selectChild(current, c)
	}
	return current
}

// selectChild returns the child with the highest UCT, the first one in move
// order on ties
func (t *tree) selectChild(parent handle, c float64) handle {
	p := &t.nodes[parent]
	policy := newUCT(c, p.visits)

	best := noChild
	bestScore := math.Inf(-1)
	for _, child := range p.children {
		if child == noChild {
			continue
		}
		n := &t.nodes[child]
		score := policy.evaluate(n.rewards, n.visits)
		if best == noChild || score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// expand adds one child per legal move of an unexpanded leaf. Each child's
// state is the move followed by a random tile. Returns the first new child, or
// the leaf itself when it is terminal.
func (t *tree) expand(leaf handle, rng game.Rand) handle {
	if t.nodes[leaf].expanded {
		return leaf
	}
	t.nodes[leaf].expanded = true

	state := t.nodes[leaf].state
	first := leaf
	for _, move := range state.LegalMoves() {
		next, _ := state.Apply(move)
		next.InsertRandomTile(rng)

		t.nodes = append(t.nodes, node{parent: leaf, move: move, state: next})
		child := handle(len(t.nodes) - 1)
		t.nodes[leaf].children[move] = child
		if first == leaf {
			first = child
		}
	}
	return first
}

// backup adds the rollout score to every node from the simulated one to the root
func (t *tree) backup(simulated handle, score float64) {
	t.nodes[simulated].playouts++
	for h := simulated; h != noParent; h = t.nodes[h].parent {
		n := &t.nodes[h]
		n.rewards += score
		n.visits++
	}
}

// bestMove picks the root child with the highest rewards/(1+visits)
func (t *tree) bestMove() (game.Move, bool) {
	root := &t.nodes[rootHandle]

	best := game.DefaultMove
	found := false
	bestValue := math.Inf(-1)
	for _, child := range root.children {
		if child == noChild {
			continue
		}
		n := &t.nodes[child]
		value := n.rewards / float64(1+n.visits)
		if !found || value > bestValue {
			best = n.move
			bestValue = value
			found = true
		}
	}
	return best, found
}

// depth returns the number of levels, 1 for a lone root. Parents always
// precede their children in the arena.
func (t *tree) depth() int {
	depths := make([]int, len(t.nodes))
	deepest := 0
	for i := range t.nodes {
		depths[i] = 1
		if parent := t.nodes[i].parent; parent != noParent {
			depths[i] = depths[parent] + 1
		}
		deepest = max(deepest, depths[i])
	}
	return deepest
}
