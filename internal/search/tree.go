// Package search selects moves by building a bounded game tree per piece
// and merging the per-piece results.
package search

import (
	"math"

	"github.com/rdnp/mice/internal/chess"
	"github.com/rdnp/mice/internal/engine"
	"github.com/rdnp/mice/internal/hashing"
)

// Unevaluated is the value of a node nothing has been propagated to. It is
// never negated, so it ranks below every real score from any perspective.
const Unevaluated = math.MinInt32

// Node is one position in a Tree.
type Node struct {
	Position chess.Position
	// Mover is the player to move in Position.
	Mover chess.Colour
	// Reachability is the ply distance from the root.
	Reachability int
	// Predecessor is the node that first reached this one, nil for the root.
	Predecessor *Node
	// Successors lists every child edge, including transpositions that were
	// first reached from elsewhere.
	Successors []*Node

	value int // from Mover's perspective
}

// Value returns the stored score from the mover's perspective.
func (n *Node) Value() int {
	return n.value
}

// Evaluation returns the node's score from player's perspective.
func (n *Node) Evaluation(player chess.Colour) int {
	if n.value == Unevaluated || player == n.Mover {
		return n.value
	}
	return -n.value
}

// Tree is a breadth-first game tree whose positions are unique: a position
// reached by a second move order is linked but not expanded again.
type Tree struct {
	root  *Node
	depth int
	nodes *hashing.Table[chess.Position, *Node]
	order []*Node // insertion order, i.e. breadth-first
}

func newTree(root chess.Position, mover chess.Colour, depth int) *Tree {
	t := &Tree{
		depth: depth,
		nodes: hashing.NewTable[chess.Position, *Node](0),
	}
	t.root, _ = t.insert(nil, root, mover)
	return t
}

// BuildTree builds and evaluates the tree for the piece on from. The first
// ply only moves that piece and is filtered for legality; deeper plies move
// every piece of the side to move without check filtering. Nodes at depth
// plies are evaluated by material and the values are backed up negamax
// style.
func BuildTree(player chess.Colour, root chess.Position, from chess.Square, depth int) *Tree {
	t := newTree(root, player, depth)
	for i := 0; i < len(t.order); i++ {
		node := t.order[i]
		if node.Reachability >= depth {
			node.value = node.Position.Evaluate(node.Mover)
			continue
		}

		var next []chess.Position
		if node.Reachability == 0 {
			next = engine.PieceLegalMoves(node.Position, from)
		} else {
			next = engine.Moves(node.Mover, node.Position, false)
		}

		// A mover without moves gets nothing propagated, so score the
		// position as it stands.
		if len(next) == 0 && node != t.root {
			node.value = node.Position.Evaluate(node.Mover)
		}
		for _, pos := range next {
			t.insert(node, pos, node.Mover.Opposite())
		}
	}
	t.backpropagate()
	return t
}

// insert links pos below parent, creating its node if the position is new.
func (t *Tree) insert(parent *Node, pos chess.Position, mover chess.Colour) (*Node, bool) {
	level := 0
	if parent != nil {
		level = parent.Reachability + 1
	}
	candidate := &Node{Position: pos, Mover: mover, Reachability: level, Predecessor: parent, value: Unevaluated}
	node, inserted := t.nodes.Insert(pos, candidate)
	if parent != nil {
		parent.Successors = append(parent.Successors, node)
	}
	if inserted {
		t.order = append(t.order, node)
	}
	return node, inserted
}

// backpropagate raises every predecessor to the best child value seen from
// the predecessor's mover. Children always come after their predecessor in
// breadth-first order, so walking it backwards visits leaves first.
func (t *Tree) backpropagate() {
	for i := len(t.order) - 1; i >= 0; i-- {
		node := t.order[i]
		pred := node.Predecessor
		if pred == nil {
			continue
		}
		if v := node.Evaluation(pred.Mover); v > pred.value {
			pred.value = v
		}
	}
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Depth returns the ply depth the tree was built to.
func (t *Tree) Depth() int {
	return t.depth
}

// Len returns the number of distinct positions in the tree.
func (t *Tree) Len() int {
	return len(t.order)
}

// Collisions returns how many positions shared a hash bucket with a
// different position.
func (t *Tree) Collisions() int {
	return t.nodes.Collisions()
}

// Node returns the node holding pos.
func (t *Tree) Node(pos chess.Position) (*Node, bool) {
	return t.nodes.Get(pos)
}

// Evaluation returns the score of pos for player, Unevaluated if pos is not
// in the tree.
func (t *Tree) Evaluation(pos chess.Position, player chess.Colour) int {
	node, ok := t.Node(pos)
	if !ok {
		return Unevaluated
	}
	return node.Evaluation(player)
}
