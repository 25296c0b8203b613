package bgraph

import (
	"sync"

	"github.com/katalvlaran/bungraph/handle"
)

// Node is a node in the graph: an integer id unique within its Graph and
// an opaque sequence payload. In this core the sequence carries no
// semantics beyond being opaque bytes attached at construction time —
// only the topology matters.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID uint64

	// Sequence is an opaque payload string; never interpreted here.
	Sequence string
}

// Graph is the mutable bidirected graph store. It supports iterate-all,
// side-indexed traversal (FollowEdges), and the creation/destruction
// primitives the reduction engine needs.
//
// muNode guards nodes and nextID; muEdge guards outRight and edgeSet. The
// two locks are never held at once (mirrors core.Graph's muVert/muEdgeAdj
// split) to avoid lock-ordering hazards.
type Graph struct {
	muNode sync.RWMutex
	muEdge sync.RWMutex

	nodes  map[uint64]*Node
	nextID uint64 // highest id ever added by AddNode or allocated by CreateNode; 0 for an empty graph

	// outRight[h] holds every handle b such that following right from h
	// (go_left == false) reaches b. Canonical edge (a,b) contributes both
	// outRight[a] += b and outRight[Flip(b)] += Flip(a), so FollowEdges
	// need not special-case which endpoint it was asked from.
	outRight map[handle.Handle][]handle.Handle

	// edgeSet deduplicates by canonical form: CreateEdge is a no-op if the
	// canonical edge already exists.
	edgeSet map[handle.Edge]struct{}
}

// NewGraph returns an empty, ready-to-use Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[uint64]*Node),
		outRight: make(map[handle.Handle][]handle.Handle),
		edgeSet:  make(map[handle.Edge]struct{}),
	}
}
