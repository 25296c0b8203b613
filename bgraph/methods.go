// File: methods.go
// Role: Graph traversal, node/edge lifecycle, and degree queries.
//
// Determinism:
//   - ForEachHandle visits nodes in ascending id order.
//   - FollowEdges order is unspecified but stable for a fixed graph state
//     (callers must not depend on it beyond that, per the handle-graph
//     contract); this implementation happens to preserve insertion order.
package bgraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bungraph/handle"
)

// HasNode reports whether a node with the given id exists in the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id uint64) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// GetHandle returns the handle for node id in the given orientation.
// Returns ErrNotFound if id does not exist.
// Complexity: O(1).
func (g *Graph) GetHandle(id uint64, isReverse bool) (handle.Handle, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return handle.Nil, fmt.Errorf("bgraph: GetHandle(%d): %w", id, ErrNotFound)
	}

	return handle.NewHandle(id, isReverse), nil
}

// ForEachHandle calls visit once for the forward handle of every node in
// the graph, in ascending node-id order. Iteration stops early if visit
// returns false.
// Complexity: O(V log V).
func (g *Graph) ForEachHandle(visit func(h handle.Handle) bool) {
	g.muNode.RLock()
	ids := make([]uint64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.muNode.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if !visit(handle.NewHandle(id, false)) {
			return
		}
	}
}

// FollowEdges visits every handle b reachable from h in the requested
// direction:
//
//   - go_left == false: every b such that (h,b) is an edge.
//   - go_left == true:  every b such that (b,h) is an edge — equivalently
//     FollowEdges(Flip(h), false) with each result flipped.
//
// Iteration stops early if visit returns false.
// Complexity: O(degree(h)).
func (g *Graph) FollowEdges(h handle.Handle, goLeft bool, visit func(b handle.Handle) bool) {
	g.muEdge.RLock()
	var neighbors []handle.Handle
	if goLeft {
		src := g.outRight[h.Flip()]
		neighbors = make([]handle.Handle, len(src))
		for i, b := range src {
			neighbors[i] = b.Flip()
		}
	} else {
		src := g.outRight[h]
		neighbors = make([]handle.Handle, len(src))
		copy(neighbors, src)
	}
	g.muEdge.RUnlock()

	for _, b := range neighbors {
		if !visit(b) {
			return
		}
	}
}

// Neighbors is a convenience wrapper around FollowEdges that collects the
// result into a slice, for callers (notably the bundle detector) that
// need to compare neighbor sets rather than stream them.
// Complexity: O(degree(h)).
func (g *Graph) Neighbors(h handle.Handle, goLeft bool) []handle.Handle {
	var out []handle.Handle
	g.FollowEdges(h, goLeft, func(b handle.Handle) bool {
		out = append(out, b)

		return true
	})

	return out
}

// GetDegree returns the number of edges incident to the given side of h.
// Complexity: O(degree(h)).
func (g *Graph) GetDegree(h handle.Handle, goLeft bool) int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	if goLeft {
		return len(g.outRight[h.Flip()])
	}

	return len(g.outRight[h])
}

// HasEdge reports whether the canonical edge connecting left and right
// currently exists in the graph.
// Complexity: O(1).
func (g *Graph) HasEdge(left, right handle.Handle) bool {
	e := handle.CanonicalEdge(left, right)
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok := g.edgeSet[e]

	return ok
}

// MinNodeID returns the smallest live node id, or 0 if the graph is empty.
// Complexity: O(V).
func (g *Graph) MinNodeID() uint64 {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	var min uint64
	first := true
	for id := range g.nodes {
		if first || id < min {
			min = id
			first = false
		}
	}

	return min
}

// MaxNodeID returns the largest live node id, or 0 if the graph is empty.
// Complexity: O(V).
func (g *Graph) MaxNodeID() uint64 {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	var max uint64
	for id := range g.nodes {
		if id > max {
			max = id
		}
	}

	return max
}

// NodeCount returns the number of live nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// AddNode inserts a node with the given id and sequence payload. This is
// the loader-facing primitive (see the loader package); ids are caller
// supplied here, unlike CreateNode which allocates a fresh synthetic id.
// A repeated id is a no-op.
// Complexity: O(1).
func (g *Graph) AddNode(id uint64, sequence string) {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &Node{ID: id, Sequence: sequence}
	if id > g.nextID {
		g.nextID = id
	}
}

// CreateNode allocates a fresh node id strictly greater than any
// currently live id, stores sequence as its payload, and returns the new
// id. Used by the reduction engine to synthesize bundle-collapse nodes.
// Complexity: O(1).
func (g *Graph) CreateNode(sequence string) uint64 {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.nextID++
	id := g.nextID
	g.nodes[id] = &Node{ID: id, Sequence: sequence}

	return id
}

// CreateEdge inserts the canonical form of (a,b) if it is not already
// present; a repeated insertion is a no-op. Both endpoints must already
// exist (ErrNotFound otherwise).
// Complexity: O(1) amortized.
func (g *Graph) CreateEdge(a, b handle.Handle) error {
	if !g.HasNode(a.ID()) {
		return fmt.Errorf("bgraph: CreateEdge: endpoint %s: %w", a, ErrNotFound)
	}
	if !g.HasNode(b.ID()) {
		return fmt.Errorf("bgraph: CreateEdge: endpoint %s: %w", b, ErrNotFound)
	}

	e := handle.CanonicalEdge(a, b)

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	if _, ok := g.edgeSet[e]; ok {
		return nil
	}
	g.edgeSet[e] = struct{}{}
	g.outRight[e.A] = append(g.outRight[e.A], e.B)
	if e.A != e.B.Flip() { // avoid double-inserting the self-inversion case
		g.outRight[e.B.Flip()] = append(g.outRight[e.B.Flip()], e.A.Flip())
	}

	return nil
}

// DestroyEdge removes the canonical edge connecting left and right, if
// present. Removing a non-existent edge is a no-op.
// Complexity: O(degree).
func (g *Graph) DestroyEdge(left, right handle.Handle) {
	e := handle.CanonicalEdge(left, right)

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	if _, ok := g.edgeSet[e]; !ok {
		return
	}
	delete(g.edgeSet, e)
	g.outRight[e.A] = removeHandle(g.outRight[e.A], e.B)
	if e.A != e.B.Flip() {
		g.outRight[e.B.Flip()] = removeHandle(g.outRight[e.B.Flip()], e.A.Flip())
	}
}

// DestroyNode removes all edges incident to id's two sides, then removes
// the node itself. Removing a non-existent node is a no-op.
// Complexity: O(degree(id)).
func (g *Graph) DestroyNode(id uint64) {
	if !g.HasNode(id) {
		return
	}

	fwd := handle.NewHandle(id, false)
	rev := fwd.Flip()

	// Snapshot incident edges from both sides before mutating.
	for _, h := range []handle.Handle{fwd, rev} {
		for _, right := range g.Neighbors(h, false) {
			g.DestroyEdge(h, right)
		}
		for _, left := range g.Neighbors(h, true) {
			g.DestroyEdge(left, h)
		}
	}

	g.muNode.Lock()
	delete(g.nodes, id)
	g.muNode.Unlock()

	g.muEdge.Lock()
	delete(g.outRight, fwd)
	delete(g.outRight, rev)
	g.muEdge.Unlock()
}

// removeHandle deletes the first occurrence of target from s, preserving
// order of the remainder. Used to keep DestroyEdge O(degree) rather than
// rebuilding the whole adjacency slice.
func removeHandle(s []handle.Handle, target handle.Handle) []handle.Handle {
	for i, h := range s {
		if h == target {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
