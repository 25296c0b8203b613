package handle

import "fmt"

// Handle denotes one oriented side of a node: the low bit carries
// orientation (1 == reverse) and the remaining bits carry the node id.
// The universe of handles is exactly {(id, orientation) : id ∈ Nodes,
// orientation ∈ {forward, reverse}}.
type Handle uint64

// Nil is the zero-value handle, never produced by NewHandle for a valid
// (positive) node id; used as a sentinel "no handle" value by callers.
const Nil Handle = 0

// NewHandle packs a node id and orientation into a Handle.
// Complexity: O(1).
func NewHandle(id uint64, isReverse bool) Handle {
	h := Handle(id << 1)
	if isReverse {
		h |= 1
	}

	return h
}

// ID returns the underlying node id of h, stripping the orientation bit.
func (h Handle) ID() uint64 {
	return uint64(h) >> 1
}

// IsReverse reports whether h is the reverse-oriented side of its node.
func (h Handle) IsReverse() bool {
	return uint64(h)&1 == 1
}

// Flip returns the other orientation of the same node.
// Invariant: Flip(Flip(h)) == h and ID(Flip(h)) == ID(h).
func (h Handle) Flip() Handle {
	return h ^ 1
}

// Forward returns h if it is already forward-oriented, or its flip
// otherwise — i.e. the forward side of h's node.
func (h Handle) Forward() Handle {
	if h.IsReverse() {
		return h.Flip()
	}

	return h
}

// AsInteger returns the packed integer value of h. Handles are totally
// ordered by this value.
func (h Handle) AsInteger() uint64 {
	return uint64(h)
}

// Less reports whether h sorts before other under the total order on
// packed integer values.
func (h Handle) Less(other Handle) bool {
	return h.AsInteger() < other.AsInteger()
}

// String renders h as "<id>" or "<id>r" for the reverse orientation,
// matching the notation used throughout the bundle and reduction tests.
func (h Handle) String() string {
	if h.IsReverse() {
		return fmt.Sprintf("%dr", h.ID())
	}

	return fmt.Sprintf("%d", h.ID())
}

// Edge is a canonical pair of handles (A, B) such that following from A
// outward (go_left == false) lands on B. The same edge is equivalently
// representable as (Flip(B), Flip(A)); CanonicalEdge always returns the
// lexicographically smaller of the two representations.
type Edge struct {
	A, B Handle
}

// CanonicalEdge returns the canonical representation of the edge
// connecting a to b: the lexicographic minimum, compared as packed
// integers, of (a,b) and (Flip(b),Flip(a)).
//
// This mirrors handlegraph's edge_handle: the degeneracy is between a
// pair and the same pair reversed-and-flipped; we always pick the
// smaller one so that both callers who traverse (a,b) and (Flip(b),Flip(a))
// observe the very same stored edge.
func CanonicalEdge(a, b Handle) Edge {
	flippedB := b.Flip()
	flippedA := a.Flip()

	if a.AsInteger() > flippedB.AsInteger() {
		return Edge{A: flippedB, B: flippedA}
	}
	if a.AsInteger() == flippedB.AsInteger() && b.AsInteger() > flippedA.AsInteger() {
		return Edge{A: flippedB, B: flippedA}
	}

	return Edge{A: a, B: b}
}

// IsSelfLoop reports whether e connects a side of a node to itself
// (same node, same side: A == B).
func (e Edge) IsSelfLoop() bool {
	return e.A == e.B
}

// IsSelfInversion reports whether e connects opposite sides of the same
// node (same node, opposite sides: B == Flip(A)).
func (e Edge) IsSelfInversion() bool {
	return e.B == e.A.Flip()
}

// TraverseEdgeHandle returns the handle on the far side of e from left.
// left must be one of the two handles that participate in e (in either
// of its two equivalent representations); otherwise ErrMalformedEdge is
// returned.
//
// This is the `traverse_edge_handle` operation from the handle-graph
// model: given a canonical edge and one of its participant handles, it
// returns the other handle, independent of which orientation the caller
// happens to be looking from.
func TraverseEdgeHandle(e Edge, left Handle) (Handle, error) {
	switch {
	case left == e.A:
		return e.B, nil
	case left == e.B.Flip():
		return e.A.Flip(), nil
	default:
		return Nil, fmt.Errorf("handle: traverse from %s on edge %s->%s: %w", left, e.A, e.B, ErrMalformedEdge)
	}
}
