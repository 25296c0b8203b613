package bundle

import (
	"sort"

	"github.com/katalvlaran/bungraph/handle"
)

// Side is one side (left or right) of a bundle: a set of handles. While
// the bundle is being built, membership is tracked in a map; Freeze
// compacts that map into two sorted vectors — members and their flips —
// used by GetAdjacency to classify overlap against another Side.
type Side struct {
	set    map[handle.Handle]struct{}
	frozen bool

	members []handle.Handle // sorted ascending by AsInteger, populated on Freeze
	flips   []handle.Handle // sorted flips of members, populated on Freeze
}

// newSide returns an empty, unfrozen Side.
func newSide() *Side {
	return &Side{set: make(map[handle.Handle]struct{})}
}

// Add inserts h into the side. Returns true if h was newly added, false
// if it was already present. Add is a no-op once the side is frozen.
func (s *Side) Add(h handle.Handle) bool {
	if s.frozen {
		return false
	}
	if _, ok := s.set[h]; ok {
		return false
	}
	s.set[h] = struct{}{}

	return true
}

// Contains reports whether h is a member of the side, before or after
// freezing.
func (s *Side) Contains(h handle.Handle) bool {
	if s.frozen {
		for _, m := range s.members {
			if m == h {
				return true
			}
		}

		return false
	}
	_, ok := s.set[h]

	return ok
}

// Size returns the number of members, before or after freezing.
func (s *Side) Size() int {
	if s.frozen {
		return len(s.members)
	}

	return len(s.set)
}

// Reset clears the side back to empty and unfrozen, for reuse from an
// Arena.
func (s *Side) Reset() {
	for k := range s.set {
		delete(s.set, k)
	}
	s.members = s.members[:0]
	s.flips = s.flips[:0]
	s.frozen = false
}

// Each iterates the side's members in an unspecified but (post-Freeze)
// stable order. Iteration stops early if visit returns false.
func (s *Side) Each(visit func(handle.Handle) bool) {
	if s.frozen {
		for _, m := range s.members {
			if !visit(m) {
				return
			}
		}

		return
	}
	for m := range s.set {
		if !visit(m) {
			return
		}
	}
}

// Freeze compacts the side's member set into sorted member and flip
// vectors, enabling GetAdjacency's set-intersection classification.
// Complexity: O(n log n).
func (s *Side) Freeze() {
	if s.frozen {
		return
	}
	s.members = s.members[:0]
	for m := range s.set {
		s.members = append(s.members, m)
	}
	sort.Slice(s.members, func(i, j int) bool { return s.members[i].Less(s.members[j]) })

	s.flips = s.flips[:0]
	for _, m := range s.members {
		s.flips = append(s.flips, m.Flip())
	}
	sort.Slice(s.flips, func(i, j int) bool { return s.flips[i].Less(s.flips[j]) })

	s.frozen = true
}

// Adjacency classifies how two bundle sides overlap as sets, possibly
// under flip.
type Adjacency int

const (
	// AdjNone means the sides share no members under any orientation.
	AdjNone Adjacency = iota
	// AdjWeak means the sides share some but not all members.
	AdjWeak
	// AdjStrong means the sides are identical member sets under some
	// orientation.
	AdjStrong
)

// String renders the Adjacency classification for diagnostics.
func (a Adjacency) String() string {
	switch a {
	case AdjStrong:
		return "strong"
	case AdjWeak:
		return "weak"
	default:
		return "none"
	}
}

// Bundle is a balanced bundle: a pair of handle sets (Left, Right) such
// that every member of Left sees exactly Right on its right, and every
// member of Right sees exactly Left on its left. The sets overlap only in
// a Cyclic bundle.
type Bundle struct {
	Left, Right *Side

	// Trivial is true iff |Left| == |Right| == 1.
	Trivial bool
	// HasReversed is true iff any member's orientation differs from the
	// seed handle's orientation.
	HasReversed bool
	// Cyclic is true iff Left and Right intersect, or Left intersects
	// Right's flips (a self-cycle or self-inversion inside the bundle).
	Cyclic bool
}

// newBundle returns an empty Bundle with fresh, unfrozen sides.
func newBundle() *Bundle {
	return &Bundle{Left: newSide(), Right: newSide()}
}

// reset clears b back to its zero-value sides for reuse from an Arena.
func (b *Bundle) reset() {
	b.Left.Reset()
	b.Right.Reset()
	b.Trivial = false
	b.HasReversed = false
	b.Cyclic = false
}

// freeze finalizes both sides and derives Trivial/Cyclic from their
// frozen state. HasReversed is set by the detector during construction,
// since it depends on the seed's orientation rather than the sides
// alone.
func (b *Bundle) freeze() {
	b.Left.Freeze()
	b.Right.Freeze()
	b.Trivial = b.Left.Size() == 1 && b.Right.Size() == 1

	cyclic := false
	b.Left.Each(func(h handle.Handle) bool {
		if b.Right.Contains(h) || b.Right.Contains(h.Flip()) {
			cyclic = true

			return false
		}

		return true
	})
	b.Cyclic = cyclic
}
