package reduce

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bungraph/bundle"
	"github.com/katalvlaran/bungraph/handle"
)

// stepR2 scans Index for a non-trivial, non-cyclic bundle whose R2
// precondition (Strong/Weak adjacency to its left- and right-incident
// neighboring bundles) is satisfied, and collapses the first one found in
// a deterministic order. Returns false if no candidate qualifies.
func (e *Engine) stepR2() (bool, error) {
	seen := make(map[*bundle.Bundle]struct{})
	var candidates []*bundle.Bundle
	for _, b := range e.Index {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		candidates = append(candidates, b)
	}

	sort.Slice(candidates, func(i, j int) bool {
		mi, _ := minMember(candidates[i].Left)
		mj, _ := minMember(candidates[j].Left)

		return mi.Less(mj)
	})

	for _, b := range candidates {
		if b.Trivial {
			continue
		}
		if b.Cyclic && !e.cfg.allowCyclicForR2 {
			continue
		}
		if !e.r2PreconditionSatisfied(b) {
			continue
		}

		if err := e.collapseBundle(b); err != nil {
			return false, fmt.Errorf("reduce: stepR2: %w", err)
		}

		return true, nil
	}

	return false, nil
}

// minMember returns the smallest handle in s (sides freeze their members
// in ascending order, so the first visited member is the minimum).
func minMember(s *bundle.Side) (handle.Handle, bool) {
	var out handle.Handle
	found := false
	s.Each(func(h handle.Handle) bool {
		out = h
		found = true

		return false
	})

	return out, found
}

// r2PreconditionSatisfied checks, per spec §4.E/§4.G, that every member of
// b.Left has a Strong or Weak incident bundle on its left and every
// member of b.Right has a Strong or Weak incident bundle on its right.
// The bundle incident to l's left is looked up at Index[flip(l)] (the
// bundle for which l is a Right member); the bundle incident to r's right
// is looked up at Index[r] (the bundle for which r is a Left member).
func (e *Engine) r2PreconditionSatisfied(b *bundle.Bundle) bool {
	ok := true
	b.Left.Each(func(l handle.Handle) bool {
		other, found := e.Index[l.Flip()]
		if !found || other == b {
			ok = false

			return false
		}
		adj, err := bundle.GetAdjacency(other.Right, b.Left)
		if err != nil || (adj != bundle.AdjStrong && adj != bundle.AdjWeak) {
			ok = false

			return false
		}

		return true
	})
	if !ok {
		return false
	}

	b.Right.Each(func(r handle.Handle) bool {
		other, found := e.Index[r]
		if !found || other == b {
			ok = false

			return false
		}
		adj, err := bundle.GetAdjacency(other.Left, b.Right)
		if err != nil || (adj != bundle.AdjStrong && adj != bundle.AdjWeak) {
			ok = false

			return false
		}

		return true
	})

	return ok
}

// collapseBundle implements R2: installs fresh nodes a, b in place of
// b.Left and b.Right respectively, inheriting every edge that entered a
// Left member from outside the bundle (onto a) and every edge that left a
// Right member to outside the bundle (onto b), inserts the single edge
// a->b, destroys every old member, records a Split over the old members'
// subtrees wrapped between Source(a) and Source(b) in Tree, purges Index
// of vanished handles, and re-seeds detection from a, flip(a) and b.
func (e *Engine) collapseBundle(b *bundle.Bundle) error {
	destroyIDs := make(map[uint64]struct{})
	b.Left.Each(func(l handle.Handle) bool {
		destroyIDs[l.ID()] = struct{}{}

		return true
	})
	b.Right.Each(func(r handle.Handle) bool {
		destroyIDs[r.ID()] = struct{}{}

		return true
	})

	aID := e.g.CreateNode("")
	bID := e.g.CreateNode("")
	aFwd := handle.NewHandle(aID, false)
	bFwd := handle.NewHandle(bID, false)

	var subtrees []int

	b.Left.Each(func(l handle.Handle) bool {
		for _, p := range e.g.Neighbors(l, true) {
			if _, destroyed := destroyIDs[p.ID()]; destroyed {
				continue
			}
			_ = e.g.CreateEdge(p, aFwd)
		}
		if root, ok := e.leaves[l.ID()]; ok {
			subtrees = append(subtrees, root)
		}

		return true
	})
	b.Right.Each(func(r handle.Handle) bool {
		for _, s := range e.g.Neighbors(r, false) {
			if _, destroyed := destroyIDs[s.ID()]; destroyed {
				continue
			}
			_ = e.g.CreateEdge(bFwd, s)
		}
		if root, ok := e.leaves[r.ID()]; ok {
			subtrees = append(subtrees, root)
		}

		return true
	})

	if err := e.g.CreateEdge(aFwd, bFwd); err != nil {
		return fmt.Errorf("reduce: collapseBundle: %w", err)
	}

	for id := range destroyIDs {
		e.g.DestroyNode(id)
		delete(e.leaves, id)
	}
	e.purgeVanished(destroyIDs)

	split, err := e.Tree.MakeSplit(aID, subtrees...)
	if err != nil {
		return fmt.Errorf("reduce: collapseBundle: %w", err)
	}
	sourceA := e.Tree.MakeSource(aID)
	sourceB := e.Tree.MakeSource(bID)
	chainA, err := e.Tree.MakeChain(aID, sourceA, split)
	if err != nil {
		return fmt.Errorf("reduce: collapseBundle: %w", err)
	}
	chainAB, err := e.Tree.MakeChain(aID, chainA, sourceB)
	if err != nil {
		return fmt.Errorf("reduce: collapseBundle: %w", err)
	}
	e.leaves[aID] = chainAB
	e.leaves[bID] = chainAB

	// The fresh a->b edge is itself a trivial bundle; mark it directly by
	// detection rather than special-casing its construction, then seed
	// further searches from flip(a) and b per spec.
	e.reseedAt(aFwd)
	e.reseedAt(aFwd.Flip())
	e.reseedAt(bFwd)

	if err := e.fuseChain(aFwd.Flip()); err != nil {
		return err
	}
	if err := e.fuseChain(bFwd); err != nil {
		return err
	}

	return nil
}
