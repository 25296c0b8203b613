package reduce

import (
	"fmt"

	"github.com/katalvlaran/bungraph/handle"
)

// stepR1 scans live nodes in ascending id order for a tip — a node whose
// combined left+right degree is exactly one — and eliminates the first
// one found. Returns false if no tip exists.
func (e *Engine) stepR1() (bool, error) {
	var tip uint64
	found := false
	e.g.ForEachHandle(func(h handle.Handle) bool {
		if e.g.GetDegree(h, false)+e.g.GetDegree(h, true) == 1 {
			tip = h.ID()
			found = true

			return false
		}

		return true
	})
	if !found {
		return false, nil
	}

	if err := e.eliminateTip(tip); err != nil {
		return false, fmt.Errorf("reduce: stepR1: %w", err)
	}

	return true, nil
}

// eliminateTip implements R1: removes the tip v and its sole incident
// edge, chains an Epsilon node into the surviving neighbor's
// decomposition subtree, purges v's index entries, and re-seeds bundle
// detection at the surviving neighbor.
func (e *Engine) eliminateTip(v uint64) error {
	vFwd := handle.NewHandle(v, false)
	rightNbrs := e.g.Neighbors(vFwd, false)
	leftNbrs := e.g.Neighbors(vFwd, true)

	var neighbor handle.Handle
	vPrecedesNeighbor := false
	switch {
	case len(rightNbrs) == 1:
		neighbor = rightNbrs[0]
		vPrecedesNeighbor = true
	case len(leftNbrs) == 1:
		neighbor = leftNbrs[0]
		vPrecedesNeighbor = false
	default:
		return fmt.Errorf("reduce: eliminateTip(%d): %w", v, ErrMissingSubtree)
	}
	neighborID := neighbor.ID()

	delete(e.Index, vFwd)
	delete(e.Index, vFwd.Flip())

	if vPrecedesNeighbor {
		e.g.DestroyEdge(vFwd, neighbor)
	} else {
		e.g.DestroyEdge(neighbor, vFwd)
	}
	e.g.DestroyNode(v)

	existing, ok := e.leaves[neighborID]
	if !ok {
		return fmt.Errorf("reduce: eliminateTip(%d): neighbor %d: %w", v, neighborID, ErrMissingSubtree)
	}
	epsilon := e.Tree.MakeEpsilon(v)

	var newRoot int
	var err error
	if vPrecedesNeighbor {
		newRoot, err = e.Tree.MakeChain(neighborID, epsilon, existing)
	} else {
		newRoot, err = e.Tree.MakeChain(neighborID, existing, epsilon)
	}
	if err != nil {
		return fmt.Errorf("reduce: eliminateTip(%d): %w", v, err)
	}
	// existing may be shared with other ids (see fuseChain), and MakeChain
	// frees it if it is a Chain shell, so every id still pointing at it is
	// redirected to the new root.
	for id, root := range e.leaves {
		if root == existing {
			e.leaves[id] = newRoot
		}
	}
	delete(e.leaves, v)

	survivorFwd := handle.NewHandle(neighborID, false)
	e.reseedAt(survivorFwd)

	if err := e.fuseChain(survivorFwd); err != nil {
		return err
	}
	if err := e.fuseChain(survivorFwd.Flip()); err != nil {
		return err
	}

	return nil
}
