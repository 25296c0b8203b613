package reduce

import (
	"fmt"

	"github.com/katalvlaran/bungraph/dtree"
	"github.com/katalvlaran/bungraph/handle"
)

// fuseChain implements R3: when aFwd's only right-neighbor b is also only
// left-neighbored by aFwd (the edge is mandatory — degree one toward each
// other — on both ends), and both endpoints are currently represented by
// distinct Chain or Source decomposition subtrees, those subtrees are
// spliced into a single Chain.
//
// R3 performs no graph rewrite of its own: by the time it runs, any tip
// elimination has already happened via R1 (or the bundle collapse that
// produced these two ids has already happened via R2). It exists purely
// to keep the decomposition tree from accumulating redundant sibling
// Chain roots along a forced edge — per spec, "in G this is a composition
// of R1's", and R3 has no standalone public entry point (see
// ErrUnimplemented).
func (e *Engine) fuseChain(aFwd handle.Handle) error {
	if !e.g.HasNode(aFwd.ID()) {
		return nil
	}
	if e.g.GetDegree(aFwd, false) != 1 {
		return nil
	}
	bHandle := e.g.Neighbors(aFwd, false)[0]
	if e.g.GetDegree(bHandle, true) != 1 {
		return nil
	}

	aID, bID := aFwd.ID(), bHandle.ID()
	if aID == bID {
		return nil
	}

	aRoot, aok := e.leaves[aID]
	bRoot, bok := e.leaves[bID]
	if !aok || !bok {
		return nil
	}
	if aRoot == bRoot {
		return nil // both ids are already represented by one subtree
	}

	aNode, err := e.Tree.Node(aRoot)
	if err != nil {
		return fmt.Errorf("reduce: fuseChain: %w", err)
	}
	bNode, err := e.Tree.Node(bRoot)
	if err != nil {
		return fmt.Errorf("reduce: fuseChain: %w", err)
	}
	if !isChainOrSource(aNode.Kind) || !isChainOrSource(bNode.Kind) {
		return nil
	}

	fused, err := e.Tree.MakeChain(aID, aRoot, bRoot)
	if err != nil {
		return fmt.Errorf("reduce: fuseChain: %w", err)
	}

	// aRoot/bRoot may have been shared by ids other than aID/bID (a single
	// bundle collapse assigns the same subtree to both of its synthetic
	// nodes). MakeChain splices and frees any Chain shell among them, so
	// every other id still pointing at the old index must be redirected or
	// it is left referencing a freed node.
	for id, root := range e.leaves {
		if root == aRoot || root == bRoot {
			e.leaves[id] = fused
		}
	}

	return nil
}

func isChainOrSource(k dtree.Kind) bool {
	return k == dtree.KindChain || k == dtree.KindSource
}
