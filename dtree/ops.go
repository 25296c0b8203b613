package dtree

import "fmt"

// Reverse is the tree's involution. Reversing a Chain reverses its
// sibling order in place (prev/curr/next pointer surgery, then swapping
// ChildHeadIdx/ChildTailIdx) and recursively reverses every child.
// Reversing a Split recursively reverses every child but has no sibling
// order to flip. Reversing a Source or Epsilon only toggles IsReverse.
// Calling Reverse twice on the same node restores its original state.
func (t *Tree) Reverse(idx int) error {
	n, err := t.at(idx)
	if err != nil {
		return fmt.Errorf("dtree: Reverse: %w", err)
	}

	if n.Kind == KindChain {
		var prev = -1
		conductor := n.ChildHeadIdx
		for conductor != -1 {
			child, err := t.at(conductor)
			if err != nil {
				return fmt.Errorf("dtree: Reverse: %w", err)
			}
			next := child.SiblingIdx
			child.SiblingIdx = prev
			prev = conductor
			conductor = next
		}
		n.ChildHeadIdx, n.ChildTailIdx = n.ChildTailIdx, n.ChildHeadIdx
	}

	if n.Kind == KindChain || n.Kind == KindSplit {
		for _, c := range n.ChildrenIdx {
			if err := t.Reverse(c); err != nil {
				return err
			}
		}
	}

	n.IsReverse = !n.IsReverse

	return nil
}

// FindLCA returns the lowest common ancestor of a and b by the naive
// O(depth) walk the source allows ("RMQ solver" is left as a future
// optimization, not required for correctness): it computes each node's
// depth by walking ParentIdx to the root, equalizes depths, then walks
// both pointers up together until they coincide. Returns ok=false if a
// and b belong to disjoint trees (no common ancestor exists).
func (t *Tree) FindLCA(a, b int) (lca int, ok bool, err error) {
	if _, err = t.at(a); err != nil {
		return -1, false, fmt.Errorf("dtree: FindLCA: %w", err)
	}
	if _, err = t.at(b); err != nil {
		return -1, false, fmt.Errorf("dtree: FindLCA: %w", err)
	}

	depthOf := func(idx int) (int, error) {
		d := 0
		for idx != -1 {
			n, err := t.at(idx)
			if err != nil {
				return 0, err
			}
			idx = n.ParentIdx
			d++
		}

		return d, nil
	}

	da, err := depthOf(a)
	if err != nil {
		return -1, false, fmt.Errorf("dtree: FindLCA: %w", err)
	}
	db, err := depthOf(b)
	if err != nil {
		return -1, false, fmt.Errorf("dtree: FindLCA: %w", err)
	}

	for da > db {
		n, _ := t.at(a)
		a = n.ParentIdx
		da--
	}
	for db > da {
		n, _ := t.at(b)
		b = n.ParentIdx
		db--
	}

	for a != b {
		if a == -1 || b == -1 {
			return -1, false, nil
		}
		na, _ := t.at(a)
		nb, _ := t.at(b)
		a = na.ParentIdx
		b = nb.ParentIdx
	}
	if a == -1 {
		return -1, false, nil
	}

	return a, true, nil
}

// FreeTree releases root and its entire subtree, depth-first: Chain
// releases its sibling chain in list order, Split releases its unordered
// children, Source/Epsilon are leaves. Go's garbage collector reclaims
// the underlying memory once a Tree itself is dropped; FreeTree instead
// marks the subtree's slots invalid so ErrInvalidNode surfaces on any
// further access, matching "freed as one unit" semantics without a manual
// allocator.
func (t *Tree) FreeTree(root int) error {
	n, err := t.at(root)
	if err != nil {
		return fmt.Errorf("dtree: FreeTree: %w", err)
	}

	switch n.Kind {
	case KindChain:
		conductor := n.ChildHeadIdx
		for conductor != -1 {
			child, err := t.at(conductor)
			if err != nil {
				return fmt.Errorf("dtree: FreeTree: %w", err)
			}
			next := child.SiblingIdx
			if err := t.FreeTree(conductor); err != nil {
				return err
			}
			conductor = next
		}
	case KindSplit:
		for _, c := range n.ChildrenIdx {
			if err := t.FreeTree(c); err != nil {
				return err
			}
		}
	}

	n.freed = true

	return nil
}
