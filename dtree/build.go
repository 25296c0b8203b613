package dtree

import "fmt"

// MakeSource appends a new Source node for the given original-graph node
// id and returns its index.
func (t *Tree) MakeSource(nid uint64) int {
	return t.alloc(nid, KindSource)
}

// MakeEpsilon appends a new Epsilon node (rule-1 sentinel for a collapsed
// edge with no remaining intermediate sequence) and returns its index.
func (t *Tree) MakeEpsilon(nid uint64) int {
	return t.alloc(nid, KindEpsilon)
}

// addChild appends childIdx to parentIdx's unordered ChildrenIdx list and
// sets the child's ParentIdx. Does not touch the sibling chain.
func (t *Tree) addChild(parentIdx, childIdx int) error {
	parent, err := t.at(parentIdx)
	if err != nil {
		return err
	}
	child, err := t.at(childIdx)
	if err != nil {
		return err
	}
	parent.ChildrenIdx = append(parent.ChildrenIdx, childIdx)
	child.ParentIdx = parentIdx

	return nil
}

// pushBack appends childIdx to parentIdx's sibling chain (Chain nodes
// only) and to its unordered children list.
func (t *Tree) pushBack(parentIdx, childIdx int) error {
	if err := t.addChild(parentIdx, childIdx); err != nil {
		return err
	}
	parent, _ := t.at(parentIdx)
	if parent.ChildTailIdx == -1 {
		parent.ChildHeadIdx = childIdx
		parent.ChildTailIdx = childIdx

		return nil
	}
	tail, err := t.at(parent.ChildTailIdx)
	if err != nil {
		return err
	}
	tail.SiblingIdx = childIdx
	parent.ChildTailIdx = childIdx

	return nil
}

// spliceOrAppend is the shared logic for MakeChain's two operands: if src
// is itself a Chain, its sibling chain is spliced directly into dst
// (children reparented, the src shell discarded); otherwise src becomes a
// single child of dst.
func (t *Tree) spliceOrAppend(dstIdx, srcIdx int) error {
	src, err := t.at(srcIdx)
	if err != nil {
		return err
	}
	if src.Kind != KindChain {
		return t.pushBack(dstIdx, srcIdx)
	}

	conductor := src.ChildHeadIdx
	for conductor != -1 {
		node, err := t.at(conductor)
		if err != nil {
			return err
		}
		next := node.SiblingIdx
		node.SiblingIdx = -1
		if err := t.pushBack(dstIdx, conductor); err != nil {
			return err
		}
		conductor = next
	}
	src.freed = true

	return nil
}

// MakeChain assigns first and second as the two ordered children of a new
// Chain node, splicing in either operand's own sibling chain if it is
// itself a Chain (its shell is then discarded rather than kept as an
// intermediate wrapper). Returns the new Chain's index.
func (t *Tree) MakeChain(nid uint64, first, second int) (int, error) {
	if _, err := t.at(first); err != nil {
		return -1, err
	}
	if _, err := t.at(second); err != nil {
		return -1, err
	}

	idx := t.alloc(nid, KindChain)
	if err := t.spliceOrAppend(idx, first); err != nil {
		return -1, fmt.Errorf("dtree: MakeChain: %w", err)
	}
	if err := t.spliceOrAppend(idx, second); err != nil {
		return -1, fmt.Errorf("dtree: MakeChain: %w", err)
	}

	return idx, nil
}

// MakeSplit wraps children as the unordered child set of a new Split
// node. Unlike MakeChain, child order carries no meaning and no sibling
// chain is built. Returns the new Split's index.
func (t *Tree) MakeSplit(nid uint64, children ...int) (int, error) {
	for _, c := range children {
		if _, err := t.at(c); err != nil {
			return -1, err
		}
	}

	idx := t.alloc(nid, KindSplit)
	for _, c := range children {
		if err := t.addChild(idx, c); err != nil {
			return -1, fmt.Errorf("dtree: MakeSplit: %w", err)
		}
	}

	return idx, nil
}
