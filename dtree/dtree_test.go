package dtree_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bungraph/dtree"
)

func TestMakeChain_SplicesExistingChains(t *testing.T) {
	tr := dtree.NewTree()
	a := tr.MakeSource(1)
	b := tr.MakeSource(2)
	c := tr.MakeSource(3)

	chainAB, err := tr.MakeChain(100, a, b)
	require.NoError(t, err)

	// Chaining (chainAB, c) should splice chainAB's two children directly
	// onto the new chain rather than nesting chainAB as an intermediate
	// wrapper node.
	chainABC, err := tr.MakeChain(101, chainAB, c)
	require.NoError(t, err)

	node, err := tr.Node(chainABC)
	require.NoError(t, err)
	assert.Equal(t, dtree.KindChain, node.Kind)
	assert.Len(t, node.ChildrenIdx, 3)
	assert.ElementsMatch(t, []int{a, b, c}, node.ChildrenIdx)

	// The shell node chainAB must now be freed (spliced away).
	_, err = tr.Node(chainAB)
	assert.ErrorIs(t, err, dtree.ErrInvalidNode)

	// Sibling order should be a -> b -> c.
	head := node.ChildHeadIdx
	require.Equal(t, a, head)
	n1, err := tr.Node(head)
	require.NoError(t, err)
	require.Equal(t, b, n1.SiblingIdx)
	n2, err := tr.Node(n1.SiblingIdx)
	require.NoError(t, err)
	require.Equal(t, c, n2.SiblingIdx)
	assert.Equal(t, c, node.ChildTailIdx)
}

func TestReverse_ChainOrderFlipsAndIsInvolution(t *testing.T) {
	tr := dtree.NewTree()
	a := tr.MakeSource(1)
	b := tr.MakeSource(2)
	c := tr.MakeSource(3)
	chain, err := tr.MakeChain(100, a, b)
	require.NoError(t, err)
	chain, err = tr.MakeChain(101, chain, c)
	require.NoError(t, err)

	require.NoError(t, tr.Reverse(chain))

	node, err := tr.Node(chain)
	require.NoError(t, err)
	assert.True(t, node.IsReverse)
	assert.Equal(t, c, node.ChildHeadIdx)
	assert.Equal(t, a, node.ChildTailIdx)

	na, err := tr.Node(a)
	require.NoError(t, err)
	assert.True(t, na.IsReverse, "children must be recursively reversed")

	// Reverse again: involution restores the original order and flags.
	require.NoError(t, tr.Reverse(chain))
	node, err = tr.Node(chain)
	require.NoError(t, err)
	assert.False(t, node.IsReverse)
	assert.Equal(t, a, node.ChildHeadIdx)
	assert.Equal(t, c, node.ChildTailIdx)

	na, err = tr.Node(a)
	require.NoError(t, err)
	assert.False(t, na.IsReverse)
}

func TestReverse_SplitRecursesWithoutSiblingOrder(t *testing.T) {
	tr := dtree.NewTree()
	a := tr.MakeSource(1)
	b := tr.MakeSource(2)
	split, err := tr.MakeSplit(200, a, b)
	require.NoError(t, err)

	require.NoError(t, tr.Reverse(split))

	node, err := tr.Node(split)
	require.NoError(t, err)
	assert.True(t, node.IsReverse)

	na, _ := tr.Node(a)
	nb, _ := tr.Node(b)
	assert.True(t, na.IsReverse)
	assert.True(t, nb.IsReverse)
}

func TestFindLCA(t *testing.T) {
	tr := dtree.NewTree()
	a := tr.MakeSource(1)
	b := tr.MakeSource(2)
	c := tr.MakeSource(3)
	split1, err := tr.MakeSplit(100, a, b)
	require.NoError(t, err)
	split2, err := tr.MakeSplit(101, split1, c)
	require.NoError(t, err)

	lca, ok, err := tr.FindLCA(a, b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, split1, lca)

	lca, ok, err = tr.FindLCA(a, c)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, split2, lca)

	lca, ok, err = tr.FindLCA(a, a)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, a, lca)
}

func TestFindLCA_DisjointTreesNotFound(t *testing.T) {
	tr := dtree.NewTree()
	a := tr.MakeSource(1)
	b := tr.MakeSource(2) // never joined to a by any chain/split

	_, ok, err := tr.FindLCA(a, b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFreeTree_InvalidatesSubtree(t *testing.T) {
	tr := dtree.NewTree()
	a := tr.MakeSource(1)
	b := tr.MakeSource(2)
	split, err := tr.MakeSplit(100, a, b)
	require.NoError(t, err)

	require.NoError(t, tr.FreeTree(split))

	_, err = tr.Node(split)
	assert.ErrorIs(t, err, dtree.ErrInvalidNode)
	_, err = tr.Node(a)
	assert.ErrorIs(t, err, dtree.ErrInvalidNode)
	_, err = tr.Node(b)
	assert.ErrorIs(t, err, dtree.ErrInvalidNode)
}

func TestDump_RendersDepthIndentedTree(t *testing.T) {
	tr := dtree.NewTree()
	a := tr.MakeSource(1)
	b := tr.MakeSource(2)
	split, err := tr.MakeSplit(100, a, b)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dtree.Dump(&buf, tr, split))

	out := buf.String()
	assert.Contains(t, out, "Split Node: 100")
	assert.Contains(t, out, "| Source Node: 1")
	assert.Contains(t, out, "| Source Node: 2")
}
