package bundle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bungraph/bgraph"
	"github.com/katalvlaran/bungraph/bundle"
	"github.com/katalvlaran/bungraph/handle"
)

func mustHandle(t *testing.T, g *bgraph.Graph, id uint64, rev bool) handle.Handle {
	t.Helper()
	h, err := g.GetHandle(id, rev)
	require.NoError(t, err)

	return h
}

// TestFindAllBundles_S1_TrivialTwoNodeBundle: nodes {1,2}, edge
// (1.right, 2.left). Exactly one trivial bundle.
func TestFindAllBundles_S1_TrivialTwoNodeBundle(t *testing.T) {
	g := bgraph.NewGraph()
	g.AddNode(1, "")
	g.AddNode(2, "")
	h1 := mustHandle(t, g, 1, false)
	h2 := mustHandle(t, g, 2, false)
	require.NoError(t, g.CreateEdge(h1, h2))

	bundles := bundle.FindAllBundles(g)
	require.Len(t, bundles, 1)

	b := bundles[0]
	assert.True(t, b.Trivial)
	assert.False(t, b.HasReversed)
	assert.False(t, b.Cyclic)
	assert.Equal(t, 1, b.Left.Size())
	assert.Equal(t, 1, b.Right.Size())
}

// TestFindAllBundles_S2_Balanced2x2Bundle: nodes {1,2,3,4}; 1,2 -> 3,4.
func TestFindAllBundles_S2_Balanced2x2Bundle(t *testing.T) {
	g := bgraph.NewGraph()
	for _, id := range []uint64{1, 2, 3, 4} {
		g.AddNode(id, "")
	}
	h1, h2 := mustHandle(t, g, 1, false), mustHandle(t, g, 2, false)
	h3, h4 := mustHandle(t, g, 3, false), mustHandle(t, g, 4, false)
	require.NoError(t, g.CreateEdge(h1, h3))
	require.NoError(t, g.CreateEdge(h1, h4))
	require.NoError(t, g.CreateEdge(h2, h3))
	require.NoError(t, g.CreateEdge(h2, h4))

	bundles := bundle.FindAllBundles(g)
	require.Len(t, bundles, 1)

	b := bundles[0]
	assert.False(t, b.Trivial)
	assert.Equal(t, 2, b.Left.Size())
	assert.Equal(t, 2, b.Right.Size())
}

// TestFindBalancedBundle_S3_ReversedMember: nodes {1,2,3}; 1.r-2.l,
// 1.r-3.r (3 enters from its right side).
func TestFindBalancedBundle_S3_ReversedMember(t *testing.T) {
	g := bgraph.NewGraph()
	for _, id := range []uint64{1, 2, 3} {
		g.AddNode(id, "")
	}
	h1 := mustHandle(t, g, 1, false)
	h2 := mustHandle(t, g, 2, false)
	h3rev := mustHandle(t, g, 3, true)
	require.NoError(t, g.CreateEdge(h1, h2))
	require.NoError(t, g.CreateEdge(h1, h3rev))

	ok, b := bundle.FindBalancedBundle(h1, g)
	require.True(t, ok)
	assert.True(t, b.HasReversed)
	assert.True(t, b.Right.Contains(h3rev))
	assert.True(t, b.Right.Contains(h2))
}

// TestFindBalancedBundle_S4_NoBundle: nodes {1,2,3}; 1-2, 2-3, 1-3.
// Seeded at 1.f, follow_edges(3.f,true) != {1.f} so no bundle.
func TestFindBalancedBundle_S4_NoBundle(t *testing.T) {
	g := bgraph.NewGraph()
	for _, id := range []uint64{1, 2, 3} {
		g.AddNode(id, "")
	}
	h1 := mustHandle(t, g, 1, false)
	h2 := mustHandle(t, g, 2, false)
	h3 := mustHandle(t, g, 3, false)
	require.NoError(t, g.CreateEdge(h1, h2))
	require.NoError(t, g.CreateEdge(h2, h3))
	require.NoError(t, g.CreateEdge(h1, h3))

	ok, b := bundle.FindBalancedBundle(h1, g)
	assert.False(t, ok)
	assert.Nil(t, b)
}

func TestFindBalancedBundle_SelfLoopIsCyclic(t *testing.T) {
	g := bgraph.NewGraph()
	g.AddNode(1, "")
	h1 := mustHandle(t, g, 1, false)
	require.NoError(t, g.CreateEdge(h1, h1))

	ok, b := bundle.FindBalancedBundle(h1, g)
	require.True(t, ok)
	assert.True(t, b.Cyclic)
}

func TestGetAdjacency_Classification(t *testing.T) {
	g1 := bgraph.NewGraph()
	for _, id := range []uint64{1, 2, 3} {
		g1.AddNode(id, "")
	}
	h1 := mustHandle(t, g1, 1, false)
	h2 := mustHandle(t, g1, 2, false)
	h3 := mustHandle(t, g1, 3, false)
	require.NoError(t, g1.CreateEdge(h1, h2))
	require.NoError(t, g1.CreateEdge(h1, h3))

	ok1, b1 := bundle.FindBalancedBundle(h1, g1)
	require.True(t, ok1)
	require.Equal(t, 2, b1.Right.Size()) // {2.f, 3.f}

	// g2 reuses node ids 2 and 3 so that seeding from x reproduces a
	// Right side with exactly the same members as b1.Right, to exercise
	// AdjStrong without needing to poke at unexported Side internals.
	g2 := bgraph.NewGraph()
	for _, id := range []uint64{2, 3, 10} {
		g2.AddNode(id, "")
	}
	hx := mustHandle(t, g2, 10, false)
	h2b := mustHandle(t, g2, 2, false)
	h3b := mustHandle(t, g2, 3, false)
	require.NoError(t, g2.CreateEdge(hx, h2b))
	require.NoError(t, g2.CreateEdge(hx, h3b))

	ok2, b2 := bundle.FindBalancedBundle(hx, g2)
	require.True(t, ok2)
	require.Equal(t, 2, b2.Right.Size())

	adj, err := bundle.GetAdjacency(b1.Right, b2.Right)
	require.NoError(t, err)
	assert.Equal(t, bundle.AdjStrong, adj)

	// b1.Left == {1.f} shares nothing with b2.Right == {2.f,3.f}: AdjNone.
	adj, err = bundle.GetAdjacency(b1.Left, b2.Right)
	require.NoError(t, err)
	assert.Equal(t, bundle.AdjNone, adj)
}

func TestGetAdjacency_RequiresFrozenSides(t *testing.T) {
	_, err := bundle.GetAdjacency(&bundle.Side{}, &bundle.Side{})
	require.Error(t, err)
	assert.ErrorIs(t, err, bundle.ErrInvalidBundleOp)
}
