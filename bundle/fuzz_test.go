package bundle_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bungraph/bgraph"
	"github.com/katalvlaran/bungraph/bundle"
	"github.com/katalvlaran/bungraph/handle"
)

// TestFindBalancedBundle_FuzzedTopologies checks universal invariant 3
// (spec §8): for every seed handle on which FindBalancedBundle reports
// success, every left member's right-neighbor set equals R and every
// right member's left-neighbor set equals L, across a batch of randomized
// small graphs.
func TestFindBalancedBundle_FuzzedTopologies(t *testing.T) {
	f := fuzz.New().NilChance(0)

	for trial := 0; trial < 32; trial++ {
		var nRaw, eRaw uint32
		f.Fuzz(&nRaw)
		f.Fuzz(&eRaw)
		n := 2 + int(nRaw%7)
		edgeAttempts := 1 + int(eRaw%12)

		g := bgraph.NewGraph()
		for id := uint64(1); id <= uint64(n); id++ {
			g.AddNode(id, "")
		}
		for i := 0; i < edgeAttempts; i++ {
			var aRaw, bRaw, oriRaw uint32
			f.Fuzz(&aRaw)
			f.Fuzz(&bRaw)
			f.Fuzz(&oriRaw)
			a := 1 + uint64(aRaw%uint32(n))
			b := 1 + uint64(bRaw%uint32(n))
			if a == b {
				continue
			}
			ha := handle.NewHandle(a, oriRaw&1 == 1)
			hb := handle.NewHandle(b, oriRaw&2 == 2)
			_ = g.CreateEdge(ha, hb)
		}

		for _, b := range bundle.FindAllBundles(g) {
			b.Left.Each(func(l handle.Handle) bool {
				assert.ElementsMatchf(t, rightNeighborIDs(g, l), sideAsList(b.Right), "trial %d: left member %s", trial, l)

				return true
			})
			b.Right.Each(func(r handle.Handle) bool {
				assert.ElementsMatchf(t, leftNeighborIDs(g, r), sideAsList(b.Left), "trial %d: right member %s", trial, r)

				return true
			})
		}
	}
}

func rightNeighborIDs(g *bgraph.Graph, h handle.Handle) []handle.Handle {
	return g.Neighbors(h, false)
}

func leftNeighborIDs(g *bgraph.Graph, h handle.Handle) []handle.Handle {
	return g.Neighbors(h, true)
}

func sideAsList(s *bundle.Side) []handle.Handle {
	var out []handle.Handle
	s.Each(func(h handle.Handle) bool {
		out = append(out, h)

		return true
	})

	return out
}
