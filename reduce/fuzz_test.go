package reduce_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bungraph/bgraph"
	"github.com/katalvlaran/bungraph/handle"
	"github.com/katalvlaran/bungraph/reduce"
)

// TestEngine_Run_FuzzedTopologies builds a batch of randomized small
// graphs and checks that Run() always terminates without error, never
// grows the live node count, and never leaves an Index entry pointing at
// a node the graph no longer has — the two universal invariants the
// reduction loop must hold regardless of topology.
func TestEngine_Run_FuzzedTopologies(t *testing.T) {
	f := fuzz.New().NilChance(0)

	for trial := 0; trial < 32; trial++ {
		var nRaw, eRaw uint32
		f.Fuzz(&nRaw)
		f.Fuzz(&eRaw)
		n := 2 + int(nRaw%7) // 2..8 nodes
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
				continue // same-node edges (self-loops, self-inversions) are not generated here
			}
			ha := handle.NewHandle(a, oriRaw&1 == 1)
			hb := handle.NewHandle(b, oriRaw&2 == 2)
			_ = g.CreateEdge(ha, hb) // duplicates are deduplicated by CreateEdge
		}

		before := g.NodeCount()
		e := reduce.NewEngine(g)
		require.NoError(t, e.Run(), "trial %d", trial)

		assert.LessOrEqualf(t, g.NodeCount(), before, "trial %d: node count grew", trial)
		for k := range e.Index {
			assert.Truef(t, g.HasNode(k.ID()), "trial %d: index key %s refers to a dead node", trial, k)
		}
	}
}
