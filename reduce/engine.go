package reduce

import (
	"fmt"

	"github.com/katalvlaran/bungraph/bgraph"
	"github.com/katalvlaran/bungraph/bundle"
	"github.com/katalvlaran/bungraph/dtree"
	"github.com/katalvlaran/bungraph/handle"
	"github.com/katalvlaran/bungraph/scc"
)

// Engine owns a bidirected graph being reduced, the bundle index that
// accelerates R2 candidate search, the decomposition tree recording the
// rewrite history, and the bundle Arena shared by every detection call
// made during the run.
type Engine struct {
	g     *bgraph.Graph
	Index map[handle.Handle]*bundle.Bundle
	Tree  *dtree.Tree

	arena      *bundle.Arena
	leaves     map[uint64]int // live node id -> its current decomposition subtree root
	cfg        config
	components []map[uint64]struct{}
}

// NewEngine constructs an Engine over g: every live node becomes a Source
// leaf in Tree, and every bundle found by an initial find_all_bundles
// pass is marked into Index, exactly as spec §4.G's "initial state"
// describes.
func NewEngine(g *bgraph.Graph, opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		g:      g,
		Index:  make(map[handle.Handle]*bundle.Bundle),
		Tree:   dtree.NewTree(),
		arena:  cfg.getArena(),
		leaves: make(map[uint64]int),
		cfg:    cfg,
	}

	g.ForEachHandle(func(h handle.Handle) bool {
		e.leaves[h.ID()] = e.Tree.MakeSource(h.ID())

		return true
	})

	if cfg.sccPrePartition {
		e.components = scc.StronglyConnectedComponents(g)
	}

	for _, b := range bundle.FindAllBundles(g, bundle.WithArena(e.arena)) {
		e.Mark(b)
	}

	return e
}

// Components returns the strongly connected components computed at
// construction time, or nil if WithSCCPrePartition was not requested.
func (e *Engine) Components() []map[uint64]struct{} {
	return e.components
}

// Mark inserts b into Index: for each l in b.Left, I[l] = b; for each r in
// b.Right, I[flip(r)] = b. The index is keyed by the handle from which
// following right enters the bundle.
func (e *Engine) Mark(b *bundle.Bundle) {
	b.Left.Each(func(l handle.Handle) bool {
		e.Index[l] = b

		return true
	})
	b.Right.Each(func(r handle.Handle) bool {
		e.Index[r.Flip()] = b

		return true
	})
}

// Unmark deletes the Index entries at every key Mark(b) sets (each l in
// b.Left and flip(r) for each r in b.Right), whichever bundle those keys
// currently refer to.
func (e *Engine) Unmark(b *bundle.Bundle) {
	b.Left.Each(func(l handle.Handle) bool {
		delete(e.Index, l)

		return true
	})
	b.Right.Each(func(r handle.Handle) bool {
		delete(e.Index, r.Flip())

		return true
	})
}

// purgeVanished deletes every Index entry whose key handle refers to a
// node id in dead, regardless of which bundle it pointed to — a key
// surviving a rewrite while its bundle's other side has changed would
// leave a stale, no-longer-valid entry, so the purge is scoped to handle
// identity rather than to any one bundle object.
func (e *Engine) purgeVanished(dead map[uint64]struct{}) {
	for h := range e.Index {
		if _, gone := dead[h.ID()]; gone {
			delete(e.Index, h)
		}
	}
}

// Run drives the fixed-point loop: scan Index for a viable R2, else scan
// G for a viable R1, until neither rule applies. Each rewrite strictly
// decreases |N|+|E|, so termination is guaranteed on any valid input.
func (e *Engine) Run() error {
	for {
		ok, err := e.stepR2()
		if err != nil {
			return fmt.Errorf("reduce: Run: %w", err)
		}
		if ok {
			continue
		}

		ok, err = e.stepR1()
		if err != nil {
			return fmt.Errorf("reduce: Run: %w", err)
		}
		if ok {
			continue
		}

		return nil
	}
}
