package bundle

import (
	"github.com/katalvlaran/bungraph/bgraph"
	"github.com/katalvlaran/bungraph/handle"
)

// cacheHandle records h (or, if viaFlip, h's flip) into cached. Mirrors
// the reference detector's two caching conventions: left-side members
// are cached directly (so re-seeding at that exact handle is skipped),
// right-side members are cached via their flip (so re-seeding at the
// mirror orientation, which would rediscover the same bundle, is also
// skipped).
func cacheHandle(h handle.Handle, cached map[handle.Handle]struct{}, viaFlip bool) {
	if viaFlip {
		cached[h.Flip()] = struct{}{}
	} else {
		cached[h] = struct{}{}
	}
}

// FindBalancedBundle tests whether seed anchors a balanced bundle in g,
// via the three-phase algorithm:
//
//  1. Right collection: R := follow_edges(seed, false). Empty R means no
//     bundle.
//  2. Left collection and consistency: for every r in R, the set of
//     left-neighbors of r must agree (same members, same cardinality).
//  3. Right consistency: for every l in L (other than seed), the set of
//     right-neighbors of l must equal R.
//
// On success returns (true, bundle) with Trivial/HasReversed/Cyclic set.
// On failure returns (false, nil).
// Complexity: O(degree(seed) * max-degree).
func FindBalancedBundle(seed handle.Handle, g *bgraph.Graph, opts ...Option) (bool, *Bundle) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ok, b := findBundleAt(seed, g, cfg.getArena(), cfg.getCache())
	if !ok {
		return false, nil
	}

	return true, b
}

// findBundleAt is the allocation-aware core shared by FindBalancedBundle
// and FindAllBundles.
func findBundleAt(seed handle.Handle, g *bgraph.Graph, arena *Arena, cached map[handle.Handle]struct{}) (bool, *Bundle) {
	b := arena.Get()
	seedReverse := seed.IsReverse()
	notBundle := false
	hasReversed := false

	// Phase 1: right collection.
	g.FollowEdges(seed, false, func(r handle.Handle) bool {
		b.Right.Add(r)
		if r.IsReverse() != seedReverse {
			hasReversed = true
		}

		return true
	})
	if b.Right.Size() == 0 {
		arena.Put(b)

		return false, nil
	}

	// Phase 2: left collection and consistency. The first right-neighbor
	// seeds L; every subsequent right-neighbor's left-neighbor set must
	// match exactly.
	firstLeftCount := -1
	isFirst := true
	b.Right.Each(func(r handle.Handle) bool {
		cacheHandle(r, cached, true)

		count := 0
		if isFirst {
			g.FollowEdges(r, true, func(l handle.Handle) bool {
				b.Left.Add(l)
				if l.IsReverse() != seedReverse {
					hasReversed = true
				}
				cacheHandle(l, cached, false)
				count++

				return true
			})
			firstLeftCount = count
			isFirst = false
		} else {
			g.FollowEdges(r, true, func(l handle.Handle) bool {
				if !b.Left.Contains(l) {
					notBundle = true
				}
				if l.IsReverse() != seedReverse {
					hasReversed = true
				}
				cacheHandle(l, cached, false)
				count++

				return true
			})
			if count != firstLeftCount {
				notBundle = true
			}
		}

		return true
	})

	// Phase 3: right consistency for every other left member.
	rightCount := b.Right.Size()
	b.Left.Each(func(l handle.Handle) bool {
		if l == seed {
			return true
		}

		count := 0
		g.FollowEdges(l, false, func(r handle.Handle) bool {
			if !b.Right.Contains(r) {
				notBundle = true
			}
			if r.IsReverse() != seedReverse {
				hasReversed = true
			}
			cacheHandle(r, cached, true)
			count++

			return true
		})
		if count != rightCount {
			notBundle = true
		}

		return true
	})

	if notBundle {
		arena.Put(b)

		return false, nil
	}

	b.HasReversed = hasReversed
	b.freeze()

	return true, b
}

// FindAllBundles enumerates every node id in g and tries both
// orientations as a seed, skipping any handle already cached by a prior
// successful (or attempted) detection so that each bundle is returned
// exactly once, in one of its canonical orientations, even though it
// could be seeded from several of its members.
// Complexity: O(V * average bundle size).
func FindAllBundles(g *bgraph.Graph, opts ...Option) []*Bundle {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	arena := cfg.getArena()
	cached := cfg.getCache()

	var bundles []*Bundle
	g.ForEachHandle(func(fwd handle.Handle) bool {
		if _, seen := cached[fwd]; !seen {
			cached[fwd] = struct{}{}
			if ok, b := findBundleAt(fwd, g, arena, cached); ok {
				bundles = append(bundles, b)
			}
		}

		rev := fwd.Flip()
		if _, seen := cached[rev]; !seen {
			cached[rev] = struct{}{}
			if ok, b := findBundleAt(rev, g, arena, cached); ok {
				bundles = append(bundles, b)
			}
		}

		return true
	})

	return bundles
}
