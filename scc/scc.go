package scc

import (
	"github.com/katalvlaran/bungraph/bgraph"
	"github.com/katalvlaran/bungraph/handle"
)

// frame is one level of the explicit DFS call stack: the handle being
// visited, its cached right-neighbors, and how far we've gotten through
// them.
type frame struct {
	h         handle.Handle
	neighbors []handle.Handle
	idx       int
}

// StronglyConnectedComponents partitions the handles of g into strongly
// connected components and collapses each to a set of node ids.
//
// Contract: every node id appears in exactly one returned set; the union
// of all sets equals the graph's node set.
// Complexity: O(V + E).
func StronglyConnectedComponents(g *bgraph.Graph, opts ...Option) []map[uint64]struct{} {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var ids []uint64
	g.ForEachHandle(func(h handle.Handle) bool {
		ids = append(ids, h.ID())

		return true
	})
	ids = cfg.seedOrder(ids)

	s := &searchState{
		g:           g,
		discoverIdx: make(map[handle.Handle]int),
		root:        make(map[handle.Handle]handle.Handle),
		onStack:     make(map[handle.Handle]bool),
		alreadyUsed: make(map[uint64]struct{}),
	}

	for _, id := range ids {
		for _, rev := range [2]bool{false, true} {
			h := handle.NewHandle(id, rev)
			if _, seen := s.discoverIdx[h]; !seen {
				s.run(h)
			}
		}
	}

	return s.components
}

// searchState carries all bookkeeping for one iterative Tarjan run across
// the whole handle universe (so that components discovered from
// different seeds still dedupe correctly against alreadyUsed).
type searchState struct {
	g *bgraph.Graph

	index       int
	discoverIdx map[handle.Handle]int
	root        map[handle.Handle]handle.Handle
	onStack     map[handle.Handle]bool
	compStack   []handle.Handle

	alreadyUsed map[uint64]struct{}
	components  []map[uint64]struct{}
}

// discover records index, pushes h onto the DFS stack, and sets h as its
// own provisional root.
func (s *searchState) discover(h handle.Handle) {
	s.discoverIdx[h] = s.index
	s.index++
	s.root[h] = h
	s.compStack = append(s.compStack, h)
	s.onStack[h] = true
}

// finish processes h once all its right-neighbors have been explored:
// adopt the earliest-discovered root among h and its on-stack neighbors,
// and if h is still its own root, pop a component off the stack.
func (s *searchState) finish(h handle.Handle, neighbors []handle.Handle) {
	for _, next := range neighbors {
		if !s.onStack[next] {
			continue
		}
		if s.discoverIdx[s.root[next]] < s.discoverIdx[s.root[h]] {
			s.root[h] = s.root[next]
		}
	}

	if s.root[h] != h {
		return
	}

	component := make(map[uint64]struct{})
	isDuplicate := false
	for {
		other := s.compStack[len(s.compStack)-1]
		s.compStack = s.compStack[:len(s.compStack)-1]
		s.onStack[other] = false

		if _, used := s.alreadyUsed[other.ID()]; used {
			isDuplicate = true
		}
		component[other.ID()] = struct{}{}

		if other == h {
			break
		}
	}

	if isDuplicate {
		return
	}
	for id := range component {
		s.alreadyUsed[id] = struct{}{}
	}
	s.components = append(s.components, component)
}

// run drives one iterative DFS rooted at seed, using an explicit frame
// stack so arbitrarily deep graphs never overflow the Go call stack.
func (s *searchState) run(seed handle.Handle) {
	s.discover(seed)
	stack := []*frame{{h: seed, neighbors: s.g.Neighbors(seed, false)}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.idx >= len(top.neighbors) {
			s.finish(top.h, top.neighbors)
			stack = stack[:len(stack)-1]
			continue
		}

		next := top.neighbors[top.idx]
		top.idx++

		if _, seen := s.discoverIdx[next]; seen {
			continue
		}
		s.discover(next)
		stack = append(stack, &frame{h: next, neighbors: s.g.Neighbors(next, false)})
	}
}
