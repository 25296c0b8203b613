// Package scc implements Tarjan's strongly-connected-components algorithm
// generalized to bidirected graphs, as described in Ando, Fujishige &
// Nemoto, "Decomposition of a bidirected graph into strongly connected
// components and its signed poset structure".
//
// Each handle (both orientations of a node) is treated as a vertex of the
// search graph; a directed edge h -> h' exists iff h' appears in
// follow_edges(h, false). Once the search produces components of
// handles, each component is collapsed to a set of node ids — both
// orientations of a node contribute the same id, deduplicated. If the
// same node id would appear in two component sets (a duplicate arising
// from the two-orientation doubling), the later component is dropped
// wholesale, mirroring the "already used" sentinel of the reference
// implementation.
//
// The search is iterative (explicit discover/finish event stacks, no
// recursion) so it accepts graphs of arbitrary depth without overflowing
// the Go call stack — this is a deliberate departure from the teacher
// library's recursive dfs package, justified by the unbounded depth a
// structural variation graph can reach.
package scc
