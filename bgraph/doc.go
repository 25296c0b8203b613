// Package bgraph implements the bidirected graph model: a finite multigraph
// whose edges attach to a side (left or right) of each endpoint rather than
// to the endpoint itself, modeling double-stranded DNA connectivity.
//
// Nodes carry an integer id and an opaque sequence payload; only topology
// matters to this package. Edges are stored once, keyed by their canonical
// handle.Edge form (see the handle package), but are visible from both
// endpoints: following handle.CanonicalEdge(a,b) forward from a yields b,
// and following from Flip(b) forward yields Flip(a).
//
// Graph exposes both read-only traversal (HasNode, GetHandle, ForEachHandle,
// FollowEdges, GetDegree) and the mutable operations the reduction engine
// needs (CreateNode, CreateEdge, DestroyNode, DestroyEdge). Two RWMutex
// locks guard node and edge/adjacency state respectively, matching the
// locking granularity of core.Graph in lvlath even though the reduction
// engine that owns a Graph is itself single-threaded.
package bgraph
