// Package bundle finds balanced bundles in a bidirected graph and models
// them.
//
// A balanced bundle for a seed handle h is a pair of handle sets (L, R),
// disjoint unless the bundle is cyclic, such that the right-neighbors of every handle in L equal R, and
// the left-neighbors of every handle in R equal L, with |L| >= 1 and
// |R| >= 1. FindBalancedBundle tests a single seed in three phases
// (right collection, left collection/consistency, right consistency);
// FindAllBundles enumerates every bundle in the graph exactly once.
//
// Bundle is returned frozen: its two Sides cache a sorted vector of
// members and a sorted vector of their flips, which GetAdjacency uses to
// classify how two bundle sides overlap (Strong/Weak/None) — the
// precondition the reduction engine's R2 rule checks before collapsing a
// bundle.
//
// Bundle objects are drawn from an Arena (see arena.go) to bound
// allocator churn during enumeration, per the reduction engine's
// resource policy.
package bundle
