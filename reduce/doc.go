// Package reduce implements the reduction engine: the fixed-point rewrite
// loop that repeatedly applies R2 (balanced-bundle collapse) and R1
// (degree-one tip elimination) to a bidirected graph, recording the
// rewrite history in a decomposition tree.
//
// An Engine owns the graph being reduced, a bundle index keyed by handle
// (mirroring the reference design's I : handle -> Bundle map), a
// decomposition tree rooted at the original source ids, and a bundle
// Arena shared across every detection call made during the run. Run
// drives the loop to completion; each rewrite strictly decreases the
// graph's node-plus-edge count, so termination is guaranteed on any valid
// input.
package reduce
