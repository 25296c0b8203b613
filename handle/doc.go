// Package handle implements the handle algebra over bidirected graphs: a
// handle is a 64-bit oriented reference to one side of a node — the pair
// (node id, orientation) — packed so that flip, id, and orientation are
// all O(1) bit operations.
//
// Contracts:
//
//   - Handles are totally ordered by AsInteger.
//   - Flip(Flip(h)) == h and ID(Flip(h)) == ID(h) for all h.
//   - The canonical form of an edge (a,b) is the lexicographic minimum of
//     (a,b) and (Flip(b),Flip(a)) when compared as packed integers.
//
// Complexity: every operation in this package is O(1); there is no hidden
// allocation or locking.
package handle
