// Package dtree implements the decomposition tree: the append-only record
// of how the reduction engine built a collapsed graph from source nodes.
//
// Per the arena-of-tagged-records shape, nodes live in a Tree's backing
// slice and reference each other by index rather than by pointer (Source,
// Chain, Split, Epsilon variants, tagged by Kind). Chain nodes additionally
// thread their children through a singly-linked sibling list (ChildHead/
// ChildTail/Sibling indices); Split nodes hold an unordered child index
// list.
//
// Reversal (Reverse) is an involution: reversing a Chain reverses its
// sibling order in place and recursively reverses every child; reversing a
// Split recursively reverses every child; reversing a Source or Epsilon
// only toggles IsReverse.
package dtree
