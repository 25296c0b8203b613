package reduce

import "errors"

// ErrUnimplemented is the sentinel for reduction rules that have no
// standalone entry point. R3 (chain fusion) runs only automatically at the
// end of a successful R1/R2 step and has no exported entry point, so no
// operation in this package currently returns this error.
var ErrUnimplemented = errors.New("reduce: operation not implemented as a standalone entry point")

// ErrMissingSubtree indicates an internal bookkeeping invariant was
// violated: a live graph node had no corresponding decomposition-tree
// subtree recorded in the engine's leaf table.
var ErrMissingSubtree = errors.New("reduce: node has no recorded decomposition subtree")
