package bgraph

import "errors"

// Sentinel errors for bgraph operations.
var (
	// ErrNotFound indicates a handle or node id does not exist in the graph.
	ErrNotFound = errors.New("bgraph: not found")

	// ErrDanglingEdge indicates a mutation would leave the graph with an
	// edge referencing a destroyed node; such mutations are forbidden.
	ErrDanglingEdge = errors.New("bgraph: edge would dangle")
)
