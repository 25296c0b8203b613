package handle

import "errors"

// ErrMalformedEdge indicates that TraverseEdgeHandle was invoked from a
// handle that does not participate in the given edge.
var ErrMalformedEdge = errors.New("handle: malformed edge traversal")
