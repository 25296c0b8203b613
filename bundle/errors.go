package bundle

import "errors"

// ErrInvalidBundleOp indicates an operation was invoked on a bundle that
// was not frozen (side caches absent) or whose state is inconsistent —
// for example, asking for GetAdjacency before Freeze has populated the
// sorted member/flip vectors.
var ErrInvalidBundleOp = errors.New("bundle: invalid operation on unfrozen bundle")
