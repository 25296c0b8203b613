package dtree

import "errors"

// ErrInvalidNode indicates an operation referenced a node index outside
// the tree's arena, or a node already freed by FreeTree.
var ErrInvalidNode = errors.New("dtree: invalid node index")
