package loader

import "errors"

// ErrLoaderError wraps every error LoadJSON returns, whether the failure
// came from the decoder or from a malformed reference between nodes and
// edges.
var ErrLoaderError = errors.New("loader: failed to load graph")
