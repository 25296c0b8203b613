package reduce

import (
	"github.com/katalvlaran/bungraph/bundle"
	"github.com/katalvlaran/bungraph/handle"
)

// reseedAt re-runs bundle detection at h, marking the result into Index
// on success. A failed detection simply leaves the neighborhood without
// an entry, which spec §4.G's failure semantics says is consistent.
func (e *Engine) reseedAt(h handle.Handle) {
	if ok, b := bundle.FindBalancedBundle(h, e.g, bundle.WithArena(e.arena)); ok {
		e.Mark(b)
	}
}
