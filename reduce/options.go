package reduce

import "github.com/katalvlaran/bungraph/bundle"

// Option configures an Engine at construction, via the same
// functional-options shape used throughout this module.
type Option func(*config)

type config struct {
	arena            *bundle.Arena
	allowCyclicForR2 bool
	sccPrePartition  bool
}

func defaultConfig() config {
	return config{}
}

// WithArena routes the engine's bundle allocation through a caller-owned
// Arena instead of one constructed internally.
func WithArena(a *bundle.Arena) Option {
	return func(c *config) { c.arena = a }
}

// WithAllowCyclicBundles overrides the default R2 precondition that
// rejects cyclic bundles (self-cycle or self-inversion). Per spec this
// must stay false for a sound reduction; it exists as an explicit,
// off-by-default escape hatch for exploratory testing of the precondition
// filter itself, never for production use.
func WithAllowCyclicBundles(allow bool) Option {
	return func(c *config) { c.allowCyclicForR2 = allow }
}

// WithSCCPrePartition enables computing strongly connected components once
// at construction time, exposed via Engine.Components for diagnostics. It
// does not change which rewrites the engine performs; the source material
// leaves the precise use of SCC pre-partitioning unspecified beyond "gates
// the run" (spec §1 ambient-stack note), so this implementation treats it
// as an observability aid rather than a silent behavior change.
func WithSCCPrePartition(enabled bool) Option {
	return func(c *config) { c.sccPrePartition = enabled }
}

func (c *config) getArena() *bundle.Arena {
	if c.arena == nil {
		c.arena = bundle.NewArena()
	}

	return c.arena
}
