package bundle

import "github.com/katalvlaran/bungraph/handle"

// Option configures FindBalancedBundle / FindAllBundles via the same
// functional-options shape used throughout this module.
type Option func(*config)

type config struct {
	arena  *Arena
	cached map[handle.Handle]struct{}
}

func defaultConfig() config {
	return config{}
}

// WithArena routes bundle allocation through a caller-owned Arena instead
// of allocating a fresh Bundle per call. The reduction engine always
// supplies its own Arena; ad hoc callers may omit this.
func WithArena(a *Arena) Option {
	return func(c *config) { c.arena = a }
}

// WithCache threads a caller-owned "already seeded" handle set through
// the call. Detection records every handle it reaches into the set;
// FindAllBundles skips any seed already in it, so it does not re-discover
// the same bundle from more than one of its members. FindBalancedBundle
// only records into the set and never skips its seed.
func WithCache(cached map[handle.Handle]struct{}) Option {
	return func(c *config) { c.cached = cached }
}

func (c *config) getArena() *Arena {
	if c.arena == nil {
		c.arena = NewArena()
	}

	return c.arena
}

func (c *config) getCache() map[handle.Handle]struct{} {
	if c.cached == nil {
		c.cached = make(map[handle.Handle]struct{})
	}

	return c.cached
}
