package inject

import "strconv"

// Singletons is the fixed process-wide binding table: a mapping from the
// singleton capabilities to single global instances with process lifetime.
//
// It is intentionally:
// - populated once, at startup, by the composition root
// - read-only afterwards (the Resolver never mutates it)
// - closed over the singleton capability set
//
// Expected usage:
//
//	singles := inject.NewSingletons().
//		Provide(inject.EventBus, bus).
//		Provide(inject.Proxy, proxy)
type Singletons struct {
	items map[Capability]any
}

// NewSingletons creates an empty singleton table.
func NewSingletons() *Singletons {
	return &Singletons{items: map[Capability]any{}}
}

// Provide binds a singleton instance to a capability and returns the table
// for chaining.
//
// Providing under a per-plugin capability is a wiring bug and panics with a
// NotSingletonError; per-plugin values belong to containers, never to the
// process-wide table.
func (s *Singletons) Provide(c Capability, val any) *Singletons {
	if !c.Singleton() {
		panic(NotSingletonError{Capability: c})
	}
	s.items[c] = val
	return s
}

// Get returns the bound instance if present (no panic).
func (s *Singletons) Get(c Capability) (any, bool) {
	v, ok := s.items[c]
	return v, ok
}

// MustGet returns the bound instance or panics with a helpful message.
// Useful in composition roots and tests where a missing singleton should
// fail fast.
func (s *Singletons) MustGet(c Capability) any {
	v, ok := s.items[c]
	if !ok {
		panic("inject: no singleton bound for " + strconv.Quote(c.String()))
	}
	return v
}
