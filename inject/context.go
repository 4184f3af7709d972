package inject

import "context"

// The ambient "active plugin" marker is modelled as an explicit value on
// the execution context rather than implicit thread state. The execution
// layer that enters plugin-owned code attaches the container on the way in
// and drops it on the way out; the Resolver only ever reads it.

type activeContainerKey struct{}

// WithActiveContainer returns a context marking c as the container whose
// code the current execution path is running.
func WithActiveContainer(ctx context.Context, c Container) context.Context {
	return context.WithValue(ctx, activeContainerKey{}, c)
}

// ActiveContainer returns the container marked active on ctx, if any.
// Execution paths outside plugin-owned code carry no marker.
func ActiveContainer(ctx context.Context) (Container, bool) {
	c, ok := ctx.Value(activeContainerKey{}).(Container)
	if !ok || c == nil {
		return nil, false
	}
	return c, true
}
