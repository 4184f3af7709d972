package inject

import "strconv"

// NotFoundError is returned when resolution exhausted every scope for a
// required request.
//
// It is never worth retrying: resolution is a pure read over existing
// state, so the same request fails the same way until the host rewires.
type NotFoundError struct{ Capability Capability }

// Error implements the error interface.
func (e NotFoundError) Error() string {
	// Example: inject: no value for capability "logger"
	return "inject: no value for capability " + strconv.Quote(e.Capability.String())
}

// NotSingletonError is the panic value raised when a per-plugin capability
// is provided to the process-wide singleton table.
type NotSingletonError struct{ Capability Capability }

// Error implements the error interface.
func (e NotSingletonError) Error() string {
	// Example: inject: capability "logger" is per-plugin, not a singleton
	return "inject: capability " + strconv.Quote(e.Capability.String()) + " is per-plugin, not a singleton"
}
