// Command hostdemo wires a miniature plugin host end to end.
//
// It is the composition-root example for the module: the library packages
// never wire themselves, so this binary shows the full order of operations
// a real host follows.
//
//	go run ./cmd/hostdemo
//	go run ./cmd/hostdemo -v   # debug-level plugin logging
//
// What it does:
//
//   - binds the platform singletons (event bus, proxy handle, plugin
//     manager, console, dispatcher) into an inject.Singletons table
//   - parses a plugin descriptor from YAML and validates its id
//   - builds the plugin's container, binds its structured and native
//     loggers, and registers it with the ownership registry
//   - resolves capabilities through the scope chain three ways: a
//     singleton hit, a container hit via explicit origin, and a container
//     hit via the ambient active-container context
//   - demonstrates the optional-request path: an ambient logger request
//     outside plugin context resolves to nil instead of failing
//
// All resolved values are printed in the canonical stringify form, one
// line per resolution, log records going to stderr.
package main
