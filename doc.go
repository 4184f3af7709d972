// Package veld provides the injection core of a plugin-hosting proxy.
//
// The module is built from two independent pieces:
//
//   - inject: a contextual value resolver. Given a requested capability and
//     an optional originating object, it walks a fixed-priority scope chain
//     (process-wide singletons, the origin's owning plugin container, the
//     ambient active container carried on the context) and returns the bound
//     value or a typed not-found error.
//
//   - stringify: a deterministic structured-text builder. It accumulates an
//     ordered sequence of named/unnamed values and renders them into a single
//     canonical string with configurable brackets, separators and nil-omission.
//
// Neither piece depends on the other. Supporting packages:
//
//   - plugin: concrete container infrastructure (YAML descriptors, an
//     instance-ownership registry, per-plugin logger bindings) satisfying the
//     collaborator interfaces the resolver consumes.
//   - logging: a minimal structured logger abstraction over log/slog.
//   - cmd/hostdemo: a runnable miniature host wiring everything together.
//
// Wiring stays explicit in the composition root: there is no reflection-based
// container, no dependency graph resolution, and no caching of resolved
// values.
package veld
