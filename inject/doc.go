// Package inject resolves ambient, context-dependent values for plugin code
// without the caller passing explicit references.
//
// A request names one of a closed set of capabilities (see Capability) and
// whether a nil result is acceptable. Resolution consults a fixed-priority
// scope chain and returns at the first match:
//
//  1. Process-wide singletons — platform objects (event bus, proxy handle,
//     plugin manager, console, dispatcher) bound once for the process
//     lifetime in a Singletons table.
//  2. The plugin container owning the request's origin object, mapped
//     through a ContainerRegistry, when an origin is supplied.
//  3. The ambient active container attached to the context via
//     WithActiveContainer, when no origin is supplied.
//
// Exactly one of (2) and (3) runs per request, and an explicit origin
// always wins. Singletons win over containers even for capabilities a
// container could theoretically answer; platform objects and plugin
// objects stay isolated.
//
// The package performs no reflection, no locking, no caching and no graph
// validation: dispatch is a switch over the capability enum, and every
// resolution is an independent pure read. Failures surface synchronously
// as NotFoundError and indicate a wiring bug in the host.
//
// Typical use at an injection point:
//
//	v, err := resolver.Resolve(ctx, inject.Required(inject.Logger), origin)
//	if err != nil {
//		return err
//	}
//	log := v.(logging.Logger)
package inject
