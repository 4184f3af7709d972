package inject

import (
	"context"
	"log"

	"github.com/veldhost/veld/logging"
)

// Container is the narrow view of a loaded plugin the Resolver consumes.
// A container answers the per-plugin capabilities: itself, the structured
// logger bound to its plugin, and the platform-native logger bound to its
// plugin. Either logger may legitimately be unbound.
type Container interface {
	Logger() logging.Logger
	NativeLogger() *log.Logger
}

// ContainerRegistry maps an arbitrary plugin-supplied object back to its
// owning container. It returns nil for objects no loaded plugin owns.
type ContainerRegistry interface {
	ContainerOwning(origin any) Container
}

// Resolver resolves capability requests against a fixed-priority scope
// chain:
//
//  1. the process-wide singleton table — always wins, never fails
//  2. the container owning the request's origin object, when an origin
//     is supplied
//  3. otherwise, the ambient active container carried on the context
//
// Exactly one of (2) and (3) is consulted per request; an explicit origin
// always wins over the ambient marker. Resolution is a pure read: the
// Resolver holds no locks and mutates nothing, relying on the singleton
// table being frozen after startup and on the registry synchronizing its
// own state. It is therefore safe for concurrent use.
type Resolver struct {
	singletons *Singletons
	registry   ContainerRegistry
}

// NewResolver creates a Resolver over the given singleton table and
// container registry. Either may be nil, in which case the corresponding
// scope never matches.
func NewResolver(singletons *Singletons, registry ContainerRegistry) *Resolver {
	return &Resolver{singletons: singletons, registry: registry}
}

// Resolve walks the scope chain for req and returns the bound value.
//
// origin, when non-nil, is the plugin-supplied object on whose behalf the
// request is made; its owning container is looked up through the registry.
// With a nil origin the ambient active container on ctx is used instead.
//
// A per-plugin capability can be found with a nil bound value (the plugin
// simply has no logger); that satisfies an optional request and fails a
// required one. When no scope produces a value, optional requests resolve
// to nil and required requests fail with NotFoundError.
func (r *Resolver) Resolve(ctx context.Context, req Request, origin any) (any, error) {
	if r.singletons != nil && req.Capability.Singleton() {
		if v, ok := r.singletons.Get(req.Capability); ok {
			return v, nil
		}
	}

	if c, ok := r.target(ctx, origin); ok {
		if v, found := containerValue(c, req.Capability); found {
			if v == nil && !req.Optional {
				return nil, NotFoundError{Capability: req.Capability}
			}
			return v, nil
		}
	}

	if req.Optional {
		return nil, nil
	}
	return nil, NotFoundError{Capability: req.Capability}
}

// target picks the container scope for this request: the origin's owning
// container when an origin is supplied, else the ambient active container.
func (r *Resolver) target(ctx context.Context, origin any) (Container, bool) {
	if origin != nil {
		if r.registry == nil {
			return nil, false
		}
		if c := r.registry.ContainerOwning(origin); c != nil {
			return c, true
		}
		return nil, false
	}
	return ActiveContainer(ctx)
}

// containerValue queries a container's per-plugin bindings. found=true
// with a nil value means the capability is answered but unbound; any
// capability outside the per-plugin set is a miss.
func containerValue(c Container, kind Capability) (val any, found bool) {
	switch kind {
	case PluginContainer:
		return c, true
	case Logger:
		if l := c.Logger(); l != nil {
			return l, true
		}
		return nil, true
	case NativeLogger:
		if l := c.NativeLogger(); l != nil {
			return l, true
		}
		return nil, true
	default:
		return nil, false
	}
}
