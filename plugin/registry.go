package plugin

import (
	"errors"
	"strconv"
	"sync"

	"github.com/veldhost/veld/inject"
)

// ErrNilContainer is returned when a nil container is registered.
var ErrNilContainer = errors.New("plugin: nil container")

// DuplicateIDError is returned when a second container is registered under
// an already-loaded plugin id.
type DuplicateIDError struct{ ID string }

// Error implements the error interface.
func (e DuplicateIDError) Error() string {
	// Example: plugin: plugin id "myplugin" already registered
	return "plugin: plugin id " + strconv.Quote(e.ID) + " already registered"
}

// AlreadyOwnedError is returned when an object is claimed by a second
// container.
type AlreadyOwnedError struct{ OwnerID string }

// Error implements the error interface.
func (e AlreadyOwnedError) Error() string {
	// Example: plugin: object already owned by "myplugin"
	return "plugin: object already owned by " + strconv.Quote(e.OwnerID)
}

// Registry tracks loaded containers and maps plugin-supplied objects back
// to their owning container. Registration happens during plugin load;
// afterwards the registry sees concurrent reads from resolution paths, so
// its map accesses are guarded here rather than in the resolver.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]*Container
	owners map[any]*Container
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   map[string]*Container{},
		owners: map[any]*Container{},
	}
}

// Register records a loaded container and claims its plugin instance
// object for ownership lookups.
func (r *Registry) Register(c *Container) error {
	if c == nil {
		return ErrNilContainer
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	id := c.Descriptor().ID
	if _, exists := r.byID[id]; exists {
		return DuplicateIDError{ID: id}
	}
	r.byID[id] = c
	if inst := c.Instance(); inst != nil {
		r.owners[inst] = c
	}
	return nil
}

// Own claims an additional plugin-supplied object for c, so resolution
// with that object as origin lands on c. The object must be comparable.
func (r *Registry) Own(obj any, c *Container) error {
	if c == nil {
		return ErrNilContainer
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if owner, exists := r.owners[obj]; exists && owner != c {
		return AlreadyOwnedError{OwnerID: owner.Descriptor().ID}
	}
	r.owners[obj] = c
	return nil
}

// Deregister removes a container and every object it owns.
func (r *Registry) Deregister(c *Container) {
	if c == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, c.Descriptor().ID)
	for obj, owner := range r.owners {
		if owner == c {
			delete(r.owners, obj)
		}
	}
}

// Get returns the container loaded under the given plugin id.
func (r *Registry) Get(id string) (*Container, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	return c, ok
}

// Owner maps an arbitrary plugin-supplied object to its owning container.
func (r *Registry) Owner(origin any) (*Container, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.owners[origin]
	return c, ok
}

// ContainerOwning implements inject.ContainerRegistry. It returns an
// untyped nil for unowned objects so the resolver's nil check holds.
func (r *Registry) ContainerOwning(origin any) inject.Container {
	if c, ok := r.Owner(origin); ok {
		return c
	}
	return nil
}
