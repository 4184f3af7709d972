package plugin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldhost/veld/inject"
	"github.com/veldhost/veld/plugin"
)

func demoContainer(id string) (*plugin.Container, any) {
	instance := &struct{ id string }{id: id}
	return plugin.NewContainer(plugin.Descriptor{ID: id}, instance), instance
}

//
// -----------------------------------------------------------------------------
// Register / Deregister
// -----------------------------------------------------------------------------

// TestRegister verifies registration claims the instance object and indexes
// the container by plugin id.
func TestRegister(t *testing.T) {
	t.Parallel()

	r := plugin.NewRegistry()
	c, instance := demoContainer("myplugin")
	require.NoError(t, r.Register(c))

	got, ok := r.Get("myplugin")
	require.True(t, ok)
	assert.Same(t, c, got)

	owner, ok := r.Owner(instance)
	require.True(t, ok)
	assert.Same(t, c, owner)
}

// TestRegister_Errors verifies nil containers and duplicate ids are
// rejected with typed errors.
func TestRegister_Errors(t *testing.T) {
	t.Parallel()

	r := plugin.NewRegistry()
	require.ErrorIs(t, r.Register(nil), plugin.ErrNilContainer)

	first, _ := demoContainer("myplugin")
	second, _ := demoContainer("myplugin")
	require.NoError(t, r.Register(first))

	err := r.Register(second)
	var dup plugin.DuplicateIDError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "myplugin", dup.ID)
}

// TestDeregister verifies deregistration drops the id index and every owned
// object.
func TestDeregister(t *testing.T) {
	t.Parallel()

	r := plugin.NewRegistry()
	c, instance := demoContainer("myplugin")
	extra := &struct{ e int }{}
	require.NoError(t, r.Register(c))
	require.NoError(t, r.Own(extra, c))

	r.Deregister(c)

	_, ok := r.Get("myplugin")
	assert.False(t, ok)
	_, ok = r.Owner(instance)
	assert.False(t, ok)
	_, ok = r.Owner(extra)
	assert.False(t, ok)
}

//
// -----------------------------------------------------------------------------
// Own
// -----------------------------------------------------------------------------

// TestOwn verifies extra objects can be claimed, re-claiming by the same
// container is a no-op, and claiming by another container fails.
func TestOwn(t *testing.T) {
	t.Parallel()

	r := plugin.NewRegistry()
	mine, _ := demoContainer("mine")
	theirs, _ := demoContainer("theirs")
	require.NoError(t, r.Register(mine))
	require.NoError(t, r.Register(theirs))

	obj := &struct{ o int }{}
	require.NoError(t, r.Own(obj, mine))
	require.NoError(t, r.Own(obj, mine))

	err := r.Own(obj, theirs)
	var owned plugin.AlreadyOwnedError
	require.True(t, errors.As(err, &owned))
	assert.Equal(t, "mine", owned.OwnerID)

	require.ErrorIs(t, r.Own(obj, nil), plugin.ErrNilContainer)
}

//
// -----------------------------------------------------------------------------
// inject.ContainerRegistry
// -----------------------------------------------------------------------------

// TestContainerOwning verifies the registry plugs into the resolver: owned
// origins resolve through their container and unowned origins return an
// untyped nil.
func TestContainerOwning(t *testing.T) {
	t.Parallel()

	r := plugin.NewRegistry()
	c, instance := demoContainer("myplugin")
	require.NoError(t, r.Register(c))

	assert.Same(t, c, r.ContainerOwning(instance))
	assert.Nil(t, r.ContainerOwning(&struct{ s int }{}))

	resolver := inject.NewResolver(nil, r)
	v, err := resolver.Resolve(context.Background(), inject.Required(inject.PluginContainer), instance)
	require.NoError(t, err)
	assert.Same(t, c, v)

	_, err = resolver.Resolve(context.Background(), inject.Required(inject.PluginContainer), &struct{ s int }{})
	var nf inject.NotFoundError
	require.True(t, errors.As(err, &nf))
}
