package inject

import (
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldhost/veld/logging"
)

type markerContainer struct{ id int }

func (*markerContainer) Logger() logging.Logger    { return nil }
func (*markerContainer) NativeLogger() *log.Logger { return nil }

// TestActiveContainer verifies the ambient marker round-trips through the
// context and is absent on a plain context.
func TestActiveContainer(t *testing.T) {
	t.Parallel()

	_, ok := ActiveContainer(context.Background())
	assert.False(t, ok)

	c := &markerContainer{id: 1}
	ctx := WithActiveContainer(context.Background(), c)
	got, ok := ActiveContainer(ctx)
	require.True(t, ok)
	assert.Same(t, c, got)

	// An inner marker shadows an outer one.
	inner := &markerContainer{id: 2}
	got, ok = ActiveContainer(WithActiveContainer(ctx, inner))
	require.True(t, ok)
	assert.Same(t, inner, got)
}

// TestActiveContainer_NilMarker verifies attaching a nil container reads
// back as no marker.
func TestActiveContainer_NilMarker(t *testing.T) {
	t.Parallel()

	ctx := WithActiveContainer(context.Background(), nil)
	_, ok := ActiveContainer(ctx)
	assert.False(t, ok)
}
