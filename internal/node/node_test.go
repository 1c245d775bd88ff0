package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	fake := &fakeResource{}

	require.NoError(t, registry.Register(fake))
	got, ok := registry.Get("fake")
	assert.True(t, ok)
	assert.Same(t, fake, got.(*fakeResource))

	_, ok = registry.Get("other")
	assert.False(t, ok)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&fakeResource{}))
	assert.Error(t, registry.Register(&fakeResource{}))
}

func TestRegistryOperationLookup(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&fakeResource{}))

	def, err := registry.Operation("fake", "do")
	require.NoError(t, err)
	assert.Equal(t, "do", def.Name)

	_, err = registry.Operation("fake", "nope")
	assert.Error(t, err)

	_, err = registry.Operation("nope", "do")
	assert.Error(t, err)
}
