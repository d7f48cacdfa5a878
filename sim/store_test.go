package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticleStore_AppendRemoveSwapsLast(t *testing.T) {
	// GIVEN a store of three particles with room for four
	s, err := NewParticleStore(4, []Vec3{{0.1, 0, 0}, {0.2, 0, 0}, {0.3, 0, 0}})
	require.NoError(t, err)

	// WHEN the first particle is removed
	s.Remove(0)

	// THEN the last live particle fills its slot and the count drops
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, Vec3{0.3, 0, 0}, s.At(0))
	assert.Equal(t, Vec3{0.2, 0, 0}, s.At(1))

	// WHEN two particles are appended
	require.NoError(t, s.Append(Vec3{0.4, 0, 0}))
	require.NoError(t, s.Append(Vec3{-0.4, 0, 0}))

	// THEN they occupy the next slots
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, Vec3{-0.4, 0, 0}, s.At(3))
}

func TestParticleStore_AppendAtCapacityLeavesStoreUnchanged(t *testing.T) {
	s, err := NewParticleStore(1, []Vec3{{0.1, 0.1, 0.1}})
	require.NoError(t, err)

	err = s.Append(Vec3{0.2, 0.2, 0.2})

	assert.True(t, errors.Is(err, ErrCapacityExhausted))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []Vec3{{0.1, 0.1, 0.1}}, s.Snapshot())
}

func TestParticleStore_RemoveLast(t *testing.T) {
	s, err := NewParticleStore(2, []Vec3{{0.1, 0, 0}, {0.2, 0, 0}})
	require.NoError(t, err)
	s.Remove(1)
	assert.Equal(t, []Vec3{{0.1, 0, 0}}, s.Snapshot())
	s.Remove(0)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Live())
}

func TestParticleStore_StaleIndexPanics(t *testing.T) {
	s, err := NewParticleStore(4, []Vec3{{0.1, 0, 0}})
	require.NoError(t, err)
	assert.Panics(t, func() { s.At(1) })
	assert.Panics(t, func() { s.Set(1, Vec3{}) })
	assert.Panics(t, func() { s.Remove(-1) })
}

func TestParticleStore_SnapshotDoesNotAlias(t *testing.T) {
	s, err := NewParticleStore(2, []Vec3{{0.1, 0, 0}})
	require.NoError(t, err)

	snap := s.Snapshot()
	s.Set(0, Vec3{0.2, 0, 0})

	assert.Equal(t, Vec3{0.1, 0, 0}, snap[0])
}

func TestParticleStore_LiveCannotGrowIntoStaleSlots(t *testing.T) {
	s, err := NewParticleStore(4, []Vec3{{0.1, 0, 0}})
	require.NoError(t, err)
	live := s.Live()
	assert.Equal(t, 1, cap(live))
}

func TestNewParticleStore_WrapsAndChecksCapacity(t *testing.T) {
	s, err := NewParticleStore(1, []Vec3{{0.7, -0.6, 0.2}})
	require.NoError(t, err)
	got := s.At(0)
	assert.InDelta(t, -0.3, got[0], 1e-12)
	assert.InDelta(t, 0.4, got[1], 1e-12)

	_, err = NewParticleStore(1, []Vec3{{}, {}})
	assert.Error(t, err)
}
