// Package storetest holds the behavior checks every types.Store backend must
// pass. Backend packages call Run from their own tests.
package storetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// Factory returns a detached store and the config to attach it with.
type Factory func(t *testing.T) (types.Store, types.Config)

// Run exercises the types.Store contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	attach := func(t *testing.T) types.Store {
		t.Helper()
		s, cfg := newStore(t)
		require.NoError(t, s.Attach(cfg))
		t.Cleanup(func() { s.Detach() })
		return s
	}

	t.Run("get missing key returns ErrNotFound", func(t *testing.T) {
		s := attach(t)
		_, err := s.Get("trip-missing")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("set then get returns value", func(t *testing.T) {
		s := attach(t)
		require.NoError(t, s.Set("trip-1", []byte(`{"id":"1"}`)))
		got, err := s.Get("trip-1")
		require.NoError(t, err)
		assert.Equal(t, `{"id":"1"}`, string(got))
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := attach(t)
		require.NoError(t, s.Set(types.TripIndexKey, []byte(`["a"]`)))
		require.NoError(t, s.Set(types.TripIndexKey, []byte(`["a","b"]`)))
		got, err := s.Get(types.TripIndexKey)
		require.NoError(t, err)
		assert.Equal(t, `["a","b"]`, string(got))
	})

	t.Run("delete removes key and is idempotent", func(t *testing.T) {
		s := attach(t)
		require.NoError(t, s.Set("trip-1", []byte(`{}`)))
		require.NoError(t, s.Delete("trip-1"))
		_, err := s.Get("trip-1")
		assert.ErrorIs(t, err, types.ErrNotFound)
		assert.NoError(t, s.Delete("trip-1"))
		assert.NoError(t, s.Delete("trip-never-existed"))
	})

	t.Run("returned value is not aliased", func(t *testing.T) {
		s := attach(t)
		in := []byte(`{"a":1}`)
		require.NoError(t, s.Set("k", in))
		in[0] = 'X'
		got, err := s.Get("k")
		require.NoError(t, err)
		got[1] = 'Y'
		again, err := s.Get("k")
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(again))
	})

	t.Run("invalid keys are rejected", func(t *testing.T) {
		s := attach(t)
		for _, key := range []string{"", "../escape", "a/b", ".hidden", "with space"} {
			assert.ErrorIs(t, s.Set(key, []byte(`1`)), types.ErrInvalidKey, "key %q", key)
			_, err := s.Get(key)
			assert.ErrorIs(t, err, types.ErrInvalidKey, "key %q", key)
			assert.ErrorIs(t, s.Delete(key), types.ErrInvalidKey, "key %q", key)
		}
	})

	t.Run("double attach fails", func(t *testing.T) {
		s, cfg := newStore(t)
		require.NoError(t, s.Attach(cfg))
		t.Cleanup(func() { s.Detach() })
		assert.ErrorIs(t, s.Attach(cfg), types.ErrAlreadyAttached)
	})

	t.Run("detached store rejects operations", func(t *testing.T) {
		s, cfg := newStore(t)
		_, err := s.Get("k")
		assert.ErrorIs(t, err, types.ErrStoreDetached)

		require.NoError(t, s.Attach(cfg))
		require.NoError(t, s.Detach())
		require.NoError(t, s.Detach(), "detach is idempotent")

		assert.ErrorIs(t, s.Set("k", []byte(`1`)), types.ErrStoreDetached)
		_, err = s.Get("k")
		assert.ErrorIs(t, err, types.ErrStoreDetached)
		assert.ErrorIs(t, s.Delete("k"), types.ErrStoreDetached)
	})
}
