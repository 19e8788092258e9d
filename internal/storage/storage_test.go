package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/itinerary/internal/filestore"
	"github.com/mesh-intelligence/itinerary/internal/memory"
	"github.com/mesh-intelligence/itinerary/internal/sqlite"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		check   func(t *testing.T, s types.Store)
	}{
		{
			name:    "sqlite",
			backend: types.BackendSQLite,
			check: func(t *testing.T, s types.Store) {
				assert.IsType(t, &sqlite.Backend{}, s)
			},
		},
		{
			name:    "files",
			backend: types.BackendFiles,
			check: func(t *testing.T, s types.Store) {
				assert.IsType(t, &filestore.Store{}, s)
			},
		},
		{
			name:    "memory",
			backend: types.BackendMemory,
			check: func(t *testing.T, s types.Store) {
				assert.IsType(t, &memory.Store{}, s)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(types.Config{Backend: tt.backend, DataDir: t.TempDir()})
			require.NoError(t, err)
			t.Cleanup(func() { s.Detach() })
			tt.check(t, s)

			require.NoError(t, s.Set(types.TripIndexKey, []byte(`[]`)))
			got, err := s.Get(types.TripIndexKey)
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got))
		})
	}
}

func TestOpen_RejectsBadConfig(t *testing.T) {
	_, err := Open(types.Config{})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)

	_, err = Open(types.Config{Backend: "postgres", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}
