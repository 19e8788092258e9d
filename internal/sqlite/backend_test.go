package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/itinerary/internal/storetest"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

func TestBackend_StoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) (types.Store, types.Config) {
		return NewBackend(), types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}
	})
}

func TestBackend_Attach(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested", "data")

	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
	}

	require.NoError(t, b.Attach(config))
	defer b.Detach()

	// Verify database file created
	_, err := os.Stat(filepath.Join(tmpDir, DatabaseFile))
	assert.NoError(t, err, "%s not created", DatabaseFile)
}

func TestBackend_AttachRejectsInvalidConfig(t *testing.T) {
	b := NewBackend()
	err := b.Attach(types.Config{Backend: "", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)
}

func TestBackend_DataSurvivesReattach(t *testing.T) {
	config := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}

	b := NewBackend()
	require.NoError(t, b.Attach(config))
	require.NoError(t, b.Set(types.TripIndexKey, []byte(`["abc"]`)))
	require.NoError(t, b.Set(types.TripKey("abc"), []byte(`{"id":"abc"}`)))
	require.NoError(t, b.Detach())

	b2 := NewBackend()
	require.NoError(t, b2.Attach(config))
	defer b2.Detach()

	got, err := b2.Get(types.TripIndexKey)
	require.NoError(t, err)
	assert.JSONEq(t, `["abc"]`, string(got))

	got, err = b2.Get(types.TripKey("abc"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc"}`, string(got))
}
