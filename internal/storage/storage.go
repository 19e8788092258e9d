// Package storage maps a configured backend name to an attached types.Store.
package storage

import (
	"fmt"

	"github.com/mesh-intelligence/itinerary/internal/filestore"
	"github.com/mesh-intelligence/itinerary/internal/memory"
	"github.com/mesh-intelligence/itinerary/internal/sqlite"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// Open validates config, builds the matching backend and attaches it. The
// caller owns the returned store and must Detach it.
func Open(config types.Config) (types.Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var s types.Store
	switch config.Backend {
	case types.BackendSQLite:
		s = sqlite.NewBackend()
	case types.BackendFiles:
		s = filestore.New()
	case types.BackendMemory:
		s = memory.New()
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, config.Backend)
	}

	if err := s.Attach(config); err != nil {
		return nil, fmt.Errorf("attach %s backend: %w", config.Backend, err)
	}
	return s, nil
}
