// Package repo persists trips in a key-value store. Each trip is stored whole
// under trip-{id}; the ordered list of known ids lives under trip-ids.
package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// Repository is the trip repository. Build one per attached store and pass
// it to its consumers.
type Repository struct {
	mu    sync.Mutex
	store types.Store
	log   zerolog.Logger
	newID func() string
}

// NewRepository returns a repository over an attached store.
func NewRepository(store types.Store, log zerolog.Logger) *Repository {
	return &Repository{
		store: store,
		log:   log.With().Str("component", "repo").Logger(),
		newID: types.NewID,
	}
}

// CreateTrip persists and returns an empty trip with a fresh id. A blank
// title becomes types.DefaultTripTitle.
func (r *Repository) CreateTrip(title string) (types.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, err := r.readIndex()
	if err != nil {
		return types.Trip{}, fmt.Errorf("repo.CreateTrip: %w", err)
	}

	trip := types.NewTrip(title)
	trip.ID = r.newID()
	for slices.Contains(ids, trip.ID) || !types.ValidTripID(trip.ID) {
		trip.ID = r.newID()
	}

	if err := r.save(trip, ids); err != nil {
		return types.Trip{}, fmt.Errorf("repo.CreateTrip: %w", err)
	}
	r.log.Debug().Str("trip", trip.ID).Msg("trip created")
	return trip, nil
}

// LoadTrip returns the trip with id. A missing record, a record that does not
// decode, or a record stored under the wrong id all yield types.ErrNotFound.
func (r *Repository) LoadTrip(id string) (types.Trip, error) {
	if !types.ValidTripID(id) {
		return types.Trip{}, fmt.Errorf("repo.LoadTrip: trip %q: %w", id, types.ErrNotFound)
	}

	data, err := r.store.Get(types.TripKey(id))
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return types.Trip{}, fmt.Errorf("repo.LoadTrip: trip %s: %w", id, types.ErrNotFound)
		}
		return types.Trip{}, fmt.Errorf("repo.LoadTrip: %w", err)
	}

	var trip types.Trip
	if err := json.Unmarshal(data, &trip); err != nil {
		r.log.Warn().Err(err).Str("trip", id).Msg("undecodable trip record")
		return types.Trip{}, fmt.Errorf("repo.LoadTrip: trip %s: %w", id, types.ErrNotFound)
	}
	if trip.ID != id {
		r.log.Warn().Str("trip", id).Str("stored_id", trip.ID).Msg("trip record id mismatch")
		return types.Trip{}, fmt.Errorf("repo.LoadTrip: trip %s: %w", id, types.ErrNotFound)
	}
	if trip.Days == nil {
		trip.Days = []types.Day{}
	}
	return trip, nil
}

// SaveTrip writes trip and adds its id to the index if it is new.
// Saving the same trip twice leaves the store unchanged.
func (r *Repository) SaveTrip(trip types.Trip) error {
	if !types.ValidTripID(trip.ID) {
		return fmt.Errorf("repo.SaveTrip: trip id %q: %w", trip.ID, types.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ids, err := r.readIndex()
	if err != nil {
		return fmt.Errorf("repo.SaveTrip: %w", err)
	}
	if err := r.save(trip, ids); err != nil {
		return fmt.Errorf("repo.SaveTrip: %w", err)
	}
	return nil
}

// ListTripIDs returns the indexed trip ids in insertion order.
func (r *Repository) ListTripIDs() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, err := r.readIndex()
	if err != nil {
		return nil, fmt.Errorf("repo.ListTripIDs: %w", err)
	}
	return ids, nil
}

// ListAllTrips loads every indexed trip in index order. Ids that no longer
// resolve are skipped.
func (r *Repository) ListAllTrips() ([]types.Trip, error) {
	ids, err := r.ListTripIDs()
	if err != nil {
		return nil, err
	}

	trips := make([]types.Trip, 0, len(ids))
	for _, id := range ids {
		trip, err := r.LoadTrip(id)
		if errors.Is(err, types.ErrNotFound) {
			r.log.Warn().Str("trip", id).Msg("indexed trip does not resolve, skipping")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("repo.ListAllTrips: %w", err)
		}
		trips = append(trips, trip)
	}
	return trips, nil
}

// DeleteTrip removes the trip record and its index entry. Deleting an unknown
// id is not an error.
func (r *Repository) DeleteTrip(id string) error {
	if !types.ValidTripID(id) {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(types.TripKey(id)); err != nil {
		return fmt.Errorf("repo.DeleteTrip: %w", err)
	}

	ids, err := r.readIndex()
	if err != nil {
		return fmt.Errorf("repo.DeleteTrip: %w", err)
	}
	kept := slices.DeleteFunc(slices.Clone(ids), func(s string) bool { return s == id })
	if len(kept) == len(ids) {
		return nil
	}
	if err := r.writeIndex(kept); err != nil {
		return fmt.Errorf("repo.DeleteTrip: %w", err)
	}
	r.log.Debug().Str("trip", id).Msg("trip deleted")
	return nil
}

// SeedSample saves the sample trip when no trips are indexed. It reports
// whether it wrote anything.
func (r *Repository) SeedSample() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, err := r.readIndex()
	if err != nil {
		return false, fmt.Errorf("repo.SeedSample: %w", err)
	}
	if len(ids) > 0 {
		return false, nil
	}
	if err := r.save(SampleTrip(), ids); err != nil {
		return false, fmt.Errorf("repo.SeedSample: %w", err)
	}
	r.log.Info().Str("trip", SampleTripID).Msg("seeded sample trip")
	return true, nil
}

// save writes the trip record, then the index when the id is new.
// Callers hold r.mu.
func (r *Repository) save(trip types.Trip, ids []string) error {
	data, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("encode trip %s: %w", trip.ID, err)
	}
	if err := r.store.Set(types.TripKey(trip.ID), data); err != nil {
		return err
	}
	if slices.Contains(ids, trip.ID) {
		return nil
	}
	return r.writeIndex(append(ids, trip.ID))
}

// readIndex decodes trip-ids. A missing index is empty; a corrupt one is an
// error. Callers hold r.mu.
func (r *Repository) readIndex() ([]string, error) {
	data, err := r.store.Get(types.TripIndexKey)
	if errors.Is(err, types.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decode %s: %w", types.TripIndexKey, err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// writeIndex encodes and stores trip-ids. Callers hold r.mu.
func (r *Repository) writeIndex(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode %s: %w", types.TripIndexKey, err)
	}
	return r.store.Set(types.TripIndexKey, data)
}
