// Package state holds the trip being viewed and the list of all trips, and
// keeps both in step with the repository.
package state

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/itinerary/internal/dnd"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// Repository is the persistence the store needs.
type Repository interface {
	CreateTrip(title string) (types.Trip, error)
	LoadTrip(id string) (types.Trip, error)
	SaveTrip(trip types.Trip) error
	ListAllTrips() ([]types.Trip, error)
	DeleteTrip(id string) error
}

// Store is the in-memory trip state. The zero value is not usable; call New.
type Store struct {
	mu      sync.RWMutex
	repo    Repository
	notify  Notifier
	log     zerolog.Logger
	current *types.Trip
	all     []types.Trip
}

// New returns an empty store. Call Load to fill the trip list.
func New(repo Repository, notify Notifier, log zerolog.Logger) *Store {
	return &Store{
		repo:   repo,
		notify: notify,
		log:    log.With().Str("component", "state").Logger(),
		all:    []types.Trip{},
	}
}

// Load replaces the trip list with what the repository holds.
func (s *Store) Load() error {
	trips, err := s.repo.ListAllTrips()
	if err != nil {
		s.fail("Error", "Could not load trips.", err)
		return err
	}
	s.mu.Lock()
	s.all = trips
	s.mu.Unlock()
	return nil
}

// CurrentTrip returns a copy of the current trip, if one is set.
func (s *Store) CurrentTrip() (types.Trip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return types.Trip{}, false
	}
	return s.current.Clone(), true
}

// AllTrips returns copies of all known trips in index order.
func (s *Store) AllTrips() []types.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Trip, len(s.all))
	for i, t := range s.all {
		out[i] = t.Clone()
	}
	return out
}

// SetCurrentTrip makes trip current without persisting it.
func (s *Store) SetCurrentTrip(trip types.Trip) {
	c := trip.Clone()
	s.mu.Lock()
	s.current = &c
	s.mu.Unlock()
}

// ClearCurrentTrip unsets the current trip.
func (s *Store) ClearCurrentTrip() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// UpdateTrip validates and persists trip, then makes it current and replaces
// its entry in the trip list.
func (s *Store) UpdateTrip(trip types.Trip) error {
	if err := trip.Validate(); err != nil {
		s.fail("Error", err.Error(), err)
		return err
	}
	if err := s.repo.SaveTrip(trip); err != nil {
		s.fail("Error", "Could not save the trip.", err)
		return err
	}

	c := trip.Clone()
	s.mu.Lock()
	s.current = &c
	if i := s.indexOf(trip.ID); i >= 0 {
		s.all[i] = trip.Clone()
	} else {
		s.all = append(s.all, trip.Clone())
	}
	s.mu.Unlock()

	s.info("Trip updated", fmt.Sprintf("%s has been saved.", trip.Title))
	return nil
}

// CreateTrip creates and persists an empty trip and appends it to the list.
// The current trip is not changed.
func (s *Store) CreateTrip(title string) (types.Trip, error) {
	trip, err := s.repo.CreateTrip(title)
	if err != nil {
		s.fail("Error", "Could not create the trip.", err)
		return types.Trip{}, err
	}

	s.mu.Lock()
	s.all = append(s.all, trip.Clone())
	s.mu.Unlock()

	s.info("Trip created", fmt.Sprintf("%s has been created.", trip.Title))
	return trip, nil
}

// LoadTripByID makes the stored trip with id current. When the trip cannot be
// found the current trip stays as it was.
func (s *Store) LoadTripByID(id string) (types.Trip, error) {
	trip, err := s.repo.LoadTrip(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			s.fail("Error", "Could not find the requested trip.", err)
		} else {
			s.fail("Error", "Could not load the trip.", err)
		}
		return types.Trip{}, err
	}
	s.SetCurrentTrip(trip)
	return trip, nil
}

// DeleteTrip removes the trip from storage and the list, and clears the
// current trip if it is the one deleted.
func (s *Store) DeleteTrip(id string) error {
	if err := s.repo.DeleteTrip(id); err != nil {
		s.fail("Error", "Could not delete the trip.", err)
		return err
	}

	s.mu.Lock()
	s.all = slices.DeleteFunc(s.all, func(t types.Trip) bool { return t.ID == id })
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.mu.Unlock()

	s.info("Trip deleted", "The trip has been removed.")
	return nil
}

// HandleDrop applies a drop to the current trip and persists the result.
// Drops that change nothing, or arrive with no current trip, are ignored.
func (s *Store) HandleDrop(ev dnd.ItemDropped) error {
	current, ok := s.CurrentTrip()
	if !ok {
		return nil
	}
	next, changed := dnd.Apply(current, ev)
	if !changed {
		return nil
	}
	if err := s.UpdateTrip(next); err != nil {
		return err
	}

	if m, ok := ev.Payload.(dnd.ActivityMove); ok {
		_, act, _ := next.FindActivity(m.ActivityID)
		day, _ := next.FindDay(ev.TargetDayID)
		s.info("Activity moved", fmt.Sprintf("%q moved to %s", act.Title, day.Title))
	}
	return nil
}

// Listen subscribes HandleDrop to bus. Call the returned func to stop.
func (s *Store) Listen(bus *dnd.Bus) func() {
	return bus.Subscribe(func(ev dnd.ItemDropped) {
		if err := s.HandleDrop(ev); err != nil {
			s.log.Debug().Err(err).Msg("drop not applied")
		}
	})
}

// indexOf returns the position of id in s.all. Callers hold s.mu.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.all, func(t types.Trip) bool { return t.ID == id })
}

func (s *Store) info(title, msg string) {
	s.notify.Notify(Notification{Level: LevelInfo, Title: title, Message: msg})
}

// fail reports a failure to the notifier, which is where it is surfaced.
// The cause is kept at debug level.
func (s *Store) fail(title, msg string, err error) {
	s.log.Debug().Err(err).Msg(msg)
	s.notify.Notify(Notification{Level: LevelError, Title: title, Message: msg})
}
