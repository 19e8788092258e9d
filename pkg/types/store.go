package types

// Store is the key-value persistence interface behind the trip repository.
// Callers attach to a backend, read and write opaque values by key, and detach
// when done. Implementations are synchronous; there is no cross-process
// coordination, so concurrent writers to the same data directory resolve as
// last write wins.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if the backend needs one. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, Get, Set and Delete return ErrStoreDetached.
	Detach() error

	// Get returns the value stored under key.
	// Returns ErrNotFound if the key is absent.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Persisted key layout.
const (
	// TripIndexKey holds the JSON array of known trip IDs.
	TripIndexKey = "trip-ids"

	// tripKeyPrefix prefixes the key of each serialized trip.
	tripKeyPrefix = "trip-"
)

// TripKey returns the store key for the trip with the given ID.
func TripKey(id string) string {
	return tripKeyPrefix + id
}

// ValidTripID reports whether id can name a stored trip: non-empty, usable
// as a key, and not colliding with TripIndexKey.
func ValidTripID(id string) bool {
	key := TripKey(id)
	return id != "" && key != TripIndexKey && ValidKey(key)
}

// ValidKey reports whether key is usable by every backend: non-empty, at most
// 200 bytes, and made only of ASCII letters, digits, '-', '_' and '.', not
// starting with '.'.
func ValidKey(key string) bool {
	if key == "" || len(key) > 200 || key[0] == '.' {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
