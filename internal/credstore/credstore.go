package credstore

import "errors"

// Keys under which session state is persisted.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("credstore: not found")

// Store is a small key/value surface over a credential backend.
// Implementations hold the bearer token and the cached user profile.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
