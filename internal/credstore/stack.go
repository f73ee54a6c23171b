package credstore

import (
	"errors"
)

// Stack layers the primary store over the legacy one. Reads try the primary
// first and fall back to the legacy store; writes target the primary only;
// deletes fan out to both so a logout clears every copy.
type Stack struct {
	primary Store
	legacy  Store
}

// NewStack creates a stack over the given primary and legacy stores.
func NewStack(primary, legacy Store) *Stack {
	return &Stack{primary: primary, legacy: legacy}
}

func (s *Stack) Get(key string) (string, error) {
	value, err := s.primary.Get(key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}
	return s.legacy.Get(key)
}

func (s *Stack) Set(key, value string) error {
	return s.primary.Set(key, value)
}

func (s *Stack) Delete(key string) error {
	primaryErr := s.primary.Delete(key)
	legacyErr := s.legacy.Delete(key)
	return errors.Join(primaryErr, legacyErr)
}

// Migrate moves a legacy entry into the primary store. It is a no-op when the
// primary already holds the key or the legacy store has nothing, so running it
// on every bootstrap is safe.
func (s *Stack) Migrate(key string) error {
	if _, err := s.primary.Get(key); err == nil {
		return nil
	}
	value, err := s.legacy.Get(key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if err := s.primary.Set(key, value); err != nil {
		return err
	}
	return s.legacy.Delete(key)
}

// Token returns the stored bearer token, trying primary then legacy. The
// request gateway reads through this method on every call so a login or
// logout takes effect on the very next request.
func (s *Stack) Token() (string, error) {
	return s.Get(KeyToken)
}
