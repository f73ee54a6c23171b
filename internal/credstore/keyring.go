package credstore

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const service = "courier-cli"

// KeyringStore persists credentials in the OS keychain/credential manager.
// This is the primary store: all writes land here.
type KeyringStore struct {
	service string
}

// NewKeyring creates a keyring-backed store under the courier-cli service.
func NewKeyring() *KeyringStore {
	return &KeyringStore{service: service}
}

func (k *KeyringStore) Get(key string) (string, error) {
	value, err := keyring.Get(k.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read %q from keyring: %w", key, err)
	}
	return value, nil
}

func (k *KeyringStore) Set(key, value string) error {
	if err := keyring.Set(k.service, key, value); err != nil {
		return fmt.Errorf("failed to save %q to keyring: %w", key, err)
	}
	return nil
}

func (k *KeyringStore) Delete(key string) error {
	if err := keyring.Delete(k.service, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete %q from keyring: %w", key, err)
	}
	return nil
}
