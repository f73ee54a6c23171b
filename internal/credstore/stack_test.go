package credstore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/zalando/go-keyring"
)

func newTestStack(t *testing.T) (*Stack, *KeyringStore, *FileStore) {
	t.Helper()
	keyring.MockInit()
	primary := NewKeyring()
	legacy := NewFile(filepath.Join(t.TempDir(), "credentials.json"))
	// MockInit swaps the keyring for an in-memory one, but entries persist
	// for the whole process; clear ours so tests stay independent.
	t.Cleanup(func() {
		_ = primary.Delete(KeyToken)
		_ = primary.Delete(KeyUser)
	})
	return NewStack(primary, legacy), primary, legacy
}

func TestStack_WritesTargetPrimaryOnly(t *testing.T) {
	stack, primary, legacy := newTestStack(t)

	if err := stack.Set(KeyToken, "tok"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, err := primary.Get(KeyToken); err != nil {
		t.Errorf("expected token in primary store, got %v", err)
	}
	if _, err := legacy.Get(KeyToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected legacy store untouched, got %v", err)
	}
}

func TestStack_GetFallsBackToLegacy(t *testing.T) {
	stack, _, legacy := newTestStack(t)

	if err := legacy.Set(KeyToken, "old-tok"); err != nil {
		t.Fatal(err)
	}

	value, err := stack.Get(KeyToken)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "old-tok" {
		t.Errorf("expected old-tok, got %q", value)
	}
}

func TestStack_DeleteClearsBothStores(t *testing.T) {
	stack, primary, legacy := newTestStack(t)

	if err := primary.Set(KeyToken, "tok"); err != nil {
		t.Fatal(err)
	}
	if err := legacy.Set(KeyToken, "old-tok"); err != nil {
		t.Fatal(err)
	}

	if err := stack.Delete(KeyToken); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := primary.Get(KeyToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected primary cleared, got %v", err)
	}
	if _, err := legacy.Get(KeyToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected legacy cleared, got %v", err)
	}
}

func TestStack_Migrate(t *testing.T) {
	stack, primary, legacy := newTestStack(t)

	if err := legacy.Set(KeyToken, "legacy-tok"); err != nil {
		t.Fatal(err)
	}

	if err := stack.Migrate(KeyToken); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	value, err := primary.Get(KeyToken)
	if err != nil {
		t.Fatalf("expected token migrated to primary, got %v", err)
	}
	if value != "legacy-tok" {
		t.Errorf("expected legacy-tok, got %q", value)
	}
	if _, err := legacy.Get(KeyToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected legacy entry removed, got %v", err)
	}

	// Idempotent: a second run changes nothing.
	if err := stack.Migrate(KeyToken); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}
	value, err = primary.Get(KeyToken)
	if err != nil || value != "legacy-tok" {
		t.Errorf("expected migrated token unchanged, got %q, %v", value, err)
	}
}

func TestStack_MigratePrefersExistingPrimary(t *testing.T) {
	stack, primary, legacy := newTestStack(t)

	if err := primary.Set(KeyToken, "new-tok"); err != nil {
		t.Fatal(err)
	}
	if err := legacy.Set(KeyToken, "old-tok"); err != nil {
		t.Fatal(err)
	}

	if err := stack.Migrate(KeyToken); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	value, _ := primary.Get(KeyToken)
	if value != "new-tok" {
		t.Errorf("expected primary token untouched, got %q", value)
	}
	// Legacy copy stays until an explicit delete; migration only fills gaps.
	if _, err := legacy.Get(KeyToken); err != nil {
		t.Errorf("expected legacy entry untouched, got %v", err)
	}
}
