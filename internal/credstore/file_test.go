package credstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_SetGetDelete(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "credentials.json"))

	if _, err := store.Get(KeyToken); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty store, got %v", err)
	}

	if err := store.Set(KeyToken, "tok-123"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set(KeyUser, `{"name":"A"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, err := store.Get(KeyToken)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "tok-123" {
		t.Errorf("expected tok-123, got %q", value)
	}

	if err := store.Delete(KeyToken); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(KeyToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Other keys survive a delete
	if _, err := store.Get(KeyUser); err != nil {
		t.Errorf("expected user entry to survive, got %v", err)
	}
}

func TestFileStore_DeleteMissingIsNoop(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "credentials.json"))

	if err := store.Delete(KeyToken); err != nil {
		t.Fatalf("expected nil for missing file, got %v", err)
	}
}

func TestFileStore_RemovesFileWhenEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFile(path)

	if err := store.Set(KeyToken, "tok"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Delete(KeyToken); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected credentials file to be removed, got %v", err)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewFile(path)
	if _, err := store.Get(KeyToken); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected parse error, got %v", err)
	}
}
