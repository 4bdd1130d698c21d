package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFileStore_RoundTrip(t *testing.T) {
	s := NewFileStore(t.TempDir())

	const credential = "header.payload.signature"
	if err := s.Save(credential); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded != credential {
		t.Fatalf("expected %q, got %q", credential, loaded)
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	s := NewFileStore(t.TempDir())

	if err := s.Save("first.token.value"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.Save("second.token.value"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded != "second.token.value" {
		t.Fatalf("expected latest credential, got %q", loaded)
	}
}

func TestFileStore_LoadEmpty(t *testing.T) {
	s := NewFileStore(t.TempDir())

	if _, err := s.Load(); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
}

func TestFileStore_ClearIdempotent(t *testing.T) {
	s := NewFileStore(t.TempDir())

	if err := s.Save("a.b.c"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := s.Load(); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("expected empty store after clear, got %v", err)
	}

	// Second clear is a no-op, not an error.
	if err := s.Clear(); err != nil {
		t.Fatalf("second clear must succeed: %v", err)
	}
}

func TestFileStore_CreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	s := NewFileStore(dir)

	if err := s.Save("a.b.c"); err != nil {
		t.Fatalf("save must create the state dir: %v", err)
	}
	if loaded, err := s.Load(); err != nil || loaded != "a.b.c" {
		t.Fatalf("load after nested save: %q %v", loaded, err)
	}
}
