// Package store persists the current credential across client runs.
// One slot per installation: there is no multi-account support.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoCredential is returned by Load when no credential is persisted.
var ErrNoCredential = errors.New("no stored credential")

const credentialFile = "token"

// FileStore keeps the credential in a single file inside a state
// directory, created on first save.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// DefaultDir returns the conventional per-user state directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "marketplacepro"), nil
}

// Load reads the persisted credential, if any.
func (s *FileStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoCredential
		}
		return "", fmt.Errorf("read credential: %w", err)
	}
	credential := strings.TrimSpace(string(raw))
	if credential == "" {
		return "", ErrNoCredential
	}
	return credential, nil
}

// Save persists the credential, overwriting any prior value.
func (s *FileStore) Save(credential string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(s.path(), []byte(credential), 0o600); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	return nil
}

// Clear removes any persisted credential. Clearing an empty store is a
// no-op, not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, credentialFile)
}
