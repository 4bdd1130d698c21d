// Package screens holds the admin settings screen controllers. Every
// settings category runs the same controller: fetch on mount into a
// local edit buffer, merge field edits locally, save the full buffer
// back. The remote settings service owns the data; the buffer is a
// transient copy discarded on navigation away.
package screens

import (
	"context"
	"errors"
	"sync"

	"github.com/marketplacepro/platform/internal/client/api"
)

// Phase is the screen lifecycle state.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoadFailed
	PhaseReady
	PhaseSaving
	PhaseSaveFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoadFailed:
		return "load-failed"
	case PhaseReady:
		return "ready"
	case PhaseSaving:
		return "saving"
	case PhaseSaveFailed:
		return "save-failed"
	}
	return "loading"
}

// ErrNotReady is returned when an edit or save is attempted before the
// screen has loaded.
var ErrNotReady = errors.New("screen not ready")

// Gateway is the slice of the API client the screen needs.
type Gateway interface {
	FetchSettings(ctx context.Context, category, credential string) (map[string]any, error)
	SaveSettings(ctx context.Context, category string, blob map[string]any, credential string) error
}

// SettingsScreen drives one settings category. Saves are sequential per
// screen: a save issued while one is in flight is dropped, so a double
// click produces a single request. A remount bumps the generation
// counter so a late fetch response from the previous mount is discarded
// instead of overwriting the newly shown category.
type SettingsScreen struct {
	mu         sync.Mutex
	gateway    Gateway
	credential string

	category   string
	phase      Phase
	buffer     map[string]any
	generation uint64
	saving     bool
	lastError  string
}

// NewSettingsScreen returns an unmounted screen bound to a credential.
func NewSettingsScreen(gateway Gateway, credential string) *SettingsScreen {
	return &SettingsScreen{
		gateway:    gateway,
		credential: credential,
		phase:      PhaseLoading,
	}
}

// Mount points the screen at a category and fetches its blob. Mounting
// again (navigation) invalidates any fetch still in flight.
func (s *SettingsScreen) Mount(ctx context.Context, category string) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.category = category
	s.phase = PhaseLoading
	s.buffer = nil
	s.saving = false
	s.lastError = ""
	s.mu.Unlock()

	blob, err := s.gateway.FetchSettings(ctx, category, s.credential)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// The screen moved on while this fetch was in flight.
		return nil
	}
	if err != nil {
		s.phase = PhaseLoadFailed
		s.lastError = errMessage(err)
		return err
	}
	s.phase = PhaseReady
	s.buffer = blob
	return nil
}

// Edit merges a single key/value into the local buffer. The remote
// resource is untouched until Save.
func (s *SettingsScreen) Edit(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buffer == nil {
		return ErrNotReady
	}
	s.buffer[key] = value
	return nil
}

// Save sends the full buffer. While a save is in flight further Save
// calls return immediately without issuing a request. On failure the
// buffer is left intact so the user can retry without re-entering data.
// A remount while the save is in flight invalidates its result the same
// way it invalidates a stale fetch.
func (s *SettingsScreen) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.buffer == nil {
		s.mu.Unlock()
		return ErrNotReady
	}
	if s.saving {
		s.mu.Unlock()
		return nil
	}
	s.saving = true
	s.phase = PhaseSaving
	gen := s.generation
	category := s.category
	blob := cloneBuffer(s.buffer)
	s.mu.Unlock()

	err := s.gateway.SaveSettings(ctx, category, blob, s.credential)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// The screen moved on while this save was in flight.
		return nil
	}
	s.saving = false
	if err != nil {
		s.phase = PhaseSaveFailed
		s.lastError = errMessage(err)
		return err
	}
	s.phase = PhaseReady
	s.lastError = ""
	return nil
}

// Phase returns the current lifecycle phase.
func (s *SettingsScreen) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Category returns the mounted category.
func (s *SettingsScreen) Category() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

// LastError returns the message of the most recent failure, empty after
// a success.
func (s *SettingsScreen) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Buffer returns a copy of the local edit buffer.
func (s *SettingsScreen) Buffer() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneBuffer(s.buffer)
}

func cloneBuffer(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func errMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
