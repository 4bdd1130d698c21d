// Package session owns the client-side authentication lifecycle:
// restore on startup, login, logout, and expiry detection.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketplacepro/platform/internal/client/store"
	"github.com/marketplacepro/platform/internal/client/token"
)

// State is the session lifecycle state. Restoring is the initial state;
// Restore moves to Authenticated or Anonymous exactly once per process,
// before any view is selected.
type State int

const (
	StateRestoring State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// User is the identity attached to an authenticated session.
type User struct {
	ID   string
	Role string
}

// Snapshot is an immutable view of the session for view selection.
type Snapshot struct {
	State      State
	User       User
	Credential string
}

// Store is the credential slot the manager persists through.
type Store interface {
	Load() (string, error)
	Save(credential string) error
	Clear() error
}

// Manager drives the session state machine. It is not safe for
// concurrent use; login and logout are user-triggered and mutually
// exclusive in the UI.
type Manager struct {
	store      Store
	now        func() time.Time
	log        zerolog.Logger
	state      State
	user       User
	credential string
}

// Option customizes a Manager.
type Option func(*Manager)

// WithClock injects a custom clock, useful for tests.
func WithClock(clock func() time.Time) Option {
	return func(m *Manager) {
		if clock != nil {
			m.now = clock
		}
	}
}

// NewManager returns a Manager in the Restoring state.
func NewManager(s Store, log zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{
		store: s,
		now:   time.Now,
		log:   log,
		state: StateRestoring,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Restore loads the persisted credential and settles the session into
// Authenticated or Anonymous. A missing, malformed, or expired
// credential downgrades silently to Anonymous; malformed and expired
// credentials are also cleared from the store. Invoked once at startup.
func (m *Manager) Restore() error {
	credential, err := m.store.Load()
	if err != nil {
		if errors.Is(err, store.ErrNoCredential) {
			m.toAnonymous()
			return nil
		}
		return fmt.Errorf("restore session: %w", err)
	}

	claims, err := token.Decode(credential)
	if err != nil {
		m.log.Debug().Msg("discarding undecodable stored credential")
		_ = m.store.Clear()
		m.toAnonymous()
		return nil
	}
	if claims.Expired(m.now()) {
		m.log.Debug().Str("user_id", claims.UserID).Msg("stored credential expired")
		_ = m.store.Clear()
		m.toAnonymous()
		return nil
	}

	m.state = StateAuthenticated
	m.credential = credential
	m.user = User{ID: claims.UserID, Role: claims.UserType}
	return nil
}

// Login persists the credential and transitions to Authenticated. The
// caller supplies the user from the login response; the server-asserted
// identity is trusted at login time rather than re-decoded. A
// persistence failure surfaces as an error and leaves the session state
// unchanged.
func (m *Manager) Login(credential string, user User) error {
	if err := m.store.Save(credential); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}
	m.state = StateAuthenticated
	m.credential = credential
	m.user = user
	m.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("logged in")
	return nil
}

// Logout clears the stored credential and returns to Anonymous.
// Idempotent: logging out an anonymous session is a no-op.
func (m *Manager) Logout() error {
	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	m.toAnonymous()
	return nil
}

// Snapshot returns the current session state for view selection.
// The user is present iff the session is authenticated.
func (m *Manager) Snapshot() Snapshot {
	return Snapshot{
		State:      m.state,
		User:       m.user,
		Credential: m.credential,
	}
}

func (m *Manager) toAnonymous() {
	m.state = StateAnonymous
	m.user = User{}
	m.credential = ""
}
