// ABOUTME: Session lifecycle manager for the admin console
// ABOUTME: Owns restore/verify/refresh/login/logout and answers whether a valid admin session exists

package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/manish201258/Hichhki-admin/internal/client"
	"github.com/manish201258/Hichhki-admin/internal/tokenstore"
)

// State is the session lifecycle position.
type State int

const (
	// StateUnauthenticated means no usable session exists.
	StateUnauthenticated State = iota
	// StateBootstrapping means restore-then-verify is still settling. Callers
	// must treat this as "decision pending" and gate nothing on it.
	StateBootstrapping
	// StateAuthenticated means the server has confirmed the identity.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateBootstrapping:
		return "bootstrapping"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Manager owns the one session aggregate. All mutation goes through Boot,
// Login, Logout and the internal verify/refresh chain; nothing else touches
// the stored credentials.
type Manager struct {
	api    *client.Client
	tokens *tokenstore.Store

	mu       sync.Mutex
	state    State
	user     *client.AdminUser // verified, server-confirmed identity
	snapshot *client.AdminUser // restored from disk, not yet trusted

	refreshGroup singleflight.Group
}

// New creates a manager in the Unauthenticated state. Boot must run before
// the session is usable.
func New(api *client.Client, tokens *tokenstore.Store) *Manager {
	return &Manager{api: api, tokens: tokens}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CurrentUser returns the verified identity. It reports nothing while a
// restored snapshot is still unverified: optimistic restoration is a
// rendering aid, never an authorization input.
func (m *Manager) CurrentUser() (*client.AdminUser, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated || m.user == nil {
		return nil, false
	}
	u := *m.user
	return &u, true
}

// UnverifiedSnapshot returns the identity restored from disk before verify
// settles, for display purposes only.
func (m *Manager) UnverifiedSnapshot() (*client.AdminUser, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snapshot == nil {
		return nil, false
	}
	u := *m.snapshot
	return &u, true
}

// IsAuthenticated reports whether a server-verified session exists.
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.CurrentUser()
	return ok
}

// IsAdmin reports whether the verified identity passes the admin predicate.
// This is the sole authorization gate.
func (m *Manager) IsAdmin() bool {
	u, ok := m.CurrentUser()
	return ok && IsAdmin(u)
}

// Boot restores the persisted session and settles it against the server:
// verify the access token, fall back to one refresh, and clear everything if
// both fail. Runs once per process start; repeating it while offline only
// ever transitions toward Unauthenticated.
func (m *Manager) Boot(ctx context.Context) {
	m.mu.Lock()
	m.state = StateBootstrapping
	m.mu.Unlock()

	raw := m.tokens.User()
	access := m.tokens.AccessToken()
	if len(raw) == 0 || access == "" {
		slog.Debug("session boot: no stored credentials")
		m.clearLocked()
		return
	}

	var restored client.AdminUser
	if err := json.Unmarshal(raw, &restored); err != nil {
		slog.Warn("session boot: corrupt user snapshot", "error", err)
		m.clearLocked()
		return
	}

	// Optimistic restore so the UI is not blocked on the round-trip. The
	// snapshot stays segregated from the verified session until verify
	// succeeds.
	m.mu.Lock()
	m.snapshot = &restored
	m.mu.Unlock()

	if err := m.verify(ctx); err != nil {
		slog.Debug("session boot: verify failed, attempting refresh", "error", err)
		if rerr := m.refresh(ctx); rerr != nil {
			slog.Debug("session boot: refresh failed", "error", rerr)
			m.clearLocked()
			return
		}
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.mu.Unlock()
}

// verify confirms the held access token against /auth/me and adopts the
// server's copy of the identity, which is authoritative for out-of-band role
// changes.
func (m *Manager) verify(ctx context.Context) error {
	u, err := m.api.CurrentUser(ctx)
	if err != nil {
		return err
	}
	m.adopt(u)
	return nil
}

// refresh rotates the token pair. Concurrent callers are coalesced into a
// single in-flight exchange so a burst of expired calls cannot race the
// rotation.
func (m *Manager) refresh(ctx context.Context) error {
	_, err, _ := m.refreshGroup.Do("refresh", func() (any, error) {
		payload, err := m.api.Refresh(ctx)
		if err != nil {
			return nil, err
		}
		m.adopt(&payload.User)
		return payload, nil
	})
	return err
}

// adopt installs a server-confirmed identity in memory and on disk.
func (m *Manager) adopt(u *client.AdminUser) {
	m.mu.Lock()
	m.user = u
	m.snapshot = nil
	m.mu.Unlock()
	if raw, err := json.Marshal(u); err == nil {
		m.tokens.SetUser(raw)
	}
}

// Login authenticates with email and password. Failure leaves any prior
// session state untouched; success installs the identity and marks the
// session authenticated. Navigation is the caller's concern.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	payload, err := m.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	m.adopt(&payload.User)
	m.mu.Lock()
	m.state = StateAuthenticated
	m.mu.Unlock()
	slog.Debug("session: login succeeded", "email", payload.User.Email)
	return nil
}

// Logout best-effort informs the server, then unconditionally clears local
// and persisted state. From the caller's perspective it always succeeds.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Logout(ctx); err != nil {
		slog.Debug("session: server logout failed, clearing locally", "error", err)
	}
	m.clearLocked()
}

func (m *Manager) clearLocked() {
	m.mu.Lock()
	m.user = nil
	m.snapshot = nil
	m.state = StateUnauthenticated
	m.mu.Unlock()
	m.tokens.Clear()
}
