// ABOUTME: Durable credential storage for the admin CLI
// ABOUTME: Persists user snapshot and token pair as JSON in the XDG config directory

package tokenstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const credentialsFile = "credentials.json"

// credentials is the on-disk shape. The user snapshot is kept as raw JSON so
// this package stays independent of the API types.
type credentials struct {
	User         json.RawMessage `json:"user,omitempty"`
	AccessToken  string          `json:"accessToken,omitempty"`
	RefreshToken string          `json:"refreshToken,omitempty"`
}

// Store holds the persisted session credentials. Disk failures degrade to
// in-memory operation: the current process keeps a working session, it just
// will not survive a restart.
type Store struct {
	mu     sync.Mutex
	dir    string
	creds  credentials
	loaded bool
}

// New creates a store rooted at dir. An empty dir disables persistence
// entirely and the store operates in memory only.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the config directory following the XDG spec.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hichhki-admin")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hichhki-admin")
}

func (s *Store) path() string {
	return filepath.Join(s.dir, credentialsFile)
}

// load reads the credentials file once. Missing or corrupt files start fresh.
func (s *Store) load() {
	if s.loaded {
		return
	}
	s.loaded = true
	if s.dir == "" {
		return
	}
	data, err := os.ReadFile(s.path())
	if err != nil {
		return
	}
	var c credentials
	if err := json.Unmarshal(data, &c); err != nil {
		return
	}
	s.creds = c
}

// flush writes the current credentials to disk. Errors are ignored:
// persistence is a convenience, not a requirement.
func (s *Store) flush() {
	if s.dir == "" {
		return
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return
	}
	data, err := json.MarshalIndent(s.creds, "", "  ")
	if err != nil {
		return
	}
	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return
	}
	_ = os.Rename(tmp, s.path())
}

// AccessToken returns the stored access token, or "" when absent.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.creds.AccessToken
}

// RefreshToken returns the stored refresh token, or "" when absent.
func (s *Store) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.creds.RefreshToken
}

// User returns the stored user snapshot, or nil when absent.
func (s *Store) User() json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.creds.User
}

// SetTokens stores a rotated token pair. Login and refresh both rotate the
// pair as a unit, so the two are always written together. Empty values are
// kept as-is rather than clearing, matching how the server may omit a field.
func (s *Store) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	if access != "" {
		s.creds.AccessToken = access
	}
	if refresh != "" {
		s.creds.RefreshToken = refresh
	}
	s.flush()
}

// SetUser stores the user snapshot alongside whatever tokens are held.
func (s *Store) SetUser(user json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	s.creds.User = user
	s.flush()
}

// Clear removes the snapshot and both tokens, in memory and on disk.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	s.creds = credentials{}
	if s.dir == "" {
		return
	}
	_ = os.Remove(s.path())
}
