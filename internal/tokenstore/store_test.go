// ABOUTME: Tests for the persisted credential store
// ABOUTME: Covers round-trips, clearing and in-memory degradation

package tokenstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := New(dir)
	s.SetTokens("acc-1", "ref-1")
	s.SetUser(json.RawMessage(`{"id":"1","email":"admin@hichhki.test"}`))

	// A fresh store over the same directory sees the persisted state.
	s2 := New(dir)
	if s2.AccessToken() != "acc-1" {
		t.Errorf("expected access token acc-1, got %q", s2.AccessToken())
	}
	if s2.RefreshToken() != "ref-1" {
		t.Errorf("expected refresh token ref-1, got %q", s2.RefreshToken())
	}
	var user struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(s2.User(), &user); err != nil {
		t.Fatalf("failed to decode stored user: %v", err)
	}
	if user.Email != "admin@hichhki.test" {
		t.Errorf("expected stored user email, got %q", user.Email)
	}
}

func TestStore_EmptyValuesDoNotClear(t *testing.T) {
	s := New(t.TempDir())
	s.SetTokens("acc-1", "ref-1")
	s.SetTokens("acc-2", "")

	if s.AccessToken() != "acc-2" {
		t.Errorf("expected access token updated, got %q", s.AccessToken())
	}
	if s.RefreshToken() != "ref-1" {
		t.Errorf("omitted refresh token must keep the previous value, got %q", s.RefreshToken())
	}
}

func TestStore_Clear(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	s.SetTokens("acc-1", "ref-1")
	s.SetUser(json.RawMessage(`{"id":"1"}`))

	s.Clear()

	if s.AccessToken() != "" || s.RefreshToken() != "" || s.User() != nil {
		t.Error("clear must drop everything in memory")
	}
	if _, err := os.Stat(filepath.Join(dir, credentialsFile)); !os.IsNotExist(err) {
		t.Error("clear must remove the credentials file")
	}
	if New(dir).AccessToken() != "" {
		t.Error("clear must survive a reload")
	}
}

func TestStore_CorruptFileStartsFresh(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, credentialsFile), []byte("{broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := New(dir)
	if s.AccessToken() != "" {
		t.Errorf("corrupt file must read as empty, got %q", s.AccessToken())
	}

	// A write over the corrupt file recovers it.
	s.SetTokens("acc-1", "ref-1")
	if New(dir).AccessToken() != "acc-1" {
		t.Error("expected rewritten file to load cleanly")
	}
}

func TestStore_NoDirOperatesInMemory(t *testing.T) {
	s := New("")
	s.SetTokens("acc-1", "ref-1")
	if s.AccessToken() != "acc-1" {
		t.Errorf("expected in-memory token, got %q", s.AccessToken())
	}
	s.Clear()
	if s.AccessToken() != "" {
		t.Error("expected clear to work without a directory")
	}
}

func TestStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	s.SetTokens("acc-1", "ref-1")

	info, err := os.Stat(filepath.Join(dir, credentialsFile))
	if err != nil {
		t.Fatalf("expected credentials file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected mode 0600, got %o", perm)
	}
}
