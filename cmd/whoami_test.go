// ABOUTME: Tests for the whoami command
// ABOUTME: Runs the restore-verify chain against the stub API and checks output and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/manish201258/Hichhki-admin/internal/stubserver"
)

// startStub points the command wiring at a fresh stub API with isolated
// credential storage, undoing both when the test ends.
func startStub(t *testing.T) string {
	t.Helper()
	s, err := stubserver.New(stubserver.Options{})
	if err != nil {
		t.Fatalf("failed to build stub: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	base := ts.URL + "/api/v1/admin"
	apiURL = base
	t.Cleanup(func() { apiURL = "" })
	t.Setenv("HICHHKI_ADMIN_CONFIG_DIR", t.TempDir())
	return base
}

func TestWhoamiCommand_NotLoggedIn(t *testing.T) {
	startStub(t)

	var buf bytes.Buffer
	exitCode := runWhoami(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Not logged in")) {
		t.Errorf("expected not-logged-in message, got %q", buf.String())
	}
}

func TestWhoamiCommand_AfterLogin(t *testing.T) {
	startStub(t)

	var buf bytes.Buffer
	if code := runLogin(context.Background(), &buf, "admin@hichhki.test", "secret"); code != 0 {
		t.Fatalf("login failed with exit code %d: %s", code, buf.String())
	}

	buf.Reset()
	exitCode := runWhoami(context.Background(), &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	for _, want := range []string{"Store Admin", "admin@hichhki.test", "Admin:  yes", "admin"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("expected output to contain %q, got:\n%s", want, buf.String())
		}
	}
}

func TestWhoamiCommand_JSONOutput(t *testing.T) {
	startStub(t)

	var buf bytes.Buffer
	if code := runLogin(context.Background(), &buf, "admin@hichhki.test", "secret"); code != 0 {
		t.Fatalf("login failed: %s", buf.String())
	}

	jsonOutput = true
	defer func() { jsonOutput = false }()

	buf.Reset()
	if code := runWhoami(context.Background(), &buf); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	var parsed struct {
		Email string   `json:"email"`
		Roles []string `json:"roles"`
	}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if parsed.Email != "admin@hichhki.test" {
		t.Errorf("expected email in JSON, got %q", parsed.Email)
	}
}

func TestWhoamiCommand_ConnectionError(t *testing.T) {
	startStub(t)

	// Log in against the working stub, then point at a dead address: the
	// persisted session cannot be verified and whoami must not trust it.
	var buf bytes.Buffer
	if code := runLogin(context.Background(), &buf, "admin@hichhki.test", "secret"); code != 0 {
		t.Fatalf("login failed: %s", buf.String())
	}

	apiURL = "http://127.0.0.1:1"
	buf.Reset()
	if code := runWhoami(context.Background(), &buf); code != 2 {
		t.Errorf("expected exit code 2 when the API is unreachable, got %d", code)
	}
}
