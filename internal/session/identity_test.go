// ABOUTME: Tests for the admin identity predicate
// ABOUTME: Table-driven coverage of flag, role casing and nil handling

package session

import (
	"testing"

	"github.com/manish201258/Hichhki-admin/internal/client"
)

func boolPtr(b bool) *bool { return &b }

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name string
		user *client.AdminUser
		want bool
	}{
		{"nil user", nil, false},
		{"empty user", &client.AdminUser{}, false},
		{"flag true", &client.AdminUser{IsAdmin: boolPtr(true)}, true},
		{"flag false", &client.AdminUser{IsAdmin: boolPtr(false)}, false},
		{"lowercase role", &client.AdminUser{Roles: []string{"admin"}}, true},
		{"capitalized role", &client.AdminUser{Roles: []string{"Admin"}}, true},
		{"uppercase role does not count", &client.AdminUser{Roles: []string{"ADMIN"}}, false},
		{"other roles only", &client.AdminUser{Roles: []string{"editor", "support"}}, false},
		{"admin among others", &client.AdminUser{Roles: []string{"editor", "admin"}}, true},
		{"flag false but role grants", &client.AdminUser{IsAdmin: boolPtr(false), Roles: []string{"admin"}}, true},
		{"substring role does not count", &client.AdminUser{Roles: []string{"administrator"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAdmin(tt.user); got != tt.want {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasRole(t *testing.T) {
	u := &client.AdminUser{Roles: []string{"editor", "admin"}}
	if !HasRole(u, "editor") {
		t.Error("expected editor role to be found")
	}
	if HasRole(u, "Editor") {
		t.Error("role matching is case sensitive")
	}
	if HasRole(nil, "admin") {
		t.Error("nil user has no roles")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user *client.AdminUser
		want string
	}{
		{"nil user", nil, "Unknown User"},
		{"name preferred", &client.AdminUser{Name: "Store Admin", Email: "a@b.c"}, "Store Admin"},
		{"email fallback", &client.AdminUser{Email: "a@b.c"}, "a@b.c"},
		{"nothing known", &client.AdminUser{}, "Unknown User"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.user); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
