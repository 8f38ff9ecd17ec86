// ABOUTME: Identity helpers for admin authorization checks
// ABOUTME: Single predicate deciding whether an identity may use the console

package session

import "github.com/manish201258/Hichhki-admin/internal/client"

// IsAdmin reports whether u is an administrator: either the legacy boolean
// flag is true, or the role list carries "admin"/"Admin". Only those two
// casings count; anything else on the wire is somebody's typo, not a grant.
func IsAdmin(u *client.AdminUser) bool {
	if u == nil {
		return false
	}
	if u.IsAdmin != nil && *u.IsAdmin {
		return true
	}
	for _, role := range u.Roles {
		if role == "admin" || role == "Admin" {
			return true
		}
	}
	return false
}

// HasRole reports whether u carries the exact role string.
func HasRole(u *client.AdminUser, role string) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// DisplayName returns the best human label for u.
func DisplayName(u *client.AdminUser) string {
	if u == nil {
		return "Unknown User"
	}
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return "Unknown User"
}
