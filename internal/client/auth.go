// ABOUTME: Authentication endpoints of the admin API
// ABOUTME: Login and refresh persist rotated tokens; logout clears them

package client

import (
	"context"
	"errors"
	"net/http"
)

// ErrNoRefreshToken is returned by Refresh when no refresh token is held.
// No network call is made in that case.
var ErrNoRefreshToken = errors.New("no refresh token available")

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Login calls POST /auth/login. On success the returned token pair is
// persisted as a side effect; on failure the store is left untouched.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	var payload AuthPayload
	err := c.sendJSON(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &payload)
	if err != nil {
		return nil, err
	}
	c.tokens.SetTokens(payload.Token, payload.RefreshToken)
	return &payload, nil
}

// Logout calls POST /auth/logout and clears stored tokens regardless of the
// server's answer. The request error is returned so callers can log it, but
// by the time it returns the local credentials are gone either way.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.Request(ctx, http.MethodPost, "/auth/logout", nil, "application/json")
	c.tokens.Clear()
	return err
}

// Refresh exchanges the stored refresh token for a rotated pair. A rejected
// or missing refresh token is terminal for the current session; the caller
// decides whether to clear state.
func (c *Client) Refresh(ctx context.Context) (*AuthPayload, error) {
	refresh := c.tokens.RefreshToken()
	if refresh == "" {
		return nil, ErrNoRefreshToken
	}
	var payload AuthPayload
	err := c.sendJSON(ctx, http.MethodPost, "/auth/refresh", refreshRequest{RefreshToken: refresh}, &payload)
	if err != nil {
		return nil, err
	}
	c.tokens.SetTokens(payload.Token, payload.RefreshToken)
	return &payload, nil
}

// CurrentUser calls GET /auth/me, the identity verification endpoint.
func (c *Client) CurrentUser(ctx context.Context) (*AdminUser, error) {
	var payload struct {
		User AdminUser `json:"user"`
	}
	if err := c.get(ctx, "/auth/me", &payload); err != nil {
		return nil, err
	}
	return &payload.User, nil
}
