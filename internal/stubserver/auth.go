// ABOUTME: Auth handlers for the stub admin API
// ABOUTME: Issues HS256 access tokens and hashed rotating refresh tokens

package stubserver

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type userDTO struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Roles     []string   `json:"roles"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type authResponse struct {
	User         userDTO `json:"user"`
	Token        string  `json:"token"`
	RefreshToken string  `json:"refreshToken"`
}

func dtoFor(a *account) userDTO {
	return userDTO{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Roles:     a.Roles,
		LastLogin: a.LastLogin,
	}
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "bad_request", "Invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return respondErr(c, http.StatusBadRequest, "bad_request", "Email and password are required")
	}

	s.mu.Lock()
	acct := s.accounts[req.Email]
	s.mu.Unlock()
	if acct == nil || bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(req.Password)) != nil {
		return respondErr(c, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
	}

	now := time.Now().UTC()
	s.mu.Lock()
	acct.LastLogin = &now
	s.mu.Unlock()

	resp, err := s.issueTokens(c, acct)
	if err != nil {
		return respondErr(c, http.StatusInternalServerError, "token_issue_failed", "Could not issue tokens")
	}
	return respondOK(c, http.StatusOK, resp)
}

func (s *Server) handleRefresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return respondErr(c, http.StatusBadRequest, "bad_request", "refreshToken is required")
	}

	hash := hashRefreshToken(strings.TrimSpace(req.RefreshToken))
	userID, err := s.refresh.Consume(c.Request().Context(), hash)
	if err != nil {
		return respondErr(c, http.StatusUnauthorized, "refresh_invalid", "Invalid or expired refresh token")
	}
	acct := s.accountByID(userID)
	if acct == nil {
		return respondErr(c, http.StatusUnauthorized, "unauthorized", "Unknown account")
	}

	resp, err := s.issueTokens(c, acct)
	if err != nil {
		return respondErr(c, http.StatusInternalServerError, "token_issue_failed", "Could not issue tokens")
	}
	return respondOK(c, http.StatusOK, resp)
}

func (s *Server) handleLogout(c echo.Context) error {
	// Best effort: revoke whatever refresh token the body names. A bare
	// logout with no body still succeeds, matching the client's
	// clear-locally-regardless behavior.
	var req refreshRequest
	_ = c.Bind(&req)
	if tok := strings.TrimSpace(req.RefreshToken); tok != "" {
		_, _ = s.refresh.Consume(c.Request().Context(), hashRefreshToken(tok))
	}
	return respondOK(c, http.StatusOK, echo.Map{"loggedOut": true})
}

func (s *Server) handleMe(c echo.Context) error {
	acct := c.Get("account").(*account)
	return respondOK(c, http.StatusOK, echo.Map{"user": dtoFor(acct)})
}

// issueTokens signs a fresh access JWT and rotates the refresh token. Only a
// SHA-256 hash of the refresh token is stored.
func (s *Server) issueTokens(c echo.Context, acct *account) (*authResponse, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   acct.ID,
		"email": acct.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.opts.AccessTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.opts.JWTSecret))
	if err != nil {
		return nil, err
	}

	raw, err := randomHex(32)
	if err != nil {
		return nil, err
	}
	exp := now.Add(s.opts.RefreshTTL)
	if err := s.refresh.Save(c.Request().Context(), hashRefreshToken(raw), acct.ID, exp); err != nil {
		return nil, err
	}

	return &authResponse{
		User:         dtoFor(acct),
		Token:        access,
		RefreshToken: raw,
	}, nil
}

func hashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
