// ABOUTME: Customer account and review endpoints of the admin API
// ABOUTME: Account moderation, role assignment and review approval

package client

import (
	"context"
	"net/http"
	"net/url"
)

// UserList is the payload of GET /users.
type UserList struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

type userPayload struct {
	User User `json:"user"`
}

// ListUsers calls GET /users with optional filters (q, page, limit, active).
func (c *Client) ListUsers(ctx context.Context, params url.Values) (*UserList, error) {
	var list UserList
	if err := c.get(ctx, "/users"+encodeQuery(params), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetUser calls GET /users/{id}.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var payload userPayload
	if err := c.get(ctx, "/users/"+id, &payload); err != nil {
		return nil, err
	}
	return &payload.User, nil
}

// UpdateUserStatus calls PATCH /users/{id}/status to activate or suspend an
// account. reason is recorded server-side and may be empty.
func (c *Client) UpdateUserStatus(ctx context.Context, id string, active bool, reason string) (*User, error) {
	body := map[string]any{"active": active}
	if reason != "" {
		body["reason"] = reason
	}
	var payload userPayload
	if err := c.sendJSON(ctx, http.MethodPatch, "/users/"+id+"/status", body, &payload); err != nil {
		return nil, err
	}
	return &payload.User, nil
}

// UpdateUserRoles calls PATCH /users/{id}/role, replacing the role list.
func (c *Client) UpdateUserRoles(ctx context.Context, id string, roles []string) (*User, error) {
	body := map[string][]string{"roles": roles}
	var payload userPayload
	if err := c.sendJSON(ctx, http.MethodPatch, "/users/"+id+"/role", body, &payload); err != nil {
		return nil, err
	}
	return &payload.User, nil
}

// DeleteUser calls DELETE /users/{id}.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/users/"+id, nil, nil)
}

// ReviewList is the payload of GET /reviews.
type ReviewList struct {
	Reviews []Review `json:"reviews"`
	Total   int      `json:"total"`
}

type reviewPayload struct {
	Review Review `json:"review"`
}

// ListReviews calls GET /reviews with optional filters (productId, approved).
func (c *Client) ListReviews(ctx context.Context, params url.Values) (*ReviewList, error) {
	var list ReviewList
	if err := c.get(ctx, "/reviews"+encodeQuery(params), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetReview calls GET /reviews/{id}.
func (c *Client) GetReview(ctx context.Context, id string) (*Review, error) {
	var payload reviewPayload
	if err := c.get(ctx, "/reviews/"+id, &payload); err != nil {
		return nil, err
	}
	return &payload.Review, nil
}

// UpdateReview calls PATCH /reviews/{id}, typically to flip approval.
func (c *Client) UpdateReview(ctx context.Context, id string, fields map[string]any) (*Review, error) {
	var payload reviewPayload
	if err := c.sendJSON(ctx, http.MethodPatch, "/reviews/"+id, fields, &payload); err != nil {
		return nil, err
	}
	return &payload.Review, nil
}

// DeleteReview calls DELETE /reviews/{id}.
func (c *Client) DeleteReview(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/reviews/"+id, nil, nil)
}

// GetDashboardStats calls GET /dashboard for the aggregate store numbers.
func (c *Client) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.get(ctx, "/dashboard", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
