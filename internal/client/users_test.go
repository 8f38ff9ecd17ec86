// ABOUTME: Tests for the account and review endpoints of the client
// ABOUTME: Account lookup and deletion plus review moderation against httptest servers

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestUserEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/u-1", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"user": map[string]any{"id": "u-1", "name": "Aarav Mehta", "active": true}})
	})
	mux.HandleFunc("DELETE /users/u-1", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"deleted": true})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server.URL)
	ctx := context.Background()

	user, err := c.GetUser(ctx, "u-1")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user.Name != "Aarav Mehta" || !user.Active {
		t.Errorf("unexpected user: %+v", user)
	}

	if err := c.DeleteUser(ctx, "u-1"); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
}

func TestReviewEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /reviews", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("approved"); got != "false" {
			t.Errorf("expected approved=false filter, got %q", got)
		}
		envelope(w, map[string]any{
			"reviews": []map[string]any{
				{"id": "r-1", "productId": "p-1", "rating": 5, "content": "Beautiful weave", "approved": false},
			},
			"total": 1,
		})
	})
	mux.HandleFunc("GET /reviews/r-1", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"review": map[string]any{"id": "r-1", "rating": 5}})
	})
	mux.HandleFunc("PATCH /reviews/r-1", func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil || fields["approved"] != true {
			t.Errorf("expected approved=true in body, got %v (err %v)", fields, err)
		}
		envelope(w, map[string]any{"review": map[string]any{"id": "r-1", "approved": true}})
	})
	mux.HandleFunc("DELETE /reviews/r-1", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"deleted": true})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server.URL)
	ctx := context.Background()

	list, err := c.ListReviews(ctx, url.Values{"approved": {"false"}})
	if err != nil {
		t.Fatalf("ListReviews failed: %v", err)
	}
	if list.Total != 1 || len(list.Reviews) != 1 || list.Reviews[0].Content != "Beautiful weave" {
		t.Errorf("unexpected review list: %+v", list)
	}

	review, err := c.GetReview(ctx, "r-1")
	if err != nil {
		t.Fatalf("GetReview failed: %v", err)
	}
	if review.Rating != 5 {
		t.Errorf("unexpected review: %+v", review)
	}

	approved, err := c.UpdateReview(ctx, "r-1", map[string]any{"approved": true})
	if err != nil {
		t.Fatalf("UpdateReview failed: %v", err)
	}
	if !approved.Approved {
		t.Error("expected approved=true after update")
	}

	if err := c.DeleteReview(ctx, "r-1"); err != nil {
		t.Fatalf("DeleteReview failed: %v", err)
	}
}
