// ABOUTME: Tests for the order endpoints of the client
// ABOUTME: Partial updates and refund processing against httptest servers

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func TestUpdateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/orders/o-1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var fields map[string]any
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if fields["customerNotes"] != "Leave at the gate" {
			t.Errorf("expected customerNotes in body, got %v", fields)
		}
		envelope(w, map[string]any{"order": map[string]any{
			"id":            "o-1",
			"orderNo":       "HCH-1001",
			"customerNotes": fields["customerNotes"],
		}})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	order, err := c.UpdateOrder(context.Background(), "o-1", map[string]any{"customerNotes": "Leave at the gate"})
	if err != nil {
		t.Fatalf("UpdateOrder failed: %v", err)
	}
	if order.CustomerNotes != "Leave at the gate" {
		t.Errorf("unexpected order: %+v", order)
	}
}

func TestProcessRefund(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/orders/o-1/refund" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			RefundAmount decimal.Decimal `json:"refundAmount"`
			Reason       string          `json:"reason"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if !body.RefundAmount.Equal(decimal.RequireFromString("2499.00")) || body.Reason != "damaged in transit" {
			t.Errorf("unexpected refund body: %+v", body)
		}
		envelope(w, map[string]any{"order": map[string]any{"id": "o-1", "status": "refunded"}})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	order, err := c.ProcessRefund(context.Background(), "o-1", decimal.RequireFromString("2499.00"), "damaged in transit")
	if err != nil {
		t.Fatalf("ProcessRefund failed: %v", err)
	}
	if order.Status != "refunded" {
		t.Errorf("expected refunded status, got %q", order.Status)
	}
}

func TestProcessRefund_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error":{"code":"bad_request","message":"Refund exceeds the order total"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.ProcessRefund(context.Background(), "o-1", decimal.RequireFromString("99999.00"), "")
	if err == nil {
		t.Fatal("expected an error for an oversized refund")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "Refund exceeds the order total" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
}
