// ABOUTME: Order endpoints of the admin API
// ABOUTME: Listing, status transitions and refund processing

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// OrderList is the payload of GET /orders.
type OrderList struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}

type orderPayload struct {
	Order Order `json:"order"`
}

// ListOrders calls GET /orders with optional filters (status, page, limit).
func (c *Client) ListOrders(ctx context.Context, params url.Values) (*OrderList, error) {
	var list OrderList
	if err := c.get(ctx, "/orders"+encodeQuery(params), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetOrder calls GET /orders/{id}.
func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	var payload orderPayload
	if err := c.get(ctx, "/orders/"+id, &payload); err != nil {
		return nil, err
	}
	return &payload.Order, nil
}

// UpdateOrder calls PUT /orders/{id} with partial order fields.
func (c *Client) UpdateOrder(ctx context.Context, id string, fields map[string]any) (*Order, error) {
	var payload orderPayload
	if err := c.sendJSON(ctx, http.MethodPut, "/orders/"+id, fields, &payload); err != nil {
		return nil, err
	}
	return &payload.Order, nil
}

// UpdateOrderStatus calls PATCH /orders/{id}/status. trackingNumber may be
// empty for transitions that do not ship anything.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status, trackingNumber string) (*Order, error) {
	body := map[string]string{"status": status}
	if trackingNumber != "" {
		body["trackingNumber"] = trackingNumber
	}
	var payload orderPayload
	if err := c.sendJSON(ctx, http.MethodPatch, "/orders/"+id+"/status", body, &payload); err != nil {
		return nil, err
	}
	return &payload.Order, nil
}

// ProcessRefund calls PATCH /orders/{id}/refund.
func (c *Client) ProcessRefund(ctx context.Context, id string, amount decimal.Decimal, reason string) (*Order, error) {
	body := map[string]any{"refundAmount": amount, "reason": reason}
	var payload orderPayload
	if err := c.sendJSON(ctx, http.MethodPatch, "/orders/"+id+"/refund", body, &payload); err != nil {
		return nil, err
	}
	return &payload.Order, nil
}
