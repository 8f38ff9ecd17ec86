// ABOUTME: Product endpoints of the admin API
// ABOUTME: CRUD plus stock and discount patches; create/update accept multipart for images

package client

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// ProductList is the payload of GET /products.
type ProductList struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

type productPayload struct {
	Product Product `json:"product"`
}

// ListProducts calls GET /products with optional filters (q, page, limit,
// category, active).
func (c *Client) ListProducts(ctx context.Context, params url.Values) (*ProductList, error) {
	var list ProductList
	if err := c.get(ctx, "/products"+encodeQuery(params), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetProduct calls GET /products/{id}.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var payload productPayload
	if err := c.get(ctx, "/products/"+id, &payload); err != nil {
		return nil, err
	}
	return &payload.Product, nil
}

// CreateProduct calls POST /products with a JSON body.
func (c *Client) CreateProduct(ctx context.Context, fields map[string]any) (*Product, error) {
	var payload productPayload
	if err := c.sendJSON(ctx, http.MethodPost, "/products", fields, &payload); err != nil {
		return nil, err
	}
	return &payload.Product, nil
}

// CreateProductForm calls POST /products with a multipart form so image
// files ride along with the fields.
func (c *Client) CreateProductForm(ctx context.Context, build func(*multipart.Writer) error) (*Product, error) {
	var payload productPayload
	if err := c.sendMultipart(ctx, http.MethodPost, "/products", build, &payload); err != nil {
		return nil, err
	}
	return &payload.Product, nil
}

// UpdateProduct calls PUT /products/{id} with a JSON body.
func (c *Client) UpdateProduct(ctx context.Context, id string, fields map[string]any) (*Product, error) {
	var payload productPayload
	if err := c.sendJSON(ctx, http.MethodPut, "/products/"+id, fields, &payload); err != nil {
		return nil, err
	}
	return &payload.Product, nil
}

// UpdateProductStock calls PATCH /products/{id}/stock.
func (c *Client) UpdateProductStock(ctx context.Context, id string, stock int) (*Product, error) {
	var payload productPayload
	body := map[string]int{"stock": stock}
	if err := c.sendJSON(ctx, http.MethodPatch, "/products/"+id+"/stock", body, &payload); err != nil {
		return nil, err
	}
	return &payload.Product, nil
}

// UpdateProductDiscount calls PATCH /products/{id}/discount.
func (c *Client) UpdateProductDiscount(ctx context.Context, id string, percent decimal.Decimal) (*Product, error) {
	var payload productPayload
	body := map[string]decimal.Decimal{"discountPercent": percent}
	if err := c.sendJSON(ctx, http.MethodPatch, "/products/"+id+"/discount", body, &payload); err != nil {
		return nil, err
	}
	return &payload.Product, nil
}

// DeleteProduct calls DELETE /products/{id}.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/products/"+id, nil, nil)
}

// UploadImage calls POST /upload with a single multipart image field.
func (c *Client) UploadImage(ctx context.Context, name string, r io.Reader) (*UploadedImage, error) {
	var uploaded UploadedImage
	err := c.sendMultipart(ctx, http.MethodPost, "/upload", func(mw *multipart.Writer) error {
		part, err := mw.CreateFormFile("image", name)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, r); err != nil {
			return fmt.Errorf("failed to copy image data: %w", err)
		}
		return nil
	}, &uploaded)
	if err != nil {
		return nil, err
	}
	return &uploaded, nil
}
