// ABOUTME: Category, banner, Instagram and coupon endpoints of the admin API
// ABOUTME: Plain enveloped CRUD over the storefront content resources

package client

import (
	"context"
	"mime/multipart"
	"net/http"
)

type categoriesPayload struct {
	Categories []Category `json:"categories"`
}

type categoryPayload struct {
	Category Category `json:"category"`
}

// ListCategories calls GET /categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var payload categoriesPayload
	if err := c.get(ctx, "/categories", &payload); err != nil {
		return nil, err
	}
	return payload.Categories, nil
}

// GetCategory calls GET /categories/{id}.
func (c *Client) GetCategory(ctx context.Context, id string) (*Category, error) {
	var payload categoryPayload
	if err := c.get(ctx, "/categories/"+id, &payload); err != nil {
		return nil, err
	}
	return &payload.Category, nil
}

// CreateCategory calls POST /categories with a JSON body.
func (c *Client) CreateCategory(ctx context.Context, fields map[string]any) (*Category, error) {
	var payload categoryPayload
	if err := c.sendJSON(ctx, http.MethodPost, "/categories", fields, &payload); err != nil {
		return nil, err
	}
	return &payload.Category, nil
}

// CreateCategoryForm calls POST /categories with a multipart form.
func (c *Client) CreateCategoryForm(ctx context.Context, build func(*multipart.Writer) error) (*Category, error) {
	var payload categoryPayload
	if err := c.sendMultipart(ctx, http.MethodPost, "/categories", build, &payload); err != nil {
		return nil, err
	}
	return &payload.Category, nil
}

// UpdateCategory calls PATCH /categories/{id} with a JSON body.
func (c *Client) UpdateCategory(ctx context.Context, id string, fields map[string]any) (*Category, error) {
	var payload categoryPayload
	if err := c.sendJSON(ctx, http.MethodPatch, "/categories/"+id, fields, &payload); err != nil {
		return nil, err
	}
	return &payload.Category, nil
}

// DeleteCategory calls DELETE /categories/{id}.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/categories/"+id, nil, nil)
}

type bannersPayload struct {
	Banners []Banner `json:"banners"`
}

type bannerPayload struct {
	Banner Banner `json:"banner"`
}

// ListBanners calls GET /banners.
func (c *Client) ListBanners(ctx context.Context) ([]Banner, error) {
	var payload bannersPayload
	if err := c.get(ctx, "/banners", &payload); err != nil {
		return nil, err
	}
	return payload.Banners, nil
}

// GetBanner calls GET /banners/{id}.
func (c *Client) GetBanner(ctx context.Context, id string) (*Banner, error) {
	var payload bannerPayload
	if err := c.get(ctx, "/banners/"+id, &payload); err != nil {
		return nil, err
	}
	return &payload.Banner, nil
}

// CreateBanner calls POST /banners.
func (c *Client) CreateBanner(ctx context.Context, fields map[string]any) (*Banner, error) {
	var payload bannerPayload
	if err := c.sendJSON(ctx, http.MethodPost, "/banners", fields, &payload); err != nil {
		return nil, err
	}
	return &payload.Banner, nil
}

// UpdateBanner calls PATCH /banners/{id}.
func (c *Client) UpdateBanner(ctx context.Context, id string, fields map[string]any) (*Banner, error) {
	var payload bannerPayload
	if err := c.sendJSON(ctx, http.MethodPatch, "/banners/"+id, fields, &payload); err != nil {
		return nil, err
	}
	return &payload.Banner, nil
}

// DeleteBanner calls DELETE /banners/{id}.
func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/banners/"+id, nil, nil)
}

// ListInstagramPosts calls GET /instagram. The payload is a bare array.
func (c *Client) ListInstagramPosts(ctx context.Context) ([]InstagramPost, error) {
	var posts []InstagramPost
	if err := c.get(ctx, "/instagram", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetInstagramPost calls GET /instagram/{id}.
func (c *Client) GetInstagramPost(ctx context.Context, id string) (*InstagramPost, error) {
	var post InstagramPost
	if err := c.get(ctx, "/instagram/"+id, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreateInstagramPost calls POST /instagram.
func (c *Client) CreateInstagramPost(ctx context.Context, fields map[string]any) (*InstagramPost, error) {
	var post InstagramPost
	if err := c.sendJSON(ctx, http.MethodPost, "/instagram", fields, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdateInstagramPost calls PUT /instagram/{id}.
func (c *Client) UpdateInstagramPost(ctx context.Context, id string, fields map[string]any) (*InstagramPost, error) {
	var post InstagramPost
	if err := c.sendJSON(ctx, http.MethodPut, "/instagram/"+id, fields, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeleteInstagramPost calls DELETE /instagram/{id}.
func (c *Client) DeleteInstagramPost(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/instagram/"+id, nil, nil)
}

type couponsPayload struct {
	Coupons []Coupon `json:"coupons"`
}

type couponPayload struct {
	Coupon Coupon `json:"coupon"`
}

// ListCoupons calls GET /coupons.
func (c *Client) ListCoupons(ctx context.Context) ([]Coupon, error) {
	var payload couponsPayload
	if err := c.get(ctx, "/coupons", &payload); err != nil {
		return nil, err
	}
	return payload.Coupons, nil
}

// GetCoupon calls GET /coupons/{id}.
func (c *Client) GetCoupon(ctx context.Context, id string) (*Coupon, error) {
	var payload couponPayload
	if err := c.get(ctx, "/coupons/"+id, &payload); err != nil {
		return nil, err
	}
	return &payload.Coupon, nil
}

// CreateCoupon calls POST /coupons.
func (c *Client) CreateCoupon(ctx context.Context, fields map[string]any) (*Coupon, error) {
	var payload couponPayload
	if err := c.sendJSON(ctx, http.MethodPost, "/coupons", fields, &payload); err != nil {
		return nil, err
	}
	return &payload.Coupon, nil
}

// UpdateCoupon calls PATCH /coupons/{id}.
func (c *Client) UpdateCoupon(ctx context.Context, id string, fields map[string]any) (*Coupon, error) {
	var payload couponPayload
	if err := c.sendJSON(ctx, http.MethodPatch, "/coupons/"+id, fields, &payload); err != nil {
		return nil, err
	}
	return &payload.Coupon, nil
}

// DeleteCoupon calls DELETE /coupons/{id}.
func (c *Client) DeleteCoupon(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/coupons/"+id, nil, nil)
}
