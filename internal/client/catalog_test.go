// ABOUTME: Tests for the content endpoints of the client
// ABOUTME: Categories, banners, Instagram posts and coupons against httptest servers

package client

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// envelope writes a success envelope around v.
func envelope(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"ok": true, "data": v})
}

func TestCategoryEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /categories/cat-1", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"category": map[string]any{"id": "cat-1", "name": "Kurtas", "slug": "kurtas"}})
	})
	mux.HandleFunc("PATCH /categories/cat-1", func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			t.Errorf("bad update body: %v", err)
		}
		if fields["active"] != false {
			t.Errorf("expected active=false in body, got %v", fields)
		}
		envelope(w, map[string]any{"category": map[string]any{"id": "cat-1", "name": "Kurtas", "active": false}})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server.URL)
	ctx := context.Background()

	cat, err := c.GetCategory(ctx, "cat-1")
	if err != nil {
		t.Fatalf("GetCategory failed: %v", err)
	}
	if cat.Name != "Kurtas" || cat.Slug != "kurtas" {
		t.Errorf("unexpected category: %+v", cat)
	}

	updated, err := c.UpdateCategory(ctx, "cat-1", map[string]any{"active": false})
	if err != nil {
		t.Fatalf("UpdateCategory failed: %v", err)
	}
	if updated.Active {
		t.Error("expected active=false after update")
	}
}

func TestCreateCategoryForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/categories" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not a parseable multipart form: %v", err)
		}
		if got := r.FormValue("name"); got != "Sarees" {
			t.Errorf("expected name field, got %q", got)
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("missing image part: %v", err)
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		if header.Filename != "sarees.jpg" || string(data) != "jpegbytes" {
			t.Errorf("unexpected file part %q: %q", header.Filename, data)
		}
		envelope(w, map[string]any{"category": map[string]any{"id": "cat-9", "name": "Sarees"}})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	cat, err := c.CreateCategoryForm(context.Background(), func(mw *multipart.Writer) error {
		if err := mw.WriteField("name", "Sarees"); err != nil {
			return err
		}
		part, err := mw.CreateFormFile("image", "sarees.jpg")
		if err != nil {
			return err
		}
		_, err = io.Copy(part, strings.NewReader("jpegbytes"))
		return err
	})
	if err != nil {
		t.Fatalf("CreateCategoryForm failed: %v", err)
	}
	if cat.ID != "cat-9" {
		t.Errorf("unexpected category ID %q", cat.ID)
	}
}

func TestBannerEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /banners", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"banners": []map[string]any{
			{"id": "b-1", "title": "Summer Sale", "position": "hero", "order": 1},
			{"id": "b-2", "title": "New Arrivals", "position": "hero", "order": 2},
		}})
	})
	mux.HandleFunc("GET /banners/b-1", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"banner": map[string]any{"id": "b-1", "title": "Summer Sale"}})
	})
	mux.HandleFunc("POST /banners", func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		json.NewDecoder(r.Body).Decode(&fields)
		envelope(w, map[string]any{"banner": map[string]any{"id": "b-3", "title": fields["title"]}})
	})
	mux.HandleFunc("PATCH /banners/b-1", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"banner": map[string]any{"id": "b-1", "active": false}})
	})
	mux.HandleFunc("DELETE /banners/b-2", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"deleted": true})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server.URL)
	ctx := context.Background()

	banners, err := c.ListBanners(ctx)
	if err != nil {
		t.Fatalf("ListBanners failed: %v", err)
	}
	if len(banners) != 2 || banners[0].Title != "Summer Sale" {
		t.Errorf("unexpected banners: %+v", banners)
	}

	banner, err := c.GetBanner(ctx, "b-1")
	if err != nil {
		t.Fatalf("GetBanner failed: %v", err)
	}
	if banner.ID != "b-1" {
		t.Errorf("unexpected banner: %+v", banner)
	}

	created, err := c.CreateBanner(ctx, map[string]any{"title": "Festive Drop"})
	if err != nil {
		t.Fatalf("CreateBanner failed: %v", err)
	}
	if created.Title != "Festive Drop" {
		t.Errorf("expected echoed title, got %q", created.Title)
	}

	updated, err := c.UpdateBanner(ctx, "b-1", map[string]any{"active": false})
	if err != nil {
		t.Fatalf("UpdateBanner failed: %v", err)
	}
	if updated.Active {
		t.Error("expected active=false after update")
	}

	if err := c.DeleteBanner(ctx, "b-2"); err != nil {
		t.Fatalf("DeleteBanner failed: %v", err)
	}
}

func TestInstagramEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /instagram", func(w http.ResponseWriter, r *http.Request) {
		// The Instagram payload is a bare array, not a wrapped object.
		envelope(w, []map[string]any{
			{"id": "ig-1", "image": "/uploads/ig1.jpg", "order": 1},
			{"id": "ig-2", "image": "/uploads/ig2.jpg", "order": 2},
		})
	})
	mux.HandleFunc("GET /instagram/ig-1", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"id": "ig-1", "caption": "Behind the loom"})
	})
	mux.HandleFunc("POST /instagram", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"id": "ig-3", "order": 3})
	})
	mux.HandleFunc("PUT /instagram/ig-1", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"id": "ig-1", "active": false})
	})
	mux.HandleFunc("DELETE /instagram/ig-2", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"deleted": true})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server.URL)
	ctx := context.Background()

	posts, err := c.ListInstagramPosts(ctx)
	if err != nil {
		t.Fatalf("ListInstagramPosts failed: %v", err)
	}
	if len(posts) != 2 || posts[0].ID != "ig-1" {
		t.Errorf("unexpected posts: %+v", posts)
	}

	post, err := c.GetInstagramPost(ctx, "ig-1")
	if err != nil {
		t.Fatalf("GetInstagramPost failed: %v", err)
	}
	if post.Caption != "Behind the loom" {
		t.Errorf("unexpected post: %+v", post)
	}

	created, err := c.CreateInstagramPost(ctx, map[string]any{"image": "/uploads/ig3.jpg"})
	if err != nil {
		t.Fatalf("CreateInstagramPost failed: %v", err)
	}
	if created.ID != "ig-3" {
		t.Errorf("unexpected created post: %+v", created)
	}

	if _, err := c.UpdateInstagramPost(ctx, "ig-1", map[string]any{"active": false}); err != nil {
		t.Fatalf("UpdateInstagramPost failed: %v", err)
	}
	if err := c.DeleteInstagramPost(ctx, "ig-2"); err != nil {
		t.Fatalf("DeleteInstagramPost failed: %v", err)
	}
}

func TestCouponEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /coupons/cp-1", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"coupon": map[string]any{"id": "cp-1", "code": "WELCOME10", "discountPercent": "10"}})
	})
	mux.HandleFunc("POST /coupons", func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		json.NewDecoder(r.Body).Decode(&fields)
		envelope(w, map[string]any{"coupon": map[string]any{"id": "cp-2", "code": fields["code"]}})
	})
	mux.HandleFunc("PATCH /coupons/cp-1", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"coupon": map[string]any{"id": "cp-1", "active": false}})
	})
	mux.HandleFunc("DELETE /coupons/cp-1", func(w http.ResponseWriter, r *http.Request) {
		envelope(w, map[string]any{"deleted": true})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server.URL)
	ctx := context.Background()

	coupon, err := c.GetCoupon(ctx, "cp-1")
	if err != nil {
		t.Fatalf("GetCoupon failed: %v", err)
	}
	if coupon.Code != "WELCOME10" || coupon.DiscountPercent.String() != "10" {
		t.Errorf("unexpected coupon: %+v", coupon)
	}

	created, err := c.CreateCoupon(ctx, map[string]any{"code": "FESTIVE20"})
	if err != nil {
		t.Fatalf("CreateCoupon failed: %v", err)
	}
	if created.Code != "FESTIVE20" {
		t.Errorf("expected echoed code, got %q", created.Code)
	}

	updated, err := c.UpdateCoupon(ctx, "cp-1", map[string]any{"active": false})
	if err != nil {
		t.Fatalf("UpdateCoupon failed: %v", err)
	}
	if updated.Active {
		t.Error("expected active=false after update")
	}

	if err := c.DeleteCoupon(ctx, "cp-1"); err != nil {
		t.Fatalf("DeleteCoupon failed: %v", err)
	}
}
