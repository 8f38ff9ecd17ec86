// ABOUTME: Seeded store data and domain handlers for the stub admin API
// ABOUTME: Products, orders, dashboard stats and image upload over the shared envelope

package stubserver

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type stubProduct struct {
	ID              string          `json:"_id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	Stock           int             `json:"stock"`
	Active          bool            `json:"active"`
	SKU             string          `json:"sku"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type stubOrderItem struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Size      string          `json:"size"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Qty       int             `json:"qty"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type stubOrder struct {
	ID        string                     `json:"id"`
	OrderNo   string                     `json:"orderNo"`
	UserID    string                     `json:"userId"`
	Status    string                     `json:"status"`
	Items     []stubOrderItem            `json:"items"`
	Amounts   map[string]decimal.Decimal `json:"amounts"`
	CreatedAt time.Time                  `json:"createdAt"`
	UpdatedAt time.Time                  `json:"updatedAt"`
}

type catalog struct {
	products   map[string]*stubProduct
	orders     map[string]*stubOrder
	categories map[string]*stubCategory
	coupons    map[string]*stubCoupon
	customers  map[string]*stubCustomer
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func seedCatalog() *catalog {
	now := time.Now().UTC()
	c := &catalog{
		products:   make(map[string]*stubProduct),
		orders:     make(map[string]*stubOrder),
		categories: make(map[string]*stubCategory),
		coupons:    make(map[string]*stubCoupon),
		customers:  make(map[string]*stubCustomer),
	}
	seedContent(c, now)

	seedProducts := []*stubProduct{
		{Name: "Banarasi Silk Kurta", Slug: "banarasi-silk-kurta", Price: price("2499.00"), Category: "Kurtas", Stock: 12, SKU: "KUR-001"},
		{Name: "Chikankari Cotton Set", Slug: "chikankari-cotton-set", Price: price("1899.00"), Category: "Sets", Stock: 3, SKU: "SET-014"},
		{Name: "Block Print Dupatta", Slug: "block-print-dupatta", Price: price("799.00"), Category: "Dupattas", Stock: 42, SKU: "DUP-007"},
		{Name: "Ajrakh Saree", Slug: "ajrakh-saree", Price: price("3499.00"), Category: "Sarees", Stock: 2, SKU: "SAR-021"},
	}
	for _, p := range seedProducts {
		p.ID = uuid.NewString()
		p.Active = true
		p.CreatedAt = now
		p.UpdatedAt = now
		c.products[p.ID] = p
	}

	var firstProduct *stubProduct
	for _, p := range c.products {
		firstProduct = p
		break
	}
	order := &stubOrder{
		ID:      uuid.NewString(),
		OrderNo: "HCH-1001",
		UserID:  "42",
		Status:  "pending",
		Items: []stubOrderItem{{
			ProductID: firstProduct.ID,
			Title:     firstProduct.Name,
			Size:      "M",
			UnitPrice: firstProduct.Price,
			Qty:       1,
			Subtotal:  firstProduct.Price,
		}},
		Amounts: map[string]decimal.Decimal{
			"subtotal": firstProduct.Price,
			"discount": price("0"),
			"shipping": price("99.00"),
			"tax":      price("0"),
			"total":    firstProduct.Price.Add(price("99.00")),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.orders[order.ID] = order

	return c
}

func (s *Server) handleDashboard(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lowStock := make([]*stubProduct, 0)
	for _, p := range s.data.products {
		if p.Stock < 5 {
			lowStock = append(lowStock, p)
		}
	}
	sort.Slice(lowStock, func(i, j int) bool { return lowStock[i].Stock < lowStock[j].Stock })

	recent := make([]*stubOrder, 0, len(s.data.orders))
	for _, o := range s.data.orders {
		recent = append(recent, o)
	}
	sort.Slice(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })

	return respondOK(c, http.StatusOK, echo.Map{
		"totalUsers":       len(s.data.customers),
		"totalProducts":    len(s.data.products),
		"totalOrders":      len(s.data.orders),
		"totalCategories":  len(s.data.categories),
		"recentOrders":     recent,
		"lowStockProducts": lowStock,
	})
}

func (s *Server) handleListProducts(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := make([]*stubProduct, 0, len(s.data.products))
	for _, p := range s.data.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return respondOK(c, http.StatusOK, echo.Map{"products": products, "total": len(products)})
}

func (s *Server) handleGetProduct(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.data.products[c.Param("id")]
	if !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "Product not found")
	}
	return respondOK(c, http.StatusOK, echo.Map{"product": p})
}

func (s *Server) handleProductStock(c echo.Context) error {
	var req struct {
		Stock int `json:"stock"`
	}
	if err := c.Bind(&req); err != nil || req.Stock < 0 {
		return respondErr(c, http.StatusBadRequest, "bad_request", "stock must be a non-negative integer")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.data.products[c.Param("id")]
	if !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "Product not found")
	}
	p.Stock = req.Stock
	p.UpdatedAt = time.Now().UTC()
	return respondOK(c, http.StatusOK, echo.Map{"product": p})
}

func (s *Server) handleProductDiscount(c echo.Context) error {
	var req struct {
		DiscountPercent decimal.Decimal `json:"discountPercent"`
	}
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "bad_request", "Invalid request body")
	}
	if req.DiscountPercent.IsNegative() || req.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return respondErr(c, http.StatusBadRequest, "bad_request", "discountPercent must be between 0 and 100")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.data.products[c.Param("id")]
	if !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "Product not found")
	}
	p.DiscountPercent = req.DiscountPercent
	p.UpdatedAt = time.Now().UTC()
	return respondOK(c, http.StatusOK, echo.Map{"product": p})
}

func (s *Server) handleDeleteProduct(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.products[c.Param("id")]; !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "Product not found")
	}
	delete(s.data.products, c.Param("id"))
	return respondOK(c, http.StatusOK, echo.Map{"ok": true})
}

var orderStatuses = map[string]bool{
	"pending": true, "confirmed": true, "processing": true, "shipped": true,
	"out_for_delivery": true, "delivered": true, "cancelled": true,
	"returned": true, "refunded": true,
}

func (s *Server) handleListOrders(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := c.QueryParam("status")
	orders := make([]*stubOrder, 0, len(s.data.orders))
	for _, o := range s.data.orders {
		if status != "" && o.Status != status {
			continue
		}
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderNo < orders[j].OrderNo })
	return respondOK(c, http.StatusOK, echo.Map{"orders": orders, "total": len(orders)})
}

func (s *Server) handleGetOrder(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.data.orders[c.Param("id")]
	if !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "Order not found")
	}
	return respondOK(c, http.StatusOK, echo.Map{"order": o})
}

func (s *Server) handleOrderStatus(c echo.Context) error {
	var req struct {
		Status         string `json:"status"`
		TrackingNumber string `json:"trackingNumber"`
	}
	if err := c.Bind(&req); err != nil || !orderStatuses[req.Status] {
		return respondErr(c, http.StatusBadRequest, "bad_request", "Unknown order status")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.data.orders[c.Param("id")]
	if !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "Order not found")
	}
	o.Status = req.Status
	o.UpdatedAt = time.Now().UTC()
	return respondOK(c, http.StatusOK, echo.Map{"order": o})
}

func (s *Server) handleOrderRefund(c echo.Context) error {
	var req struct {
		RefundAmount decimal.Decimal `json:"refundAmount"`
		Reason       string          `json:"reason"`
	}
	if err := c.Bind(&req); err != nil || req.RefundAmount.IsNegative() {
		return respondErr(c, http.StatusBadRequest, "bad_request", "refundAmount must be a non-negative amount")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.data.orders[c.Param("id")]
	if !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "Order not found")
	}
	if req.RefundAmount.GreaterThan(o.Amounts["total"]) {
		return respondErr(c, http.StatusBadRequest, "bad_request", "Refund exceeds the order total")
	}
	o.Status = "refunded"
	o.UpdatedAt = time.Now().UTC()
	return respondOK(c, http.StatusOK, echo.Map{"order": o})
}

// handleUpload accepts a multipart image and answers with a fake CDN URL.
// It deliberately rejects requests that forced a JSON content type, which
// catches clients that break the multipart boundary.
func (s *Server) handleUpload(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return respondErr(c, http.StatusBadRequest, "bad_request", "image file field is required")
	}
	src, err := file.Open()
	if err != nil {
		return respondErr(c, http.StatusBadRequest, "bad_request", "could not read uploaded file")
	}
	defer src.Close()
	size, err := io.Copy(io.Discard, src)
	if err != nil {
		return respondErr(c, http.StatusBadRequest, "bad_request", "could not read uploaded file")
	}

	name := uuid.NewString()
	return respondOK(c, http.StatusOK, echo.Map{
		"url":          fmt.Sprintf("https://cdn.hichhki.test/uploads/%s", name),
		"filename":     name,
		"originalName": file.Filename,
		"size":         size,
	})
}
