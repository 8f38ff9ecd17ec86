// ABOUTME: Category, coupon and customer handlers for the stub admin API
// ABOUTME: Content CRUD and account moderation over the shared envelope

package stubserver

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type stubCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type stubCoupon struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	MinAmount       decimal.Decimal `json:"minAmount"`
	MaxUsage        int             `json:"maxUsage"`
	UsedCount       int             `json:"usedCount"`
	ValidUntil      time.Time       `json:"validUntil"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type stubCustomer struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Active    bool       `json:"active"`
	Roles     []string   `json:"roles"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func seedContent(c *catalog, now time.Time) {
	for _, name := range []string{"Kurtas", "Sets", "Dupattas", "Sarees"} {
		cat := &stubCategory{
			ID:        uuid.NewString(),
			Name:      name,
			Slug:      slugify(name),
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		c.categories[cat.ID] = cat
	}

	seedCoupons := []*stubCoupon{
		{Code: "WELCOME10", DiscountPercent: price("10"), MinAmount: price("999.00"), MaxUsage: 1000, UsedCount: 412},
		{Code: "FESTIVE20", DiscountPercent: price("20"), MinAmount: price("2499.00"), MaxUsage: 200, UsedCount: 198},
	}
	for _, cp := range seedCoupons {
		cp.ID = uuid.NewString()
		cp.Active = true
		cp.ValidUntil = now.AddDate(0, 3, 0)
		cp.CreatedAt = now
		cp.UpdatedAt = now
		c.coupons[cp.ID] = cp
	}

	seedCustomers := []*stubCustomer{
		{ID: "42", Name: "Aarav Mehta", Email: "aarav@example.com", Active: true},
		{ID: uuid.NewString(), Name: "Diya Sharma", Email: "diya@example.com", Active: true},
		{ID: uuid.NewString(), Name: "Kabir Rao", Email: "kabir@example.com", Active: false},
	}
	for _, cu := range seedCustomers {
		cu.Roles = []string{"customer"}
		cu.CreatedAt = now
		c.customers[cu.ID] = cu
	}
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func (s *Server) handleListCategories(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	categories := make([]*stubCategory, 0, len(s.data.categories))
	for _, cat := range s.data.categories {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return respondOK(c, http.StatusOK, echo.Map{"categories": categories})
}

func (s *Server) handleGetCategory(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat, ok := s.data.categories[c.Param("id")]
	if !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "Category not found")
	}
	return respondOK(c, http.StatusOK, echo.Map{"category": cat})
}

func (s *Server) handleCreateCategory(c echo.Context) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Slug        string `json:"slug"`
	}
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		return respondErr(c, http.StatusBadRequest, "bad_request", "name is required")
	}
	if req.Slug == "" {
		req.Slug = slugify(req.Name)
	}
	now := time.Now().UTC()
	cat := &stubCategory{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Slug:        req.Slug,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.mu.Lock()
	s.data.categories[cat.ID] = cat
	s.mu.Unlock()
	return respondOK(c, http.StatusCreated, echo.Map{"category": cat})
}

func (s *Server) handleUpdateCategory(c echo.Context) error {
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Active      *bool   `json:"active"`
	}
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "bad_request", "Invalid request body")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cat, ok := s.data.categories[c.Param("id")]
	if !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "Category not found")
	}
	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.Description != nil {
		cat.Description = *req.Description
	}
	if req.Active != nil {
		cat.Active = *req.Active
	}
	cat.UpdatedAt = time.Now().UTC()
	return respondOK(c, http.StatusOK, echo.Map{"category": cat})
}

func (s *Server) handleDeleteCategory(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.categories[c.Param("id")]; !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "Category not found")
	}
	delete(s.data.categories, c.Param("id"))
	return respondOK(c, http.StatusOK, echo.Map{"deleted": true})
}

func (s *Server) handleListCoupons(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	coupons := make([]*stubCoupon, 0, len(s.data.coupons))
	for _, cp := range s.data.coupons {
		coupons = append(coupons, cp)
	}
	sort.Slice(coupons, func(i, j int) bool { return coupons[i].Code < coupons[j].Code })
	return respondOK(c, http.StatusOK, echo.Map{"coupons": coupons})
}

func (s *Server) handleGetCoupon(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp, ok := s.data.coupons[c.Param("id")]
	if !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "Coupon not found")
	}
	return respondOK(c, http.StatusOK, echo.Map{"coupon": cp})
}

func (s *Server) handleCreateCoupon(c echo.Context) error {
	var req struct {
		Code            string          `json:"code"`
		DiscountPercent decimal.Decimal `json:"discountPercent"`
		MinAmount       decimal.Decimal `json:"minAmount"`
		MaxUsage        int             `json:"maxUsage"`
		ValidUntil      time.Time       `json:"validUntil"`
	}
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Code) == "" {
		return respondErr(c, http.StatusBadRequest, "bad_request", "code is required")
	}
	if req.DiscountPercent.IsNegative() || req.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return respondErr(c, http.StatusBadRequest, "bad_request", "discountPercent must be between 0 and 100")
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.data.coupons {
		if existing.Code == code {
			return respondErr(c, http.StatusConflict, "conflict", "Coupon code already exists")
		}
	}
	now := time.Now().UTC()
	cp := &stubCoupon{
		ID:              uuid.NewString(),
		Code:            code,
		DiscountPercent: req.DiscountPercent,
		MinAmount:       req.MinAmount,
		MaxUsage:        req.MaxUsage,
		ValidUntil:      req.ValidUntil,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.data.coupons[cp.ID] = cp
	return respondOK(c, http.StatusCreated, echo.Map{"coupon": cp})
}

func (s *Server) handleUpdateCoupon(c echo.Context) error {
	var req struct {
		Active     *bool      `json:"active"`
		MaxUsage   *int       `json:"maxUsage"`
		ValidUntil *time.Time `json:"validUntil"`
	}
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "bad_request", "Invalid request body")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp, ok := s.data.coupons[c.Param("id")]
	if !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "Coupon not found")
	}
	if req.Active != nil {
		cp.Active = *req.Active
	}
	if req.MaxUsage != nil {
		cp.MaxUsage = *req.MaxUsage
	}
	if req.ValidUntil != nil {
		cp.ValidUntil = *req.ValidUntil
	}
	cp.UpdatedAt = time.Now().UTC()
	return respondOK(c, http.StatusOK, echo.Map{"coupon": cp})
}

func (s *Server) handleDeleteCoupon(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.coupons[c.Param("id")]; !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "Coupon not found")
	}
	delete(s.data.coupons, c.Param("id"))
	return respondOK(c, http.StatusOK, echo.Map{"deleted": true})
}

func (s *Server) handleListUsers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := strings.ToLower(c.QueryParam("q"))
	users := make([]*stubCustomer, 0, len(s.data.customers))
	for _, cu := range s.data.customers {
		if q != "" && !strings.Contains(strings.ToLower(cu.Name), q) && !strings.Contains(strings.ToLower(cu.Email), q) {
			continue
		}
		users = append(users, cu)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return respondOK(c, http.StatusOK, echo.Map{"users": users, "total": len(users)})
}

func (s *Server) handleGetUser(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cu, ok := s.data.customers[c.Param("id")]
	if !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "User not found")
	}
	return respondOK(c, http.StatusOK, echo.Map{"user": cu})
}

func (s *Server) handleUserStatus(c echo.Context) error {
	var req struct {
		Active *bool  `json:"active"`
		Reason string `json:"reason"`
	}
	if err := c.Bind(&req); err != nil || req.Active == nil {
		return respondErr(c, http.StatusBadRequest, "bad_request", "active is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cu, ok := s.data.customers[c.Param("id")]
	if !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "User not found")
	}
	cu.Active = *req.Active
	return respondOK(c, http.StatusOK, echo.Map{"user": cu})
}

func (s *Server) handleUserRoles(c echo.Context) error {
	var req struct {
		Roles []string `json:"roles"`
	}
	if err := c.Bind(&req); err != nil || len(req.Roles) == 0 {
		return respondErr(c, http.StatusBadRequest, "bad_request", "roles must be a non-empty list")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cu, ok := s.data.customers[c.Param("id")]
	if !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "User not found")
	}
	cu.Roles = req.Roles
	return respondOK(c, http.StatusOK, echo.Map{"user": cu})
}

func (s *Server) handleDeleteUser(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.customers[c.Param("id")]; !ok {
		return respondErr(c, http.StatusNotFound, "not_found", "User not found")
	}
	delete(s.data.customers, c.Param("id"))
	return respondOK(c, http.StatusOK, echo.Map{"deleted": true})
}
