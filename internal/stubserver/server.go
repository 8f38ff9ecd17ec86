// ABOUTME: Local stub implementation of the Hichhki admin API
// ABOUTME: Serves the auth lifecycle and enough domain endpoints for development and tests

package stubserver

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// Options configures the stub. Zero values fall back to development defaults.
type Options struct {
	JWTSecret     string
	AdminEmail    string
	AdminPassword string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	RefreshStore  RefreshStore // nil selects the in-memory store
}

// Server is an in-memory admin API with the same envelope and bearer-auth
// conventions as the production backend. All state is ephemeral except the
// refresh tokens, which live in the pluggable RefreshStore.
type Server struct {
	opts    Options
	echo    *echo.Echo
	refresh RefreshStore

	mu       sync.Mutex
	accounts map[string]*account // keyed by email
	data     *catalog
}

type account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash []byte
	Roles        []string
	LastLogin    *time.Time
}

// New builds a stub server with a seeded admin account.
func New(opts Options) (*Server, error) {
	if opts.JWTSecret == "" {
		opts.JWTSecret = "dev-only-secret"
	}
	if opts.AdminEmail == "" {
		opts.AdminEmail = "admin@hichhki.test"
	}
	if opts.AdminPassword == "" {
		opts.AdminPassword = "secret"
	}
	if opts.AccessTTL == 0 {
		opts.AccessTTL = 15 * time.Minute
	}
	if opts.RefreshTTL == 0 {
		opts.RefreshTTL = 7 * 24 * time.Hour
	}
	if opts.RefreshStore == nil {
		opts.RefreshStore = NewMemoryRefreshStore()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s := &Server{
		opts:    opts,
		refresh: opts.RefreshStore,
		accounts: map[string]*account{
			opts.AdminEmail: {
				ID:           "1",
				Email:        opts.AdminEmail,
				Name:         "Store Admin",
				PasswordHash: hash,
				Roles:        []string{"admin"},
			},
		},
		data: seedCatalog(),
	}
	s.echo = s.routes()
	return s, nil
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	api := e.Group("/api/v1/admin")
	api.POST("/auth/login", s.handleLogin)
	api.POST("/auth/refresh", s.handleRefresh)
	api.POST("/auth/logout", s.handleLogout)

	protected := api.Group("", s.requireBearer)
	protected.GET("/auth/me", s.handleMe)
	protected.GET("/dashboard", s.handleDashboard)
	protected.GET("/products", s.handleListProducts)
	protected.GET("/products/:id", s.handleGetProduct)
	protected.PATCH("/products/:id/stock", s.handleProductStock)
	protected.PATCH("/products/:id/discount", s.handleProductDiscount)
	protected.DELETE("/products/:id", s.handleDeleteProduct)
	protected.GET("/orders", s.handleListOrders)
	protected.GET("/orders/:id", s.handleGetOrder)
	protected.PATCH("/orders/:id/status", s.handleOrderStatus)
	protected.PATCH("/orders/:id/refund", s.handleOrderRefund)
	protected.GET("/categories", s.handleListCategories)
	protected.GET("/categories/:id", s.handleGetCategory)
	protected.POST("/categories", s.handleCreateCategory)
	protected.PATCH("/categories/:id", s.handleUpdateCategory)
	protected.DELETE("/categories/:id", s.handleDeleteCategory)
	protected.GET("/coupons", s.handleListCoupons)
	protected.GET("/coupons/:id", s.handleGetCoupon)
	protected.POST("/coupons", s.handleCreateCoupon)
	protected.PATCH("/coupons/:id", s.handleUpdateCoupon)
	protected.DELETE("/coupons/:id", s.handleDeleteCoupon)
	protected.GET("/users", s.handleListUsers)
	protected.GET("/users/:id", s.handleGetUser)
	protected.PATCH("/users/:id/status", s.handleUserStatus)
	protected.PATCH("/users/:id/role", s.handleUserRoles)
	protected.DELETE("/users/:id", s.handleDeleteUser)
	protected.POST("/upload", s.handleUpload)

	return e
}

// Handler returns the underlying HTTP handler, mountable in httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start blocks serving on addr.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// respondOK wraps data in a success envelope.
func respondOK(c echo.Context, status int, data any) error {
	return c.JSON(status, echo.Map{"ok": true, "data": data})
}

// respondErr wraps a machine code and human message in a failure envelope.
func respondErr(c echo.Context, status int, code, message string) error {
	return c.JSON(status, echo.Map{
		"ok":    false,
		"error": echo.Map{"code": code, "message": message},
	})
}

// requireBearer validates the access token and stashes the account on the
// context. Tokens are HS256 JWTs with the account ID as subject.
func (s *Server) requireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return respondErr(c, http.StatusUnauthorized, "unauthorized", "Missing bearer token")
		}
		raw := strings.TrimPrefix(header, "Bearer ")
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, echo.ErrUnauthorized
			}
			return []byte(s.opts.JWTSecret), nil
		})
		if err != nil || !tok.Valid {
			return respondErr(c, http.StatusUnauthorized, "token_invalid", "Invalid or expired token")
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return respondErr(c, http.StatusUnauthorized, "token_invalid", "Invalid or expired token")
		}
		sub, _ := claims["sub"].(string)
		acct := s.accountByID(sub)
		if acct == nil {
			return respondErr(c, http.StatusUnauthorized, "unauthorized", "Unknown account")
		}
		c.Set("account", acct)
		return next(c)
	}
}

func (s *Server) accountByID(id string) *account {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}
