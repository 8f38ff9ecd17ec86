// ABOUTME: Wire types for the Hichhki admin API
// ABOUTME: Mirrors the server's JSON shapes; money fields use decimal to avoid float drift

package client

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdminUser is the server-asserted administrator identity. The legacy
// IsAdmin flag and the roles list coexist on the wire; authorization
// decisions go through session.IsAdmin rather than reading these directly.
type AdminUser struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	IsAdmin   *bool      `json:"isAdmin,omitempty"`
	Roles     []string   `json:"roles,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// AuthPayload is the success payload of login and refresh.
type AuthPayload struct {
	User         AdminUser `json:"user"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
}

type Product struct {
	ID              string          `json:"_id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	Images          []string        `json:"images"`
	LookImage       string          `json:"lookImage"`
	LifestyleImage  string          `json:"lifestyleImage"`
	Stock           int             `json:"stock"`
	Active          bool            `json:"active"`
	Gender          string          `json:"gender"`
	Sizes           []string        `json:"sizes"`
	Colors          []string        `json:"colors"`
	SleeveLength    string          `json:"sleeveLengthType"`
	Neckline        string          `json:"neckline"`
	Brand           string          `json:"brand"`
	Material        string          `json:"material"`
	Tags            []string        `json:"tags"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	SKU             string          `json:"sku"`
	Featured        bool            `json:"featured"`
	IsNewArrival    bool            `json:"isNewArrival"`
	IsBestSeller    bool            `json:"isBestSeller"`
	IsTrending      bool            `json:"isTrending"`
	Rating          float64         `json:"rating"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	BannerImage  string    `json:"bannerImage"`
	HeroTitle    string    `json:"heroTitle"`
	HeroSubtitle string    `json:"heroSubtitle"`
	Slug         string    `json:"slug"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type OrderItem struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Size      string          `json:"size"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Qty       int             `json:"qty"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type OrderAmounts struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type OrderAddress struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type OrderPayment struct {
	Provider string `json:"provider"`
	Status   string `json:"status"`
	ID       string `json:"id"`
}

type OrderTracking struct {
	Number            string `json:"number"`
	Provider          string `json:"provider"`
	URL               string `json:"url"`
	EstimatedDelivery string `json:"estimatedDelivery"`
	ActualDelivery    string `json:"actualDelivery"`
}

type OrderEvent struct {
	At          time.Time `json:"at"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	PerformedBy string    `json:"performedBy,omitempty"`
}

type AdminNote struct {
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

type Cancellation struct {
	Reason       string          `json:"reason"`
	RequestedAt  time.Time       `json:"requestedAt"`
	ProcessedAt  time.Time       `json:"processedAt"`
	ProcessedBy  string          `json:"processedBy"`
	RefundAmount decimal.Decimal `json:"refundAmount"`
	RefundMethod string          `json:"refundMethod"`
}

type Order struct {
	ID            string         `json:"id"`
	OrderNo       string         `json:"orderNo"`
	UserID        string         `json:"userId"`
	Status        string         `json:"status"`
	Items         []OrderItem    `json:"items"`
	Amounts       OrderAmounts   `json:"amounts"`
	Address       OrderAddress   `json:"address"`
	Payment       OrderPayment   `json:"payment"`
	Tracking      *OrderTracking `json:"tracking,omitempty"`
	Events        []OrderEvent   `json:"events,omitempty"`
	AdminNotes    []AdminNote    `json:"adminNotes,omitempty"`
	CustomerNotes string         `json:"customerNotes,omitempty"`
	Cancellation  *Cancellation  `json:"cancellation,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Active    bool       `json:"active"`
	Roles     []string   `json:"roles"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type Banner struct {
	ID        string    `json:"id"`
	Image     string    `json:"image"`
	VideoURL  string    `json:"videoUrl,omitempty"`
	Slogan    string    `json:"slogan"`
	Title     string    `json:"title"`
	CtaHref   string    `json:"ctaHref"`
	CtaLabel  string    `json:"ctaLabel"`
	Position  string    `json:"position"`
	Active    bool      `json:"active"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type InstagramPost struct {
	ID        string    `json:"id"`
	Image     string    `json:"image"`
	Href      string    `json:"href,omitempty"`
	Caption   string    `json:"caption,omitempty"`
	Order     int       `json:"order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Coupon struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	MinAmount       decimal.Decimal `json:"minAmount"`
	MaxDiscount     decimal.Decimal `json:"maxDiscount"`
	MaxUsage        int             `json:"maxUsage"`
	UsedCount       int             `json:"usedCount"`
	ValidFrom       time.Time       `json:"validFrom"`
	ValidUntil      time.Time       `json:"validUntil"`
	Active          bool            `json:"active"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RevenueByCategory struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

type DashboardStats struct {
	TotalUsers        int                 `json:"totalUsers"`
	TotalProducts     int                 `json:"totalProducts"`
	TotalOrders       int                 `json:"totalOrders"`
	TotalCategories   int                 `json:"totalCategories"`
	RecentOrders      []Order             `json:"recentOrders"`
	LowStockProducts  []Product           `json:"lowStockProducts"`
	RevenueByCategory []RevenueByCategory `json:"revenueByCategory"`
	MonthlyRevenue    []MonthlyRevenue    `json:"monthlyRevenue"`
}

type UploadedImage struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
}
