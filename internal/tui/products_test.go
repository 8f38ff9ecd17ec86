// ABOUTME: Tests for the products table screen
// ABOUTME: Verifies row content and cursor movement through the bubbles table

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/manish201258/Hichhki-admin/internal/client"
)

func sampleProductList() *client.ProductList {
	price := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}
	return &client.ProductList{
		Total: 2,
		Products: []client.Product{
			{Name: "Banarasi Silk Kurta", SKU: "KUR-001", Price: price("2499.00"), Stock: 12, Active: true},
			{Name: "Ajrakh Saree", SKU: "SAR-021", Price: price("3499.00"), Stock: 2, Active: false},
		},
	}
}

func TestProductsModel_RendersRows(t *testing.T) {
	m := newProductsModel(sampleProductList(), 120, 40)

	view := m.View()
	for _, want := range []string{"Products", "(2 total)", "Banarasi Silk Kurta", "KUR-001", "2499.00", "Ajrakh Saree"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestProductsModel_CursorMoves(t *testing.T) {
	m := newProductsModel(sampleProductList(), 120, 40)

	if got := m.table.Cursor(); got != 0 {
		t.Fatalf("expected cursor at 0, got %d", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.table.Cursor(); got != 1 {
		t.Errorf("expected cursor at 1 after down, got %d", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.table.Cursor(); got != 0 {
		t.Errorf("expected cursor back at 0, got %d", got)
	}
}

func TestProductsModel_MinimumHeight(t *testing.T) {
	m := newProductsModel(sampleProductList(), 20, 5)
	// A tiny terminal still renders the header and at least one row.
	view := m.View()
	if !strings.Contains(view, "Products") {
		t.Error("expected header even at minimum size")
	}
	m.SetSize(20, 3)
	if m.table.Height() < 4 {
		t.Errorf("expected clamped table height, got %d", m.table.Height())
	}
}
