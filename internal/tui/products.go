// ABOUTME: Products screen backed by a bubbles table
// ABOUTME: Scrollable product list with price, stock and status columns

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manish201258/Hichhki-admin/internal/client"
	"github.com/manish201258/Hichhki-admin/internal/tui/styles"
)

type productsModel struct {
	table table.Model
	total int
}

func newProductsModel(list *client.ProductList, width, height int) *productsModel {
	columns := []table.Column{
		{Title: "Name", Width: 32},
		{Title: "SKU", Width: 10},
		{Title: "Price", Width: 10},
		{Title: "Stock", Width: 6},
		{Title: "Active", Width: 6},
	}

	rows := make([]table.Row, 0, len(list.Products))
	for _, p := range list.Products {
		active := "yes"
		if !p.Active {
			active = "no"
		}
		rows = append(rows, table.Row{
			p.Name,
			p.SKU,
			p.Price.StringFixed(2),
			fmt.Sprintf("%d", p.Stock),
			active,
		})
	}

	tableHeight := height - 8
	if tableHeight < 4 {
		tableHeight = 4
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(styles.Text).
		Background(styles.Primary).
		Bold(false)
	t.SetStyles(s)

	return &productsModel{table: t, total: list.Total}
}

func (p *productsModel) SetSize(width, height int) {
	tableHeight := height - 8
	if tableHeight < 4 {
		tableHeight = 4
	}
	p.table.SetHeight(tableHeight)
}

func (p *productsModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd
}

func (p *productsModel) View() string {
	header := styles.Title.Render("Products") + " " +
		styles.Subtitle.Render(fmt.Sprintf("(%d total)", p.total))
	return header + "\n" + p.table.View()
}
