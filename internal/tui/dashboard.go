// ABOUTME: Dashboard screen rendering store aggregates
// ABOUTME: Totals, recent orders and low-stock alerts in lipgloss panels

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manish201258/Hichhki-admin/internal/client"
	"github.com/manish201258/Hichhki-admin/internal/tui/styles"
)

type dashboardModel struct {
	stats *client.DashboardStats
}

func newDashboardModel(stats *client.DashboardStats) *dashboardModel {
	return &dashboardModel{stats: stats}
}

func (d *dashboardModel) View() string {
	s := d.stats

	totals := lipgloss.JoinHorizontal(lipgloss.Top,
		statBlock("Users", s.TotalUsers),
		statBlock("Products", s.TotalProducts),
		statBlock("Orders", s.TotalOrders),
		statBlock("Categories", s.TotalCategories),
	)

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Store Dashboard"))
	sb.WriteString("\n")
	sb.WriteString(totals)
	sb.WriteString("\n")

	if len(s.RecentOrders) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render("Recent orders"))
		sb.WriteString("\n")
		for _, o := range s.RecentOrders {
			status := styles.StatusOK
			switch o.Status {
			case "pending", "processing":
				status = styles.StatusWarning
			case "cancelled", "refunded", "returned":
				status = styles.StatusCritical
			}
			sb.WriteString(fmt.Sprintf("  %-10s %s %10s\n",
				o.OrderNo,
				status.Render(fmt.Sprintf("%-16s", o.Status)),
				o.Amounts.Total.StringFixed(2)))
		}
	}

	if len(s.LowStockProducts) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render("Low stock"))
		sb.WriteString("\n")
		for _, p := range s.LowStockProducts {
			sb.WriteString(fmt.Sprintf("  %-30s %s\n",
				p.Name,
				styles.StatusWarning.Render(fmt.Sprintf("%d left", p.Stock))))
		}
	}

	return sb.String()
}

func statBlock(label string, value int) string {
	content := styles.ValueStyle.Render(fmt.Sprintf("%d", value)) + "\n" + styles.Subtitle.Render(label)
	return styles.Panel.Render(content)
}
