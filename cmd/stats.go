// ABOUTME: Stats command showing the dashboard aggregates
// ABOUTME: Prints store totals, recent orders and low-stock products

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/manish201258/Hichhki-admin/internal/client"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard statistics",
	Long:  `Display the store's aggregate numbers: users, products, orders, recent activity and low-stock alerts.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runStats(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(ctx context.Context, w io.Writer) int {
	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	stats, err := api.GetDashboardStats(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(stats, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatStats(stats))
	return 0
}

func formatStats(stats *client.DashboardStats) string {
	out := fmt.Sprintf(`Users:      %d
Products:   %d
Orders:     %d
Categories: %d`,
		stats.TotalUsers,
		stats.TotalProducts,
		stats.TotalOrders,
		stats.TotalCategories)

	if len(stats.RecentOrders) > 0 {
		out += "\n\nRecent orders:"
		for _, o := range stats.RecentOrders {
			out += fmt.Sprintf("\n  %-10s %-12s %s", o.OrderNo, o.Status, o.Amounts.Total.StringFixed(2))
		}
	}
	if len(stats.LowStockProducts) > 0 {
		out += "\n\nLow stock:"
		for _, p := range stats.LowStockProducts {
			out += fmt.Sprintf("\n  %-30s %d left", p.Name, p.Stock)
		}
	}
	return out
}
