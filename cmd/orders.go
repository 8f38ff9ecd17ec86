// ABOUTME: Order commands: list, get, status
// ABOUTME: Order inspection and status transitions from the command line

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/manish201258/Hichhki-admin/internal/client"
)

var (
	orderStatusFilter string
	orderTracking     string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage store orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runOrdersList(ctx, os.Stdout)
		})
	},
}

var ordersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runOrdersGet(ctx, os.Stdout, args[0])
		})
	},
}

var ordersStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Transition an order's status",
	Long:  `Set an order's status (pending, confirmed, processing, shipped, out_for_delivery, delivered, cancelled, returned, refunded). Use --tracking when marking shipped.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runOrdersStatus(ctx, os.Stdout, args[0], args[1])
		})
	},
}

func init() {
	ordersListCmd.Flags().StringVar(&orderStatusFilter, "status", "", "Filter by status")
	ordersStatusCmd.Flags().StringVar(&orderTracking, "tracking", "", "Tracking number to attach")
	ordersCmd.AddCommand(ordersListCmd, ordersGetCmd, ordersStatusCmd)
	rootCmd.AddCommand(ordersCmd)
}

func runOrdersList(ctx context.Context, w io.Writer) int {
	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	params := url.Values{}
	if orderStatusFilter != "" {
		params.Set("status", orderStatusFilter)
	}

	list, err := api.ListOrders(ctx, params)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(list, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "%-12s %-18s %10s %s\n", "ORDER", "STATUS", "TOTAL", "PLACED")
	for _, o := range list.Orders {
		fmt.Fprintf(w, "%-12s %-18s %10s %s\n", o.OrderNo, o.Status, o.Amounts.Total.StringFixed(2), o.CreatedAt.Format("2006-01-02"))
	}
	fmt.Fprintf(w, "\n%d order(s)\n", list.Total)
	return 0
}

func runOrdersGet(ctx context.Context, w io.Writer, id string) int {
	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	order, err := api.GetOrder(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	printOrder(w, order)
	return 0
}

func runOrdersStatus(ctx context.Context, w io.Writer, id, status string) int {
	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	order, err := api.UpdateOrderStatus(ctx, id, status, orderTracking)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintf(w, "Order %s is now %s\n", order.OrderNo, order.Status)
	return 0
}

func printOrder(w io.Writer, o *client.Order) {
	fmt.Fprintf(w, "Order:   %s (%s)\n", o.OrderNo, o.ID)
	fmt.Fprintf(w, "Status:  %s\n", o.Status)
	fmt.Fprintf(w, "Placed:  %s\n", o.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(w, "Items:")
	for _, item := range o.Items {
		fmt.Fprintf(w, "  %dx %-30s %s\n", item.Qty, item.Title, item.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(w, "Total:   %s\n", o.Amounts.Total.StringFixed(2))
	if o.Tracking != nil && o.Tracking.Number != "" {
		fmt.Fprintf(w, "Tracking: %s (%s)\n", o.Tracking.Number, o.Tracking.Provider)
	}
}
