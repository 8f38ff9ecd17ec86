// ABOUTME: Coupon commands: list
// ABOUTME: Read-only view of discount codes over the admin API client

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var couponsCmd = &cobra.Command{
	Use:   "coupons",
	Short: "Manage discount coupons",
}

var couponsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List coupons",
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runCouponsList(ctx, os.Stdout)
		})
	},
}

func init() {
	couponsCmd.AddCommand(couponsListCmd)
	rootCmd.AddCommand(couponsCmd)
}

func runCouponsList(ctx context.Context, w io.Writer) int {
	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	coupons, err := api.ListCoupons(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(coupons, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "%-14s %10s %12s %8s %8s %8s\n", "CODE", "DISCOUNT", "MIN AMOUNT", "USED", "MAX", "ACTIVE")
	for _, cp := range coupons {
		fmt.Fprintf(w, "%-14s %9s%% %12s %8d %8d %8t\n",
			cp.Code, cp.DiscountPercent.String(), cp.MinAmount.StringFixed(2), cp.UsedCount, cp.MaxUsage, cp.Active)
	}
	fmt.Fprintf(w, "\n%d coupon(s)\n", len(coupons))
	return 0
}
