// ABOUTME: Product commands: list, get, stock, discount, delete
// ABOUTME: Thin wrappers over the admin API client for scripting and quick edits

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/manish201258/Hichhki-admin/internal/client"
)

var (
	productQuery    string
	productCategory string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage store products",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runProductsList(ctx, os.Stdout)
		})
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runProductsGet(ctx, os.Stdout, args[0])
		})
	},
}

var productsStockCmd = &cobra.Command{
	Use:   "stock <id> <count>",
	Short: "Set a product's stock count",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runProductsStock(ctx, os.Stdout, args[0], args[1])
		})
	},
}

var productsDiscountCmd = &cobra.Command{
	Use:   "discount <id> <percent>",
	Short: "Set a product's discount percentage",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runProductsDiscount(ctx, os.Stdout, args[0], args[1])
		})
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runProductsDelete(ctx, os.Stdout, args[0])
		})
	},
}

func init() {
	productsListCmd.Flags().StringVar(&productQuery, "query", "", "Search term")
	productsListCmd.Flags().StringVar(&productCategory, "category", "", "Filter by category")
	productsCmd.AddCommand(productsListCmd, productsGetCmd, productsStockCmd, productsDiscountCmd, productsDeleteCmd)
	rootCmd.AddCommand(productsCmd)
}

// runWithExit wires the signal context and exit-code convention shared by
// all leaf commands.
func runWithExit(run func(ctx context.Context) int) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if code := run(ctx); code != 0 {
		os.Exit(code)
	}
}

func runProductsList(ctx context.Context, w io.Writer) int {
	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	params := url.Values{}
	if productQuery != "" {
		params.Set("q", productQuery)
	}
	if productCategory != "" {
		params.Set("category", productCategory)
	}

	list, err := api.ListProducts(ctx, params)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(list, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "%-26s %-30s %10s %6s %8s\n", "ID", "NAME", "PRICE", "STOCK", "ACTIVE")
	for _, p := range list.Products {
		fmt.Fprintf(w, "%-26s %-30s %10s %6d %8t\n", p.ID, p.Name, p.Price.StringFixed(2), p.Stock, p.Active)
	}
	fmt.Fprintf(w, "\n%d product(s)\n", list.Total)
	return 0
}

func runProductsGet(ctx context.Context, w io.Writer, id string) int {
	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	product, err := api.GetProduct(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	printProduct(w, product)
	return 0
}

func runProductsStock(ctx context.Context, w io.Writer, id, count string) int {
	stock, err := strconv.Atoi(count)
	if err != nil || stock < 0 {
		fmt.Fprintf(w, "Error: stock must be a non-negative integer, got %q\n", count)
		return 2
	}

	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	product, err := api.UpdateProductStock(ctx, id, stock)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintf(w, "Stock for %s set to %d\n", product.Name, product.Stock)
	return 0
}

func runProductsDiscount(ctx context.Context, w io.Writer, id, percentArg string) int {
	percent, err := decimal.NewFromString(percentArg)
	if err != nil || percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		fmt.Fprintf(w, "Error: discount must be between 0 and 100, got %q\n", percentArg)
		return 2
	}

	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	product, err := api.UpdateProductDiscount(ctx, id, percent)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintf(w, "Discount for %s set to %s%%\n", product.Name, product.DiscountPercent.String())
	return 0
}

func runProductsDelete(ctx context.Context, w io.Writer, id string) int {
	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	if err := api.DeleteProduct(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintf(w, "Deleted product %s\n", id)
	return 0
}

func printProduct(w io.Writer, p *client.Product) {
	fmt.Fprintf(w, "ID:       %s\n", p.ID)
	fmt.Fprintf(w, "Name:     %s\n", p.Name)
	fmt.Fprintf(w, "SKU:      %s\n", p.SKU)
	fmt.Fprintf(w, "Price:    %s\n", p.Price.StringFixed(2))
	if !p.DiscountPercent.IsZero() {
		fmt.Fprintf(w, "Discount: %s%%\n", p.DiscountPercent.String())
	}
	fmt.Fprintf(w, "Stock:    %d\n", p.Stock)
	fmt.Fprintf(w, "Category: %s\n", p.Category)
	fmt.Fprintf(w, "Active:   %t\n", p.Active)
}
