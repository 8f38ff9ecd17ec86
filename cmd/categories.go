// ABOUTME: Category commands: list, create, delete
// ABOUTME: Storefront taxonomy management over the admin API client

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	categoryDescription string
	categorySlug        string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage product categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runCategoriesList(ctx, os.Stdout)
		})
	},
}

var categoriesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runCategoriesCreate(ctx, os.Stdout, args[0])
		})
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runCategoriesDelete(ctx, os.Stdout, args[0])
		})
	},
}

func init() {
	categoriesCreateCmd.Flags().StringVar(&categoryDescription, "description", "", "Category description")
	categoriesCreateCmd.Flags().StringVar(&categorySlug, "slug", "", "URL slug (defaults to a slugified name)")
	categoriesCmd.AddCommand(categoriesListCmd, categoriesCreateCmd, categoriesDeleteCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategoriesList(ctx context.Context, w io.Writer) int {
	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	categories, err := api.ListCategories(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(categories, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "%-38s %-20s %-20s %8s\n", "ID", "NAME", "SLUG", "ACTIVE")
	for _, cat := range categories {
		fmt.Fprintf(w, "%-38s %-20s %-20s %8t\n", cat.ID, cat.Name, cat.Slug, cat.Active)
	}
	fmt.Fprintf(w, "\n%d categor(ies)\n", len(categories))
	return 0
}

func runCategoriesCreate(ctx context.Context, w io.Writer, name string) int {
	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	fields := map[string]any{"name": name}
	if categoryDescription != "" {
		fields["description"] = categoryDescription
	}
	if categorySlug != "" {
		fields["slug"] = categorySlug
	}

	cat, err := api.CreateCategory(ctx, fields)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintf(w, "Created category %s (%s)\n", cat.Name, cat.ID)
	return 0
}

func runCategoriesDelete(ctx context.Context, w io.Writer, id string) int {
	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	if err := api.DeleteCategory(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintf(w, "Deleted category %s\n", id)
	return 0
}
