// ABOUTME: Root command for the hichhki-admin CLI
// ABOUTME: Handles global flags and wires the client, token store and session manager

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/manish201258/Hichhki-admin/internal/client"
	"github.com/manish201258/Hichhki-admin/internal/config"
	"github.com/manish201258/Hichhki-admin/internal/session"
	"github.com/manish201258/Hichhki-admin/internal/tokenstore"
)

var (
	apiURL     string
	jsonOutput bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "hichhki-admin",
	Short: "Terminal console for the Hichhki store",
	Long: `hichhki-admin is a terminal console for Hichhki store administrators.

It talks to the admin REST API: authenticate once with 'login', then inspect
dashboard stats, products and orders from the command line or the full-screen
TUI.

Environment Variables:
  HICHHKI_ADMIN_API_URL     Admin API base URL (default: ` + client.DefaultBaseURL + `)
  HICHHKI_ADMIN_CONFIG_DIR  Credential storage directory (default: XDG config dir)`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Admin API base URL (overrides HICHHKI_ADMIN_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newSession builds the client/session pair from flags, env and defaults
// (in priority order).
func newSession() (*client.Client, *session.Manager) {
	cfg := config.Load()
	base := cfg.APIBaseURL
	if apiURL != "" {
		base = apiURL
	}
	store := tokenstore.New(cfg.ConfigDir)
	api := client.New(base, store)
	return api, session.New(api, store)
}

// requireAdmin settles the persisted session and enforces the admin gate.
// Returns a non-zero exit code after printing the reason.
func requireAdmin(ctx context.Context, w io.Writer, mgr *session.Manager) int {
	mgr.Boot(ctx)
	user, ok := mgr.CurrentUser()
	if !ok {
		fmt.Fprintln(w, "Not logged in. Run 'hichhki-admin login' first.")
		return 2
	}
	if !session.IsAdmin(user) {
		fmt.Fprintf(w, "Account %s is not an administrator.\n", user.Email)
		return 2
	}
	return 0
}
