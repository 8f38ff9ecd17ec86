// ABOUTME: Whoami command showing the verified identity
// ABOUTME: Runs the full restore-verify-refresh chain before printing anything

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/manish201258/Hichhki-admin/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session identity",
	Long:  `Restore the persisted session, verify it with the server and print the confirmed identity.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWhoami(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(ctx context.Context, w io.Writer) int {
	_, mgr := newSession()
	mgr.Boot(ctx)

	user, ok := mgr.CurrentUser()
	if !ok {
		fmt.Fprintln(w, "Not logged in.")
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(user, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	admin := "no"
	if session.IsAdmin(user) {
		admin = "yes"
	}
	fmt.Fprintf(w, "Name:   %s\n", session.DisplayName(user))
	fmt.Fprintf(w, "Email:  %s\n", user.Email)
	fmt.Fprintf(w, "Admin:  %s\n", admin)
	if len(user.Roles) > 0 {
		fmt.Fprintf(w, "Roles:  %s\n", strings.Join(user.Roles, ", "))
	}
	if user.LastLogin != nil {
		fmt.Fprintf(w, "Last login: %s\n", user.LastLogin.Format("2006-01-02 15:04:05 MST"))
	}
	return 0
}
