// ABOUTME: Login and logout commands
// ABOUTME: Login prompts with a huh form when flags are omitted; failures show the server's message inline

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/manish201258/Hichhki-admin/internal/client"
	"github.com/manish201258/Hichhki-admin/internal/session"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the admin API",
	Long:  `Authenticate with email and password. On success the session is persisted and reused by every other command until logout.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout, loginEmail, loginPassword)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	Long:  `Inform the server (best effort) and clear the persisted credentials. Always succeeds locally.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		runLogout(ctx, os.Stdout)
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Administrator email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Administrator password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

// runLogin executes the login flow and returns an exit code.
func runLogin(ctx context.Context, w io.Writer, email, password string) int {
	if email == "" || password == "" {
		var err error
		email, password, err = promptCredentials(email, password)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	_, mgr := newSession()
	if err := mgr.Login(ctx, email, password); err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(w, "Login failed: %s\n", apiErr.Message)
		} else {
			fmt.Fprintf(w, "Error: %v\n", err)
		}
		return 2
	}

	user, _ := mgr.CurrentUser()
	fmt.Fprintf(w, "Logged in as %s\n", session.DisplayName(user))
	if !session.IsAdmin(user) {
		fmt.Fprintln(w, "Warning: this account has no admin privileges; most commands will be refused.")
	}
	return 0
}

// promptCredentials collects missing fields interactively.
func promptCredentials(email, password string) (string, string, error) {
	fields := make([]huh.Field, 0, 2)
	if email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Placeholder("admin@hichhki.com").
			Value(&email))
	}
	if password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password))
	}
	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return "", "", err
	}
	return email, password, nil
}

func runLogout(ctx context.Context, w io.Writer) {
	_, mgr := newSession()
	mgr.Logout(ctx)
	fmt.Fprintln(w, "Logged out.")
}
