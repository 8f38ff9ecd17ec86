// ABOUTME: Customer account commands: list, status, roles
// ABOUTME: Account moderation over the admin API client

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	userQuery        string
	userStatusReason string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage customer accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customer accounts",
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runUsersList(ctx, os.Stdout)
		})
	},
}

var usersStatusCmd = &cobra.Command{
	Use:   "status <id> <active|suspended>",
	Short: "Activate or suspend an account",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runUsersStatus(ctx, os.Stdout, args[0], args[1])
		})
	},
}

var usersRolesCmd = &cobra.Command{
	Use:   "roles <id> <role>[,<role>...]",
	Short: "Replace an account's role list",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runUsersRoles(ctx, os.Stdout, args[0], args[1])
		})
	},
}

func init() {
	usersListCmd.Flags().StringVar(&userQuery, "query", "", "Search by name or email")
	usersStatusCmd.Flags().StringVar(&userStatusReason, "reason", "", "Audit reason for the change")
	usersCmd.AddCommand(usersListCmd, usersStatusCmd, usersRolesCmd)
	rootCmd.AddCommand(usersCmd)
}

func runUsersList(ctx context.Context, w io.Writer) int {
	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	params := url.Values{}
	if userQuery != "" {
		params.Set("q", userQuery)
	}

	list, err := api.ListUsers(ctx, params)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(list, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "%-38s %-20s %-28s %8s\n", "ID", "NAME", "EMAIL", "ACTIVE")
	for _, u := range list.Users {
		fmt.Fprintf(w, "%-38s %-20s %-28s %8t\n", u.ID, u.Name, u.Email, u.Active)
	}
	fmt.Fprintf(w, "\n%d user(s)\n", list.Total)
	return 0
}

func runUsersStatus(ctx context.Context, w io.Writer, id, state string) int {
	var active bool
	switch state {
	case "active":
		active = true
	case "suspended":
		active = false
	default:
		fmt.Fprintf(w, "Error: status must be \"active\" or \"suspended\", got %q\n", state)
		return 2
	}

	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	user, err := api.UpdateUserStatus(ctx, id, active, userStatusReason)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if user.Active {
		fmt.Fprintf(w, "Activated account %s (%s)\n", user.Name, user.ID)
	} else {
		fmt.Fprintf(w, "Suspended account %s (%s)\n", user.Name, user.ID)
	}
	return 0
}

func runUsersRoles(ctx context.Context, w io.Writer, id, rolesArg string) int {
	var roles []string
	for _, r := range strings.Split(rolesArg, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	if len(roles) == 0 {
		fmt.Fprintf(w, "Error: at least one role is required\n")
		return 2
	}

	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	user, err := api.UpdateUserRoles(ctx, id, roles)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintf(w, "Roles for %s set to %s\n", user.Name, strings.Join(user.Roles, ", "))
	return 0
}
