// ABOUTME: TUI command launching the full-screen admin console
// ABOUTME: Interactive dashboard and product browser over the same session layer

package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/manish201258/Hichhki-admin/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive console",
	Long:  `Launch the full-screen console. Restores the persisted session first and falls back to a login form when no valid admin session exists.`,
	Run: func(cmd *cobra.Command, args []string) {
		api, mgr := newSession()
		app := tui.New(api, mgr)
		if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
