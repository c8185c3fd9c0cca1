package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline/internal/tui"
)

// uiCmd launches the interactive dashboard over the same workspace and
// pipeline client the one-shot commands use.
var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive dashboard",
	Long: `Open the full-screen dashboard with the organization's stats,
projects, team, reports, and settings.

Keys:
  1-5        switch screens
  o          cycle organizations
  enter/esc  open and leave a project
  a/x/s      approve, reject, settle the selected transaction
  r          refresh
  q          quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tui.IsInteractive() {
			return fmt.Errorf("the dashboard needs an interactive terminal")
		}

		ws, client, err := openWorkspace()
		if err != nil {
			return err
		}

		model := tui.New(ws, client)
		program := tea.NewProgram(model, tea.WithAltScreen())
		final, err := program.Run()
		if err != nil {
			return err
		}

		if m, ok := final.(tui.Model); ok && m.SessionExpired() {
			return fmt.Errorf("session expired; run 'ledgerline auth login'")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
