package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline/internal/ux"
)

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Manage organizations",
	Long:  `List the organizations you belong to and pick the one commands operate on.`,
}

var orgListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your organizations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, _, err := openWorkspace()
		if err != nil {
			return err
		}
		selected := ""
		if org, ok := ws.Selected(); ok {
			selected = org.ID
		}
		return output(ux.OrgList{Orgs: ws.Organizations(), Selected: selected})
	},
}

// orgSwitchCmd changes the selected organization and persists the choice
var orgSwitchCmd = &cobra.Command{
	Use:   "switch <org-id>",
	Short: "Select the organization commands operate on",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, _, err := openWorkspace()
		if err != nil {
			return err
		}
		if err := ws.Select(args[0]); err != nil {
			return err
		}

		cfg := loadedConfig()
		cfg.Defaults.OrgID = args[0]
		if err := saveConfig(cfg); err != nil {
			return err
		}

		org, _ := ws.Selected()
		fmt.Printf("Switched to %s (%s)\n", org.Name, org.ID)
		return nil
	},
}

func init() {
	orgCmd.AddCommand(orgListCmd)
	orgCmd.AddCommand(orgSwitchCmd)

	rootCmd.AddCommand(orgCmd)
}
