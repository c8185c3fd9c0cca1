package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline/internal/ux"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Organization-wide reports",
}

var reportStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show income, expenses, balance, and pending approvals",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, client, err := openWorkspace()
		if err != nil {
			return err
		}
		org, err := selectedOrg(ws)
		if err != nil {
			return err
		}
		stats, err := client.Stats(org.ID)
		if err != nil {
			return err
		}
		return output(ux.StatsView{OrgName: org.Name, Stats: *stats})
	},
}

func init() {
	reportCmd.AddCommand(reportStatsCmd)
	rootCmd.AddCommand(reportCmd)
}
