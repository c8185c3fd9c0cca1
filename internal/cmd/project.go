package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline/internal/api"
	"github.com/ledgerline/ledgerline/internal/tui"
	"github.com/ledgerline/ledgerline/internal/ux"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long:  `List, inspect, create, and update the selected organization's projects.`,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the selected organization's projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, client, err := openWorkspace()
		if err != nil {
			return err
		}
		org, err := selectedOrg(ws)
		if err != nil {
			return err
		}
		projects, err := client.ListProjects(org.ID)
		if err != nil {
			return err
		}
		return output(ux.ProjectList{Projects: projects})
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show <project-id>",
	Short: "Show one project with its transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := openWorkspace()
		if err != nil {
			return err
		}
		project, err := client.GetProject(args[0])
		if err != nil {
			return err
		}
		transactions, err := client.ListTransactions(args[0])
		if err != nil {
			return err
		}
		return output(ux.ProjectDetail{Project: *project, Transactions: transactions})
	},
}

var projectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project in the selected organization",
	Long: `Create a project. Requires the Admin role.

Examples:
  ledgerline project create --name "Website refresh" --budget 12000
  ledgerline project create --name "Launch" --budget 5000 --approval --lead member@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		budget, _ := cmd.Flags().GetFloat64("budget")
		approval, _ := cmd.Flags().GetBool("approval")
		lead, _ := cmd.Flags().GetString("lead")

		if name == "" {
			return fmt.Errorf("--name is required")
		}
		if budget <= 0 {
			return fmt.Errorf("--budget must be positive")
		}

		ws, client, err := openWorkspace()
		if err != nil {
			return err
		}
		org, err := selectedOrg(ws)
		if err != nil {
			return err
		}

		leadID, err := resolveLead(client, org.ID, lead)
		if err != nil {
			return err
		}

		project, err := client.CreateProject(api.ProjectRequest{
			Name:             name,
			TotalBudget:      budget,
			ApprovalRequired: approval,
			ProjectLeadID:    leadID,
			OrgID:            org.ID,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created project %s (%s)\n", project.Name, project.ID)
		return nil
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <project-id>",
	Short: "Update a project's name, budget, lead, or approval requirement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, client, err := openWorkspace()
		if err != nil {
			return err
		}
		org, err := selectedOrg(ws)
		if err != nil {
			return err
		}

		current, err := client.GetProject(args[0])
		if err != nil {
			return err
		}

		req := api.ProjectRequest{
			Name:             current.Name,
			TotalBudget:      current.TotalBudget,
			ApprovalRequired: current.ApprovalRequired,
			OrgID:            org.ID,
		}
		if current.ProjectLead != nil {
			req.ProjectLeadID = current.ProjectLead.ID
		}

		if cmd.Flags().Changed("name") {
			req.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("budget") {
			req.TotalBudget, _ = cmd.Flags().GetFloat64("budget")
		}
		if cmd.Flags().Changed("approval") {
			req.ApprovalRequired, _ = cmd.Flags().GetBool("approval")
		}
		if cmd.Flags().Changed("lead") {
			lead, _ := cmd.Flags().GetString("lead")
			req.ProjectLeadID, err = resolveLead(client, org.ID, lead)
			if err != nil {
				return err
			}
		}

		project, err := client.UpdateProject(args[0], req)
		if err != nil {
			return err
		}
		fmt.Printf("Updated project %s\n", project.Name)
		return nil
	},
}

// resolveLead turns a --lead value (member email or user ID) into a user ID.
// Empty input on an interactive terminal offers a picker; empty otherwise
// means no lead.
func resolveLead(client *api.Client, orgID, lead string) (string, error) {
	members, err := client.ListMembers(orgID)
	if err != nil {
		return "", err
	}

	if lead == "" {
		if !tui.IsInteractive() || len(members) == 0 {
			return "", nil
		}
		options := make([]huh.Option[string], 0, len(members)+1)
		options = append(options, huh.NewOption("No lead", ""))
		for _, m := range members {
			options = append(options, huh.NewOption(
				fmt.Sprintf("%s <%s>", m.User.FullName, m.User.Email), m.User.ID))
		}
		return tui.PromptForSelect("Project lead", options)
	}

	for _, m := range members {
		if m.User.ID == lead || m.User.Email == lead {
			return m.User.ID, nil
		}
	}
	return "", fmt.Errorf("no member matches %q", lead)
}

func init() {
	projectCreateCmd.Flags().String("name", "", "project name")
	projectCreateCmd.Flags().Float64("budget", 0, "total budget")
	projectCreateCmd.Flags().Bool("approval", false, "require approval for transactions")
	projectCreateCmd.Flags().String("lead", "", "project lead (member email or user ID)")

	projectUpdateCmd.Flags().String("name", "", "project name")
	projectUpdateCmd.Flags().Float64("budget", 0, "total budget")
	projectUpdateCmd.Flags().Bool("approval", false, "require approval for transactions")
	projectUpdateCmd.Flags().String("lead", "", "project lead (member email or user ID)")

	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectUpdateCmd)

	rootCmd.AddCommand(projectCmd)
}
