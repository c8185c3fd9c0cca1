package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline/internal/api"
	"github.com/ledgerline/ledgerline/internal/tui"
	"github.com/ledgerline/ledgerline/internal/ux"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage the organization's members",
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the selected organization's members",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, client, err := openWorkspace()
		if err != nil {
			return err
		}
		org, err := selectedOrg(ws)
		if err != nil {
			return err
		}
		members, err := client.ListMembers(org.ID)
		if err != nil {
			return err
		}
		return output(ux.MemberList{Members: members})
	},
}

var teamAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a member to the selected organization",
	Long: `Add a member. Requires the Admin role.

If the email already belongs to a platform user they are enrolled directly;
otherwise --name and --password create the account first.

Examples:
  ledgerline team add --email new@example.com --role Employee --name "New Person" --password temp123
  ledgerline team add --email existing@example.com --role Lead`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")
		password, _ := cmd.Flags().GetString("password")
		roleFlag, _ := cmd.Flags().GetString("role")

		if email == "" {
			return fmt.Errorf("--email is required")
		}
		role := api.Role(roleFlag)
		switch role {
		case api.RoleAdmin, api.RoleLead, api.RoleEmployee:
		default:
			return fmt.Errorf("--role must be Admin, Lead, or Employee")
		}

		ws, client, err := openWorkspace()
		if err != nil {
			return err
		}
		org, err := selectedOrg(ws)
		if err != nil {
			return err
		}

		member, err := client.AddMember(org.ID, api.AddMemberRequest{
			Email:    email,
			FullName: name,
			Password: password,
			Role:     role,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added %s as %s\n", member.User.Email, member.Role)
		return nil
	},
}

// teamSetPasswordCmd lets an admin reset a member's password directly
var teamSetPasswordCmd = &cobra.Command{
	Use:   "set-password <user-id>",
	Short: "Set a member's password (Admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")

		if password == "" && tui.IsInteractive() {
			var err error
			password, err = tui.PromptForString(tui.Prompt{
				Message:  "New password",
				Required: true,
				Secret:   true,
			})
			if err != nil {
				return err
			}
		}
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		ws, client, err := openWorkspace()
		if err != nil {
			return err
		}
		org, err := selectedOrg(ws)
		if err != nil {
			return err
		}

		if err := client.AdminChangePassword(args[0], org.ID, password); err != nil {
			return err
		}
		fmt.Println("Password updated.")
		return nil
	},
}

func init() {
	teamAddCmd.Flags().String("email", "", "member email")
	teamAddCmd.Flags().String("name", "", "full name (new accounts only)")
	teamAddCmd.Flags().String("password", "", "initial password (new accounts only)")
	teamAddCmd.Flags().String("role", "Employee", "role (Admin, Lead, Employee)")

	teamSetPasswordCmd.Flags().String("password", "", "new password")

	teamCmd.AddCommand(teamListCmd)
	teamCmd.AddCommand(teamAddCmd)
	teamCmd.AddCommand(teamSetPasswordCmd)

	rootCmd.AddCommand(teamCmd)
}
