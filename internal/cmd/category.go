package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline/internal/api"
	"github.com/ledgerline/ledgerline/internal/tui"
	"github.com/ledgerline/ledgerline/internal/ux"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage transaction categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the selected organization's categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, client, err := openWorkspace()
		if err != nil {
			return err
		}
		org, err := selectedOrg(ws)
		if err != nil {
			return err
		}
		categories, err := client.ListCategories(org.ID)
		if err != nil {
			return err
		}

		if typeFlag, _ := cmd.Flags().GetString("type"); typeFlag != "" {
			want := api.CategoryType(typeFlag)
			if want != api.CategoryIncome && want != api.CategoryExpense {
				return fmt.Errorf("--type must be Income or Expense")
			}
			filtered := categories[:0:0]
			for _, c := range categories {
				if c.Type == want {
					filtered = append(filtered, c)
				}
			}
			categories = filtered
		}

		return output(ux.CategoryList{Categories: categories})
	},
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category (Admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typeFlag, _ := cmd.Flags().GetString("type")
		catType := api.CategoryType(typeFlag)
		if catType != api.CategoryIncome && catType != api.CategoryExpense {
			return fmt.Errorf("--type must be Income or Expense")
		}

		ws, client, err := openWorkspace()
		if err != nil {
			return err
		}
		org, err := selectedOrg(ws)
		if err != nil {
			return err
		}

		category, err := client.CreateCategory(api.CategoryRequest{
			Name:  args[0],
			Type:  catType,
			OrgID: org.ID,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created %s category %s (%s)\n", category.Type, category.Name, category.ID)
		return nil
	},
}

// categoryDeleteCmd removes a category; the server refuses while
// transactions still reference it.
var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <category-id>",
	Short: "Delete a category (Admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			if !tui.IsInteractive() {
				return fmt.Errorf("refusing to delete without --yes")
			}
			confirmed, err := tui.PromptForConfirmation("Delete this category?", false)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Aborted.")
				return nil
			}
		}

		_, client, err := openWorkspace()
		if err != nil {
			return err
		}
		if err := client.DeleteCategory(args[0]); err != nil {
			return err
		}
		fmt.Println("Category deleted.")
		return nil
	},
}

func init() {
	categoryListCmd.Flags().String("type", "", "filter by type (Income, Expense)")
	categoryAddCmd.Flags().String("type", "", "category type (Income, Expense)")
	categoryDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)

	rootCmd.AddCommand(categoryCmd)
}
