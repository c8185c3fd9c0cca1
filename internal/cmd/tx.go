package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline/internal/api"
	"github.com/ledgerline/ledgerline/internal/tui"
	"github.com/ledgerline/ledgerline/internal/ux"
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Manage transactions",
	Long: `Record, edit, and move transactions through the approval workflow.

In a project that requires approval, new transactions start Pending. An
admin or the project lead approves or rejects them; approved transactions
can then be settled. Rejected and settled transactions are final.`,
}

var txListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List a project's transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := openWorkspace()
		if err != nil {
			return err
		}
		transactions, err := client.ListTransactions(args[0])
		if err != nil {
			return err
		}
		return output(ux.TransactionList{Transactions: transactions})
	},
}

var txAddCmd = &cobra.Command{
	Use:   "add <project-id>",
	Short: "Record a transaction",
	Long: `Record a transaction against a project.

The category must match the transaction type: credits take income
categories, debits and expectations take expense categories.

Examples:
  ledgerline tx add p123 --type Debit --amount 250 --category cat9 --description "Venue deposit"
  ledgerline tx add p123 --type Credit --amount 1000 --category cat2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typeFlag, _ := cmd.Flags().GetString("type")
		amount, _ := cmd.Flags().GetFloat64("amount")
		description, _ := cmd.Flags().GetString("description")
		category, _ := cmd.Flags().GetString("category")

		txType := api.TransactionType(typeFlag)
		switch txType {
		case api.TypeDebit, api.TypeCredit, api.TypeExpectation:
		default:
			return fmt.Errorf("--type must be Debit, Credit, or Expectation")
		}
		if amount <= 0 {
			return fmt.Errorf("--amount must be positive")
		}

		ws, client, err := openWorkspace()
		if err != nil {
			return err
		}
		org, err := selectedOrg(ws)
		if err != nil {
			return err
		}

		categoryID, err := resolveCategory(client, org.ID, category, api.CategoryTypeFor(txType))
		if err != nil {
			return err
		}

		tx, err := client.CreateTransaction(api.TransactionRequest{
			Type:        txType,
			Amount:      amount,
			Description: description,
			CategoryID:  categoryID,
			ProjectID:   args[0],
		})
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %s transaction %s (%s)\n", tx.Type, tx.ID, tx.Status)
		return nil
	},
}

var txUpdateCmd = &cobra.Command{
	Use:   "update <transaction-id>",
	Short: "Edit a transaction's amount or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("amount") && !cmd.Flags().Changed("description") {
			return fmt.Errorf("nothing to update; pass --amount or --description")
		}

		_, client, err := openWorkspace()
		if err != nil {
			return err
		}

		req := api.TransactionRequest{}
		if cmd.Flags().Changed("amount") {
			req.Amount, _ = cmd.Flags().GetFloat64("amount")
			if req.Amount <= 0 {
				return fmt.Errorf("--amount must be positive")
			}
		}
		if cmd.Flags().Changed("description") {
			req.Description, _ = cmd.Flags().GetString("description")
		}

		tx, err := client.UpdateTransaction(args[0], req)
		if err != nil {
			return err
		}
		fmt.Printf("Updated transaction %s\n", tx.ID)
		return nil
	},
}

var txDeleteCmd = &cobra.Command{
	Use:   "delete <transaction-id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			if !tui.IsInteractive() {
				return fmt.Errorf("refusing to delete without --yes")
			}
			confirmed, err := tui.PromptForConfirmation("Delete this transaction?", false)
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
		if err := client.DeleteTransaction(args[0]); err != nil {
			return err
		}
		fmt.Println("Transaction deleted.")
		return nil
	},
}

var txApproveCmd = &cobra.Command{
	Use:   "approve <transaction-id>",
	Short: "Approve a pending transaction",
	RunE:  decisionRunE(api.StatusApproved),
	Args:  cobra.ExactArgs(1),
}

var txRejectCmd = &cobra.Command{
	Use:   "reject <transaction-id>",
	Short: "Reject a pending transaction",
	RunE:  decisionRunE(api.StatusRejected),
	Args:  cobra.ExactArgs(1),
}

// decisionRunE builds the approve/reject handler; the server enforces both
// the workflow transition and the caller's role.
func decisionRunE(status api.Status) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		_, client, err := openWorkspace()
		if err != nil {
			return err
		}
		tx, err := client.UpdateApprovalStatus(args[0], status)
		if err != nil {
			return err
		}
		fmt.Printf("Transaction %s is now %s\n", tx.ID, tx.Status)
		return nil
	}
}

var txSettleCmd = &cobra.Command{
	Use:   "settle <transaction-id>",
	Short: "Settle an approved transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && tui.IsInteractive() {
			confirmed, err := tui.PromptForConfirmation("Settle this transaction? It cannot be reopened.", false)
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
		tx, err := client.SettleTransaction(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Transaction %s is now %s\n", tx.ID, tx.Status)
		return nil
	},
}

// resolveCategory turns a category name or ID into an ID, restricted to the
// categories whose type fits the transaction.
func resolveCategory(client *api.Client, orgID, category string, want api.CategoryType) (string, error) {
	categories, err := client.ListCategories(orgID)
	if err != nil {
		return "", err
	}

	eligible := categories[:0:0]
	for _, c := range categories {
		if c.Type == want {
			eligible = append(eligible, c)
		}
	}

	if category == "" {
		return "", fmt.Errorf("--category is required (%s categories: %s)", want, categoryNames(eligible))
	}
	for _, c := range eligible {
		if c.ID == category || c.Name == category {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("no %s category matches %q (available: %s)", want, category, categoryNames(eligible))
}

func categoryNames(categories []api.Category) string {
	if len(categories) == 0 {
		return "none"
	}
	names := ""
	for i, c := range categories {
		if i > 0 {
			names += ", "
		}
		names += c.Name
	}
	return names
}

func init() {
	txAddCmd.Flags().String("type", "", "transaction type (Debit, Credit, Expectation)")
	txAddCmd.Flags().Float64("amount", 0, "amount")
	txAddCmd.Flags().String("description", "", "description")
	txAddCmd.Flags().String("category", "", "category name or ID")

	txUpdateCmd.Flags().Float64("amount", 0, "amount")
	txUpdateCmd.Flags().String("description", "", "description")

	txDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	txSettleCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	txCmd.AddCommand(txListCmd)
	txCmd.AddCommand(txAddCmd)
	txCmd.AddCommand(txUpdateCmd)
	txCmd.AddCommand(txDeleteCmd)
	txCmd.AddCommand(txApproveCmd)
	txCmd.AddCommand(txRejectCmd)
	txCmd.AddCommand(txSettleCmd)

	rootCmd.AddCommand(txCmd)
}
