package ux

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ledgerline/ledgerline/internal/api"
)

// OrgList renders organizations, marking the selected one
type OrgList struct {
	Orgs     []api.Organization `json:"organizations" yaml:"organizations"`
	Selected string             `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// RenderText implements TextRenderer
func (l OrgList) RenderText(w io.Writer) error {
	if len(l.Orgs) == 0 {
		_, err := fmt.Fprintln(w, "No organizations found.")
		return err
	}
	for _, org := range l.Orgs {
		marker := "  "
		if org.ID == l.Selected {
			marker = "* "
		}
		if _, err := fmt.Fprintf(w, "%s%s  %s\n", marker, org.ID, org.Name); err != nil {
			return err
		}
	}
	return nil
}

// ProjectList renders an organization's projects with budget usage
type ProjectList struct {
	Projects []api.Project `json:"projects" yaml:"projects"`
}

// RenderText implements TextRenderer
func (l ProjectList) RenderText(w io.Writer) error {
	if len(l.Projects) == 0 {
		_, err := fmt.Fprintln(w, "No projects found.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBUDGET\tSPENT\tAPPROVAL\tLEAD")
	for _, p := range l.Projects {
		lead := "-"
		if p.ProjectLead != nil {
			lead = p.ProjectLead.FullName
		}
		approval := "no"
		if p.ApprovalRequired {
			approval = "required"
		}
		fmt.Fprintf(tw, "%s\t%s\t$%.2f\t$%.2f\t%s\t%s\n",
			p.ID, p.Name, p.TotalBudget, p.CurrentSpend, approval, lead)
	}
	return tw.Flush()
}

// TransactionList renders a project's transactions
type TransactionList struct {
	Transactions []api.Transaction `json:"transactions" yaml:"transactions"`
}

// RenderText implements TextRenderer
func (l TransactionList) RenderText(w io.Writer) error {
	if len(l.Transactions) == 0 {
		_, err := fmt.Fprintln(w, "No transactions found.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTYPE\tAMOUNT\tSTATUS\tDESCRIPTION\tCATEGORY")
	for _, tx := range l.Transactions {
		sign := "-"
		if tx.Type == api.TypeCredit {
			sign = "+"
		}
		category := "-"
		if tx.Category != nil {
			category = tx.Category.Name
		}
		desc := tx.Description
		if desc == "" {
			desc = "No description"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s$%.2f\t%s\t%s\t%s\n",
			tx.ID, tx.Date.Format("2006-01-02"), tx.Type, sign, tx.Amount, tx.Status, desc, category)
	}
	return tw.Flush()
}

// MemberList renders an organization's membership
type MemberList struct {
	Members []api.Membership `json:"members" yaml:"members"`
}

// RenderText implements TextRenderer
func (l MemberList) RenderText(w io.Writer) error {
	if len(l.Members) == 0 {
		_, err := fmt.Fprintln(w, "No members found.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tROLE")
	for _, m := range l.Members {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.User.FullName, m.User.Email, m.Role)
	}
	return tw.Flush()
}

// CategoryList renders an organization's categories
type CategoryList struct {
	Categories []api.Category `json:"categories" yaml:"categories"`
}

// RenderText implements TextRenderer
func (l CategoryList) RenderText(w io.Writer) error {
	if len(l.Categories) == 0 {
		_, err := fmt.Fprintln(w, "No categories found.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE")
	for _, c := range l.Categories {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Name, c.Type)
	}
	return tw.Flush()
}

// ProjectDetail renders one project with its transactions
type ProjectDetail struct {
	Project      api.Project       `json:"project" yaml:"project"`
	Transactions []api.Transaction `json:"transactions" yaml:"transactions"`
}

// RenderText implements TextRenderer
func (d ProjectDetail) RenderText(w io.Writer) error {
	lead := "-"
	if d.Project.ProjectLead != nil {
		lead = d.Project.ProjectLead.FullName
	}
	approval := "no"
	if d.Project.ApprovalRequired {
		approval = "required"
	}
	_, err := fmt.Fprintf(w, "%s (%s)\n  Budget:   $%.2f\n  Spent:    $%.2f\n  Approval: %s\n  Lead:     %s\n\n",
		d.Project.Name, d.Project.ID, d.Project.TotalBudget, d.Project.CurrentSpend, approval, lead)
	if err != nil {
		return err
	}
	return TransactionList{Transactions: d.Transactions}.RenderText(w)
}

// StatsView renders the aggregate report of one organization
type StatsView struct {
	OrgName string    `json:"organization" yaml:"organization"`
	Stats   api.Stats `json:"stats" yaml:"stats"`
}

// RenderText implements TextRenderer
func (v StatsView) RenderText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Overview of %s\n\n  Total income:      $%.2f\n  Total expenses:    $%.2f\n  Net balance:       $%.2f\n  Pending approvals: %d\n",
		v.OrgName, v.Stats.TotalIncome, v.Stats.TotalExpenses, v.Stats.NetBalance, v.Stats.PendingApprovals)
	return err
}

// ProfileView renders the current user's record
type ProfileView struct {
	User api.User `json:"user" yaml:"user"`
}

// RenderText implements TextRenderer
func (v ProfileView) RenderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "ID:    %s\nName:  %s\nEmail: %s\n",
		v.User.ID, v.User.FullName, v.User.Email)
	return err
}
