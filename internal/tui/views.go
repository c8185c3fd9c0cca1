package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerline/ledgerline/internal/api"
	"github.com/ledgerline/ledgerline/internal/workspace"
)

// View renders the current screen
func (m Model) View() string {
	if m.quitting {
		if m.sessionExpired {
			return m.styles.Error.Render("Session expired. Run 'ledgerline auth login' to continue.") + "\n"
		}
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.view {
	case ViewDashboard:
		b.WriteString(m.renderDashboard())
	case ViewProjects:
		b.WriteString(m.renderProjects())
	case ViewProjectDetail:
		b.WriteString(m.renderProjectDetail())
	case ViewTeam:
		b.WriteString(m.renderTeam())
	case ViewReports:
		b.WriteString(m.renderReports())
	case ViewSettings:
		b.WriteString(m.renderSettings())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("ledgerline")
	org := "no organization"
	if o, ok := m.ws.Selected(); ok {
		org = o.Name
	}
	who := m.ws.User().FullName
	if m.role != "" {
		who = fmt.Sprintf("%s (%s)", who, m.role)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		title,
		m.styles.Subtitle.Render(fmt.Sprintf("  %s · %s", org, who)),
	)
}

func (m Model) renderTabs() string {
	tabs := []View{ViewDashboard, ViewProjects, ViewTeam, ViewReports, ViewSettings}
	parts := make([]string, 0, len(tabs))
	for i, v := range tabs {
		label := fmt.Sprintf("%d %s", i+1, viewNames[v])
		active := m.view == v || (v == ViewProjects && m.view == ViewProjectDetail)
		if active {
			parts = append(parts, m.styles.ActiveTab.Render(label))
		} else {
			parts = append(parts, m.styles.Tab.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderDashboard() string {
	if m.stats == nil {
		return m.styles.Muted.Render("Loading stats...")
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total Income:      %s\n", m.styles.Success.Render(money(m.stats.TotalIncome))))
	b.WriteString(fmt.Sprintf("Total Expenses:    %s\n", m.styles.Error.Render(money(m.stats.TotalExpenses))))
	b.WriteString(fmt.Sprintf("Net Balance:       %s\n", money(m.stats.NetBalance)))
	b.WriteString(fmt.Sprintf("Pending Approvals: %d\n", m.stats.PendingApprovals))
	return m.styles.Border.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderProjects() string {
	if len(m.projects) == 0 {
		return m.styles.Muted.Render("No projects in this organization.")
	}
	var b strings.Builder
	for i, p := range m.projects {
		line := fmt.Sprintf("%-30s budget %s  spent %s", p.Name, money(p.TotalBudget), money(p.CurrentSpend))
		if p.ApprovalRequired {
			line += "  [approval]"
		}
		if p.CurrentSpend > p.TotalBudget {
			line += "  " + m.styles.Warning.Render("over budget")
		}
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderProjectDetail() string {
	if m.project == nil {
		return m.styles.Muted.Render("Loading project...")
	}
	var b strings.Builder
	b.WriteString(m.styles.Selected.Render(m.project.Name))
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("  budget %s, spent %s",
		money(m.project.TotalBudget), money(m.project.CurrentSpend))))
	if m.project.ProjectLead != nil {
		b.WriteString(m.styles.Subtitle.Render("  lead " + m.project.ProjectLead.FullName))
	}
	b.WriteString("\n\n")

	if len(m.transactions) == 0 {
		b.WriteString(m.styles.Muted.Render("No transactions yet."))
		return b.String()
	}
	for i, t := range m.transactions {
		desc := t.Description
		if desc == "" {
			desc = "No description"
		}
		category := ""
		if t.Category != nil {
			category = t.Category.Name
		}
		line := fmt.Sprintf("%-11s %11s  %-12s %-20s %s",
			t.Type, signedMoney(t), m.statusLabel(t.Status), category, desc)
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) statusLabel(s api.Status) string {
	switch s {
	case api.StatusApproved, api.StatusSettled:
		return m.styles.Success.Render(string(s))
	case api.StatusRejected:
		return m.styles.Error.Render(string(s))
	case api.StatusPending:
		return m.styles.Warning.Render(string(s))
	default:
		return string(s)
	}
}

func (m Model) renderTeam() string {
	if len(m.members) == 0 {
		return m.styles.Muted.Render("No members found.")
	}
	var b strings.Builder
	for _, member := range m.members {
		b.WriteString(fmt.Sprintf("%-25s %-30s %s\n", member.User.FullName, member.User.Email, member.Role))
	}
	return b.String()
}

func (m Model) renderReports() string {
	if m.stats == nil {
		return m.styles.Muted.Render("Loading report...")
	}
	var b strings.Builder
	b.WriteString(m.renderDashboard())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Subtitle.Render("Income vs. expenses"))
	b.WriteString("\n")
	b.WriteString(m.styles.Success.Render(bar(m.stats.TotalIncome, m.stats.TotalIncome+m.stats.TotalExpenses)))
	b.WriteString("\n")
	b.WriteString(m.styles.Error.Render(bar(m.stats.TotalExpenses, m.stats.TotalIncome+m.stats.TotalExpenses)))
	return b.String()
}

func (m Model) renderSettings() string {
	var b strings.Builder
	user := m.ws.User()
	b.WriteString(m.styles.Subtitle.Render("Profile"))
	b.WriteString(fmt.Sprintf("\n%s <%s>\n\n", user.FullName, user.Email))
	b.WriteString(m.styles.Subtitle.Render("Categories"))
	b.WriteString("\n")
	if len(m.categories) == 0 {
		b.WriteString(m.styles.Muted.Render("No categories defined."))
		return b.String()
	}
	for _, c := range m.categories {
		b.WriteString(fmt.Sprintf("%-25s %s\n", c.Name, c.Type))
	}
	return b.String()
}

// renderStatusBar shows the shared busy indicator and the current toast
func (m Model) renderStatusBar() string {
	var parts []string
	if m.client.Busy().Visible() {
		parts = append(parts, m.spinner.View()+" working")
	}
	if n := m.client.Notifier().Current(); n.Visible {
		parts = append(parts, m.styles.severityStyle(n.Severity.String()).Render(n.Message))
	}
	if len(parts) == 0 {
		return ""
	}
	return m.styles.StatusBar.Render(strings.Join(parts, "  "))
}

func (m Model) renderHelp() string {
	keys := "1-5 tabs · o org · r refresh · q quit"
	if m.view == ViewProjects {
		keys = "enter open · " + keys
	}
	if m.view == ViewProjectDetail {
		actions := "esc back"
		if workspace.Can(m.role, workspace.ActionApproveTransaction) && m.project != nil && m.project.ApprovalRequired {
			actions = "a approve · x reject · s settle · " + actions
		}
		keys = actions + " · " + keys
	}
	return m.styles.Help.Render(keys)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// signedMoney shows credits with a plus sign and everything else as a draw
func signedMoney(t api.Transaction) string {
	if t.Type == api.TypeCredit {
		return "+" + money(t.Amount)
	}
	return "-" + money(t.Amount)
}

// bar renders a fixed-width proportion bar; total of zero yields an empty bar
func bar(value, total float64) string {
	const width = 40
	if total <= 0 {
		return strings.Repeat("░", width)
	}
	filled := int(value / total * width)
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
