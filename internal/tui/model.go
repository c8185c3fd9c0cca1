// Package tui is the interactive workspace: the dashboard, project,
// team, report, and settings screens rendered over one shared busy
// indicator and notification slot.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ledgerline/ledgerline/internal/api"
	"github.com/ledgerline/ledgerline/internal/errors"
	"github.com/ledgerline/ledgerline/internal/workspace"
)

// View identifies the screen being displayed
type View int

// Screens
const (
	// ViewDashboard shows the organization's aggregate numbers
	ViewDashboard View = iota
	// ViewProjects lists the organization's projects
	ViewProjects
	// ViewProjectDetail shows one project's transactions and workflow actions
	ViewProjectDetail
	// ViewTeam lists the organization's members
	ViewTeam
	// ViewReports shows the aggregate report
	ViewReports
	// ViewSettings shows the profile and the category list
	ViewSettings
)

var viewNames = map[View]string{
	ViewDashboard:     "Dashboard",
	ViewProjects:      "Projects",
	ViewProjectDetail: "Project",
	ViewTeam:          "Team",
	ViewReports:       "Reports",
	ViewSettings:      "Settings",
}

// Model is the TUI application state
type Model struct {
	ws     *workspace.Workspace
	client *api.Client

	view     View
	width    int
	height   int
	ready    bool
	quitting bool

	// sessionExpired is set when a call comes back unauthorized; the caller
	// prints the re-login hint after the program exits.
	sessionExpired bool

	role         api.Role
	stats        *api.Stats
	projects     []api.Project
	project      *api.Project
	transactions []api.Transaction
	members      []api.Membership
	categories   []api.Category

	cursor  int
	spinner spinner.Model
	styles  Styles
}

// New creates the TUI model over a loaded workspace
func New(ws *workspace.Workspace, client *api.Client) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ws:      ws,
		client:  client,
		view:    ViewDashboard,
		spinner: sp,
		styles:  DefaultStyles(),
	}
}

// SessionExpired reports whether the program quit because the token was rejected
func (m Model) SessionExpired() bool {
	return m.sessionExpired
}

// Init starts the repaint loop and the initial organization-scoped fetches
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, repaintTick(), m.refetchScoped())
}

// refetchScoped re-issues every organization-scoped fetch: dashboard stats,
// projects, team, settings categories, and the viewer's role. Runs on entry
// and again on every organization switch.
func (m Model) refetchScoped() tea.Cmd {
	if _, ok := m.ws.Selected(); !ok {
		return nil
	}
	return tea.Batch(
		m.fetchStats(),
		m.fetchProjects(),
		m.fetchMembers(),
		m.fetchCategories(),
		m.fetchRole(),
	)
}

func (m Model) fetchStats() tea.Cmd {
	gen := m.ws.Generation()
	org, ok := m.ws.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		stats, err := m.client.Stats(org.ID)
		return statsMsg{gen: gen, stats: stats, err: err}
	}
}

func (m Model) fetchProjects() tea.Cmd {
	gen := m.ws.Generation()
	org, ok := m.ws.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		projects, err := m.client.ListProjects(org.ID)
		return projectsMsg{gen: gen, projects: projects, err: err}
	}
}

func (m Model) fetchMembers() tea.Cmd {
	gen := m.ws.Generation()
	org, ok := m.ws.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		members, err := m.client.ListMembers(org.ID)
		return membersMsg{gen: gen, members: members, err: err}
	}
}

func (m Model) fetchCategories() tea.Cmd {
	gen := m.ws.Generation()
	org, ok := m.ws.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		categories, err := m.client.ListCategories(org.ID)
		return categoriesMsg{gen: gen, categories: categories, err: err}
	}
}

func (m Model) fetchRole() tea.Cmd {
	gen := m.ws.Generation()
	return func() tea.Msg {
		role, err := m.ws.Role()
		return roleMsg{gen: gen, role: role, err: err}
	}
}

func (m Model) openProject(id string) tea.Cmd {
	gen := m.ws.Generation()
	org, _ := m.ws.Selected()
	return func() tea.Msg {
		project, err := m.client.GetProject(id)
		if err != nil {
			return projectDetailMsg{gen: gen, err: err}
		}
		transactions, err := m.client.ListTransactions(id)
		if err != nil {
			return projectDetailMsg{gen: gen, err: err}
		}
		categories, err := m.client.ListCategories(org.ID)
		if err != nil {
			return projectDetailMsg{gen: gen, err: err}
		}
		return projectDetailMsg{gen: gen, project: project, transactions: transactions, categories: categories}
	}
}

func (m Model) refetchTransactions() tea.Cmd {
	if m.project == nil {
		return nil
	}
	gen := m.ws.Generation()
	projectID := m.project.ID
	return func() tea.Msg {
		transactions, err := m.client.ListTransactions(projectID)
		return transactionsMsg{gen: gen, transactions: transactions, err: err}
	}
}

func (m Model) updateApproval(id string, status api.Status) tea.Cmd {
	gen := m.ws.Generation()
	return func() tea.Msg {
		_, err := m.client.UpdateApprovalStatus(id, status)
		if err == nil {
			m.client.Notifier().Success("Transaction " + string(status))
		}
		return actionDoneMsg{gen: gen, err: err}
	}
}

func (m Model) settle(id string) tea.Cmd {
	gen := m.ws.Generation()
	return func() tea.Msg {
		_, err := m.client.SettleTransaction(id)
		if err == nil {
			m.client.Notifier().Success("Transaction settled")
		}
		return actionDoneMsg{gen: gen, err: err}
	}
}

// stale reports whether a fetch result belongs to a superseded organization
// selection and must be dropped.
func (m Model) stale(gen uint64) bool {
	return gen != m.ws.Generation()
}

// noteErr routes a fetch failure: an unauthorized response is an implicit
// logout that ends the program; everything else already surfaced through the
// notification center.
func (m *Model) noteErr(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	if errors.IsUnauthorized(err) {
		_ = m.ws.Logout()
		m.sessionExpired = true
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case repaintMsg:
		return m, repaintTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case statsMsg:
		if m.stale(msg.gen) {
			return m, nil
		}
		if msg.err != nil {
			cmd := m.noteErr(msg.err)
			return m, cmd
		}
		m.stats = msg.stats
		return m, nil

	case projectsMsg:
		if m.stale(msg.gen) {
			return m, nil
		}
		if msg.err != nil {
			cmd := m.noteErr(msg.err)
			return m, cmd
		}
		m.projects = msg.projects
		if m.cursor >= len(m.projects) {
			m.cursor = 0
		}
		return m, nil

	case projectDetailMsg:
		if m.stale(msg.gen) {
			return m, nil
		}
		if msg.err != nil {
			cmd := m.noteErr(msg.err)
			return m, cmd
		}
		m.project = msg.project
		m.transactions = msg.transactions
		m.categories = msg.categories
		m.view = ViewProjectDetail
		m.cursor = 0
		return m, nil

	case transactionsMsg:
		if m.stale(msg.gen) {
			return m, nil
		}
		if msg.err != nil {
			cmd := m.noteErr(msg.err)
			return m, cmd
		}
		m.transactions = msg.transactions
		if m.cursor >= len(m.transactions) {
			m.cursor = 0
		}
		return m, nil

	case membersMsg:
		if m.stale(msg.gen) {
			return m, nil
		}
		if msg.err != nil {
			cmd := m.noteErr(msg.err)
			return m, cmd
		}
		m.members = msg.members
		return m, nil

	case categoriesMsg:
		if m.stale(msg.gen) {
			return m, nil
		}
		if msg.err != nil {
			cmd := m.noteErr(msg.err)
			return m, cmd
		}
		m.categories = msg.categories
		return m, nil

	case roleMsg:
		if m.stale(msg.gen) {
			return m, nil
		}
		if msg.err != nil {
			cmd := m.noteErr(msg.err)
			return m, cmd
		}
		m.role = msg.role
		return m, nil

	case actionDoneMsg:
		if m.stale(msg.gen) {
			return m, nil
		}
		if cmd := m.noteErr(msg.err); cmd != nil {
			return m, cmd
		}
		// Full re-fetch after every mutation; no optimistic patching.
		return m, tea.Batch(m.refetchTransactions(), m.fetchStats())
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "1":
		m.view = ViewDashboard
		return m, m.fetchStats()
	case "2":
		m.view = ViewProjects
		m.cursor = 0
		return m, m.fetchProjects()
	case "3":
		m.view = ViewTeam
		return m, m.fetchMembers()
	case "4":
		m.view = ViewReports
		return m, m.fetchStats()
	case "5":
		m.view = ViewSettings
		return m, m.fetchCategories()

	case "o":
		return m.cycleOrganization()

	case "r":
		return m, m.refetchScoped()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if m.view == ViewProjects && m.cursor < len(m.projects) {
			return m, m.openProject(m.projects[m.cursor].ID)
		}
		return m, nil

	case "esc":
		if m.view == ViewProjectDetail {
			m.view = ViewProjects
			m.project = nil
			m.transactions = nil
			m.cursor = 0
		}
		return m, nil

	case "a":
		return m.decide(api.StatusApproved)
	case "x":
		return m.decide(api.StatusRejected)
	case "s":
		if m.view != ViewProjectDetail || m.cursor >= len(m.transactions) {
			return m, nil
		}
		tx := m.transactions[m.cursor]
		if !tx.Status.CanSettle() || !workspace.Can(m.role, workspace.ActionApproveTransaction) {
			return m, nil
		}
		return m, m.settle(tx.ID)
	}

	return m, nil
}

// decide approves or rejects the selected pending transaction. Offered only
// in approval-required projects, to viewers whose role allows it.
func (m Model) decide(status api.Status) (tea.Model, tea.Cmd) {
	if m.view != ViewProjectDetail || m.cursor >= len(m.transactions) {
		return m, nil
	}
	if m.project == nil || !m.project.ApprovalRequired {
		return m, nil
	}
	tx := m.transactions[m.cursor]
	if !tx.Status.CanApprove() || !workspace.Can(m.role, workspace.ActionApproveTransaction) {
		return m, nil
	}
	return m, m.updateApproval(tx.ID, status)
}

// cycleOrganization selects the next organization and re-fetches every
// scoped slice. Data still in flight for the previous organization is
// dropped by the generation check.
func (m Model) cycleOrganization() (tea.Model, tea.Cmd) {
	orgs := m.ws.Organizations()
	if len(orgs) < 2 {
		return m, nil
	}
	current, _ := m.ws.Selected()
	next := orgs[0]
	for i, org := range orgs {
		if org.ID == current.ID {
			next = orgs[(i+1)%len(orgs)]
			break
		}
	}
	if err := m.ws.Select(next.ID); err != nil {
		return m, nil
	}

	m.stats = nil
	m.projects = nil
	m.project = nil
	m.transactions = nil
	m.members = nil
	m.categories = nil
	m.role = ""
	m.cursor = 0
	if m.view == ViewProjectDetail {
		m.view = ViewProjects
	}
	return m, m.refetchScoped()
}

func (m Model) listLen() int {
	switch m.view {
	case ViewProjects:
		return len(m.projects)
	case ViewProjectDetail:
		return len(m.transactions)
	default:
		return 0
	}
}
