package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ledgerline/ledgerline/internal/api"
)

// Every fetch result carries the workspace generation it was dispatched
// under. Update drops results from a superseded generation so a late
// response can never paint data from a previously selected organization.

type statsMsg struct {
	gen   uint64
	stats *api.Stats
	err   error
}

type projectsMsg struct {
	gen      uint64
	projects []api.Project
	err      error
}

type projectDetailMsg struct {
	gen          uint64
	project      *api.Project
	transactions []api.Transaction
	categories   []api.Category
	err          error
}

type transactionsMsg struct {
	gen          uint64
	transactions []api.Transaction
	err          error
}

type membersMsg struct {
	gen     uint64
	members []api.Membership
	err     error
}

type categoriesMsg struct {
	gen        uint64
	categories []api.Category
	err        error
}

type roleMsg struct {
	gen  uint64
	role api.Role
	err  error
}

// actionDoneMsg reports a completed workflow action; the view re-fetches
// its list instead of patching local state.
type actionDoneMsg struct {
	gen uint64
	err error
}

// repaintMsg drives the toast and busy indicator repaint loop
type repaintMsg time.Time

func repaintTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return repaintMsg(t)
	})
}
