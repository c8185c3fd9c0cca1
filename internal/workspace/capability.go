package workspace

import "github.com/ledgerline/ledgerline/internal/api"

// Action is a role-gated operation within the selected organization
type Action int

// Role-gated actions
const (
	// ActionAddMember enrolls a new member
	ActionAddMember Action = iota
	// ActionChangeMemberPassword resets another member's password
	ActionChangeMemberPassword
	// ActionEditProject creates or updates projects
	ActionEditProject
	// ActionApproveTransaction decides pending transactions
	ActionApproveTransaction
	// ActionManageCategories creates or deletes categories
	ActionManageCategories
	// ActionDeleteTransaction removes a transaction
	ActionDeleteTransaction
)

// Can is the single capability check every screen consults. The UI hides
// what it denies; the server still enforces its own rules.
func Can(role api.Role, action Action) bool {
	switch role {
	case api.RoleAdmin:
		return true
	case api.RoleLead:
		switch action {
		case ActionEditProject, ActionApproveTransaction, ActionDeleteTransaction:
			return true
		}
		return false
	default:
		return false
	}
}
