package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/ledgerline/internal/api"
)

func TestCapabilityMatrix(t *testing.T) {
	tests := []struct {
		name    string
		role    api.Role
		action  Action
		allowed bool
	}{
		{"admin adds members", api.RoleAdmin, ActionAddMember, true},
		{"admin resets passwords", api.RoleAdmin, ActionChangeMemberPassword, true},
		{"admin edits projects", api.RoleAdmin, ActionEditProject, true},
		{"admin approves", api.RoleAdmin, ActionApproveTransaction, true},
		{"admin manages categories", api.RoleAdmin, ActionManageCategories, true},

		{"lead edits projects", api.RoleLead, ActionEditProject, true},
		{"lead approves", api.RoleLead, ActionApproveTransaction, true},
		{"lead deletes transactions", api.RoleLead, ActionDeleteTransaction, true},
		{"lead cannot add members", api.RoleLead, ActionAddMember, false},
		{"lead cannot reset passwords", api.RoleLead, ActionChangeMemberPassword, false},
		{"lead cannot manage categories", api.RoleLead, ActionManageCategories, false},

		{"employee cannot add members", api.RoleEmployee, ActionAddMember, false},
		{"employee cannot edit projects", api.RoleEmployee, ActionEditProject, false},
		{"employee cannot approve", api.RoleEmployee, ActionApproveTransaction, false},
		{"employee cannot delete", api.RoleEmployee, ActionDeleteTransaction, false},

		{"unknown role gets nothing", api.Role("Guest"), ActionEditProject, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, Can(tt.role, tt.action))
		})
	}
}
