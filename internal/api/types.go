package api

import "time"

// User is a platform user
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Organization is the tenant boundary; it owns projects, categories, members
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Role is a user's role within one organization
type Role string

// Membership roles
const (
	RoleAdmin    Role = "Admin"
	RoleLead     Role = "Lead"
	RoleEmployee Role = "Employee"
)

// Membership binds a user to an organization with a role
type Membership struct {
	ID   string `json:"id"`
	User User   `json:"user"`
	Role Role   `json:"role"`
}

// Project is a budget container within an organization
type Project struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	TotalBudget      float64 `json:"totalBudget"`
	// CurrentSpend is server-computed and read-only
	CurrentSpend     float64 `json:"currentSpend"`
	ApprovalRequired bool    `json:"approvalRequired"`
	ProjectLead      *User   `json:"projectLead,omitempty"`
	OrgID            string  `json:"orgId,omitempty"`
}

// TransactionType classifies a financial entry
type TransactionType string

// Transaction types
const (
	TypeDebit       TransactionType = "Debit"
	TypeCredit      TransactionType = "Credit"
	TypeExpectation TransactionType = "Expectation"
)

// Status is a transaction's position in the approval/settlement workflow
type Status string

// Workflow statuses
const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
	StatusSettled  Status = "Settled"
)

// Terminal reports whether no further transition is possible
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusSettled
}

// CanApprove reports whether an approve/reject decision applies
func (s Status) CanApprove() bool {
	return s == StatusPending
}

// CanSettle reports whether the settle action applies
func (s Status) CanSettle() bool {
	return s == StatusApproved
}

// CanTransition reports whether the workflow permits moving to the target
// status. The server is authoritative; this only gates what the UI offers.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected
	case StatusApproved:
		return to == StatusSettled
	default:
		return false
	}
}

// Transaction is a single financial entry belonging to one project
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Category    *Category       `json:"category,omitempty"`
	Status      Status          `json:"status"`
	Date        time.Time       `json:"date"`
	CreatedBy   *User           `json:"createdBy,omitempty"`
	ProjectID   string          `json:"projectId,omitempty"`
}

// CategoryType classifies a category
type CategoryType string

// Category types
const (
	CategoryIncome  CategoryType = "Income"
	CategoryExpense CategoryType = "Expense"
)

// CategoryTypeFor returns the category type that fits a transaction type:
// credits draw from income categories, everything else from expense ones.
func CategoryTypeFor(t TransactionType) CategoryType {
	if t == TypeCredit {
		return CategoryIncome
	}
	return CategoryExpense
}

// Category labels income/expense entries within one organization
type Category struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	OrgID string       `json:"orgId,omitempty"`
}

// Stats is the aggregate report for one organization
type Stats struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	NetBalance       float64 `json:"netBalance"`
	PendingApprovals int     `json:"pendingApprovals"`
}
