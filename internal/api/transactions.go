package api

import (
	"fmt"
	"net/http"
	"net/url"
)

// TransactionRequest creates or updates a transaction
type TransactionRequest struct {
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryId,omitempty"`
	ProjectID   string          `json:"projectId,omitempty"`
}

// ListTransactions fetches the transactions of one project
func (c *Client) ListTransactions(projectID string) ([]Transaction, error) {
	var txs []Transaction
	path := "/transactions?projectId=" + url.QueryEscape(projectID)
	if err := c.do(http.MethodGet, path, nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// CreateTransaction records a new transaction against req.ProjectID.
// In approval-required projects it starts out Pending.
func (c *Client) CreateTransaction(req TransactionRequest) (*Transaction, error) {
	var tx Transaction
	if err := c.do(http.MethodPost, "/transactions", req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// UpdateTransaction updates an existing transaction
func (c *Client) UpdateTransaction(id string, req TransactionRequest) (*Transaction, error) {
	var tx Transaction
	if err := c.do(http.MethodPut, fmt.Sprintf("/transactions/%s", id), req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// DeleteTransaction removes a transaction
func (c *Client) DeleteTransaction(id string) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/transactions/%s", id), nil, nil)
}

// SettleTransaction moves an Approved transaction to Settled. The server
// rejects the transition from any other status; re-sending after a network
// ambiguity is safe.
func (c *Client) SettleTransaction(id string) (*Transaction, error) {
	var tx Transaction
	if err := c.do(http.MethodPut, fmt.Sprintf("/transactions/%s/settle", id), nil, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// UpdateApprovalStatus decides a Pending transaction: Approved or Rejected
func (c *Client) UpdateApprovalStatus(id string, status Status) (*Transaction, error) {
	req := map[string]Status{"status": status}

	var tx Transaction
	if err := c.do(http.MethodPut, fmt.Sprintf("/approvals/%s/status", id), req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
