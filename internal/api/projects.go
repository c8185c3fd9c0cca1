package api

import (
	"fmt"
	"net/http"
	"net/url"
)

// ProjectRequest creates or updates a project
type ProjectRequest struct {
	Name             string  `json:"name"`
	TotalBudget      float64 `json:"totalBudget"`
	ApprovalRequired bool    `json:"approvalRequired"`
	ProjectLeadID    string  `json:"projectLeadId,omitempty"`
	OrgID            string  `json:"orgId,omitempty"`
}

// ListProjects fetches the projects of one organization
func (c *Client) ListProjects(orgID string) ([]Project, error) {
	var projects []Project
	path := "/projects?orgId=" + url.QueryEscape(orgID)
	if err := c.do(http.MethodGet, path, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject fetches one project by id
func (c *Client) GetProject(id string) (*Project, error) {
	var project Project
	if err := c.do(http.MethodGet, fmt.Sprintf("/projects/%s", id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a project in req.OrgID
func (c *Client) CreateProject(req ProjectRequest) (*Project, error) {
	var project Project
	if err := c.do(http.MethodPost, "/projects", req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject updates an existing project
func (c *Client) UpdateProject(id string, req ProjectRequest) (*Project, error) {
	var project Project
	if err := c.do(http.MethodPut, fmt.Sprintf("/projects/%s", id), req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
