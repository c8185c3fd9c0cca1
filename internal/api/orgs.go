package api

import (
	"fmt"
	"net/http"
)

// ListOrganizations fetches the organizations the current user belongs to
func (c *Client) ListOrganizations() ([]Organization, error) {
	var orgs []Organization
	if err := c.do(http.MethodGet, "/orgs", nil, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// ListMembers fetches the membership list of one organization
func (c *Client) ListMembers(orgID string) ([]Membership, error) {
	var members []Membership
	path := fmt.Sprintf("/orgs/%s/members", orgID)
	if err := c.do(http.MethodGet, path, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddMemberRequest enrolls a user in an organization. FullName and Password
// are required only when the email does not belong to an existing user.
type AddMemberRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
}

// AddMember adds a member to the organization
func (c *Client) AddMember(orgID string, req AddMemberRequest) (*Membership, error) {
	var member Membership
	path := fmt.Sprintf("/orgs/%s/members", orgID)
	if err := c.do(http.MethodPost, path, req, &member); err != nil {
		return nil, err
	}
	return &member, nil
}
