package api

import "net/http"

// ProfileRequest updates the current user's own record. Password is applied
// only when non-empty.
type ProfileRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// UpdateProfile updates the authenticated user's profile
func (c *Client) UpdateProfile(req ProfileRequest) (*User, error) {
	var user User
	if err := c.do(http.MethodPut, "/users/profile", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminChangePassword sets another member's password. Requires the Admin
// role in the organization; the server enforces it.
func (c *Client) AdminChangePassword(userID, orgID, newPassword string) error {
	req := map[string]string{
		"userId":      userID,
		"orgId":       orgID,
		"newPassword": newPassword,
	}
	return c.do(http.MethodPost, "/users/admin/change-password", req, nil)
}
