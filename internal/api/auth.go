package api

import "net/http"

// LoginRequest carries the login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the issued session
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login authenticates and sets the token for subsequent requests
func (c *Client) Login(email, password string) (*LoginResponse, error) {
	req := LoginRequest{Email: email, Password: password}

	var resp LoginResponse
	if err := c.do(http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}

	c.SetToken(resp.Token)
	return &resp, nil
}

// ForgotPassword asks the server to email a one-time password
func (c *Client) ForgotPassword(email string) error {
	req := map[string]string{"email": email}
	return c.do(http.MethodPost, "/auth/forgot-password", req, nil)
}

// ResetPassword trades the emailed OTP for a new password
func (c *Client) ResetPassword(email, otp, newPassword string) error {
	req := map[string]string{
		"email":       email,
		"otp":         otp,
		"newPassword": newPassword,
	}
	return c.do(http.MethodPost, "/auth/reset-password", req, nil)
}

// CurrentUser fetches the authenticated user's record
func (c *Client) CurrentUser() (*User, error) {
	var user User
	if err := c.do(http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
