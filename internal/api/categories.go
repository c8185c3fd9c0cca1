package api

import (
	"fmt"
	"net/http"
	"net/url"
)

// CategoryRequest creates a category within an organization
type CategoryRequest struct {
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	OrgID string       `json:"orgId"`
}

// ListCategories fetches the categories of one organization
func (c *Client) ListCategories(orgID string) ([]Category, error) {
	var categories []Category
	path := "/categories?orgId=" + url.QueryEscape(orgID)
	if err := c.do(http.MethodGet, path, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category
func (c *Client) CreateCategory(req CategoryRequest) (*Category, error) {
	var category Category
	if err := c.do(http.MethodPost, "/categories", req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category. The server rejects the delete while any
// transaction still references it; the rejection surfaces as an error
// notification and the list stays unchanged.
func (c *Client) DeleteCategory(id string) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/categories/%s", id), nil, nil)
}
