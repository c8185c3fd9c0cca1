package api

import (
	"net/http"
	"net/url"
)

// Stats fetches the aggregate report scoped to one organization
func (c *Client) Stats(orgID string) (*Stats, error) {
	var stats Stats
	path := "/reports/stats?orgId=" + url.QueryEscape(orgID)
	if err := c.do(http.MethodGet, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
