package apiclient

import (
	"context"
	"net/http"
)

// Orgs lists the organizations owned by the current user.
func (c *Client) Orgs(ctx context.Context) ([]Organization, error) {
	var out struct {
		Orgs []Organization `json:"orgs"`
	}

	if err := c.do(ctx, http.MethodGet, "/api/orgs", nil, &out); err != nil {
		return nil, err
	}

	return out.Orgs, nil
}

// Org fetches one organization by id.
func (c *Client) Org(ctx context.Context, orgID string) (*Organization, error) {
	var out Organization

	if err := c.do(ctx, http.MethodGet, "/api/orgs/"+orgID, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateOrg creates an organization owned by the current user.
func (c *Client) CreateOrg(ctx context.Context, name, slug string) (*Organization, error) {
	body := map[string]string{
		"name": name,
		"slug": slug,
	}

	var out Organization

	if err := c.do(ctx, http.MethodPost, "/api/orgs", body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateOrg patches an organization. Nil fields stay unchanged.
func (c *Client) UpdateOrg(ctx context.Context, orgID string, name, slug *string) error {
	body := map[string]*string{}
	if name != nil {
		body["name"] = name
	}
	if slug != nil {
		body["slug"] = slug
	}

	return c.do(ctx, http.MethodPatch, "/api/orgs/"+orgID, body, nil)
}

// DeleteOrg removes an organization.
func (c *Client) DeleteOrg(ctx context.Context, orgID string) error {
	return c.do(ctx, http.MethodDelete, "/api/orgs/"+orgID, nil, nil)
}
