package apiclient

import (
	"context"
	"net/http"
)

// Workspaces lists the workspaces of an organization.
func (c *Client) Workspaces(ctx context.Context, orgID string) ([]Workspace, error) {
	var out struct {
		Workspaces []Workspace `json:"workspaces"`
	}

	if err := c.do(ctx, http.MethodGet, "/api/orgs/"+orgID+"/workspaces", nil, &out); err != nil {
		return nil, err
	}

	return out.Workspaces, nil
}

// Workspace fetches one workspace by id.
func (c *Client) Workspace(ctx context.Context, workspaceID string) (*Workspace, error) {
	var out Workspace

	if err := c.do(ctx, http.MethodGet, "/api/workspaces/"+workspaceID, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateWorkspace creates a workspace inside an organization.
func (c *Client) CreateWorkspace(ctx context.Context, orgID, name, slug, description string) (*Workspace, error) {
	body := map[string]string{
		"name":        name,
		"slug":        slug,
		"description": description,
	}

	var out Workspace

	if err := c.do(ctx, http.MethodPost, "/api/orgs/"+orgID+"/workspaces", body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateWorkspace patches a workspace. Nil fields stay unchanged.
func (c *Client) UpdateWorkspace(ctx context.Context, workspaceID string, name, slug, description *string) error {
	body := map[string]*string{}
	if name != nil {
		body["name"] = name
	}
	if slug != nil {
		body["slug"] = slug
	}
	if description != nil {
		body["description"] = description
	}

	return c.do(ctx, http.MethodPatch, "/api/workspaces/"+workspaceID, body, nil)
}

// DeleteWorkspace removes a workspace.
func (c *Client) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	return c.do(ctx, http.MethodDelete, "/api/workspaces/"+workspaceID, nil, nil)
}
