package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// DocFilter narrows a document listing. Zero value means no filter.
type DocFilter struct {
	Key   string
	Value string
	Limit int
}

func (f DocFilter) query() string {
	q := url.Values{}
	if f.Key != "" {
		q.Set("key", f.Key)
		q.Set("value", f.Value)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Documents lists the documents of a workspace visible to the
// current user.
func (c *Client) Documents(ctx context.Context, workspaceID string, filter DocFilter) ([]Document, error) {
	var out struct {
		Docs []Document `json:"docs"`
	}

	if err := c.do(ctx, http.MethodGet, "/api/workspaces/"+workspaceID+"/docs"+filter.query(), nil, &out); err != nil {
		return nil, err
	}

	return out.Docs, nil
}

// Document fetches one document's metadata by id.
func (c *Client) Document(ctx context.Context, docID string) (*Document, error) {
	var out Document

	if err := c.do(ctx, http.MethodGet, "/api/docs/"+docID, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateDocument creates a document in a workspace.
func (c *Client) CreateDocument(ctx context.Context, workspaceID, title string, public bool) (*Document, error) {
	body := map[string]any{
		"title":  title,
		"public": public,
	}

	var out Document

	if err := c.do(ctx, http.MethodPost, "/api/workspaces/"+workspaceID+"/docs", body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// RenameDocument changes a document's title.
func (c *Client) RenameDocument(ctx context.Context, docID, title string) error {
	body := map[string]string{
		"title": title,
	}

	return c.do(ctx, http.MethodPatch, "/api/docs/"+docID, body, nil)
}

// SetDocumentVisibility toggles public read access.
func (c *Client) SetDocumentVisibility(ctx context.Context, docID string, public bool) error {
	body := map[string]bool{
		"public": public,
	}

	return c.do(ctx, http.MethodPatch, "/api/docs/"+docID, body, nil)
}

// DeleteDocument removes a document and its content.
func (c *Client) DeleteDocument(ctx context.Context, docID string) error {
	return c.do(ctx, http.MethodDelete, "/api/docs/"+docID, nil, nil)
}

// Snapshot fetches a document's full content at its current version.
func (c *Client) Snapshot(ctx context.Context, docID string) (*DocSnapshot, error) {
	var out DocSnapshot

	if err := c.do(ctx, http.MethodGet, "/api/docs/"+docID+"/snapshot", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Apply submits edit operations against baseVersion and returns the
// new version. A stale baseVersion comes back as an *APIError with
// StatusCode 409; refetch the snapshot and retry.
func (c *Client) Apply(ctx context.Context, docID string, baseVersion int64, ops []Op) (int64, error) {
	body := map[string]any{
		"base_version": baseVersion,
		"ops":          ops,
	}

	var out struct {
		Version int64 `json:"version"`
	}

	if err := c.do(ctx, http.MethodPost, "/api/docs/"+docID+"/apply", body, &out); err != nil {
		return 0, err
	}

	return out.Version, nil
}
