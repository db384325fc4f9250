package apiclient

import (
	"context"
	"net/http"
)

// Permissions lists a document's grants.
func (c *Client) Permissions(ctx context.Context, docID string) ([]Permission, error) {
	var out struct {
		Permissions []Permission `json:"permissions"`
	}

	if err := c.do(ctx, http.MethodGet, "/api/docs/"+docID+"/permissions", nil, &out); err != nil {
		return nil, err
	}

	return out.Permissions, nil
}

// ChangePermissions applies a batch of grant and revoke entries.
// Only the document owner may call this.
func (c *Client) ChangePermissions(ctx context.Context, docID string, delta PermissionDelta) error {
	return c.do(ctx, http.MethodPost, "/api/docs/"+docID+"/permissions", delta, nil)
}
