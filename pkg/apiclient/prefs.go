package apiclient

import (
	"context"
	"net/http"
)

// Prefs returns the current user's preference flags.
func (c *Client) Prefs(ctx context.Context) (map[string]bool, error) {
	var out struct {
		Prefs map[string]bool `json:"prefs"`
	}

	if err := c.do(ctx, http.MethodGet, "/api/users/me/prefs", nil, &out); err != nil {
		return nil, err
	}

	return out.Prefs, nil
}

// SetPref records a preference flag, e.g. marking a tip as seen.
func (c *Client) SetPref(ctx context.Context, key string, seen bool) error {
	body := map[string]any{
		"key":  key,
		"seen": seen,
	}

	return c.do(ctx, http.MethodPatch, "/api/users/me/prefs", body, nil)
}
