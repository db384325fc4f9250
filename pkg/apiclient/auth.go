package apiclient

import (
	"context"
	"net/http"
)

// Register creates a user account. adminToken is the server's
// registration token, not a session token.
func (c *Client) Register(ctx context.Context, login, password, adminToken string) error {
	body := map[string]string{
		"login": login,
		"pswd":  password,
		"token": adminToken,
	}

	return c.do(ctx, http.MethodPost, "/api/register", body, nil)
}

// Login opens a session and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, login, password string) (string, error) {
	body := map[string]string{
		"login": login,
		"pswd":  password,
	}

	var out struct {
		Token string `json:"token"`
	}

	if err := c.do(ctx, http.MethodPost, "/api/auth", body, &out); err != nil {
		return "", err
	}

	c.token = out.Token

	return out.Token, nil
}

// Me returns the account that owns the current session token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User

	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Logout closes the current session and clears the stored token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/api/auth/"+c.token, nil, nil); err != nil {
		return err
	}

	c.token = ""

	return nil
}
