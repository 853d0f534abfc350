package api

import (
	"context"

	"carexpert/models"
)

// LoginResult is the payload of a successful login: the session token (also
// set as a cookie on the client's jar) and the authenticated user.
type LoginResult struct {
	Token string          `json:"token"`
	User  models.AuthUser `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the backend. The session cookie lands in the
// jar, so subsequent requests are credentialed automatically.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	if err := c.post(ctx, "/api/auth/login", loginRequest{Email: email, Password: password}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout invalidates the current session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/api/auth/logout", nil, nil)
}

// CurrentUser returns the user the session cookie belongs to.
func (c *Client) CurrentUser(ctx context.Context) (*models.AuthUser, error) {
	var user models.AuthUser
	if err := c.get(ctx, "/api/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
