package api

import (
	"context"

	"carexpert/models"
)

// FetchAllUsers lists every platform user. Admin only; the backend rejects
// other roles.
func (c *Client) FetchAllUsers(ctx context.Context) ([]models.AuthUser, error) {
	var users []models.AuthUser
	if err := c.get(ctx, "/api/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}
