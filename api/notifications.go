package api

import (
	"context"
	"fmt"

	"carexpert/models"
)

// FetchNotifications lists the signed-in user's in-app notifications, newest
// first.
func (c *Client) FetchNotifications(ctx context.Context) ([]models.Notification, error) {
	var items []models.Notification
	if err := c.get(ctx, "/api/notifications", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return c.post(ctx, fmt.Sprintf("/api/notifications/%s/read", notificationID), nil, nil)
}
