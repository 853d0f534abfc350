package api

import (
	"context"
	"fmt"

	"carexpert/models"
)

// FetchConversation returns the message history with the given peer, oldest
// first.
func (c *Client) FetchConversation(ctx context.Context, peerID string) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	if err := c.get(ctx, fmt.Sprintf("/api/chat/%s", peerID), &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// SendMessage posts one message to the conversation with peerID and returns
// the stored message.
func (c *Client) SendMessage(ctx context.Context, peerID, content string) (*models.ChatMessage, error) {
	var msg models.ChatMessage
	if err := c.post(ctx, fmt.Sprintf("/api/chat/%s", peerID), sendMessageRequest{Content: content}, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
