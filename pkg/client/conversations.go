package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rentahuman/rentahuman-go/pkg/models"
)

// StartConversation opens a direct conversation with a human, seeded with an
// opening message. Requires an API key.
func (c *Client) StartConversation(ctx context.Context, humanID, subject, message string) (*models.Conversation, error) {
	if humanID == "" {
		return nil, &ValidationError{Param: "human id", Value: humanID}
	}

	payload := map[string]string{
		"humanId":   humanID,
		"agentType": c.agentID,
		"subject":   subject,
		"message":   message,
	}

	body, err := c.post(ctx, "/conversations", payload)
	if err != nil {
		return nil, err
	}

	var conversation models.Conversation
	if err := json.Unmarshal(c.unwrap(body, "conversation"), &conversation); err != nil {
		return nil, fmt.Errorf("failed to parse conversation response: %w", err)
	}
	return &conversation, nil
}

// SendMessage appends a message to an existing conversation. Ordering is
// server-assigned.
func (c *Client) SendMessage(ctx context.Context, conversationID, message string) (*models.Message, error) {
	conversationID, err := sanitizePathParam("conversation id", conversationID)
	if err != nil {
		return nil, err
	}

	body, err := c.post(ctx, "/conversations/"+conversationID+"/messages", map[string]string{
		"message": message,
	})
	if err != nil {
		return nil, err
	}

	var sent models.Message
	if err := json.Unmarshal(c.unwrap(body, "message"), &sent); err != nil {
		return nil, fmt.Errorf("failed to parse message response: %w", err)
	}
	return &sent, nil
}

// GetConversation returns a conversation with all of its messages.
func (c *Client) GetConversation(ctx context.Context, conversationID string) (*models.Conversation, error) {
	conversationID, err := sanitizePathParam("conversation id", conversationID)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/conversations/"+conversationID, nil)
	if err != nil {
		return nil, err
	}

	var conversation models.Conversation
	if err := json.Unmarshal(c.unwrap(body, "conversation"), &conversation); err != nil {
		return nil, fmt.Errorf("failed to parse conversation response: %w", err)
	}
	return &conversation, nil
}

// ListConversations lists the agent's conversations. A limit of 0 selects
// the default page size.
func (c *Client) ListConversations(ctx context.Context, limit int) ([]models.Conversation, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(searchLimit(limit)))

	body, err := c.get(ctx, "/conversations", query)
	if err != nil {
		return nil, err
	}

	var conversations []models.Conversation
	if err := json.Unmarshal(c.unwrap(body, "conversations"), &conversations); err != nil {
		return nil, fmt.Errorf("failed to parse conversations response: %w", err)
	}
	return conversations, nil
}
