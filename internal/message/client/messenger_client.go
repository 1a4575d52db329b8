// Package client calls the messenger service for chat and group checks.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/doni/social-network/internal/pkg/remote"
)

// Chat is the remote read model of a chat.
type Chat struct {
	ID      int64  `json:"id"`
	UserID1 string `json:"userId1"`
	UserID2 string `json:"userId2"`
}

// Group is the remote read model of a group.
type Group struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	OwnerID string   `json:"ownerId"`
	Members []string `json:"members"`
}

// MessengerClient resolves chats and groups owned by the messenger service.
// The messenger applies its own participation checks to the forwarded token,
// so a rejection surfaces here as ErrNotParticipant.
type MessengerClient struct {
	remote *remote.Client
}

// NewMessengerClient creates a new MessengerClient
func NewMessengerClient(baseURL string, timeout time.Duration) *MessengerClient {
	return &MessengerClient{remote: remote.New(baseURL, timeout)}
}

// FindChat returns the chat, or nil when it does not exist.
func (c *MessengerClient) FindChat(ctx context.Context, id int64) (*Chat, error) {
	var chat Chat
	found, err := c.remote.GetJSON(ctx, fmt.Sprintf("/messenger-api/chats/%d", id), &chat)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &chat, nil
}

// FindGroup returns the group, or nil when it does not exist.
func (c *MessengerClient) FindGroup(ctx context.Context, id int64) (*Group, error) {
	var group Group
	found, err := c.remote.GetJSON(ctx, fmt.Sprintf("/messenger-api/groups/%d", id), &group)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &group, nil
}
