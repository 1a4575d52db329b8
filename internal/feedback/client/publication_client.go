// Package client calls the publication service for existence checks.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/doni/social-network/internal/pkg/remote"
)

// Publication is the remote read model of a publication.
type Publication struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	UserID      string  `json:"userId"`
}

// PublicationClient resolves publications owned by the publication service.
type PublicationClient struct {
	remote *remote.Client
}

// NewPublicationClient creates a new PublicationClient
func NewPublicationClient(baseURL string, timeout time.Duration) *PublicationClient {
	return &PublicationClient{remote: remote.New(baseURL, timeout)}
}

// FindPublication returns the publication, or nil when it does not exist.
func (c *PublicationClient) FindPublication(ctx context.Context, id int64) (*Publication, error) {
	var publication Publication
	found, err := c.remote.GetJSON(ctx, fmt.Sprintf("/publication-api/publications/%d", id), &publication)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &publication, nil
}
