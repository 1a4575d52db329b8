// Package remote performs HTTP calls to sibling services, forwarding the
// caller's bearer token and classifying failures for the service layer.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/doni/social-network/internal/pkg/apperrors"
	"github.com/doni/social-network/internal/pkg/auth"
	"github.com/doni/social-network/internal/pkg/problem"
)

// DefaultTimeout bounds a remote call when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Client is a thin HTTP client bound to one sibling service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetJSON performs an authorized GET of path and decodes a 200 body into out.
// It returns found=false for a 404, ErrNotParticipant for a rejection that
// carries the not_participant code (or a legacy bare 400), and
// ErrRemoteUnavailable for transport failures and unexpected statuses.
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("building remote request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token := auth.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("remote call %s: %v: %w", path, err, apperrors.ErrRemoteUnavailable)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("decoding remote response from %s: %w", path, apperrors.ErrRemoteUnavailable)
		}
		return true, nil
	case http.StatusNotFound:
		return false, nil
	case http.StatusBadRequest, http.StatusForbidden:
		var detail problem.Detail
		_ = json.NewDecoder(resp.Body).Decode(&detail)
		if detail.Code == "" || detail.Code == "not_participant" {
			return false, apperrors.ErrNotParticipant
		}
		return false, fmt.Errorf("remote call %s: status %d: %w", path, resp.StatusCode, apperrors.ErrRemoteUnavailable)
	default:
		return false, fmt.Errorf("remote call %s: status %d: %w", path, resp.StatusCode, apperrors.ErrRemoteUnavailable)
	}
}
