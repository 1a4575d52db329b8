package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doni/social-network/internal/pkg/apperrors"
	"github.com/doni/social-network/internal/pkg/auth"
	"github.com/doni/social-network/internal/pkg/problem"
)

func TestPublicationClient_FindPublication(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(Publication{ID: 5, Title: "пост", UserID: "j.dewar"})
	}))
	defer server.Close()

	ctx := auth.WithPrincipal(context.Background(), "j.dewar", "the-token")
	publication, err := NewPublicationClient(server.URL, time.Second).FindPublication(ctx, 5)

	require.NoError(t, err)
	require.NotNil(t, publication)
	assert.Equal(t, int64(5), publication.ID)
	assert.Equal(t, "/publication-api/publications/5", gotPath)
	assert.Equal(t, "Bearer the-token", gotAuth)
}

func TestPublicationClient_FindPublication_Absent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", problem.ContentType)
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(problem.New(http.StatusNotFound, "Публикация не найдена"))
	}))
	defer server.Close()

	publication, err := NewPublicationClient(server.URL, time.Second).FindPublication(context.Background(), 5)

	require.NoError(t, err)
	assert.Nil(t, publication)
}

func TestPublicationClient_FindPublication_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewPublicationClient(server.URL, time.Second).FindPublication(context.Background(), 5)

	assert.True(t, errors.Is(err, apperrors.ErrRemoteUnavailable))
}
