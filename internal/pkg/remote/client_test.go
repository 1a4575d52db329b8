package remote

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

type entity struct {
	ID int64 `json:"id"`
}

func TestClient_GetJSON_Found(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(entity{ID: 5})
	}))
	defer server.Close()

	ctx := auth.WithPrincipal(context.Background(), "j.dewar", "the-token")
	var e entity
	found, err := New(server.URL, time.Second).GetJSON(ctx, "/publication-api/publications/5", &e)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(5), e.ID)
	assert.Equal(t, "Bearer the-token", gotAuth)
}

func TestClient_GetJSON_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	var e entity
	found, err := New(server.URL, time.Second).GetJSON(context.Background(), "/x/1", &e)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestClient_GetJSON_NotParticipant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", problem.ContentType)
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(problem.New(http.StatusBadRequest, "нет доступа").WithCode("not_participant"))
	}))
	defer server.Close()

	var e entity
	_, err := New(server.URL, time.Second).GetJSON(context.Background(), "/x/1", &e)

	assert.True(t, errors.Is(err, apperrors.ErrNotParticipant))
}

func TestClient_GetJSON_LegacyBare400(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	var e entity
	_, err := New(server.URL, time.Second).GetJSON(context.Background(), "/x/1", &e)

	assert.True(t, errors.Is(err, apperrors.ErrNotParticipant))
}

func TestClient_GetJSON_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var e entity
	_, err := New(server.URL, time.Second).GetJSON(context.Background(), "/x/1", &e)

	assert.True(t, errors.Is(err, apperrors.ErrRemoteUnavailable))
}

func TestClient_GetJSON_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	var e entity
	_, err := New(server.URL, time.Second).GetJSON(context.Background(), "/x/1", &e)

	assert.True(t, errors.Is(err, apperrors.ErrRemoteUnavailable))
}
