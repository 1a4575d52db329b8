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

func TestMessengerClient_FindChat(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(Chat{ID: 3, UserID1: "j.dewar", UserID2: "m.reid"})
	}))
	defer server.Close()

	ctx := auth.WithPrincipal(context.Background(), "j.dewar", "the-token")
	chat, err := NewMessengerClient(server.URL, time.Second).FindChat(ctx, 3)

	require.NoError(t, err)
	require.NotNil(t, chat)
	assert.Equal(t, int64(3), chat.ID)
	assert.Equal(t, "/messenger-api/chats/3", gotPath)
	assert.Equal(t, "Bearer the-token", gotAuth)
}

func TestMessengerClient_FindChat_NotParticipant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", problem.ContentType)
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(
			problem.New(http.StatusBadRequest, "Пользователь не является участником чата").WithCode("not_participant"))
	}))
	defer server.Close()

	_, err := NewMessengerClient(server.URL, time.Second).FindChat(context.Background(), 3)

	assert.True(t, errors.Is(err, apperrors.ErrNotParticipant))
}

func TestMessengerClient_FindGroup_Absent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	group, err := NewMessengerClient(server.URL, time.Second).FindGroup(context.Background(), 3)

	require.NoError(t, err)
	assert.Nil(t, group)
}

func TestMessengerClient_FindGroup_Members(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Group{ID: 3, Title: "группа", OwnerID: "j.dewar", Members: []string{"j.dewar", "m.reid"}})
	}))
	defer server.Close()

	group, err := NewMessengerClient(server.URL, time.Second).FindGroup(context.Background(), 3)

	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, []string{"j.dewar", "m.reid"}, group.Members)
}
