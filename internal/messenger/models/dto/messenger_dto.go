package dto

import "github.com/doni/social-network/internal/pkg/problem"

// CreateChatRequest is the body of POST /messenger-api/chats. The caller
// becomes the second participant.
type CreateChatRequest struct {
	UserID *string `json:"userId" binding:"required"`
}

// ChatResponse is the read representation of a chat.
type ChatResponse struct {
	ID      int64  `json:"id"`
	UserID1 string `json:"userId1"`
	UserID2 string `json:"userId2"`
}

// CreateGroupRequest is the body of POST /messenger-api/groups.
type CreateGroupRequest struct {
	Title       *string `json:"title" binding:"required,notblank,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// UpdateGroupRequest is the body of PATCH /messenger-api/groups/{id}.
type UpdateGroupRequest struct {
	Title       *string `json:"title" binding:"required,notblank,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// GroupResponse is the read representation of a group with its members.
type GroupResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	OwnerID     string   `json:"ownerId"`
	Members     []string `json:"members"`
}

// AddUserRequest is the body of PATCH /messenger-api/groups/{id}/add-user.
type AddUserRequest struct {
	UserID *string `json:"userId" binding:"required"`
}

// KickUserRequest is the body of DELETE /messenger-api/groups/{id}/kick-user.
type KickUserRequest struct {
	UserID *string `json:"userId" binding:"required"`
}

// ChatMessageKeys localizes binding violations on chat bodies.
var ChatMessageKeys = problem.MessageKeys{
	"UserID.required": "messenger-api.chats.create.errors.user_id_is_null",
}

// GroupMessageKeys localizes binding violations on group bodies.
var GroupMessageKeys = problem.MessageKeys{
	"Title.required":  "messenger-api.groups.create.errors.title_is_null",
	"Title.notblank":  "messenger-api.groups.create.errors.title_is_blank",
	"Title.min":       "messenger-api.groups.create.errors.title_has_invalid_size",
	"Title.max":       "messenger-api.groups.create.errors.title_has_invalid_size",
	"Description.max": "messenger-api.groups.create.errors.description_has_invalid_size",
}

// AddUserMessageKeys localizes binding violations on add-user bodies.
var AddUserMessageKeys = problem.MessageKeys{
	"UserID.required": "messenger-api.groups.add-user.errors.user_is_null",
}

// KickUserMessageKeys localizes binding violations on kick-user bodies.
var KickUserMessageKeys = problem.MessageKeys{
	"UserID.required": "messenger-api.groups.kick-user.errors.user_is_null",
}
