package dto

import "github.com/doni/social-network/internal/pkg/problem"

// CreateChatMessageRequest is the body of POST /message-api/chat-messages.
type CreateChatMessageRequest struct {
	Text   *string `json:"text" binding:"required,notblank,min=1,max=2000"`
	ChatID *int64  `json:"chatId" binding:"required"`
}

// UpdateChatMessageRequest is the body of PATCH /message-api/chat-messages/{id}.
type UpdateChatMessageRequest struct {
	Text *string `json:"text" binding:"required,notblank,min=1,max=2000"`
}

// ChatMessageResponse is the read representation of a chat message.
type ChatMessageResponse struct {
	ID       int64  `json:"id"`
	Text     string `json:"text"`
	AuthorID string `json:"authorId"`
	ChatID   int64  `json:"chatId"`
}

// CreateGroupMessageRequest is the body of POST /message-api/group-messages.
type CreateGroupMessageRequest struct {
	Text    *string `json:"text" binding:"required,notblank,min=1,max=2000"`
	GroupID *int64  `json:"groupId" binding:"required"`
}

// UpdateGroupMessageRequest is the body of PATCH /message-api/group-messages/{id}.
type UpdateGroupMessageRequest struct {
	Text *string `json:"text" binding:"required,notblank,min=1,max=2000"`
}

// GroupMessageResponse is the read representation of a group message.
type GroupMessageResponse struct {
	ID       int64  `json:"id"`
	Text     string `json:"text"`
	AuthorID string `json:"authorId"`
	GroupID  int64  `json:"groupId"`
}

// ChatMessageCreateKeys localizes binding violations on chat message creation.
var ChatMessageCreateKeys = problem.MessageKeys{
	"Text.required":   "message-api.chat-messages.create.errors.text_is_null",
	"Text.notblank":   "message-api.chat-messages.create.errors.text_is_blank",
	"Text.min":        "message-api.chat-messages.create.errors.text_has_invalid_size",
	"Text.max":        "message-api.chat-messages.create.errors.text_has_invalid_size",
	"ChatID.required": "message-api.chat-messages.create.errors.chat_id_is_null",
}

// ChatMessageUpdateKeys localizes binding violations on chat message updates.
var ChatMessageUpdateKeys = problem.MessageKeys{
	"Text.required": "message-api.chat-messages.update.errors.text_is_null",
	"Text.notblank": "message-api.chat-messages.update.errors.text_is_blank",
	"Text.min":      "message-api.chat-messages.update.errors.text_has_invalid_size",
	"Text.max":      "message-api.chat-messages.update.errors.text_has_invalid_size",
}

// GroupMessageCreateKeys localizes binding violations on group message creation.
var GroupMessageCreateKeys = problem.MessageKeys{
	"Text.required":    "message-api.group-messages.create.errors.text_is_null",
	"Text.notblank":    "message-api.group-messages.create.errors.text_is_blank",
	"Text.min":         "message-api.group-messages.create.errors.text_has_invalid_size",
	"Text.max":         "message-api.group-messages.create.errors.text_has_invalid_size",
	"GroupID.required": "message-api.group-messages.create.errors.group_id_is_null",
}

// GroupMessageUpdateKeys localizes binding violations on group message updates.
var GroupMessageUpdateKeys = problem.MessageKeys{
	"Text.required": "message-api.group-messages.update.errors.text_is_null",
	"Text.notblank": "message-api.group-messages.update.errors.text_is_blank",
	"Text.min":      "message-api.group-messages.update.errors.text_has_invalid_size",
	"Text.max":      "message-api.group-messages.update.errors.text_has_invalid_size",
}
