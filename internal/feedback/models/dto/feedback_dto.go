package dto

import "github.com/doni/social-network/internal/pkg/problem"

// CreateCommentRequest is the body of POST /feedback-api/comments.
type CreateCommentRequest struct {
	Text          *string `json:"text" binding:"required,notblank,min=1,max=2000"`
	PublicationID *int64  `json:"publicationId" binding:"required"`
}

// UpdateCommentRequest is the body of PATCH /feedback-api/comments/{id}.
type UpdateCommentRequest struct {
	Text *string `json:"text" binding:"required,notblank,min=1,max=2000"`
}

// CommentResponse is the read representation of a comment.
type CommentResponse struct {
	ID            int64  `json:"id"`
	Text          string `json:"text"`
	PublicationID int64  `json:"publicationId"`
	UserID        string `json:"userId"`
}

// CreateLikeRequest is the body of POST /feedback-api/likes.
type CreateLikeRequest struct {
	PublicationID *int64 `json:"publicationId" binding:"required"`
}

// LikeResponse is the read representation of a like.
type LikeResponse struct {
	ID            int64 `json:"id"`
	PublicationID int64 `json:"publicationId"`
	UserID        string `json:"userId"`
}

// CommentMessageKeys localizes binding violations on comment bodies.
var CommentMessageKeys = problem.MessageKeys{
	"Text.required":          "feedback-api.comments.create.errors.text_is_null",
	"Text.notblank":          "feedback-api.comments.create.errors.text_is_blank",
	"Text.min":               "feedback-api.comments.create.errors.text_has_invalid_size",
	"Text.max":               "feedback-api.comments.create.errors.text_has_invalid_size",
	"PublicationID.required": "feedback-api.comments.create.errors.publication_id_is_null",
}

// LikeMessageKeys localizes binding violations on like bodies.
var LikeMessageKeys = problem.MessageKeys{
	"PublicationID.required": "feedback-api.likes.create.errors.publication_id_is_null",
}
