package dto

import "github.com/doni/social-network/internal/pkg/problem"

// CreatePublicationRequest is the body of POST /publication-api/publications.
// Pointer fields distinguish an absent member from a present empty one.
type CreatePublicationRequest struct {
	Title       *string `json:"title" binding:"required,notblank,min=3,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// UpdatePublicationRequest is the body of PATCH /publication-api/publications/{id}.
type UpdatePublicationRequest struct {
	Title       *string `json:"title" binding:"required,notblank,min=3,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// PublicationResponse is the read representation of a publication.
type PublicationResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	UserID      string  `json:"userId"`
}

// PublicationMessageKeys localizes binding violations on the request bodies.
var PublicationMessageKeys = problem.MessageKeys{
	"Title.required":  "publication-api.publications.create.errors.title_is_null",
	"Title.notblank":  "publication-api.publications.create.errors.title_is_blank",
	"Title.min":       "publication-api.publications.create.errors.title_size_is_invalid",
	"Title.max":       "publication-api.publications.create.errors.title_size_is_invalid",
	"Description.max": "publication-api.publications.create.errors.description_size_is_invalid",
}
