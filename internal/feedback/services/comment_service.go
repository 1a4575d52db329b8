package services

import (
	"context"

	"github.com/doni/social-network/internal/feedback/client"
	"github.com/doni/social-network/internal/feedback/models"
	"github.com/doni/social-network/internal/feedback/models/dto"
	"github.com/doni/social-network/internal/pkg/apperrors"
	"github.com/doni/social-network/internal/pkg/logger"
)

// CommentRepository is the storage contract the comment service depends on.
type CommentRepository interface {
	FindAllByPublicationID(ctx context.Context, publicationID int64) ([]models.Comment, error)
	FindByID(ctx context.Context, id int64) (*models.Comment, error)
	Save(ctx context.Context, comment *models.Comment) (int64, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id int64) error
}

// PublicationFinder resolves publications on the publication service.
type PublicationFinder interface {
	FindPublication(ctx context.Context, id int64) (*client.Publication, error)
}

// CommentService defines the comment operations
type CommentService interface {
	GetAllByPublicationID(ctx context.Context, publicationID int64) ([]dto.CommentResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.CommentResponse, error)
	Create(ctx context.Context, userID string, req dto.CreateCommentRequest) (*dto.CommentResponse, error)
	Update(ctx context.Context, id int64, userID string, req dto.UpdateCommentRequest) error
	Delete(ctx context.Context, id int64, userID string) error
}

type commentServiceImpl struct {
	commentRepo       CommentRepository
	publicationClient PublicationFinder
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo CommentRepository, publicationClient PublicationFinder) CommentService {
	return &commentServiceImpl{commentRepo: commentRepo, publicationClient: publicationClient}
}

func (s *commentServiceImpl) GetAllByPublicationID(ctx context.Context, publicationID int64) ([]dto.CommentResponse, error) {
	publication, err := s.publicationClient.FindPublication(ctx, publicationID)
	if err != nil {
		return nil, err
	}
	if publication == nil {
		return nil, apperrors.NotFound("feedback-api.comments.read.errors.publication_is_not_found")
	}

	comments, err := s.commentRepo.FindAllByPublicationID(ctx, publicationID)
	if err != nil {
		logger.Error().Err(err).Int64("publicationId", publicationID).Msg("Failed to list comments")
		return nil, err
	}
	return toCommentResponses(comments), nil
}

func (s *commentServiceImpl) GetByID(ctx context.Context, id int64) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperrors.NotFound("feedback-api.comments.errors.comment_is_not_found")
	}
	response := toCommentResponse(*comment)
	return &response, nil
}

func (s *commentServiceImpl) Create(ctx context.Context, userID string, req dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	publication, err := s.publicationClient.FindPublication(ctx, *req.PublicationID)
	if err != nil {
		return nil, err
	}
	if publication == nil {
		return nil, apperrors.NotFound("feedback-api.comments.create.errors.publication_is_not_found")
	}

	comment := models.Comment{
		Text:          *req.Text,
		PublicationID: *req.PublicationID,
		UserID:        userID,
	}

	id, err := s.commentRepo.Save(ctx, &comment)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to save comment")
		return nil, err
	}
	comment.ID = id

	response := toCommentResponse(comment)
	return &response, nil
}

func (s *commentServiceImpl) Update(ctx context.Context, id int64, userID string, req dto.UpdateCommentRequest) error {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return apperrors.NotFound("feedback-api.comments.errors.comment_is_not_found")
	}
	if comment.UserID != userID {
		return apperrors.NotOwner("feedback-api.comments.update.errors.user_is_not_owner")
	}

	comment.Text = *req.Text
	return s.commentRepo.Update(ctx, comment)
}

func (s *commentServiceImpl) Delete(ctx context.Context, id int64, userID string) error {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return apperrors.NotFound("feedback-api.comments.errors.comment_is_not_found")
	}
	if comment.UserID != userID {
		return apperrors.NotOwner("feedback-api.comments.delete.errors.user_is_not_owner")
	}

	return s.commentRepo.Delete(ctx, id)
}

func toCommentResponse(comment models.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:            comment.ID,
		Text:          comment.Text,
		PublicationID: comment.PublicationID,
		UserID:        comment.UserID,
	}
}

func toCommentResponses(comments []models.Comment) []dto.CommentResponse {
	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, toCommentResponse(comment))
	}
	return responses
}
