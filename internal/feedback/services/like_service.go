package services

import (
	"context"

	"github.com/doni/social-network/internal/feedback/models"
	"github.com/doni/social-network/internal/feedback/models/dto"
	"github.com/doni/social-network/internal/pkg/apperrors"
	"github.com/doni/social-network/internal/pkg/logger"
)

// LikeRepository is the storage contract the like service depends on.
type LikeRepository interface {
	FindAllByPublicationID(ctx context.Context, publicationID int64) ([]models.Like, error)
	FindByPublicationIDAndUserID(ctx context.Context, publicationID int64, userID string) (*models.Like, error)
	Save(ctx context.Context, like *models.Like) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// LikeService defines the like operations
type LikeService interface {
	GetAllByPublicationID(ctx context.Context, publicationID int64) ([]dto.LikeResponse, error)
	GetByPublicationIDAndUserID(ctx context.Context, publicationID int64, userID string) (*dto.LikeResponse, error)
	Create(ctx context.Context, userID string, req dto.CreateLikeRequest) (*dto.LikeResponse, error)
	Delete(ctx context.Context, publicationID int64, userID, callerID string) error
}

type likeServiceImpl struct {
	likeRepo          LikeRepository
	publicationClient PublicationFinder
}

// NewLikeService creates a new LikeService
func NewLikeService(likeRepo LikeRepository, publicationClient PublicationFinder) LikeService {
	return &likeServiceImpl{likeRepo: likeRepo, publicationClient: publicationClient}
}

func (s *likeServiceImpl) GetAllByPublicationID(ctx context.Context, publicationID int64) ([]dto.LikeResponse, error) {
	publication, err := s.publicationClient.FindPublication(ctx, publicationID)
	if err != nil {
		return nil, err
	}
	if publication == nil {
		return nil, apperrors.NotFound("feedback-api.likes.read.errors.publication_is_not_found")
	}

	likes, err := s.likeRepo.FindAllByPublicationID(ctx, publicationID)
	if err != nil {
		logger.Error().Err(err).Int64("publicationId", publicationID).Msg("Failed to list likes")
		return nil, err
	}
	return toLikeResponses(likes), nil
}

func (s *likeServiceImpl) GetByPublicationIDAndUserID(ctx context.Context, publicationID int64, userID string) (*dto.LikeResponse, error) {
	like, err := s.likeRepo.FindByPublicationIDAndUserID(ctx, publicationID, userID)
	if err != nil {
		return nil, err
	}
	if like == nil {
		return nil, apperrors.NotFound("feedback-api.likes.errors.like_is_not_found")
	}
	response := toLikeResponse(*like)
	return &response, nil
}

func (s *likeServiceImpl) Create(ctx context.Context, userID string, req dto.CreateLikeRequest) (*dto.LikeResponse, error) {
	publication, err := s.publicationClient.FindPublication(ctx, *req.PublicationID)
	if err != nil {
		return nil, err
	}
	if publication == nil {
		return nil, apperrors.NotFound("feedback-api.likes.create.errors.publication_is_not_found")
	}

	existing, err := s.likeRepo.FindByPublicationIDAndUserID(ctx, *req.PublicationID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.AlreadyExists("feedback-api.likes.create.errors.user_has_already_like_publication")
	}

	like := models.Like{PublicationID: *req.PublicationID, UserID: userID}
	id, err := s.likeRepo.Save(ctx, &like)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to save like")
		return nil, err
	}
	like.ID = id

	response := toLikeResponse(like)
	return &response, nil
}

// Delete removes the like of userID under publicationID. Only the like's
// owner may remove it.
func (s *likeServiceImpl) Delete(ctx context.Context, publicationID int64, userID, callerID string) error {
	like, err := s.likeRepo.FindByPublicationIDAndUserID(ctx, publicationID, userID)
	if err != nil {
		return err
	}
	if like == nil {
		return apperrors.NotFound("feedback-api.likes.errors.like_is_not_found")
	}
	if like.UserID != callerID {
		return apperrors.NotOwner("feedback-api.likes.delete.errors.user_is_not_owner")
	}

	return s.likeRepo.Delete(ctx, like.ID)
}

func toLikeResponse(like models.Like) dto.LikeResponse {
	return dto.LikeResponse{
		ID:            like.ID,
		PublicationID: like.PublicationID,
		UserID:        like.UserID,
	}
}

func toLikeResponses(likes []models.Like) []dto.LikeResponse {
	responses := make([]dto.LikeResponse, 0, len(likes))
	for _, like := range likes {
		responses = append(responses, toLikeResponse(like))
	}
	return responses
}
