package services

import (
	"context"

	"github.com/doni/social-network/internal/pkg/apperrors"
	"github.com/doni/social-network/internal/pkg/logger"
	"github.com/doni/social-network/internal/publication/models"
	"github.com/doni/social-network/internal/publication/models/dto"
)

// PublicationRepository is the storage contract the service depends on.
type PublicationRepository interface {
	FindAll(ctx context.Context) ([]models.Publication, error)
	FindAllByUserID(ctx context.Context, userID string) ([]models.Publication, error)
	FindByID(ctx context.Context, id int64) (*models.Publication, error)
	Save(ctx context.Context, publication *models.Publication) (int64, error)
	Update(ctx context.Context, publication *models.Publication) error
	Delete(ctx context.Context, id int64) error
}

// PublicationService defines the publication operations
type PublicationService interface {
	GetAll(ctx context.Context) ([]dto.PublicationResponse, error)
	GetAllByUserID(ctx context.Context, userID string) ([]dto.PublicationResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PublicationResponse, error)
	Create(ctx context.Context, userID string, req dto.CreatePublicationRequest) (*dto.PublicationResponse, error)
	Update(ctx context.Context, id int64, userID string, req dto.UpdatePublicationRequest) error
	Delete(ctx context.Context, id int64, userID string) error
}

type publicationServiceImpl struct {
	publicationRepo PublicationRepository
}

// NewPublicationService creates a new PublicationService
func NewPublicationService(publicationRepo PublicationRepository) PublicationService {
	return &publicationServiceImpl{publicationRepo: publicationRepo}
}

func (s *publicationServiceImpl) GetAll(ctx context.Context) ([]dto.PublicationResponse, error) {
	publications, err := s.publicationRepo.FindAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list publications")
		return nil, err
	}
	return toResponses(publications), nil
}

func (s *publicationServiceImpl) GetAllByUserID(ctx context.Context, userID string) ([]dto.PublicationResponse, error) {
	publications, err := s.publicationRepo.FindAllByUserID(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Str("userId", userID).Msg("Failed to list publications of user")
		return nil, err
	}
	return toResponses(publications), nil
}

func (s *publicationServiceImpl) GetByID(ctx context.Context, id int64) (*dto.PublicationResponse, error) {
	publication, err := s.publicationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if publication == nil {
		return nil, apperrors.NotFound("publication-api.publications.errors.publication_is_not_found")
	}
	response := toResponse(*publication)
	return &response, nil
}

func (s *publicationServiceImpl) Create(ctx context.Context, userID string, req dto.CreatePublicationRequest) (*dto.PublicationResponse, error) {
	publication := models.Publication{
		Title:       *req.Title,
		Description: req.Description,
		UserID:      userID,
	}

	id, err := s.publicationRepo.Save(ctx, &publication)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to save publication")
		return nil, err
	}
	publication.ID = id

	response := toResponse(publication)
	return &response, nil
}

func (s *publicationServiceImpl) Update(ctx context.Context, id int64, userID string, req dto.UpdatePublicationRequest) error {
	publication, err := s.publicationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if publication == nil {
		return apperrors.NotFound("publication-api.publications.errors.publication_is_not_found")
	}
	if publication.UserID != userID {
		return apperrors.NotOwner("publication-api.publications.update.errors.user_is_not_owner")
	}

	publication.Title = *req.Title
	publication.Description = req.Description

	return s.publicationRepo.Update(ctx, publication)
}

func (s *publicationServiceImpl) Delete(ctx context.Context, id int64, userID string) error {
	publication, err := s.publicationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if publication == nil {
		return apperrors.NotFound("publication-api.publications.errors.publication_is_not_found")
	}
	if publication.UserID != userID {
		return apperrors.NotOwner("publication-api.publications.delete.errors.user_is_not_owner")
	}

	return s.publicationRepo.Delete(ctx, id)
}

func toResponse(publication models.Publication) dto.PublicationResponse {
	return dto.PublicationResponse{
		ID:          publication.ID,
		Title:       publication.Title,
		Description: publication.Description,
		UserID:      publication.UserID,
	}
}

func toResponses(publications []models.Publication) []dto.PublicationResponse {
	responses := make([]dto.PublicationResponse, 0, len(publications))
	for _, publication := range publications {
		responses = append(responses, toResponse(publication))
	}
	return responses
}
