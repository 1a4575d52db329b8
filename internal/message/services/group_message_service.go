package services

import (
	"context"
	"errors"

	"github.com/doni/social-network/internal/message/client"
	"github.com/doni/social-network/internal/message/models"
	"github.com/doni/social-network/internal/message/models/dto"
	"github.com/doni/social-network/internal/pkg/apperrors"
	"github.com/doni/social-network/internal/pkg/logger"
)

// GroupMessageRepository is the storage contract the group message service
// depends on.
type GroupMessageRepository interface {
	FindAllByGroupID(ctx context.Context, groupID int64) ([]models.GroupMessage, error)
	FindByID(ctx context.Context, id int64) (*models.GroupMessage, error)
	Save(ctx context.Context, message *models.GroupMessage) (int64, error)
	Update(ctx context.Context, message *models.GroupMessage) error
	Delete(ctx context.Context, id int64) error
}

// GroupFinder resolves groups on the messenger service.
type GroupFinder interface {
	FindGroup(ctx context.Context, id int64) (*client.Group, error)
}

// GroupMessageService defines the group message operations
type GroupMessageService interface {
	GetAllByGroupID(ctx context.Context, groupID int64) ([]dto.GroupMessageResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.GroupMessageResponse, error)
	Create(ctx context.Context, authorID string, req dto.CreateGroupMessageRequest) (*dto.GroupMessageResponse, error)
	Update(ctx context.Context, id int64, authorID string, req dto.UpdateGroupMessageRequest) error
	Delete(ctx context.Context, id int64, authorID string) error
}

type groupMessageServiceImpl struct {
	messageRepo     GroupMessageRepository
	messengerClient GroupFinder
}

// NewGroupMessageService creates a new GroupMessageService
func NewGroupMessageService(messageRepo GroupMessageRepository, messengerClient GroupFinder) GroupMessageService {
	return &groupMessageServiceImpl{messageRepo: messageRepo, messengerClient: messengerClient}
}

// requireGroup resolves the group or translates the remote rejection into the
// endpoint's error vocabulary.
func (s *groupMessageServiceImpl) requireGroup(ctx context.Context, groupID int64, notFoundKey, notParticipantKey string) error {
	group, err := s.messengerClient.FindGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotParticipant) {
			return apperrors.NotParticipant(notParticipantKey)
		}
		return err
	}
	if group == nil {
		return apperrors.NotFound(notFoundKey)
	}
	return nil
}

func (s *groupMessageServiceImpl) GetAllByGroupID(ctx context.Context, groupID int64) ([]dto.GroupMessageResponse, error) {
	err := s.requireGroup(ctx, groupID,
		"message-api.group-messages.read.errors.group_is_not_found",
		"message-api.group-messages.read.errors.user_is_not_group_participant")
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindAllByGroupID(ctx, groupID)
	if err != nil {
		logger.Error().Err(err).Int64("groupId", groupID).Msg("Failed to list group messages")
		return nil, err
	}
	return toGroupMessageResponses(messages), nil
}

func (s *groupMessageServiceImpl) GetByID(ctx context.Context, id int64) (*dto.GroupMessageResponse, error) {
	message, err := s.messageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, apperrors.NotFound("message-api.group-messages.errors.not_found")
	}

	err = s.requireGroup(ctx, message.GroupID,
		"message-api.group-messages.read.errors.group_is_not_found",
		"message-api.group-messages.read.errors.user_is_not_group_participant")
	if err != nil {
		return nil, err
	}

	response := toGroupMessageResponse(*message)
	return &response, nil
}

func (s *groupMessageServiceImpl) Create(ctx context.Context, authorID string, req dto.CreateGroupMessageRequest) (*dto.GroupMessageResponse, error) {
	err := s.requireGroup(ctx, *req.GroupID,
		"message-api.group-messages.create.errors.group_is_not_found",
		"message-api.group-messages.create.errors.user_is_not_group_participant")
	if err != nil {
		return nil, err
	}

	message := models.GroupMessage{
		Text:     *req.Text,
		AuthorID: authorID,
		GroupID:  *req.GroupID,
	}

	id, err := s.messageRepo.Save(ctx, &message)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to save group message")
		return nil, err
	}
	message.ID = id

	response := toGroupMessageResponse(message)
	return &response, nil
}

func (s *groupMessageServiceImpl) Update(ctx context.Context, id int64, authorID string, req dto.UpdateGroupMessageRequest) error {
	message, err := s.messageRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if message == nil {
		return apperrors.NotFound("message-api.group-messages.errors.not_found")
	}
	if message.AuthorID != authorID {
		return apperrors.NotOwner("message-api.group-messages.update.errors.user_is_not_owner")
	}

	message.Text = *req.Text
	return s.messageRepo.Update(ctx, message)
}

func (s *groupMessageServiceImpl) Delete(ctx context.Context, id int64, authorID string) error {
	message, err := s.messageRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if message == nil {
		return apperrors.NotFound("message-api.group-messages.errors.not_found")
	}
	if message.AuthorID != authorID {
		return apperrors.NotOwner("message-api.group-messages.delete.errors.user_is_not_owner")
	}

	return s.messageRepo.Delete(ctx, id)
}

func toGroupMessageResponse(message models.GroupMessage) dto.GroupMessageResponse {
	return dto.GroupMessageResponse{
		ID:       message.ID,
		Text:     message.Text,
		AuthorID: message.AuthorID,
		GroupID:  message.GroupID,
	}
}

func toGroupMessageResponses(messages []models.GroupMessage) []dto.GroupMessageResponse {
	responses := make([]dto.GroupMessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, toGroupMessageResponse(message))
	}
	return responses
}
