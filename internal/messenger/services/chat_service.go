package services

import (
	"context"

	"github.com/doni/social-network/internal/messenger/models"
	"github.com/doni/social-network/internal/messenger/models/dto"
	"github.com/doni/social-network/internal/pkg/apperrors"
	"github.com/doni/social-network/internal/pkg/logger"
)

// ChatRepository is the storage contract the chat service depends on.
type ChatRepository interface {
	FindAllByUserID(ctx context.Context, userID string) ([]models.Chat, error)
	FindByID(ctx context.Context, id int64) (*models.Chat, error)
	FindByUsers(ctx context.Context, userID1, userID2 string) (*models.Chat, error)
	Save(ctx context.Context, chat *models.Chat) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// ChatService defines the chat operations
type ChatService interface {
	GetAllByUserID(ctx context.Context, userID string) ([]dto.ChatResponse, error)
	GetByID(ctx context.Context, id int64, callerID string) (*dto.ChatResponse, error)
	Create(ctx context.Context, callerID string, req dto.CreateChatRequest) (*dto.ChatResponse, error)
	Delete(ctx context.Context, id int64, callerID string) error
}

type chatServiceImpl struct {
	chatRepo ChatRepository
}

// NewChatService creates a new ChatService
func NewChatService(chatRepo ChatRepository) ChatService {
	return &chatServiceImpl{chatRepo: chatRepo}
}

func (s *chatServiceImpl) GetAllByUserID(ctx context.Context, userID string) ([]dto.ChatResponse, error) {
	chats, err := s.chatRepo.FindAllByUserID(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Str("userId", userID).Msg("Failed to list chats")
		return nil, err
	}
	return toChatResponses(chats), nil
}

func (s *chatServiceImpl) GetByID(ctx context.Context, id int64, callerID string) (*dto.ChatResponse, error) {
	chat, err := s.chatRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, apperrors.NotFound("messenger-api.chats.errors.not_found")
	}
	if !chat.IsParticipant(callerID) {
		return nil, apperrors.NotParticipant("messenger-api.chats.errors.user_is_not_chat_participant")
	}
	response := toChatResponse(*chat)
	return &response, nil
}

// Create opens a chat between the user named in the request and the caller.
// At most one chat exists per unordered pair.
func (s *chatServiceImpl) Create(ctx context.Context, callerID string, req dto.CreateChatRequest) (*dto.ChatResponse, error) {
	existing, err := s.chatRepo.FindByUsers(ctx, *req.UserID, callerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.AlreadyExists("messenger-api.chats.create.errors.chat_already_exists")
	}

	chat := models.Chat{UserID1: *req.UserID, UserID2: callerID}
	id, err := s.chatRepo.Save(ctx, &chat)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to save chat")
		return nil, err
	}
	chat.ID = id

	response := toChatResponse(chat)
	return &response, nil
}

func (s *chatServiceImpl) Delete(ctx context.Context, id int64, callerID string) error {
	chat, err := s.chatRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if chat == nil {
		return apperrors.NotFound("messenger-api.chats.errors.not_found")
	}
	if !chat.IsParticipant(callerID) {
		return apperrors.NotParticipant("messenger-api.chats.errors.user_is_not_chat_participant")
	}

	return s.chatRepo.Delete(ctx, id)
}

func toChatResponse(chat models.Chat) dto.ChatResponse {
	return dto.ChatResponse{
		ID:      chat.ID,
		UserID1: chat.UserID1,
		UserID2: chat.UserID2,
	}
}

func toChatResponses(chats []models.Chat) []dto.ChatResponse {
	responses := make([]dto.ChatResponse, 0, len(chats))
	for _, chat := range chats {
		responses = append(responses, toChatResponse(chat))
	}
	return responses
}
