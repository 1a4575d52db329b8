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

// ChatMessageRepository is the storage contract the chat message service
// depends on.
type ChatMessageRepository interface {
	FindAllByChatID(ctx context.Context, chatID int64) ([]models.ChatMessage, error)
	FindByID(ctx context.Context, id int64) (*models.ChatMessage, error)
	Save(ctx context.Context, message *models.ChatMessage) (int64, error)
	Update(ctx context.Context, message *models.ChatMessage) error
	Delete(ctx context.Context, id int64) error
}

// ChatFinder resolves chats on the messenger service. The messenger applies
// the caller's participation check to the forwarded token.
type ChatFinder interface {
	FindChat(ctx context.Context, id int64) (*client.Chat, error)
}

// ChatMessageService defines the chat message operations
type ChatMessageService interface {
	GetAllByChatID(ctx context.Context, chatID int64) ([]dto.ChatMessageResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ChatMessageResponse, error)
	Create(ctx context.Context, authorID string, req dto.CreateChatMessageRequest) (*dto.ChatMessageResponse, error)
	Update(ctx context.Context, id int64, authorID string, req dto.UpdateChatMessageRequest) error
	Delete(ctx context.Context, id int64, authorID string) error
}

type chatMessageServiceImpl struct {
	messageRepo     ChatMessageRepository
	messengerClient ChatFinder
}

// NewChatMessageService creates a new ChatMessageService
func NewChatMessageService(messageRepo ChatMessageRepository, messengerClient ChatFinder) ChatMessageService {
	return &chatMessageServiceImpl{messageRepo: messageRepo, messengerClient: messengerClient}
}

// requireChat resolves the chat or translates the remote rejection into the
// endpoint's error vocabulary.
func (s *chatMessageServiceImpl) requireChat(ctx context.Context, chatID int64, notFoundKey string) error {
	chat, err := s.messengerClient.FindChat(ctx, chatID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotParticipant) {
			return apperrors.NotParticipant("message-api.chat-messages.read.errors.user_is_not_chat_participant")
		}
		return err
	}
	if chat == nil {
		return apperrors.NotFound(notFoundKey)
	}
	return nil
}

func (s *chatMessageServiceImpl) GetAllByChatID(ctx context.Context, chatID int64) ([]dto.ChatMessageResponse, error) {
	if err := s.requireChat(ctx, chatID, "message-api.chat-messages.read.errors.chat_is_not_found"); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindAllByChatID(ctx, chatID)
	if err != nil {
		logger.Error().Err(err).Int64("chatId", chatID).Msg("Failed to list chat messages")
		return nil, err
	}
	return toChatMessageResponses(messages), nil
}

func (s *chatMessageServiceImpl) GetByID(ctx context.Context, id int64) (*dto.ChatMessageResponse, error) {
	message, err := s.messageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, apperrors.NotFound("message-api.chat-messages.errors.not_found")
	}

	if err := s.requireChat(ctx, message.ChatID, "message-api.chat-messages.read.errors.chat_is_not_found"); err != nil {
		return nil, err
	}

	response := toChatMessageResponse(*message)
	return &response, nil
}

func (s *chatMessageServiceImpl) Create(ctx context.Context, authorID string, req dto.CreateChatMessageRequest) (*dto.ChatMessageResponse, error) {
	if err := s.requireChat(ctx, *req.ChatID, "message-api.chat-messages.create.errors.chat_is_not_found"); err != nil {
		return nil, err
	}

	message := models.ChatMessage{
		Text:     *req.Text,
		AuthorID: authorID,
		ChatID:   *req.ChatID,
	}

	id, err := s.messageRepo.Save(ctx, &message)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to save chat message")
		return nil, err
	}
	message.ID = id

	response := toChatMessageResponse(message)
	return &response, nil
}

func (s *chatMessageServiceImpl) Update(ctx context.Context, id int64, authorID string, req dto.UpdateChatMessageRequest) error {
	message, err := s.messageRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if message == nil {
		return apperrors.NotFound("message-api.chat-messages.errors.not_found")
	}
	if message.AuthorID != authorID {
		return apperrors.NotOwner("message-api.chat-messages.update.errors.user_is_not_owner")
	}

	message.Text = *req.Text
	return s.messageRepo.Update(ctx, message)
}

func (s *chatMessageServiceImpl) Delete(ctx context.Context, id int64, authorID string) error {
	message, err := s.messageRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if message == nil {
		return apperrors.NotFound("message-api.chat-messages.errors.not_found")
	}
	if message.AuthorID != authorID {
		return apperrors.NotOwner("message-api.chat-messages.delete.errors.user_is_not_owner")
	}

	return s.messageRepo.Delete(ctx, id)
}

func toChatMessageResponse(message models.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		ID:       message.ID,
		Text:     message.Text,
		AuthorID: message.AuthorID,
		ChatID:   message.ChatID,
	}
}

func toChatMessageResponses(messages []models.ChatMessage) []dto.ChatMessageResponse {
	responses := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, toChatMessageResponse(message))
	}
	return responses
}
