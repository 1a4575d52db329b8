package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doni/social-network/internal/message/models"
)

// ChatMessageRepository handles database operations for chat messages
type ChatMessageRepository struct {
	db *pgxpool.Pool
}

// NewChatMessageRepository creates a new ChatMessageRepository
func NewChatMessageRepository(db *pgxpool.Pool) *ChatMessageRepository {
	return &ChatMessageRepository{db: db}
}

// FindAllByChatID retrieves the messages of a chat
func (r *ChatMessageRepository) FindAllByChatID(ctx context.Context, chatID int64) ([]models.ChatMessage, error) {
	query := squirrel.Select("id", "text", "author_id", "chat_id").
		From("chat_message").
		Where("chat_id = ?", chatID).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var message models.ChatMessage
		if err := rows.Scan(&message.ID, &message.Text, &message.AuthorID, &message.ChatID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// FindByID retrieves a chat message by id, or nil when it does not exist
func (r *ChatMessageRepository) FindByID(ctx context.Context, id int64) (*models.ChatMessage, error) {
	query := squirrel.Select("id", "text", "author_id", "chat_id").
		From("chat_message").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var message models.ChatMessage
	err = r.db.QueryRow(ctx, sql, args...).Scan(&message.ID, &message.Text, &message.AuthorID, &message.ChatID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &message, nil
}

// Save inserts a chat message and returns its generated id
func (r *ChatMessageRepository) Save(ctx context.Context, message *models.ChatMessage) (int64, error) {
	query := squirrel.Insert("chat_message").
		Columns("text", "author_id", "chat_id").
		Values(message.Text, message.AuthorID, message.ChatID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// Update persists the text of a chat message
func (r *ChatMessageRepository) Update(ctx context.Context, message *models.ChatMessage) error {
	query := squirrel.Update("chat_message").
		Set("text", message.Text).
		Where("id = ?", message.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// Delete removes a chat message by id
func (r *ChatMessageRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("chat_message").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}
