package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doni/social-network/internal/messenger/models"
)

// ChatRepository handles database operations for chats
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

// FindAllByUserID retrieves all chats a user participates in
func (r *ChatRepository) FindAllByUserID(ctx context.Context, userID string) ([]models.Chat, error) {
	query := squirrel.Select("id", "user_id_1", "user_id_2").
		From("chat").
		Where(squirrel.Or{
			squirrel.Eq{"user_id_1": userID},
			squirrel.Eq{"user_id_2": userID},
		}).
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

	var chats []models.Chat
	for rows.Next() {
		var chat models.Chat
		if err := rows.Scan(&chat.ID, &chat.UserID1, &chat.UserID2); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		chats = append(chats, chat)
	}

	return chats, nil
}

// FindByID retrieves a chat by id, or nil when it does not exist
func (r *ChatRepository) FindByID(ctx context.Context, id int64) (*models.Chat, error) {
	query := squirrel.Select("id", "user_id_1", "user_id_2").
		From("chat").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var chat models.Chat
	err = r.db.QueryRow(ctx, sql, args...).Scan(&chat.ID, &chat.UserID1, &chat.UserID2)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &chat, nil
}

// FindByUsers retrieves the chat of an unordered user pair, checking both
// column orders, or nil when the pair has no chat yet
func (r *ChatRepository) FindByUsers(ctx context.Context, userID1, userID2 string) (*models.Chat, error) {
	query := squirrel.Select("id", "user_id_1", "user_id_2").
		From("chat").
		Where(squirrel.Or{
			squirrel.And{squirrel.Eq{"user_id_1": userID1}, squirrel.Eq{"user_id_2": userID2}},
			squirrel.And{squirrel.Eq{"user_id_1": userID2}, squirrel.Eq{"user_id_2": userID1}},
		}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var chat models.Chat
	err = r.db.QueryRow(ctx, sql, args...).Scan(&chat.ID, &chat.UserID1, &chat.UserID2)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &chat, nil
}

// Save inserts a chat and returns its generated id
func (r *ChatRepository) Save(ctx context.Context, chat *models.Chat) (int64, error) {
	query := squirrel.Insert("chat").
		Columns("user_id_1", "user_id_2").
		Values(chat.UserID1, chat.UserID2).
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

// Delete removes a chat by id
func (r *ChatRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("chat").
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
