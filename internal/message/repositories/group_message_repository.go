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

// GroupMessageRepository handles database operations for group messages
type GroupMessageRepository struct {
	db *pgxpool.Pool
}

// NewGroupMessageRepository creates a new GroupMessageRepository
func NewGroupMessageRepository(db *pgxpool.Pool) *GroupMessageRepository {
	return &GroupMessageRepository{db: db}
}

// FindAllByGroupID retrieves the messages of a group
func (r *GroupMessageRepository) FindAllByGroupID(ctx context.Context, groupID int64) ([]models.GroupMessage, error) {
	query := squirrel.Select("id", "text", "author_id", "group_id").
		From("group_message").
		Where("group_id = ?", groupID).
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

	var messages []models.GroupMessage
	for rows.Next() {
		var message models.GroupMessage
		if err := rows.Scan(&message.ID, &message.Text, &message.AuthorID, &message.GroupID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// FindByID retrieves a group message by id, or nil when it does not exist
func (r *GroupMessageRepository) FindByID(ctx context.Context, id int64) (*models.GroupMessage, error) {
	query := squirrel.Select("id", "text", "author_id", "group_id").
		From("group_message").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var message models.GroupMessage
	err = r.db.QueryRow(ctx, sql, args...).Scan(&message.ID, &message.Text, &message.AuthorID, &message.GroupID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &message, nil
}

// Save inserts a group message and returns its generated id
func (r *GroupMessageRepository) Save(ctx context.Context, message *models.GroupMessage) (int64, error) {
	query := squirrel.Insert("group_message").
		Columns("text", "author_id", "group_id").
		Values(message.Text, message.AuthorID, message.GroupID).
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

// Update persists the text of a group message
func (r *GroupMessageRepository) Update(ctx context.Context, message *models.GroupMessage) error {
	query := squirrel.Update("group_message").
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

// Delete removes a group message by id
func (r *GroupMessageRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("group_message").
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
