package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doni/social-network/internal/feedback/models"
)

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// FindAllByPublicationID retrieves the comments under a publication
func (r *CommentRepository) FindAllByPublicationID(ctx context.Context, publicationID int64) ([]models.Comment, error) {
	query := squirrel.Select("id", "text", "publication_id", "user_id").
		From("comment").
		Where("publication_id = ?", publicationID).
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

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.Text, &comment.PublicationID, &comment.UserID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		comments = append(comments, comment)
	}

	return comments, nil
}

// FindByID retrieves a comment by id, or nil when it does not exist
func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := squirrel.Select("id", "text", "publication_id", "user_id").
		From("comment").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var comment models.Comment
	err = r.db.QueryRow(ctx, sql, args...).Scan(&comment.ID, &comment.Text, &comment.PublicationID, &comment.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &comment, nil
}

// Save inserts a comment and returns its generated id
func (r *CommentRepository) Save(ctx context.Context, comment *models.Comment) (int64, error) {
	query := squirrel.Insert("comment").
		Columns("text", "publication_id", "user_id").
		Values(comment.Text, comment.PublicationID, comment.UserID).
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

// Update persists the text of a comment
func (r *CommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	query := squirrel.Update("comment").
		Set("text", comment.Text).
		Where("id = ?", comment.ID).
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

// Delete removes a comment by id
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("comment").
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
