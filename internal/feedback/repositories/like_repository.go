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

// LikeRepository handles database operations for likes
type LikeRepository struct {
	db *pgxpool.Pool
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{db: db}
}

// FindAllByPublicationID retrieves the likes of a publication
func (r *LikeRepository) FindAllByPublicationID(ctx context.Context, publicationID int64) ([]models.Like, error) {
	query := squirrel.Select("id", "publication_id", "user_id").
		From("t_like").
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

	var likes []models.Like
	for rows.Next() {
		var like models.Like
		if err := rows.Scan(&like.ID, &like.PublicationID, &like.UserID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		likes = append(likes, like)
	}

	return likes, nil
}

// FindByPublicationIDAndUserID retrieves one user's like of a publication,
// or nil when the user has not liked it
func (r *LikeRepository) FindByPublicationIDAndUserID(ctx context.Context, publicationID int64, userID string) (*models.Like, error) {
	query := squirrel.Select("id", "publication_id", "user_id").
		From("t_like").
		Where("publication_id = ? AND user_id = ?", publicationID, userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var like models.Like
	err = r.db.QueryRow(ctx, sql, args...).Scan(&like.ID, &like.PublicationID, &like.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &like, nil
}

// Save inserts a like and returns its generated id
func (r *LikeRepository) Save(ctx context.Context, like *models.Like) (int64, error) {
	query := squirrel.Insert("t_like").
		Columns("publication_id", "user_id").
		Values(like.PublicationID, like.UserID).
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

// Delete removes a like by id
func (r *LikeRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("t_like").
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
