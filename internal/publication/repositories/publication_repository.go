package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doni/social-network/internal/publication/models"
)

// PublicationRepository handles database operations for publications
type PublicationRepository struct {
	db *pgxpool.Pool
}

// NewPublicationRepository creates a new PublicationRepository
func NewPublicationRepository(db *pgxpool.Pool) *PublicationRepository {
	return &PublicationRepository{db: db}
}

// FindAll retrieves all publications
func (r *PublicationRepository) FindAll(ctx context.Context) ([]models.Publication, error) {
	query := squirrel.Select("id", "title", "description", "user_id").
		From("publication").
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

	return scanPublications(rows)
}

// FindAllByUserID retrieves all publications of a specific user
func (r *PublicationRepository) FindAllByUserID(ctx context.Context, userID string) ([]models.Publication, error) {
	query := squirrel.Select("id", "title", "description", "user_id").
		From("publication").
		Where("user_id = ?", userID).
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

	return scanPublications(rows)
}

// FindByID retrieves a publication by id, or nil when it does not exist
func (r *PublicationRepository) FindByID(ctx context.Context, id int64) (*models.Publication, error) {
	query := squirrel.Select("id", "title", "description", "user_id").
		From("publication").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var publication models.Publication
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&publication.ID,
		&publication.Title,
		&publication.Description,
		&publication.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &publication, nil
}

// Save inserts a publication and returns its generated id
func (r *PublicationRepository) Save(ctx context.Context, publication *models.Publication) (int64, error) {
	query := squirrel.Insert("publication").
		Columns("title", "description", "user_id").
		Values(publication.Title, publication.Description, publication.UserID).
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

// Update persists the mutable fields of a publication
func (r *PublicationRepository) Update(ctx context.Context, publication *models.Publication) error {
	query := squirrel.Update("publication").
		Set("title", publication.Title).
		Set("description", publication.Description).
		Where("id = ?", publication.ID).
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

// Delete removes a publication by id
func (r *PublicationRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("publication").
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

func scanPublications(rows pgx.Rows) ([]models.Publication, error) {
	var publications []models.Publication
	for rows.Next() {
		var publication models.Publication
		err := rows.Scan(
			&publication.ID,
			&publication.Title,
			&publication.Description,
			&publication.UserID,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		publications = append(publications, publication)
	}

	return publications, nil
}
