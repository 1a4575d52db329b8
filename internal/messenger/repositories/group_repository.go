package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/doni/social-network/internal/db"
	"github.com/doni/social-network/internal/messenger/models"
)

// GroupRepository handles database operations for groups and their members
type GroupRepository struct {
	db *db.PostgresDB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(database *db.PostgresDB) *GroupRepository {
	return &GroupRepository{db: database}
}

// FindAllByUserID retrieves all groups a user is a member of, members loaded
func (r *GroupRepository) FindAllByUserID(ctx context.Context, userID string) ([]models.Group, error) {
	query := squirrel.Select("g.id", "g.title", "g.description", "g.owner_id").
		From("t_group g").
		Join("t_group_member gm ON gm.group_id = g.id").
		Where("gm.user_id = ?", userID).
		OrderBy("g.id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var group models.Group
		if err := rows.Scan(&group.ID, &group.Title, &group.Description, &group.OwnerID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		groups = append(groups, group)
	}

	for i := range groups {
		members, err := r.findMemberIDs(ctx, groups[i].ID)
		if err != nil {
			return nil, err
		}
		groups[i].Members = members
	}

	return groups, nil
}

// FindByID retrieves a group with its members, or nil when it does not exist
func (r *GroupRepository) FindByID(ctx context.Context, id int64) (*models.Group, error) {
	query := squirrel.Select("id", "title", "description", "owner_id").
		From("t_group").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var group models.Group
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&group.ID, &group.Title, &group.Description, &group.OwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	members, err := r.findMemberIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	group.Members = members

	return &group, nil
}

// SaveWithOwner inserts a group and its owner as the sole initial member in
// one transaction, and returns the generated group id
func (r *GroupRepository) SaveWithOwner(ctx context.Context, group *models.Group) (int64, error) {
	var groupID int64

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		insertGroup := squirrel.Insert("t_group").
			Columns("title", "description", "owner_id").
			Values(group.Title, group.Description, group.OwnerID).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err := insertGroup.ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&groupID); err != nil {
			return fmt.Errorf("error executing query: %w", err)
		}

		insertMember := squirrel.Insert("t_group_member").
			Columns("group_id", "user_id").
			Values(groupID, group.OwnerID).
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err = insertMember.ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error executing query: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return groupID, nil
}

// Update persists the mutable fields of a group
func (r *GroupRepository) Update(ctx context.Context, group *models.Group) error {
	query := squirrel.Update("t_group").
		Set("title", group.Title).
		Set("description", group.Description).
		Where("id = ?", group.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// Delete removes a group by id; members go with it via the FK cascade
func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("t_group").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// AddMember adds a user to a group
func (r *GroupRepository) AddMember(ctx context.Context, groupID int64, userID string) error {
	query := squirrel.Insert("t_group_member").
		Columns("group_id", "user_id").
		Values(groupID, userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// RemoveMember removes a user from a group
func (r *GroupRepository) RemoveMember(ctx context.Context, groupID int64, userID string) error {
	query := squirrel.Delete("t_group_member").
		Where("group_id = ? AND user_id = ?", groupID, userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (r *GroupRepository) findMemberIDs(ctx context.Context, groupID int64) ([]string, error) {
	query := squirrel.Select("user_id").
		From("t_group_member").
		Where("group_id = ?", groupID).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		members = append(members, userID)
	}

	return members, nil
}
