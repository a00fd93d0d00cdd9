package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vengeful-vineyard/backend/internal/domain"
)

// GroupRepository implements domain.GroupRepository using PostgreSQL
type GroupRepository struct {
	db Querier
}

// NewGroupRepository creates a new GroupRepository backed by the shared pool
func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{db: pool}
}

// WithTx returns a GroupRepository bound to the given transaction
func (r *GroupRepository) WithTx(tx pgx.Tx) *GroupRepository {
	return &GroupRepository{db: tx}
}

const groupColumns = "group_id, ow_group_id, name, name_short, rules, image"

// GetByID retrieves a group by id
func (r *GroupRepository) GetByID(ctx context.Context, id domain.GroupID) (*domain.Group, error) {
	var g domain.Group
	err := r.db.QueryRow(ctx,
		"SELECT "+groupColumns+" FROM groups WHERE group_id = $1", int64(id),
	).Scan(&g.GroupID, &g.OWGroupID, &g.Name, &g.NameShort, &g.Rules, &g.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("get group %d: %w", id, err)
	}
	return &g, nil
}

// ListForUser returns all groups the user belongs to, by internal id
func (r *GroupRepository) ListForUser(ctx context.Context, userID domain.UserID) ([]domain.Group, error) {
	rows, err := r.db.Query(ctx,
		`SELECT groups.group_id, groups.ow_group_id, groups.name, groups.name_short, groups.rules, groups.image
		FROM groups
		INNER JOIN group_members ON groups.group_id = group_members.group_id
		WHERE group_members.user_id = $1`,
		int64(userID),
	)
	if err != nil {
		return nil, fmt.Errorf("list groups for user %d: %w", userID, err)
	}
	return collectGroups(rows)
}

// ListForExternalUser returns all groups the user belongs to, by external id
func (r *GroupRepository) ListForExternalUser(ctx context.Context, owUserID domain.OWUserID) ([]domain.Group, error) {
	rows, err := r.db.Query(ctx,
		`SELECT groups.group_id, groups.ow_group_id, groups.name, groups.name_short, groups.rules, groups.image
		FROM groups
		INNER JOIN group_members ON groups.group_id = group_members.group_id
		INNER JOIN users ON users.user_id = group_members.user_id
		WHERE users.ow_user_id = $1`,
		int64(owUserID),
	)
	if err != nil {
		return nil, fmt.Errorf("list groups for ow user %d: %w", owUserID, err)
	}
	return collectGroups(rows)
}

func collectGroups(rows pgx.Rows) ([]domain.Group, error) {
	defer rows.Close()

	var groups []domain.Group
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.GroupID, &g.OWGroupID, &g.Name, &g.NameShort, &g.Rules, &g.Image); err != nil {
			return nil, fmt.Errorf("scan group row: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("collect group rows: %w", err)
	}
	return groups, nil
}
