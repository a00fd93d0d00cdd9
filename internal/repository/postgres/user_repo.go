package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vengeful-vineyard/backend/internal/domain"
)

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	db Querier
}

// NewUserRepository creates a new UserRepository backed by the shared pool
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: pool}
}

// WithTx returns a UserRepository bound to the given transaction, so its
// operations compose into the caller's unit of work.
func (r *UserRepository) WithTx(tx pgx.Tx) *UserRepository {
	return &UserRepository{db: tx}
}

const userColumns = "user_id, ow_user_id, first_name, last_name, email"

// Count returns the total number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// GetByID retrieves a user by internal id
func (r *UserRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE user_id = $1", int64(id))
	return scanUser(row)
}

// GetByExternalID retrieves a user by external (OW) id
func (r *UserRepository) GetByExternalID(ctx context.Context, owUserID domain.OWUserID) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE ow_user_id = $1", int64(owUserID))
	return scanUser(row)
}

// ListByExternalIDs fetches all users whose external id is in the given set
// with a single query. Missing ids are simply absent from the result.
func (r *UserRepository) ListByExternalIDs(ctx context.Context, owUserIDs []domain.OWUserID) ([]domain.User, error) {
	ids := make([]int64, len(owUserIDs))
	for i, id := range owUserIDs {
		ids[i] = int64(id)
	}

	rows, err := r.db.Query(ctx,
		"SELECT "+userColumns+" FROM users WHERE ow_user_id = ANY($1)", ids)
	if err != nil {
		return nil, fmt.Errorf("list users by external ids: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.UserID, &u.OWUserID, &u.FirstName, &u.LastName, &u.Email); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users by external ids: %w", err)
	}
	return users, nil
}

// Insert creates a new user and returns the generated internal id. A
// duplicate external id surfaces as domain.ErrUserExists.
func (r *UserRepository) Insert(ctx context.Context, user domain.UserCreate) (domain.UserID, error) {
	var id domain.UserID
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (ow_user_id, first_name, last_name, email)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id`,
		int64(user.OWUserID), user.FirstName, user.LastName, user.Email,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: ow_user_id %d", domain.ErrUserExists, user.OWUserID)
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// Update overwrites first_name, last_name and email for the given internal
// id. Matching no row is not an error; callers that care must read first.
func (r *UserRepository) Update(ctx context.Context, user domain.UserUpdate) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users
		SET first_name = $1, last_name = $2, email = $3
		WHERE user_id = $4`,
		user.FirstName, user.LastName, user.Email, int64(user.UserID),
	)
	if err != nil {
		return fmt.Errorf("update user %d: %w", user.UserID, err)
	}
	return nil
}

// UpdateMultiple applies N row updates keyed by internal id as one set-based
// statement, so the batch applies atomically or not at all.
func (r *UserRepository) UpdateMultiple(ctx context.Context, users []domain.UserUpdate) error {
	if len(users) == 0 {
		return nil
	}

	ids := make([]int64, len(users))
	firstNames := make([]string, len(users))
	lastNames := make([]string, len(users))
	emails := make([]*string, len(users))
	for i, u := range users {
		ids[i] = int64(u.UserID)
		firstNames[i] = u.FirstName
		lastNames[i] = u.LastName
		emails[i] = u.Email
	}

	_, err := r.db.Exec(ctx,
		`UPDATE users u
		SET first_name = v.first_name, last_name = v.last_name, email = v.email
		FROM unnest($1::bigint[], $2::text[], $3::text[], $4::text[])
			AS v(user_id, first_name, last_name, email)
		WHERE u.user_id = v.user_id`,
		ids, firstNames, lastNames, emails,
	)
	if err != nil {
		return fmt.Errorf("update %d users: %w", len(users), err)
	}
	return nil
}

// UpdateByExternalID overwrites the user's fields keyed by external id and
// returns the internal id of the affected row. Matching no row is an explicit
// domain.ErrUserNotFound, never an empty success.
func (r *UserRepository) UpdateByExternalID(ctx context.Context, user domain.UserCreate) (domain.UserID, error) {
	var id domain.UserID
	err := r.db.QueryRow(ctx,
		`UPDATE users
		SET first_name = $1, last_name = $2, email = $3
		WHERE ow_user_id = $4
		RETURNING user_id`,
		user.FirstName, user.LastName, user.Email, int64(user.OWUserID),
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: ow_user_id %d", domain.ErrUserNotFound, user.OWUserID)
		}
		return 0, fmt.Errorf("update user by ow_user_id %d: %w", user.OWUserID, err)
	}
	return id, nil
}

// InsertMultiple inserts all rows with one statement and returns the
// generated internal id for each external id.
func (r *UserRepository) InsertMultiple(ctx context.Context, users []domain.UserCreate) (map[domain.OWUserID]domain.UserID, error) {
	if len(users) == 0 {
		return map[domain.OWUserID]domain.UserID{}, nil
	}

	owIDs, firstNames, lastNames, emails := userCreateArrays(users)

	rows, err := r.db.Query(ctx,
		`INSERT INTO users (ow_user_id, first_name, last_name, email)
		SELECT * FROM unnest($1::bigint[], $2::text[], $3::text[], $4::text[])
		RETURNING user_id, ow_user_id`,
		owIDs, firstNames, lastNames, emails,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: batch insert", domain.ErrUserExists)
		}
		return nil, fmt.Errorf("insert %d users: %w", len(users), err)
	}
	defer rows.Close()

	result, err := collectIDPairs(rows)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: batch insert", domain.ErrUserExists)
		}
		return nil, fmt.Errorf("insert %d users: %w", len(users), err)
	}
	return result, nil
}

// UpdateMultipleByExternalID applies all field overwrites with one set-based
// statement matched on external id, returning the internal id per external
// id. External ids that match no row are absent from the result.
func (r *UserRepository) UpdateMultipleByExternalID(ctx context.Context, users []domain.UserCreate) (map[domain.OWUserID]domain.UserID, error) {
	if len(users) == 0 {
		return map[domain.OWUserID]domain.UserID{}, nil
	}

	owIDs, firstNames, lastNames, emails := userCreateArrays(users)

	rows, err := r.db.Query(ctx,
		`UPDATE users u
		SET first_name = v.first_name, last_name = v.last_name, email = v.email
		FROM unnest($1::bigint[], $2::text[], $3::text[], $4::text[])
			AS v(ow_user_id, first_name, last_name, email)
		WHERE u.ow_user_id = v.ow_user_id
		RETURNING u.user_id, u.ow_user_id`,
		owIDs, firstNames, lastNames, emails,
	)
	if err != nil {
		return nil, fmt.Errorf("update %d users by ow_user_id: %w", len(users), err)
	}
	defer rows.Close()

	result, err := collectIDPairs(rows)
	if err != nil {
		return nil, fmt.Errorf("update %d users by ow_user_id: %w", len(users), err)
	}
	return result, nil
}

// Leaderboard computes the ranked projection: every user joined to their
// punishments and punishment types, scored as the sum of amount * value.
// Users with no punishments score 0 and carry an empty list. Ordering is
// total_value descending with internal id ascending as the tie-break, so
// pagination is reproducible.
func (r *UserRepository) Leaderboard(ctx context.Context, offset, limit int) ([]domain.LeaderboardUser, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.user_id, u.ow_user_id, u.first_name, u.last_name, u.email,
			COALESCE(SUM(gp.amount * pt.value), 0)::bigint AS total_value,
			COALESCE(
				jsonb_agg(
					jsonb_build_object(
						'punishment_id', gp.punishment_id,
						'group_id', gp.group_id,
						'user_id', gp.user_id,
						'reason', gp.reason,
						'amount', gp.amount,
						'created_at', gp.created_at::timestamptz,
						'punishment_type', jsonb_build_object(
							'punishment_type_id', pt.punishment_type_id,
							'name', pt.name,
							'value', pt.value,
							'logo_url', pt.logo_url
						)
					) ORDER BY gp.punishment_id
				) FILTER (WHERE gp.punishment_id IS NOT NULL),
				'[]'::jsonb
			) AS punishments
		FROM users u
		LEFT JOIN group_punishments gp ON gp.user_id = u.user_id
		LEFT JOIN punishment_types pt ON pt.punishment_type_id = gp.punishment_type_id
		GROUP BY u.user_id
		ORDER BY total_value DESC, u.user_id ASC
		OFFSET $1 LIMIT $2`,
		offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("leaderboard query: %w", err)
	}
	defer rows.Close()

	var leaderboard []domain.LeaderboardUser
	for rows.Next() {
		var entry domain.LeaderboardUser
		entry.Punishments = []domain.LeaderboardPunishment{}
		if err := rows.Scan(
			&entry.UserID, &entry.OWUserID, &entry.FirstName, &entry.LastName, &entry.Email,
			&entry.TotalValue, &entry.Punishments,
		); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		leaderboard = append(leaderboard, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard query: %w", err)
	}
	return leaderboard, nil
}

// Helper functions

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.UserID, &u.OWUserID, &u.FirstName, &u.LastName, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user row: %w", err)
	}
	return &u, nil
}

func userCreateArrays(users []domain.UserCreate) (owIDs []int64, firstNames, lastNames []string, emails []*string) {
	owIDs = make([]int64, len(users))
	firstNames = make([]string, len(users))
	lastNames = make([]string, len(users))
	emails = make([]*string, len(users))
	for i, u := range users {
		owIDs[i] = int64(u.OWUserID)
		firstNames[i] = u.FirstName
		lastNames[i] = u.LastName
		emails[i] = u.Email
	}
	return owIDs, firstNames, lastNames, emails
}

func collectIDPairs(rows pgx.Rows) (map[domain.OWUserID]domain.UserID, error) {
	result := make(map[domain.OWUserID]domain.UserID)
	for rows.Next() {
		var userID, owUserID int64
		if err := rows.Scan(&userID, &owUserID); err != nil {
			return nil, err
		}
		result[domain.OWUserID(owUserID)] = domain.UserID(userID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
