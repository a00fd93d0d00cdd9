package domain

import (
	"context"
	"fmt"
	"strings"
)

// UserID is the store-assigned surrogate key for a user row.
type UserID int64

// OWUserID is the external identifier from the upstream OW roster. It is the
// natural key for reconciliation: exactly one user row exists per OWUserID.
type OWUserID int64

// User represents a persisted user
type User struct {
	UserID    UserID   `json:"user_id"`
	OWUserID  OWUserID `json:"ow_user_id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     *string  `json:"email"`
}

// UserCreate describes the desired state of a user keyed by external id. It is
// the input to reconciliation, not a persisted entity.
type UserCreate struct {
	OWUserID  OWUserID `json:"ow_user_id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     *string  `json:"email"`
}

// UserUpdate carries a full overwrite of a user's mutable fields keyed by
// internal id.
type UserUpdate struct {
	UserID    UserID  `json:"user_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
}

// SyncAction classifies the outcome of reconciling one user record.
type SyncAction string

// Reconciliation outcomes
const (
	ActionCreate   SyncAction = "CREATE"
	ActionUpdate   SyncAction = "UPDATE"
	ActionNoChange SyncAction = "NO_CHANGE"
)

// SyncResult is the per-user outcome of an insert-or-update; informational
// only, never persisted.
type SyncResult struct {
	UserID UserID     `json:"id"`
	Action SyncAction `json:"action"`
}

// Validate checks that the candidate record is well-formed.
func (c UserCreate) Validate() error {
	if c.OWUserID <= 0 {
		return fmt.Errorf("%w: ow_user_id must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(c.FirstName) == "" {
		return fmt.Errorf("%w: first_name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.LastName) == "" {
		return fmt.Errorf("%w: last_name is required", ErrInvalidInput)
	}
	return nil
}

// Matches reports whether the candidate is field-identical to the persisted
// user. Comparison is exact string equality; a nil email only matches a nil
// email.
func (c UserCreate) Matches(u *User) bool {
	if c.FirstName != u.FirstName || c.LastName != u.LastName {
		return false
	}
	if (c.Email == nil) != (u.Email == nil) {
		return false
	}
	if c.Email != nil && *c.Email != *u.Email {
		return false
	}
	return true
}

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id UserID) (*User, error)
	GetByExternalID(ctx context.Context, owUserID OWUserID) (*User, error)
	ListByExternalIDs(ctx context.Context, owUserIDs []OWUserID) ([]User, error)
	Insert(ctx context.Context, user UserCreate) (UserID, error)
	Update(ctx context.Context, user UserUpdate) error
	UpdateMultiple(ctx context.Context, users []UserUpdate) error
	UpdateByExternalID(ctx context.Context, user UserCreate) (UserID, error)
	InsertMultiple(ctx context.Context, users []UserCreate) (map[OWUserID]UserID, error)
	UpdateMultipleByExternalID(ctx context.Context, users []UserCreate) (map[OWUserID]UserID, error)
	Leaderboard(ctx context.Context, offset, limit int) ([]LeaderboardUser, error)
}
