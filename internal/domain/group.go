package domain

import "context"

// GroupID is the store-assigned key for a group.
type GroupID int64

// Group represents a group users belong to. Group CRUD is owned by the group
// subsystem; this core only reads groups through membership.
type Group struct {
	GroupID   GroupID `json:"group_id"`
	OWGroupID *int64  `json:"ow_group_id"`
	Name      string  `json:"name"`
	NameShort string  `json:"name_short"`
	Rules     string  `json:"rules"`
	Image     string  `json:"image"`
}

// GroupRepository defines the interface for group read operations
type GroupRepository interface {
	GetByID(ctx context.Context, id GroupID) (*Group, error)
	ListForUser(ctx context.Context, userID UserID) ([]Group, error)
	ListForExternalUser(ctx context.Context, owUserID OWUserID) ([]Group, error)
}
