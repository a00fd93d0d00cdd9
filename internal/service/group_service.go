package service

import (
	"context"

	"github.com/vengeful-vineyard/backend/internal/domain"
)

// GroupService exposes the group reads this core needs: single group lookup
// and a user's memberships. Group CRUD lives in the group subsystem.
type GroupService struct {
	groupRepo domain.GroupRepository
}

// NewGroupService creates a new GroupService
func NewGroupService(groupRepo domain.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

// GetByID retrieves a group by id
func (s *GroupService) GetByID(ctx context.Context, id domain.GroupID) (*domain.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}

// GetUserGroups returns all groups the user belongs to, by internal id
func (s *GroupService) GetUserGroups(ctx context.Context, userID domain.UserID) ([]domain.Group, error) {
	return s.groupRepo.ListForUser(ctx, userID)
}

// GetExternalUserGroups returns all groups the user belongs to, by external id
func (s *GroupService) GetExternalUserGroups(ctx context.Context, owUserID domain.OWUserID) ([]domain.Group, error) {
	return s.groupRepo.ListForExternalUser(ctx, owUserID)
}
