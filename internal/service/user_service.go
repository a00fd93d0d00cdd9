package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/vengeful-vineyard/backend/internal/domain"
)

// UserService reconciles externally-sourced user records against the user
// table and exposes the thin per-user read operations.
type UserService struct {
	userRepo domain.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo domain.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Count returns the total number of users
func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}

// GetByID retrieves a user by internal id
func (s *UserService) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetByExternalID retrieves a user by external id
func (s *UserService) GetByExternalID(ctx context.Context, owUserID domain.OWUserID) (*domain.User, error) {
	return s.userRepo.GetByExternalID(ctx, owUserID)
}

// Update overwrites a user's mutable fields by internal id. Absent ids are a
// silent no-op; callers that need existence must read first.
func (s *UserService) Update(ctx context.Context, user domain.UserUpdate) error {
	return s.userRepo.Update(ctx, user)
}

// UpdateMultiple applies a batch of field overwrites keyed by internal id as
// one atomic statement.
func (s *UserService) UpdateMultiple(ctx context.Context, users []domain.UserUpdate) error {
	return s.userRepo.UpdateMultiple(ctx, users)
}

// InsertOrUpdate reconciles a single candidate record: a new external id is
// inserted, a field-different existing user is updated by external id, and an
// identical record is a no-op. A concurrent batch racing on the same new
// external id surfaces as domain.ErrUserExists; recovery requires re-running
// the diff, so it is the caller's decision, not an automatic retry.
func (s *UserService) InsertOrUpdate(ctx context.Context, candidate domain.UserCreate) (domain.SyncResult, error) {
	if err := candidate.Validate(); err != nil {
		return domain.SyncResult{}, err
	}

	existing, err := s.userRepo.GetByExternalID(ctx, candidate.OWUserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			id, err := s.userRepo.Insert(ctx, candidate)
			if err != nil {
				return domain.SyncResult{}, err
			}
			return domain.SyncResult{UserID: id, Action: domain.ActionCreate}, nil
		}
		return domain.SyncResult{}, err
	}

	if candidate.Matches(existing) {
		return domain.SyncResult{UserID: existing.UserID, Action: domain.ActionNoChange}, nil
	}

	id, err := s.userRepo.UpdateByExternalID(ctx, candidate)
	if err != nil {
		return domain.SyncResult{}, err
	}
	return domain.SyncResult{UserID: id, Action: domain.ActionUpdate}, nil
}

// InsertOrUpdateMultiple reconciles a batch of candidate records with one
// pre-read and at most two batched writes, regardless of batch size. The
// result maps every candidate's external id to its internal id; the three
// partitions are disjoint by construction, so the merge cannot collide. A
// failed sub-batch fails the whole call — there is no partial success.
func (s *UserService) InsertOrUpdateMultiple(ctx context.Context, candidates []domain.UserCreate) (map[domain.OWUserID]domain.UserID, error) {
	if len(candidates) == 0 {
		return map[domain.OWUserID]domain.UserID{}, nil
	}

	owUserIDs := make([]domain.OWUserID, 0, len(candidates))
	seen := make(map[domain.OWUserID]struct{}, len(candidates))
	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[c.OWUserID]; dup {
			return nil, fmt.Errorf("%w: duplicate ow_user_id %d in batch", domain.ErrInvalidInput, c.OWUserID)
		}
		seen[c.OWUserID] = struct{}{}
		owUserIDs = append(owUserIDs, c.OWUserID)
	}

	existingUsers, err := s.userRepo.ListByExternalIDs(ctx, owUserIDs)
	if err != nil {
		return nil, err
	}
	existing := make(map[domain.OWUserID]*domain.User, len(existingUsers))
	for i := range existingUsers {
		existing[existingUsers[i].OWUserID] = &existingUsers[i]
	}

	var toCreate, toUpdate []domain.UserCreate
	result := make(map[domain.OWUserID]domain.UserID, len(candidates))
	for _, c := range candidates {
		current, ok := existing[c.OWUserID]
		switch {
		case !ok:
			toCreate = append(toCreate, c)
		case !c.Matches(current):
			toUpdate = append(toUpdate, c)
		default:
			result[c.OWUserID] = current.UserID
		}
	}

	if len(toCreate) > 0 {
		created, err := s.userRepo.InsertMultiple(ctx, toCreate)
		if err != nil {
			return nil, err
		}
		for owID, id := range created {
			result[owID] = id
		}
	}

	if len(toUpdate) > 0 {
		updated, err := s.userRepo.UpdateMultipleByExternalID(ctx, toUpdate)
		if err != nil {
			return nil, err
		}
		for owID, id := range updated {
			result[owID] = id
		}
	}

	log.Debug().
		Int("created", len(toCreate)).
		Int("updated", len(toUpdate)).
		Int("unchanged", len(candidates)-len(toCreate)-len(toUpdate)).
		Msg("Reconciled user batch")

	return result, nil
}
