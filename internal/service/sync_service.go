package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vengeful-vineyard/backend/internal/domain"
)

// RosterClient fetches the current user roster from the upstream system of
// record.
type RosterClient interface {
	FetchUsers(ctx context.Context) ([]domain.UserCreate, error)
}

// SyncService pulls the upstream roster and reconciles it against the user
// table in one batch.
type SyncService struct {
	roster      RosterClient
	userService *UserService
}

// NewSyncService creates a new SyncService
func NewSyncService(roster RosterClient, userService *UserService) *SyncService {
	return &SyncService{roster: roster, userService: userService}
}

// SyncUsers fetches the full roster and runs the batch reconciliation. Each
// run is tagged with a uuid so log lines from one run can be correlated.
func (s *SyncService) SyncUsers(ctx context.Context) error {
	runID := uuid.New()
	logger := log.With().Str("sync_run", runID.String()).Logger()

	candidates, err := s.roster.FetchUsers(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch roster")
		return err
	}

	result, err := s.userService.InsertOrUpdateMultiple(ctx, candidates)
	if err != nil {
		logger.Error().Err(err).Int("candidates", len(candidates)).Msg("Failed to reconcile roster")
		return err
	}

	logger.Info().Int("users", len(result)).Msg("Roster sync complete")
	return nil
}
