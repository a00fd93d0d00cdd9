package service

import (
	"context"
	"fmt"

	"github.com/vengeful-vineyard/backend/internal/domain"
)

// LeaderboardService computes the ranked, paginated punishment leaderboard
type LeaderboardService struct {
	userRepo        domain.UserRepository
	defaultPageSize int
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(userRepo domain.UserRepository, defaultPageSize int) *LeaderboardService {
	return &LeaderboardService{userRepo: userRepo, defaultPageSize: defaultPageSize}
}

// GetLeaderboard returns one page of the leaderboard. Offset and limit must
// be non-negative; a zero limit falls back to the configured page size. No
// upper bound is enforced here — that belongs to the caller.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, offset, limit int) ([]domain.LeaderboardUser, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must be non-negative", domain.ErrInvalidInput)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be non-negative", domain.ErrInvalidInput)
	}
	if limit == 0 {
		limit = s.defaultPageSize
	}

	return s.userRepo.Leaderboard(ctx, offset, limit)
}
