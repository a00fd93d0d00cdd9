package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/vengeful-vineyard/backend/internal/domain"
	"github.com/vengeful-vineyard/backend/internal/service"
)

// LeaderboardHandler handles leaderboard HTTP requests
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler creates a new LeaderboardHandler
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// GetLeaderboard handles GET /leaderboard?offset=&limit=
func (h *LeaderboardHandler) GetLeaderboard(c echo.Context) error {
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return NewValidationError(c, "Invalid offset", nil)
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return NewValidationError(c, "Invalid limit", nil)
	}

	leaderboard, err := h.leaderboardService.GetLeaderboard(c.Request().Context(), offset, limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return NewValidationError(c, err.Error(), nil)
		}
		log.Error().Err(err).Int("offset", offset).Int("limit", limit).Msg("Failed to get leaderboard")
		return NewInternalError(c, "Failed to get leaderboard")
	}

	if leaderboard == nil {
		leaderboard = []domain.LeaderboardUser{}
	}
	return c.JSON(http.StatusOK, leaderboard)
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
