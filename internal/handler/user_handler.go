package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/vengeful-vineyard/backend/internal/domain"
	"github.com/vengeful-vineyard/backend/internal/service"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService  *service.UserService
	groupService *service.GroupService
	maxSyncBatch int
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *service.UserService, groupService *service.GroupService, maxSyncBatch int) *UserHandler {
	return &UserHandler{
		userService:  userService,
		groupService: groupService,
		maxSyncBatch: maxSyncBatch,
	}
}

// CountResponse represents the user count response
type CountResponse struct {
	Count int64 `json:"count"`
}

// GetCount handles GET /users/count
func (h *UserHandler) GetCount(c echo.Context) error {
	count, err := h.userService.Count(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to count users")
		return NewInternalError(c, "Failed to count users")
	}
	return c.JSON(http.StatusOK, CountResponse{Count: count})
}

// GetUser handles GET /users/:id. The `by=ow` query parameter switches the
// lookup from internal to external id.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid user id", nil)
	}

	ctx := c.Request().Context()
	var user *domain.User
	if c.QueryParam("by") == "ow" {
		user, err = h.userService.GetByExternalID(ctx, domain.OWUserID(id))
	} else {
		user, err = h.userService.GetByID(ctx, domain.UserID(id))
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "User not found")
		}
		log.Error().Err(err).Int64("id", id).Msg("Failed to get user")
		return NewInternalError(c, "Failed to get user")
	}

	return c.JSON(http.StatusOK, user)
}

// GetUserGroups handles GET /users/:id/groups, with the same `by=ow` switch
// as GetUser.
func (h *UserHandler) GetUserGroups(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid user id", nil)
	}

	ctx := c.Request().Context()
	var groups []domain.Group
	if c.QueryParam("by") == "ow" {
		groups, err = h.groupService.GetExternalUserGroups(ctx, domain.OWUserID(id))
	} else {
		groups, err = h.groupService.GetUserGroups(ctx, domain.UserID(id))
	}
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("Failed to get user groups")
		return NewInternalError(c, "Failed to get user groups")
	}

	if groups == nil {
		groups = []domain.Group{}
	}
	return c.JSON(http.StatusOK, groups)
}

// SyncUser handles POST /users/sync
func (h *UserHandler) SyncUser(c echo.Context) error {
	var req domain.UserCreate
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	result, err := h.userService.InsertOrUpdate(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return NewValidationError(c, err.Error(), nil)
		case errors.Is(err, domain.ErrUserExists):
			return NewConflictError(c, err.Error())
		default:
			log.Error().Err(err).Int64("ow_user_id", int64(req.OWUserID)).Msg("Failed to sync user")
			return NewInternalError(c, "Failed to sync user")
		}
	}

	return c.JSON(http.StatusOK, result)
}

// SyncUsersResponse maps each external id to its internal id after a batch
// sync.
type SyncUsersResponse struct {
	Users map[domain.OWUserID]domain.UserID `json:"users"`
}

// SyncUsers handles POST /users/sync/batch
func (h *UserHandler) SyncUsers(c echo.Context) error {
	var req []domain.UserCreate
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if len(req) > h.maxSyncBatch {
		return NewValidationError(c, fmt.Sprintf("Batch exceeds maximum size of %d", h.maxSyncBatch), nil)
	}

	result, err := h.userService.InsertOrUpdateMultiple(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return NewValidationError(c, err.Error(), nil)
		case errors.Is(err, domain.ErrUserExists):
			return NewConflictError(c, err.Error())
		default:
			log.Error().Err(err).Int("candidates", len(req)).Msg("Failed to sync user batch")
			return NewInternalError(c, "Failed to sync user batch")
		}
	}

	return c.JSON(http.StatusOK, SyncUsersResponse{Users: result})
}
