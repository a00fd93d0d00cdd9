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

// GroupHandler handles group HTTP requests
type GroupHandler struct {
	groupService *service.GroupService
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// GetGroup handles GET /groups/:id
func (h *GroupHandler) GetGroup(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid group id", nil)
	}

	group, err := h.groupService.GetByID(c.Request().Context(), domain.GroupID(id))
	if err != nil {
		if errors.Is(err, domain.ErrGroupNotFound) {
			return NewNotFoundError(c, "Group not found")
		}
		log.Error().Err(err).Int64("group_id", id).Msg("Failed to get group")
		return NewInternalError(c, "Failed to get group")
	}

	return c.JSON(http.StatusOK, group)
}
