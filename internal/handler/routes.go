package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, userHandler *UserHandler, leaderboardHandler *LeaderboardHandler, groupHandler *GroupHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// User routes
	users := api.Group("/users")
	users.GET("/count", userHandler.GetCount)
	users.GET("/:id", userHandler.GetUser)
	users.GET("/:id/groups", userHandler.GetUserGroups)
	users.POST("/sync", userHandler.SyncUser)
	users.POST("/sync/batch", userHandler.SyncUsers)

	// Leaderboard
	api.GET("/leaderboard", leaderboardHandler.GetLeaderboard)

	// Group routes
	api.GET("/groups/:id", groupHandler.GetGroup)
}
