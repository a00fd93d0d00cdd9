package domain

import "time"

// PunishmentID is the store-assigned key for a group punishment row.
type PunishmentID int64

// PunishmentTypeID is the store-assigned key for a punishment type.
type PunishmentTypeID int64

// PunishmentType defines the points-per-unit multiplier for a punishment.
// Owned by the punishment subsystem; read-only here.
type PunishmentType struct {
	PunishmentTypeID PunishmentTypeID `json:"punishment_type_id"`
	Name             string           `json:"name"`
	Value            int64            `json:"value"`
	LogoURL          string           `json:"logo_url"`
}

// LeaderboardPunishment is one punishment row enriched with its type, as it
// appears inside a leaderboard entry.
type LeaderboardPunishment struct {
	PunishmentID   PunishmentID   `json:"punishment_id"`
	GroupID        GroupID        `json:"group_id"`
	UserID         UserID         `json:"user_id"`
	Reason         string         `json:"reason"`
	Amount         int64          `json:"amount"`
	CreatedAt      time.Time      `json:"created_at"`
	PunishmentType PunishmentType `json:"punishment_type"`
}

// LeaderboardUser is a derived projection: a user with their punishment list
// and the aggregated score. Constructed fresh per query, never persisted.
type LeaderboardUser struct {
	User
	Punishments []LeaderboardPunishment `json:"punishments"`
	TotalValue  int64                   `json:"total_value"`
}
