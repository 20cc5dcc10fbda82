package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleCommissioner = "commissioner"
	RoleManager      = "manager"
	RoleCoach        = "coach"
	RolePlayer       = "player"
	RoleParent       = "parent"
	RoleFan          = "fan"
)

func ValidRole(role string) bool {
	switch role {
	case RoleCommissioner, RoleManager, RoleCoach, RolePlayer, RoleParent, RoleFan:
		return true
	default:
		return false
	}
}

// RoleGrant is a durable record that a user holds a role within a league,
// optionally scoped to a single team. A user may hold any number of grants.
type RoleGrant struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	LeagueID   uuid.UUID  `json:"league_id"`
	TeamID     *uuid.UUID `json:"team_id,omitempty"`
	Role       string     `json:"role"`
	AssignedAt time.Time  `json:"assigned_at"`
}

// RoleAssignment is the display projection of a grant: the role plus the
// names of the league and team it applies to.
type RoleAssignment struct {
	Role       string     `json:"role"`
	LeagueID   uuid.UUID  `json:"league_id"`
	LeagueName string     `json:"league_name"`
	TeamID     *uuid.UUID `json:"team_id,omitempty"`
	TeamName   *string    `json:"team_name,omitempty"`
	AssignedAt time.Time  `json:"assigned_at"`
}
