package dto

import (
	"time"

	"github.com/google/uuid"
)

type IssueCodeRequest struct {
	Role      string     `json:"role"`
	TeamID    *uuid.UUID `json:"team_id"`
	MaxUses   *int       `json:"max_uses"`
	ExpiresAt *time.Time `json:"expires_at"`
	// When set, the code is mailed to this address after issuing.
	SendTo string `json:"send_to"`
}

type SignupCodeResponse struct {
	ID        uuid.UUID  `json:"id"`
	LeagueID  uuid.UUID  `json:"league_id"`
	Code      string     `json:"code"`
	Role      string     `json:"role"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"`
	MaxUses   *int       `json:"max_uses,omitempty"`
	UseCount  int        `json:"use_count"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type JoinRequest struct {
	Code string `json:"code"`
}

type JoinResponse struct {
	LeagueID   uuid.UUID  `json:"league_id"`
	LeagueName string     `json:"league_name"`
	Role       string     `json:"role"`
	TeamID     *uuid.UUID `json:"team_id,omitempty"`
	TeamName   *string    `json:"team_name,omitempty"`
}
