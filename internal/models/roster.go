package models

import (
	"time"

	"github.com/google/uuid"
)

type RosterEntry struct {
	ID           uuid.UUID `json:"id"`
	TeamID       uuid.UUID `json:"team_id"`
	PlayerUserID uuid.UUID `json:"player_user_id"`
	Position     *string   `json:"position,omitempty"`
	JerseyNumber *int      `json:"jersey_number,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Player       *Profile  `json:"player,omitempty"`
}

const (
	RosterStatusActive   = "active"
	RosterStatusInactive = "inactive"
	RosterStatusInjured  = "injured"
)

func ValidRosterStatus(status string) bool {
	switch status {
	case RosterStatusActive, RosterStatusInactive, RosterStatusInjured:
		return true
	default:
		return false
	}
}
