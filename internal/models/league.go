package models

import (
	"time"

	"github.com/google/uuid"
)

type League struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	SeasonYear  int       `json:"season_year"`
	Status      string    `json:"status"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	LeagueStatusDraft     = "draft"
	LeagueStatusActive    = "active"
	LeagueStatusCompleted = "completed"
)

func ValidLeagueStatus(status string) bool {
	switch status {
	case LeagueStatusDraft, LeagueStatusActive, LeagueStatusCompleted:
		return true
	default:
		return false
	}
}
