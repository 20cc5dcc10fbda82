package models

import (
	"time"

	"github.com/google/uuid"
)

// Game rows are owned by the scheduling feature; the store keeps them so
// team and field deletions cascade correctly.
type Game struct {
	ID          uuid.UUID  `json:"id"`
	LeagueID    uuid.UUID  `json:"league_id"`
	HomeTeamID  uuid.UUID  `json:"home_team_id"`
	AwayTeamID  uuid.UUID  `json:"away_team_id"`
	FieldID     *uuid.UUID `json:"field_id,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
