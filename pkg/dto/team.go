package dto

import "github.com/google/uuid"

type CreateTeamRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type UpdateTeamRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type TeamResponse struct {
	ID       uuid.UUID `json:"id"`
	LeagueID uuid.UUID `json:"league_id"`
	Name     string    `json:"name"`
	Color    *string   `json:"color,omitempty"`
}

type CreateFieldRequest struct {
	Name         string `json:"name"`
	DiamondCount int    `json:"diamond_count"`
}

type UpdateFieldRequest struct {
	Name         string `json:"name"`
	DiamondCount int    `json:"diamond_count"`
}

type FieldResponse struct {
	ID           uuid.UUID `json:"id"`
	LeagueID     uuid.UUID `json:"league_id"`
	Name         string    `json:"name"`
	DiamondCount int       `json:"diamond_count"`
}

type RosterEntryResponse struct {
	ID           uuid.UUID        `json:"id"`
	TeamID       uuid.UUID        `json:"team_id"`
	PlayerUserID uuid.UUID        `json:"player_user_id"`
	Position     *string          `json:"position,omitempty"`
	JerseyNumber *int             `json:"jersey_number,omitempty"`
	Status       string           `json:"status"`
	Player       *ProfileResponse `json:"player,omitempty"`
}

type UpdateRosterEntryRequest struct {
	Position     *string `json:"position"`
	JerseyNumber *int    `json:"jersey_number"`
	Status       string  `json:"status"`
}
