package dto

import "github.com/google/uuid"

type CreateLeagueRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	SeasonYear  int     `json:"season_year"`
	Status      string  `json:"status"`
}

type UpdateLeagueRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

type LeagueResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	SeasonYear  int       `json:"season_year"`
	Status      string    `json:"status"`
	CreatedBy   uuid.UUID `json:"created_by"`
}
