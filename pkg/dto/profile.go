package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Provider  string    `json:"provider"`
}

type UpdateProfileRequest struct {
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone"`
}

type RoleAssignmentResponse struct {
	Role       string     `json:"role"`
	LeagueID   uuid.UUID  `json:"league_id"`
	LeagueName string     `json:"league_name"`
	TeamID     *uuid.UUID `json:"team_id,omitempty"`
	TeamName   *string    `json:"team_name,omitempty"`
	AssignedAt time.Time  `json:"assigned_at"`
}
