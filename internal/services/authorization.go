package services

import (
	"context"

	"github.com/battersup/battersup-api/internal/database"
	"github.com/battersup/battersup-api/internal/models"
	"github.com/google/uuid"
)

// AuthorizationService is a pure read view over role grants. Every write
// path in the API re-derives its answer through HasRole; nothing here
// mutates state or caches decisions.
type AuthorizationService struct {
	db *database.DB
}

func NewAuthorizationService(db *database.DB) *AuthorizationService {
	return &AuthorizationService{db: db}
}

// RolesFor returns the distinct roles a user holds, each with the league
// and optional team it applies to. Duplicate grants (the same code redeemed
// twice) collapse to one assignment.
func (s *AuthorizationService) RolesFor(ctx context.Context, userID uuid.UUID) ([]models.RoleAssignment, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT ur.role, ur.league_id, l.name, ur.team_id, t.name, MIN(ur.assigned_at) AS assigned_at
		FROM user_roles ur
		JOIN leagues l ON ur.league_id = l.id
		LEFT JOIN teams t ON ur.team_id = t.id
		WHERE ur.user_id = $1
		GROUP BY ur.role, ur.league_id, l.name, ur.team_id, t.name
		ORDER BY assigned_at, ur.role
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []models.RoleAssignment
	for rows.Next() {
		var a models.RoleAssignment
		if err := rows.Scan(&a.Role, &a.LeagueID, &a.LeagueName, &a.TeamID, &a.TeamName, &a.AssignedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// HasRole reports whether the user holds a role in a league. With a team
// given, a league-wide grant (no team scope) also qualifies; with no team
// given, any grant of the role in the league qualifies.
func (s *AuthorizationService) HasRole(ctx context.Context, userID, leagueID uuid.UUID, role string, teamID *uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM user_roles
			WHERE user_id = $1 AND league_id = $2 AND role = $3
			AND ($4::uuid IS NULL OR team_id IS NULL OR team_id = $4)
		)
	`, userID, leagueID, role, teamID).Scan(&exists)
	return exists, err
}
