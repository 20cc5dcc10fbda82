package services

import (
	"context"

	"github.com/battersup/battersup-api/internal/database"
	"github.com/battersup/battersup-api/internal/models"
	"github.com/google/uuid"
)

type TeamService struct {
	db *database.DB
}

func NewTeamService(db *database.DB) *TeamService {
	return &TeamService{db: db}
}

func (s *TeamService) Create(ctx context.Context, leagueID uuid.UUID, name string, color *string) (*models.Team, error) {
	var team models.Team
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO teams (league_id, name, color)
		VALUES ($1, $2, $3)
		RETURNING id, league_id, name, color, created_at, updated_at
	`, leagueID, name, color).Scan(
		&team.ID, &team.LeagueID, &team.Name, &team.Color, &team.CreatedAt, &team.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) GetByID(ctx context.Context, teamID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, league_id, name, color, created_at, updated_at
		FROM teams WHERE id = $1
	`, teamID).Scan(
		&team.ID, &team.LeagueID, &team.Name, &team.Color, &team.CreatedAt, &team.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) GetByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, league_id, name, color, created_at, updated_at
		FROM teams
		WHERE league_id = $1
		ORDER BY name
	`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(
			&team.ID, &team.LeagueID, &team.Name, &team.Color, &team.CreatedAt, &team.UpdatedAt,
		); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// BelongsToLeague reports whether the team exists inside the given league.
func (s *TeamService) BelongsToLeague(ctx context.Context, teamID, leagueID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM teams WHERE id = $1 AND league_id = $2)
	`, teamID, leagueID).Scan(&exists)
	return exists, err
}

func (s *TeamService) Update(ctx context.Context, teamID uuid.UUID, name string, color *string) (*models.Team, error) {
	var team models.Team
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE teams SET name = $1, color = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, league_id, name, color, created_at, updated_at
	`, name, color, teamID).Scan(
		&team.ID, &team.LeagueID, &team.Name, &team.Color, &team.CreatedAt, &team.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) Delete(ctx context.Context, teamID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM teams WHERE id = $1`, teamID)
	return err
}
