package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/battersup/battersup-api/internal/database"
	"github.com/battersup/battersup-api/internal/models"
	"github.com/google/uuid"
)

var (
	ErrInvalidLeagueName   = errors.New("league name cannot be empty")
	ErrInvalidSeasonYear   = errors.New("season year outside allowed range")
	ErrInvalidLeagueStatus = errors.New("invalid league status")
)

type LeagueService struct {
	db            *database.DB
	seasonYearMin int
	seasonYearMax int
}

func NewLeagueService(db *database.DB, seasonYearMin, seasonYearMax int) *LeagueService {
	return &LeagueService{
		db:            db,
		seasonYearMin: seasonYearMin,
		seasonYearMax: seasonYearMax,
	}
}

// CreateWithCommissioner creates a league and grants the creator the
// commissioner role in a single transaction. A league without a commissioner
// or a grant without its league can never be persisted.
func (s *LeagueService) CreateWithCommissioner(ctx context.Context, creatorID uuid.UUID, name string, description *string, seasonYear int, status string) (*models.League, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidLeagueName
	}
	if seasonYear < s.seasonYearMin || seasonYear > s.seasonYearMax {
		return nil, ErrInvalidSeasonYear
	}
	if !models.ValidLeagueStatus(status) {
		return nil, ErrInvalidLeagueStatus
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var league models.League
	err = tx.QueryRow(ctx, `
		INSERT INTO leagues (name, description, season_year, status, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, season_year, status, created_by, created_at, updated_at
	`, name, description, seasonYear, status, creatorID).Scan(
		&league.ID, &league.Name, &league.Description, &league.SeasonYear,
		&league.Status, &league.CreatedBy, &league.CreatedAt, &league.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO user_roles (user_id, league_id, role)
		VALUES ($1, $2, $3)
	`, creatorID, league.ID, models.RoleCommissioner)
	if err != nil {
		return nil, fmt.Errorf("failed to grant commissioner role: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &league, nil
}

func (s *LeagueService) GetByID(ctx context.Context, leagueID uuid.UUID) (*models.League, error) {
	var league models.League
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, name, description, season_year, status, created_by, created_at, updated_at
		FROM leagues WHERE id = $1
	`, leagueID).Scan(
		&league.ID, &league.Name, &league.Description, &league.SeasonYear,
		&league.Status, &league.CreatedBy, &league.CreatedAt, &league.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &league, nil
}

// GetUserLeagues returns the leagues a user holds at least one role in.
func (s *LeagueService) GetUserLeagues(ctx context.Context, userID uuid.UUID) ([]models.League, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT DISTINCT l.id, l.name, l.description, l.season_year, l.status, l.created_by, l.created_at, l.updated_at
		FROM leagues l
		JOIN user_roles ur ON l.id = ur.league_id
		WHERE ur.user_id = $1
		ORDER BY l.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leagues []models.League
	for rows.Next() {
		var league models.League
		if err := rows.Scan(
			&league.ID, &league.Name, &league.Description, &league.SeasonYear,
			&league.Status, &league.CreatedBy, &league.CreatedAt, &league.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leagues = append(leagues, league)
	}
	return leagues, rows.Err()
}

func (s *LeagueService) Update(ctx context.Context, leagueID uuid.UUID, name string, description *string, status string) (*models.League, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidLeagueName
	}
	if !models.ValidLeagueStatus(status) {
		return nil, ErrInvalidLeagueStatus
	}

	var league models.League
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE leagues SET name = $1, description = $2, status = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, name, description, season_year, status, created_by, created_at, updated_at
	`, name, description, status, leagueID).Scan(
		&league.ID, &league.Name, &league.Description, &league.SeasonYear,
		&league.Status, &league.CreatedBy, &league.CreatedAt, &league.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &league, nil
}

func (s *LeagueService) Delete(ctx context.Context, leagueID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM leagues WHERE id = $1`, leagueID)
	return err
}
