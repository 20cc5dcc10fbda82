package services

import (
	"context"
	"errors"

	"github.com/battersup/battersup-api/internal/database"
	"github.com/battersup/battersup-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrRosterEntryNotFound = errors.New("roster entry not found")
	ErrInvalidRosterStatus = errors.New("invalid roster status")
)

// RosterService manages roster rows after redemption has placed a player on
// a team. Creation happens inside the redemption transaction, not here.
type RosterService struct {
	db *database.DB
}

func NewRosterService(db *database.DB) *RosterService {
	return &RosterService{db: db}
}

func (s *RosterService) GetByTeam(ctx context.Context, teamID uuid.UUID) ([]models.RosterEntry, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT re.id, re.team_id, re.player_user_id, re.position, re.jersey_number, re.status, re.created_at, re.updated_at,
		       p.id, p.email, p.full_name, p.phone, p.avatar_url, p.provider, p.provider_id, p.created_at, p.updated_at
		FROM roster_entries re
		JOIN profiles p ON re.player_user_id = p.id
		WHERE re.team_id = $1
		ORDER BY re.created_at
	`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.RosterEntry
	for rows.Next() {
		var entry models.RosterEntry
		var player models.Profile
		if err := rows.Scan(
			&entry.ID, &entry.TeamID, &entry.PlayerUserID, &entry.Position,
			&entry.JerseyNumber, &entry.Status, &entry.CreatedAt, &entry.UpdatedAt,
			&player.ID, &player.Email, &player.FullName, &player.Phone,
			&player.AvatarURL, &player.Provider, &player.ProviderID,
			&player.CreatedAt, &player.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entry.Player = &player
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *RosterService) UpdateEntry(ctx context.Context, entryID, teamID uuid.UUID, position *string, jerseyNumber *int, status string) (*models.RosterEntry, error) {
	if !models.ValidRosterStatus(status) {
		return nil, ErrInvalidRosterStatus
	}

	var entry models.RosterEntry
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE roster_entries SET position = $1, jersey_number = $2, status = $3, updated_at = NOW()
		WHERE id = $4 AND team_id = $5
		RETURNING id, team_id, player_user_id, position, jersey_number, status, created_at, updated_at
	`, position, jerseyNumber, status, entryID, teamID).Scan(
		&entry.ID, &entry.TeamID, &entry.PlayerUserID, &entry.Position,
		&entry.JerseyNumber, &entry.Status, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRosterEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (s *RosterService) Remove(ctx context.Context, entryID, teamID uuid.UUID) error {
	result, err := s.db.Pool.Exec(ctx, `
		DELETE FROM roster_entries WHERE id = $1 AND team_id = $2
	`, entryID, teamID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrRosterEntryNotFound
	}
	return nil
}
