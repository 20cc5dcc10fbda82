package services

import (
	"context"

	"github.com/battersup/battersup-api/internal/database"
	"github.com/battersup/battersup-api/internal/models"
	"github.com/google/uuid"
)

type FieldService struct {
	db *database.DB
}

func NewFieldService(db *database.DB) *FieldService {
	return &FieldService{db: db}
}

func (s *FieldService) Create(ctx context.Context, leagueID uuid.UUID, name string, diamondCount int) (*models.Field, error) {
	var field models.Field
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO fields (league_id, name, diamond_count)
		VALUES ($1, $2, $3)
		RETURNING id, league_id, name, diamond_count, created_at, updated_at
	`, leagueID, name, diamondCount).Scan(
		&field.ID, &field.LeagueID, &field.Name, &field.DiamondCount,
		&field.CreatedAt, &field.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &field, nil
}

func (s *FieldService) GetByID(ctx context.Context, fieldID uuid.UUID) (*models.Field, error) {
	var field models.Field
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, league_id, name, diamond_count, created_at, updated_at
		FROM fields WHERE id = $1
	`, fieldID).Scan(
		&field.ID, &field.LeagueID, &field.Name, &field.DiamondCount,
		&field.CreatedAt, &field.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &field, nil
}

func (s *FieldService) GetByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Field, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, league_id, name, diamond_count, created_at, updated_at
		FROM fields
		WHERE league_id = $1
		ORDER BY name
	`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []models.Field
	for rows.Next() {
		var field models.Field
		if err := rows.Scan(
			&field.ID, &field.LeagueID, &field.Name, &field.DiamondCount,
			&field.CreatedAt, &field.UpdatedAt,
		); err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, rows.Err()
}

func (s *FieldService) Update(ctx context.Context, fieldID uuid.UUID, name string, diamondCount int) (*models.Field, error) {
	var field models.Field
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE fields SET name = $1, diamond_count = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, league_id, name, diamond_count, created_at, updated_at
	`, name, diamondCount, fieldID).Scan(
		&field.ID, &field.LeagueID, &field.Name, &field.DiamondCount,
		&field.CreatedAt, &field.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &field, nil
}

func (s *FieldService) Delete(ctx context.Context, fieldID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM fields WHERE id = $1`, fieldID)
	return err
}
