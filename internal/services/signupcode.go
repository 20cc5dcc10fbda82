package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/battersup/battersup-api/internal/database"
	"github.com/battersup/battersup-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidTeamScope = errors.New("team does not belong to the code's league")
	ErrInvalidMaxUses   = errors.New("max uses must be at least 1")
	ErrInvalidExpiry    = errors.New("expiry must be in the future")
	ErrInvalidRole      = errors.New("invalid role")
	ErrCodeGeneration   = errors.New("could not generate a unique code")
)

const (
	codePrefix = "BU-"
	codeLength = 6
	// No 0/O/1/I: codes get typed from paper flyers and team chats.
	codeAlphabet    = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	maxCodeAttempts = 5
	uniqueViolation = "23505"
)

type SignupCodeService struct {
	db *database.DB
}

func NewSignupCodeService(db *database.DB) *SignupCodeService {
	return &SignupCodeService{db: db}
}

// Issue creates a signup code bound to a league, a role and optionally a
// team. The caller is responsible for checking the issuer holds the
// commissioner role.
func (s *SignupCodeService) Issue(ctx context.Context, leagueID uuid.UUID, role string, teamID *uuid.UUID, maxUses *int, expiresAt *time.Time, createdBy uuid.UUID) (*models.SignupCode, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if maxUses != nil && *maxUses < 1 {
		return nil, ErrInvalidMaxUses
	}
	if expiresAt != nil && !expiresAt.After(time.Now()) {
		return nil, ErrInvalidExpiry
	}

	if teamID != nil {
		var inLeague bool
		err := s.db.Pool.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM teams WHERE id = $1 AND league_id = $2)
		`, *teamID, leagueID).Scan(&inLeague)
		if err != nil {
			return nil, fmt.Errorf("failed to check team scope: %w", err)
		}
		if !inLeague {
			return nil, ErrInvalidTeamScope
		}
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		token, err := generateCodeToken()
		if err != nil {
			return nil, err
		}

		var code models.SignupCode
		err = s.db.Pool.QueryRow(ctx, `
			INSERT INTO signup_codes (league_id, code, role, team_id, max_uses, expires_at, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, league_id, code, role, team_id, max_uses, use_count, expires_at, created_by, created_at
		`, leagueID, token, role, teamID, maxUses, expiresAt, createdBy).Scan(
			&code.ID, &code.LeagueID, &code.Code, &code.Role, &code.TeamID,
			&code.MaxUses, &code.UseCount, &code.ExpiresAt, &code.CreatedBy, &code.CreatedAt,
		)
		if err != nil {
			// Regenerate on a token collision, fail on anything else.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				continue
			}
			return nil, fmt.Errorf("failed to create signup code: %w", err)
		}
		return &code, nil
	}

	return nil, ErrCodeGeneration
}

// GetByCode looks up a code by its normalized token. Used by the public
// join preview; validity is not checked here.
func (s *SignupCodeService) GetByCode(ctx context.Context, rawCode string) (*models.SignupCode, error) {
	var code models.SignupCode
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, league_id, code, role, team_id, max_uses, use_count, expires_at, created_by, created_at
		FROM signup_codes WHERE code = $1
	`, models.NormalizeCode(rawCode)).Scan(
		&code.ID, &code.LeagueID, &code.Code, &code.Role, &code.TeamID,
		&code.MaxUses, &code.UseCount, &code.ExpiresAt, &code.CreatedBy, &code.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (s *SignupCodeService) GetByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.SignupCode, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, league_id, code, role, team_id, max_uses, use_count, expires_at, created_by, created_at
		FROM signup_codes
		WHERE league_id = $1
		ORDER BY created_at DESC
	`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []models.SignupCode
	for rows.Next() {
		var code models.SignupCode
		if err := rows.Scan(
			&code.ID, &code.LeagueID, &code.Code, &code.Role, &code.TeamID,
			&code.MaxUses, &code.UseCount, &code.ExpiresAt, &code.CreatedBy, &code.CreatedAt,
		); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// Disable expires a code immediately. Codes are never deleted; their usage
// history stays queryable.
func (s *SignupCodeService) Disable(ctx context.Context, codeID, leagueID uuid.UUID) error {
	result, err := s.db.Pool.Exec(ctx, `
		UPDATE signup_codes SET expires_at = NOW()
		WHERE id = $1 AND league_id = $2
	`, codeID, leagueID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrCodeNotFound
	}
	return nil
}

func generateCodeToken() (string, error) {
	b := make([]byte, codeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}
		b[i] = codeAlphabet[n.Int64()]
	}
	return codePrefix + string(b), nil
}
