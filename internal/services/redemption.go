package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/battersup/battersup-api/internal/database"
	"github.com/battersup/battersup-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrCodeNotFound  = errors.New("signup code not found")
	ErrCodeExpired   = errors.New("signup code has expired")
	ErrCodeExhausted = errors.New("signup code has no uses left")
	// ErrRedemptionConflict means the guarded increment lost a race. The
	// caller may retry once; the engine never retries on its own.
	ErrRedemptionConflict = errors.New("signup code was consumed concurrently")
)

// RedemptionResult is the join-confirmation projection: display names, not
// raw entities.
type RedemptionResult struct {
	LeagueID   uuid.UUID  `json:"league_id"`
	LeagueName string     `json:"league_name"`
	Role       string     `json:"role"`
	TeamID     *uuid.UUID `json:"team_id,omitempty"`
	TeamName   *string    `json:"team_name,omitempty"`
}

type RedemptionService struct {
	db *database.DB
}

func NewRedemptionService(db *database.DB) *RedemptionService {
	return &RedemptionService{db: db}
}

// Redeem consumes one use of a signup code and grants the user the code's
// role. Everything runs in a single transaction: the row lock on the code
// plus the guarded increment guarantee that a code with max_uses = N is
// redeemed at most N times no matter how many calls race. Player codes
// scoped to a team also place the user on that team's roster; the roster
// insert is a no-op if the user is already on it.
func (s *RedemptionService) Redeem(ctx context.Context, userID uuid.UUID, rawCode string) (*RedemptionResult, error) {
	normalized := models.NormalizeCode(rawCode)

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var code models.SignupCode
	err = tx.QueryRow(ctx, `
		SELECT id, league_id, code, role, team_id, max_uses, use_count, expires_at
		FROM signup_codes
		WHERE code = $1
		FOR UPDATE
	`, normalized).Scan(
		&code.ID, &code.LeagueID, &code.Code, &code.Role, &code.TeamID,
		&code.MaxUses, &code.UseCount, &code.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCodeNotFound
		}
		return nil, fmt.Errorf("failed to look up signup code: %w", err)
	}

	// Expiry wins over exhaustion: an expired code reports expired even
	// with uses remaining, and never expire-then-succeeds.
	if code.Expired(time.Now()) {
		return nil, ErrCodeExpired
	}
	if code.Exhausted() {
		return nil, ErrCodeExhausted
	}

	// The increment re-checks the limit in the same statement. Deciding
	// validity in memory and writing separately would let two redemptions
	// of a last remaining use both succeed.
	result, err := tx.Exec(ctx, `
		UPDATE signup_codes SET use_count = use_count + 1
		WHERE id = $1 AND (max_uses IS NULL OR use_count < max_uses)
	`, code.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to consume signup code: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, ErrRedemptionConflict
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO user_roles (user_id, league_id, team_id, role)
		VALUES ($1, $2, $3, $4)
	`, userID, code.LeagueID, code.TeamID, code.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to create role grant: %w", err)
	}

	if code.Role == models.RolePlayer && code.TeamID != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO roster_entries (team_id, player_user_id, status)
			VALUES ($1, $2, $3)
			ON CONFLICT (team_id, player_user_id) DO NOTHING
		`, *code.TeamID, userID, models.RosterStatusActive)
		if err != nil {
			return nil, fmt.Errorf("failed to create roster entry: %w", err)
		}
	}

	redemption := RedemptionResult{
		LeagueID: code.LeagueID,
		Role:     code.Role,
		TeamID:   code.TeamID,
	}

	err = tx.QueryRow(ctx, `SELECT name FROM leagues WHERE id = $1`, code.LeagueID).Scan(&redemption.LeagueName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve league name: %w", err)
	}

	if code.TeamID != nil {
		var teamName string
		err = tx.QueryRow(ctx, `SELECT name FROM teams WHERE id = $1`, *code.TeamID).Scan(&teamName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve team name: %w", err)
		}
		redemption.TeamName = &teamName
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &redemption, nil
}
