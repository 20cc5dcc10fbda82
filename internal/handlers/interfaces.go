package handlers

import (
	"context"
	"time"

	"github.com/battersup/battersup-api/internal/models"
	"github.com/battersup/battersup-api/internal/oauth"
	"github.com/battersup/battersup-api/internal/services"
	"github.com/google/uuid"
)

// ProfileServiceInterface defines the methods used by handlers from ProfileService
type ProfileServiceInterface interface {
	FindOrCreateFromOAuth(ctx context.Context, identity *oauth.Identity) (*models.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	Update(ctx context.Context, id uuid.UUID, fullName string, phone *string) (*models.Profile, error)
}

// LeagueServiceInterface defines the methods used by handlers from LeagueService
type LeagueServiceInterface interface {
	CreateWithCommissioner(ctx context.Context, creatorID uuid.UUID, name string, description *string, seasonYear int, status string) (*models.League, error)
	GetByID(ctx context.Context, leagueID uuid.UUID) (*models.League, error)
	GetUserLeagues(ctx context.Context, userID uuid.UUID) ([]models.League, error)
	Update(ctx context.Context, leagueID uuid.UUID, name string, description *string, status string) (*models.League, error)
	Delete(ctx context.Context, leagueID uuid.UUID) error
}

// TeamServiceInterface defines the methods used by handlers from TeamService
type TeamServiceInterface interface {
	Create(ctx context.Context, leagueID uuid.UUID, name string, color *string) (*models.Team, error)
	GetByID(ctx context.Context, teamID uuid.UUID) (*models.Team, error)
	GetByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error)
	BelongsToLeague(ctx context.Context, teamID, leagueID uuid.UUID) (bool, error)
	Update(ctx context.Context, teamID uuid.UUID, name string, color *string) (*models.Team, error)
	Delete(ctx context.Context, teamID uuid.UUID) error
}

// FieldServiceInterface defines the methods used by handlers from FieldService
type FieldServiceInterface interface {
	Create(ctx context.Context, leagueID uuid.UUID, name string, diamondCount int) (*models.Field, error)
	GetByID(ctx context.Context, fieldID uuid.UUID) (*models.Field, error)
	GetByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Field, error)
	Update(ctx context.Context, fieldID uuid.UUID, name string, diamondCount int) (*models.Field, error)
	Delete(ctx context.Context, fieldID uuid.UUID) error
}

// SignupCodeServiceInterface defines the methods used by handlers from SignupCodeService
type SignupCodeServiceInterface interface {
	Issue(ctx context.Context, leagueID uuid.UUID, role string, teamID *uuid.UUID, maxUses *int, expiresAt *time.Time, createdBy uuid.UUID) (*models.SignupCode, error)
	GetByCode(ctx context.Context, rawCode string) (*models.SignupCode, error)
	GetByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.SignupCode, error)
	Disable(ctx context.Context, codeID, leagueID uuid.UUID) error
}

// RedemptionServiceInterface defines the methods used by handlers from RedemptionService
type RedemptionServiceInterface interface {
	Redeem(ctx context.Context, userID uuid.UUID, rawCode string) (*services.RedemptionResult, error)
}

// AuthorizationServiceInterface defines the methods used by handlers from AuthorizationService
type AuthorizationServiceInterface interface {
	RolesFor(ctx context.Context, userID uuid.UUID) ([]models.RoleAssignment, error)
	HasRole(ctx context.Context, userID, leagueID uuid.UUID, role string, teamID *uuid.UUID) (bool, error)
}

// RosterServiceInterface defines the methods used by handlers from RosterService
type RosterServiceInterface interface {
	GetByTeam(ctx context.Context, teamID uuid.UUID) ([]models.RosterEntry, error)
	UpdateEntry(ctx context.Context, entryID, teamID uuid.UUID, position *string, jerseyNumber *int, status string) (*models.RosterEntry, error)
	Remove(ctx context.Context, entryID, teamID uuid.UUID) error
}

// TokenServiceInterface defines the methods used by handlers from TokenService
type TokenServiceInterface interface {
	StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

// JWTServiceInterface defines the methods used by handlers from JWTService
type JWTServiceInterface interface {
	GenerateTokenPair(userID uuid.UUID, email string) (*services.TokenPair, error)
	ValidateRefreshToken(token string) (uuid.UUID, error)
	RefreshExpiry() time.Duration
}

// EmailServiceInterface defines the methods used by handlers from EmailService
type EmailServiceInterface interface {
	SendSignupCode(to, leagueName, role, code, joinURL string) error
}
