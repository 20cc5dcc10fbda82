package testutil

import (
	"context"
	"time"

	"github.com/battersup/battersup-api/internal/models"
	"github.com/battersup/battersup-api/internal/oauth"
	"github.com/battersup/battersup-api/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProfileService mocks the ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) FindOrCreateFromOAuth(ctx context.Context, identity *oauth.Identity) (*models.Profile, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, id uuid.UUID, fullName string, phone *string) (*models.Profile, error) {
	args := m.Called(ctx, id, fullName, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

// MockLeagueService mocks the LeagueService
type MockLeagueService struct {
	mock.Mock
}

func (m *MockLeagueService) CreateWithCommissioner(ctx context.Context, creatorID uuid.UUID, name string, description *string, seasonYear int, status string) (*models.League, error) {
	args := m.Called(ctx, creatorID, name, description, seasonYear, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.League), args.Error(1)
}

func (m *MockLeagueService) GetByID(ctx context.Context, leagueID uuid.UUID) (*models.League, error) {
	args := m.Called(ctx, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.League), args.Error(1)
}

func (m *MockLeagueService) GetUserLeagues(ctx context.Context, userID uuid.UUID) ([]models.League, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.League), args.Error(1)
}

func (m *MockLeagueService) Update(ctx context.Context, leagueID uuid.UUID, name string, description *string, status string) (*models.League, error) {
	args := m.Called(ctx, leagueID, name, description, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.League), args.Error(1)
}

func (m *MockLeagueService) Delete(ctx context.Context, leagueID uuid.UUID) error {
	args := m.Called(ctx, leagueID)
	return args.Error(0)
}

// MockTeamService mocks the TeamService
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) Create(ctx context.Context, leagueID uuid.UUID, name string, color *string) (*models.Team, error) {
	args := m.Called(ctx, leagueID, name, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamService) GetByID(ctx context.Context, teamID uuid.UUID) (*models.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamService) GetByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Team, error) {
	args := m.Called(ctx, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Team), args.Error(1)
}

func (m *MockTeamService) BelongsToLeague(ctx context.Context, teamID, leagueID uuid.UUID) (bool, error) {
	args := m.Called(ctx, teamID, leagueID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTeamService) Update(ctx context.Context, teamID uuid.UUID, name string, color *string) (*models.Team, error) {
	args := m.Called(ctx, teamID, name, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamService) Delete(ctx context.Context, teamID uuid.UUID) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

// MockFieldService mocks the FieldService
type MockFieldService struct {
	mock.Mock
}

func (m *MockFieldService) Create(ctx context.Context, leagueID uuid.UUID, name string, diamondCount int) (*models.Field, error) {
	args := m.Called(ctx, leagueID, name, diamondCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Field), args.Error(1)
}

func (m *MockFieldService) GetByID(ctx context.Context, fieldID uuid.UUID) (*models.Field, error) {
	args := m.Called(ctx, fieldID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Field), args.Error(1)
}

func (m *MockFieldService) GetByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Field, error) {
	args := m.Called(ctx, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Field), args.Error(1)
}

func (m *MockFieldService) Update(ctx context.Context, fieldID uuid.UUID, name string, diamondCount int) (*models.Field, error) {
	args := m.Called(ctx, fieldID, name, diamondCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Field), args.Error(1)
}

func (m *MockFieldService) Delete(ctx context.Context, fieldID uuid.UUID) error {
	args := m.Called(ctx, fieldID)
	return args.Error(0)
}

// MockSignupCodeService mocks the SignupCodeService
type MockSignupCodeService struct {
	mock.Mock
}

func (m *MockSignupCodeService) Issue(ctx context.Context, leagueID uuid.UUID, role string, teamID *uuid.UUID, maxUses *int, expiresAt *time.Time, createdBy uuid.UUID) (*models.SignupCode, error) {
	args := m.Called(ctx, leagueID, role, teamID, maxUses, expiresAt, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SignupCode), args.Error(1)
}

func (m *MockSignupCodeService) GetByCode(ctx context.Context, rawCode string) (*models.SignupCode, error) {
	args := m.Called(ctx, rawCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SignupCode), args.Error(1)
}

func (m *MockSignupCodeService) GetByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.SignupCode, error) {
	args := m.Called(ctx, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SignupCode), args.Error(1)
}

func (m *MockSignupCodeService) Disable(ctx context.Context, codeID, leagueID uuid.UUID) error {
	args := m.Called(ctx, codeID, leagueID)
	return args.Error(0)
}

// MockRedemptionService mocks the RedemptionService
type MockRedemptionService struct {
	mock.Mock
}

func (m *MockRedemptionService) Redeem(ctx context.Context, userID uuid.UUID, rawCode string) (*services.RedemptionResult, error) {
	args := m.Called(ctx, userID, rawCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.RedemptionResult), args.Error(1)
}

// MockAuthorizationService mocks the AuthorizationService
type MockAuthorizationService struct {
	mock.Mock
}

func (m *MockAuthorizationService) RolesFor(ctx context.Context, userID uuid.UUID) ([]models.RoleAssignment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RoleAssignment), args.Error(1)
}

func (m *MockAuthorizationService) HasRole(ctx context.Context, userID, leagueID uuid.UUID, role string, teamID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, leagueID, role, teamID)
	return args.Bool(0), args.Error(1)
}

// MockRosterService mocks the RosterService
type MockRosterService struct {
	mock.Mock
}

func (m *MockRosterService) GetByTeam(ctx context.Context, teamID uuid.UUID) ([]models.RosterEntry, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RosterEntry), args.Error(1)
}

func (m *MockRosterService) UpdateEntry(ctx context.Context, entryID, teamID uuid.UUID, position *string, jerseyNumber *int, status string) (*models.RosterEntry, error) {
	args := m.Called(ctx, entryID, teamID, position, jerseyNumber, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RosterEntry), args.Error(1)
}

func (m *MockRosterService) Remove(ctx context.Context, entryID, teamID uuid.UUID) error {
	args := m.Called(ctx, entryID, teamID)
	return args.Error(0)
}

// MockTokenService mocks the TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockTokenService) ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTokenService) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockTokenService) RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockEmailService mocks the EmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendSignupCode(to, leagueName, role, code, joinURL string) error {
	args := m.Called(to, leagueName, role, code, joinURL)
	return args.Error(0)
}
