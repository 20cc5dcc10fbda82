package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/battersup/battersup-api/internal/database"
	"github.com/battersup/battersup-api/internal/models"
	"github.com/google/uuid"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateProfile creates a test profile with default values
func (f *Fixtures) CreateProfile(t *testing.T, opts ...ProfileOption) *models.Profile {
	t.Helper()
	f.counter++

	profile := &models.Profile{
		Email:      fmt.Sprintf("user%d@example.com", f.counter),
		FullName:   fmt.Sprintf("Test User %d", f.counter),
		Provider:   "github",
		ProviderID: fmt.Sprintf("provider-%d", f.counter),
	}

	for _, opt := range opts {
		opt(profile)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO profiles (email, full_name, phone, avatar_url, provider, provider_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, full_name, phone, avatar_url, provider, provider_id, created_at, updated_at
	`, profile.Email, profile.FullName, profile.Phone, profile.AvatarURL, profile.Provider, profile.ProviderID).Scan(
		&profile.ID, &profile.Email, &profile.FullName, &profile.Phone, &profile.AvatarURL,
		&profile.Provider, &profile.ProviderID, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	return profile
}

// ProfileOption configures a test profile
type ProfileOption func(*models.Profile)

// WithEmail sets the profile's email
func WithEmail(email string) ProfileOption {
	return func(p *models.Profile) {
		p.Email = email
	}
}

// WithFullName sets the profile's display name
func WithFullName(name string) ProfileOption {
	return func(p *models.Profile) {
		p.FullName = name
	}
}

// WithProvider sets the profile's OAuth provider
func WithProvider(provider, providerID string) ProfileOption {
	return func(p *models.Profile) {
		p.Provider = provider
		p.ProviderID = providerID
	}
}

// CreateLeague creates a test league and grants the creator the
// commissioner role, matching what the bootstrap path produces
func (f *Fixtures) CreateLeague(t *testing.T, creator *models.Profile, opts ...LeagueOption) *models.League {
	t.Helper()
	f.counter++

	league := &models.League{
		Name:       fmt.Sprintf("Test League %d", f.counter),
		SeasonYear: time.Now().Year(),
		Status:     models.LeagueStatusDraft,
		CreatedBy:  creator.ID,
	}

	for _, opt := range opts {
		opt(league)
	}

	ctx := context.Background()
	tx, err := f.db.Pool.Begin(ctx)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO leagues (name, description, season_year, status, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, season_year, status, created_by, created_at, updated_at
	`, league.Name, league.Description, league.SeasonYear, league.Status, league.CreatedBy).Scan(
		&league.ID, &league.Name, &league.Description, &league.SeasonYear,
		&league.Status, &league.CreatedBy, &league.CreatedAt, &league.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create league: %v", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO user_roles (user_id, league_id, role)
		VALUES ($1, $2, $3)
	`, creator.ID, league.ID, models.RoleCommissioner)
	if err != nil {
		t.Fatalf("failed to grant commissioner role: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("failed to commit transaction: %v", err)
	}

	return league
}

// LeagueOption configures a test league
type LeagueOption func(*models.League)

// WithLeagueName sets the league's name
func WithLeagueName(name string) LeagueOption {
	return func(l *models.League) {
		l.Name = name
	}
}

// WithSeasonYear sets the league's season year
func WithSeasonYear(year int) LeagueOption {
	return func(l *models.League) {
		l.SeasonYear = year
	}
}

// WithStatus sets the league's lifecycle status
func WithStatus(status string) LeagueOption {
	return func(l *models.League) {
		l.Status = status
	}
}

// CreateTeam creates a test team in the given league
func (f *Fixtures) CreateTeam(t *testing.T, league *models.League, opts ...TeamOption) *models.Team {
	t.Helper()
	f.counter++

	team := &models.Team{
		LeagueID: league.ID,
		Name:     fmt.Sprintf("Test Team %d", f.counter),
	}

	for _, opt := range opts {
		opt(team)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO teams (league_id, name, color)
		VALUES ($1, $2, $3)
		RETURNING id, league_id, name, color, created_at, updated_at
	`, team.LeagueID, team.Name, team.Color).Scan(
		&team.ID, &team.LeagueID, &team.Name, &team.Color, &team.CreatedAt, &team.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create team: %v", err)
	}

	return team
}

// TeamOption configures a test team
type TeamOption func(*models.Team)

// WithTeamName sets the team's name
func WithTeamName(name string) TeamOption {
	return func(tm *models.Team) {
		tm.Name = name
	}
}

// WithColor sets the team's color
func WithColor(color string) TeamOption {
	return func(tm *models.Team) {
		tm.Color = &color
	}
}

// CreateField creates a test field in the given league
func (f *Fixtures) CreateField(t *testing.T, league *models.League) *models.Field {
	t.Helper()
	f.counter++

	field := &models.Field{
		LeagueID:     league.ID,
		Name:         fmt.Sprintf("Test Field %d", f.counter),
		DiamondCount: 1,
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO fields (league_id, name, diamond_count)
		VALUES ($1, $2, $3)
		RETURNING id, league_id, name, diamond_count, created_at, updated_at
	`, field.LeagueID, field.Name, field.DiamondCount).Scan(
		&field.ID, &field.LeagueID, &field.Name, &field.DiamondCount,
		&field.CreatedAt, &field.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create field: %v", err)
	}

	return field
}

// CreateSignupCode creates a test signup code issued by the given profile
func (f *Fixtures) CreateSignupCode(t *testing.T, league *models.League, issuer *models.Profile, role string, opts ...CodeOption) *models.SignupCode {
	t.Helper()
	f.counter++

	code := &models.SignupCode{
		LeagueID:  league.ID,
		Code:      fmt.Sprintf("BU-TST%03d", f.counter),
		Role:      role,
		CreatedBy: issuer.ID,
	}

	for _, opt := range opts {
		opt(code)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO signup_codes (league_id, code, role, team_id, max_uses, use_count, expires_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, league_id, code, role, team_id, max_uses, use_count, expires_at, created_by, created_at
	`, code.LeagueID, code.Code, code.Role, code.TeamID, code.MaxUses, code.UseCount, code.ExpiresAt, code.CreatedBy).Scan(
		&code.ID, &code.LeagueID, &code.Code, &code.Role, &code.TeamID,
		&code.MaxUses, &code.UseCount, &code.ExpiresAt, &code.CreatedBy, &code.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create signup code: %v", err)
	}

	return code
}

// CodeOption configures a test signup code
type CodeOption func(*models.SignupCode)

// WithCodeTeam scopes the code to a team
func WithCodeTeam(team *models.Team) CodeOption {
	return func(c *models.SignupCode) {
		c.TeamID = &team.ID
	}
}

// WithMaxUses caps the code's redemptions
func WithMaxUses(n int) CodeOption {
	return func(c *models.SignupCode) {
		c.MaxUses = &n
	}
}

// WithUseCount pre-spends some of the code's uses
func WithUseCount(n int) CodeOption {
	return func(c *models.SignupCode) {
		c.UseCount = n
	}
}

// WithExpiry sets the code's expiry timestamp
func WithExpiry(at time.Time) CodeOption {
	return func(c *models.SignupCode) {
		c.ExpiresAt = &at
	}
}

// GrantRole inserts a role grant directly, bypassing the redemption path
func (f *Fixtures) GrantRole(t *testing.T, user *models.Profile, league *models.League, role string, teamID *uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO user_roles (user_id, league_id, team_id, role)
		VALUES ($1, $2, $3, $4)
	`, user.ID, league.ID, teamID, role)
	if err != nil {
		t.Fatalf("failed to grant role: %v", err)
	}
}

// AddRosterEntry places a player on a team's roster
func (f *Fixtures) AddRosterEntry(t *testing.T, team *models.Team, player *models.Profile) *models.RosterEntry {
	t.Helper()

	entry := &models.RosterEntry{
		TeamID:       team.ID,
		PlayerUserID: player.ID,
		Status:       models.RosterStatusActive,
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO roster_entries (team_id, player_user_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, team_id, player_user_id, position, jersey_number, status, created_at, updated_at
	`, entry.TeamID, entry.PlayerUserID, entry.Status).Scan(
		&entry.ID, &entry.TeamID, &entry.PlayerUserID, &entry.Position,
		&entry.JerseyNumber, &entry.Status, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create roster entry: %v", err)
	}

	return entry
}
