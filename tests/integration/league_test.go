package integration

import (
	"context"
	"testing"
	"time"

	"github.com/battersup/battersup-api/internal/models"
	"github.com/battersup/battersup-api/internal/services"
	"github.com/battersup/battersup-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeagueService(tdb *testutil.TestDB) *services.LeagueService {
	return services.NewLeagueService(tdb.DB, 2000, time.Now().Year()+5)
}

func TestLeagueService_Integration_CreateWithCommissioner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := newLeagueService(tdb)
	ctx := context.Background()

	creator := fixtures.CreateProfile(t)
	league, err := svc.CreateWithCommissioner(ctx, creator.ID, "Riverside Youth League", nil, 2026, models.LeagueStatusDraft)

	require.NoError(t, err)
	assert.NotEmpty(t, league.ID)
	assert.Equal(t, "Riverside Youth League", league.Name)
	assert.Equal(t, 2026, league.SeasonYear)
	assert.Equal(t, models.LeagueStatusDraft, league.Status)
	assert.Equal(t, creator.ID, league.CreatedBy)

	// The bootstrap is atomic: the creator comes out holding the
	// commissioner role in the same transaction
	var role string
	err = tdb.DB.Pool.QueryRow(ctx, `
		SELECT role FROM user_roles WHERE user_id = $1 AND league_id = $2 AND team_id IS NULL
	`, creator.ID, league.ID).Scan(&role)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCommissioner, role)
}

func TestLeagueService_Integration_CreateRejectsBadSeasonYear(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := newLeagueService(tdb)
	ctx := context.Background()

	creator := fixtures.CreateProfile(t)
	_, err := svc.CreateWithCommissioner(ctx, creator.ID, "Old Timers", nil, 1950, models.LeagueStatusDraft)
	assert.ErrorIs(t, err, services.ErrInvalidSeasonYear)

	var count int
	err = tdb.DB.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM leagues`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestLeagueService_Integration_GetUserLeagues(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := newLeagueService(tdb)
	ctx := context.Background()

	commissioner := fixtures.CreateProfile(t)
	mine := fixtures.CreateLeague(t, commissioner, testutil.WithLeagueName("Mine"))

	other := fixtures.CreateProfile(t)
	theirs := fixtures.CreateLeague(t, other, testutil.WithLeagueName("Theirs"))

	// A second grant in the same league must not duplicate the row
	fixtures.GrantRole(t, commissioner, mine, models.RoleFan, nil)

	leagues, err := svc.GetUserLeagues(ctx, commissioner.ID)
	require.NoError(t, err)
	require.Len(t, leagues, 1)
	assert.Equal(t, mine.ID, leagues[0].ID)

	leagues, err = svc.GetUserLeagues(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, leagues, 1)
	assert.Equal(t, theirs.ID, leagues[0].ID)
}

func TestLeagueService_Integration_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := newLeagueService(tdb)
	ctx := context.Background()

	commissioner := fixtures.CreateProfile(t)
	league := fixtures.CreateLeague(t, commissioner)

	desc := "Spring season"
	updated, err := svc.Update(ctx, league.ID, "Renamed League", &desc, models.LeagueStatusActive)
	require.NoError(t, err)
	assert.Equal(t, "Renamed League", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Spring season", *updated.Description)
	assert.Equal(t, models.LeagueStatusActive, updated.Status)
}

func TestLeagueService_Integration_DeleteCascades(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := newLeagueService(tdb)
	ctx := context.Background()

	commissioner := fixtures.CreateProfile(t)
	league := fixtures.CreateLeague(t, commissioner)
	team := fixtures.CreateTeam(t, league)
	fixtures.CreateField(t, league)
	fixtures.CreateSignupCode(t, league, commissioner, models.RolePlayer, testutil.WithCodeTeam(team))

	require.NoError(t, svc.Delete(ctx, league.ID))

	for _, table := range []string{"leagues", "teams", "fields", "signup_codes", "user_roles"} {
		var count int
		err := tdb.DB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 0, count, "expected %s to be empty after league delete", table)
	}
}
