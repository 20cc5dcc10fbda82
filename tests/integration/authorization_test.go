package integration

import (
	"context"
	"testing"

	"github.com/battersup/battersup-api/internal/models"
	"github.com/battersup/battersup-api/internal/services"
	"github.com/battersup/battersup-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationService_Integration_RolesFor(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewAuthorizationService(tdb.DB)
	ctx := context.Background()

	commissioner := fixtures.CreateProfile(t)
	league := fixtures.CreateLeague(t, commissioner, testutil.WithLeagueName("Harbor League"))
	team := fixtures.CreateTeam(t, league, testutil.WithTeamName("Otters"))

	user := fixtures.CreateProfile(t)
	fixtures.GrantRole(t, user, league, models.RolePlayer, &team.ID)
	fixtures.GrantRole(t, user, league, models.RoleParent, nil)

	assignments, err := svc.RolesFor(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 2)

	byRole := map[string]models.RoleAssignment{}
	for _, a := range assignments {
		byRole[a.Role] = a
	}

	player := byRole[models.RolePlayer]
	assert.Equal(t, "Harbor League", player.LeagueName)
	require.NotNil(t, player.TeamID)
	assert.Equal(t, team.ID, *player.TeamID)
	require.NotNil(t, player.TeamName)
	assert.Equal(t, "Otters", *player.TeamName)

	parent := byRole[models.RoleParent]
	assert.Nil(t, parent.TeamID)
	assert.Nil(t, parent.TeamName)
}

func TestAuthorizationService_Integration_RolesFor_CollapsesDuplicateGrants(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewAuthorizationService(tdb.DB)
	ctx := context.Background()

	commissioner := fixtures.CreateProfile(t)
	league := fixtures.CreateLeague(t, commissioner)

	// Redeeming the same fan code twice leaves two identical grant rows;
	// the projection shows the role once
	user := fixtures.CreateProfile(t)
	fixtures.GrantRole(t, user, league, models.RoleFan, nil)
	fixtures.GrantRole(t, user, league, models.RoleFan, nil)

	assignments, err := svc.RolesFor(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, assignments, 1)
}

func TestAuthorizationService_Integration_HasRole(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewAuthorizationService(tdb.DB)
	ctx := context.Background()

	commissioner := fixtures.CreateProfile(t)
	league := fixtures.CreateLeague(t, commissioner)
	team := fixtures.CreateTeam(t, league)
	otherTeam := fixtures.CreateTeam(t, league)

	coach := fixtures.CreateProfile(t)
	fixtures.GrantRole(t, coach, league, models.RoleCoach, &team.ID)

	// Team-scoped grant qualifies for its own team only
	ok, err := svc.HasRole(ctx, coach.ID, league.ID, models.RoleCoach, &team.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.HasRole(ctx, coach.ID, league.ID, models.RoleCoach, &otherTeam.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// With no team filter, any grant of the role in the league qualifies
	ok, err = svc.HasRole(ctx, coach.ID, league.ID, models.RoleCoach, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	// A league-wide grant qualifies for every team
	ok, err = svc.HasRole(ctx, commissioner.ID, league.ID, models.RoleCommissioner, &team.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.HasRole(ctx, coach.ID, league.ID, models.RoleManager, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
