package services

import (
	"context"
	"testing"
	"time"

	"github.com/battersup/battersup-api/internal/database"
	"github.com/battersup/battersup-api/internal/oauth"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProfileService(t *testing.T) (*ProfileService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewProfileService(db), mock
}

func profileRows(id uuid.UUID, email, fullName, provider, providerID string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{"id", "email", "full_name", "phone", "avatar_url", "provider", "provider_id", "created_at", "updated_at"}).
		AddRow(id, email, fullName, (*string)(nil), (*string)(nil), provider, providerID, now, now)
}

func TestProfileService_FindOrCreateFromOAuth_Existing(t *testing.T) {
	svc, mock := setupProfileService(t)
	ctx := context.Background()
	profileID := uuid.New()

	identity := &oauth.Identity{
		Email:    "batter@example.com",
		FullName: "Casey Jones",
		ID:       "12345",
		Provider: "google",
	}

	mock.ExpectQuery(`SELECT .+ FROM profiles\s+WHERE provider = \$1 AND provider_id = \$2`).
		WithArgs("google", "12345").
		WillReturnRows(profileRows(profileID, "batter@example.com", "Casey Jones", "google", "12345"))

	profile, err := svc.FindOrCreateFromOAuth(ctx, identity)

	require.NoError(t, err)
	assert.Equal(t, profileID, profile.ID)
	assert.Equal(t, "batter@example.com", profile.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileService_FindOrCreateFromOAuth_UpdatesChangedIdentity(t *testing.T) {
	svc, mock := setupProfileService(t)
	ctx := context.Background()
	profileID := uuid.New()

	identity := &oauth.Identity{
		Email:    "new@example.com",
		FullName: "Casey Jones",
		ID:       "12345",
		Provider: "google",
	}

	mock.ExpectQuery(`SELECT .+ FROM profiles\s+WHERE provider = \$1 AND provider_id = \$2`).
		WithArgs("google", "12345").
		WillReturnRows(profileRows(profileID, "old@example.com", "Casey Jones", "google", "12345"))
	mock.ExpectExec(`UPDATE profiles SET email`).
		WithArgs("new@example.com", "Casey Jones", (*string)(nil), profileID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	profile, err := svc.FindOrCreateFromOAuth(ctx, identity)

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", profile.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileService_FindOrCreateFromOAuth_CreatesNew(t *testing.T) {
	svc, mock := setupProfileService(t)
	ctx := context.Background()
	profileID := uuid.New()

	identity := &oauth.Identity{
		Email:    "rookie@example.com",
		FullName: "Riley Fox",
		ID:       "98765",
		Provider: "github",
	}

	mock.ExpectQuery(`SELECT .+ FROM profiles\s+WHERE provider = \$1 AND provider_id = \$2`).
		WithArgs("github", "98765").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO profiles`).
		WithArgs("rookie@example.com", "Riley Fox", (*string)(nil), "github", "98765").
		WillReturnRows(profileRows(profileID, "rookie@example.com", "Riley Fox", "github", "98765"))

	profile, err := svc.FindOrCreateFromOAuth(ctx, identity)

	require.NoError(t, err)
	assert.Equal(t, profileID, profile.ID)
	assert.Equal(t, "github", profile.Provider)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileService_GetByID_NotFound(t *testing.T) {
	svc, mock := setupProfileService(t)
	ctx := context.Background()
	profileID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id`).
		WithArgs(profileID).
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.GetByID(ctx, profileID)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileService_Update(t *testing.T) {
	svc, mock := setupProfileService(t)
	ctx := context.Background()
	profileID := uuid.New()
	phone := "555-0101"
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "email", "full_name", "phone", "avatar_url", "provider", "provider_id", "created_at", "updated_at"}).
		AddRow(profileID, "batter@example.com", "Casey R Jones", &phone, (*string)(nil), "google", "12345", now, now)

	mock.ExpectQuery(`UPDATE profiles SET full_name`).
		WithArgs("Casey R Jones", &phone, profileID).
		WillReturnRows(rows)

	profile, err := svc.Update(ctx, profileID, "Casey R Jones", &phone)

	require.NoError(t, err)
	assert.Equal(t, "Casey R Jones", profile.FullName)
	require.NotNil(t, profile.Phone)
	assert.Equal(t, "555-0101", *profile.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}
