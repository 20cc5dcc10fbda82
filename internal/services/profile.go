package services

import (
	"context"
	"fmt"

	"github.com/battersup/battersup-api/internal/database"
	"github.com/battersup/battersup-api/internal/models"
	"github.com/battersup/battersup-api/internal/oauth"
	"github.com/google/uuid"
)

type ProfileService struct {
	db *database.DB
}

func NewProfileService(db *database.DB) *ProfileService {
	return &ProfileService{db: db}
}

// FindOrCreateFromOAuth looks up the profile for a provider identity and
// creates one on first sign-in.
func (s *ProfileService) FindOrCreateFromOAuth(ctx context.Context, identity *oauth.Identity) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, email, full_name, phone, avatar_url, provider, provider_id, created_at, updated_at
		FROM profiles
		WHERE provider = $1 AND provider_id = $2
	`, identity.Provider, identity.ID).Scan(
		&profile.ID, &profile.Email, &profile.FullName, &profile.Phone,
		&profile.AvatarURL, &profile.Provider, &profile.ProviderID,
		&profile.CreatedAt, &profile.UpdatedAt,
	)

	if err == nil {
		if profile.Email != identity.Email || profile.FullName != identity.FullName {
			_, _ = s.db.Pool.Exec(ctx, `
				UPDATE profiles SET email = $1, full_name = $2, avatar_url = $3, updated_at = NOW()
				WHERE id = $4
			`, identity.Email, identity.FullName, nullableString(identity.AvatarURL), profile.ID)
			profile.Email = identity.Email
			profile.FullName = identity.FullName
		}
		return &profile, nil
	}

	err = s.db.Pool.QueryRow(ctx, `
		INSERT INTO profiles (email, full_name, avatar_url, provider, provider_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, full_name, phone, avatar_url, provider, provider_id, created_at, updated_at
	`, identity.Email, identity.FullName, nullableString(identity.AvatarURL), identity.Provider, identity.ID).Scan(
		&profile.ID, &profile.Email, &profile.FullName, &profile.Phone,
		&profile.AvatarURL, &profile.Provider, &profile.ProviderID,
		&profile.CreatedAt, &profile.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return &profile, nil
}

func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, email, full_name, phone, avatar_url, provider, provider_id, created_at, updated_at
		FROM profiles WHERE id = $1
	`, id).Scan(
		&profile.ID, &profile.Email, &profile.FullName, &profile.Phone,
		&profile.AvatarURL, &profile.Provider, &profile.ProviderID,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, email, full_name, phone, avatar_url, provider, provider_id, created_at, updated_at
		FROM profiles WHERE email = $1
	`, email).Scan(
		&profile.ID, &profile.Email, &profile.FullName, &profile.Phone,
		&profile.AvatarURL, &profile.Provider, &profile.ProviderID,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, fullName string, phone *string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE profiles SET full_name = $1, phone = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, email, full_name, phone, avatar_url, provider, provider_id, created_at, updated_at
	`, fullName, phone, id).Scan(
		&profile.ID, &profile.Email, &profile.FullName, &profile.Phone,
		&profile.AvatarURL, &profile.Provider, &profile.ProviderID,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
