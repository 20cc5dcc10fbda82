package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) UNIQUE NOT NULL,
		full_name VARCHAR(255) NOT NULL,
		phone VARCHAR(50),
		avatar_url VARCHAR(500),
		provider VARCHAR(50) NOT NULL,
		provider_id VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(provider, provider_id)
	)`,

	`CREATE TABLE IF NOT EXISTS leagues (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		description TEXT,
		season_year INTEGER NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'draft',
		created_by UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS teams (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		league_id UUID NOT NULL REFERENCES leagues(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		color VARCHAR(50),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS fields (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		league_id UUID NOT NULL REFERENCES leagues(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		diamond_count INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	// Codes are stored normalized (upper-case); redemption normalizes the
	// presented token before lookup. use_count can never pass max_uses.
	`CREATE TABLE IF NOT EXISTS signup_codes (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		league_id UUID NOT NULL REFERENCES leagues(id) ON DELETE CASCADE,
		code VARCHAR(20) UNIQUE NOT NULL,
		role VARCHAR(20) NOT NULL,
		team_id UUID REFERENCES teams(id) ON DELETE CASCADE,
		max_uses INTEGER,
		use_count INTEGER NOT NULL DEFAULT 0,
		expires_at TIMESTAMP WITH TIME ZONE,
		created_by UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		CHECK (max_uses IS NULL OR use_count <= max_uses)
	)`,

	`CREATE TABLE IF NOT EXISTS user_roles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		league_id UUID NOT NULL REFERENCES leagues(id) ON DELETE CASCADE,
		team_id UUID REFERENCES teams(id) ON DELETE CASCADE,
		role VARCHAR(20) NOT NULL,
		assigned_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	// The unique pair backs the idempotent roster insert on repeat redemption.
	`CREATE TABLE IF NOT EXISTS roster_entries (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		player_user_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		position VARCHAR(50),
		jersey_number INTEGER,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(team_id, player_user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS games (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		league_id UUID NOT NULL REFERENCES leagues(id) ON DELETE CASCADE,
		home_team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		away_team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		field_id UUID REFERENCES fields(id) ON DELETE SET NULL,
		scheduled_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		token_hash VARCHAR(255) NOT NULL UNIQUE,
		expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_teams_league_id ON teams(league_id)`,
	`CREATE INDEX IF NOT EXISTS idx_fields_league_id ON fields(league_id)`,
	`CREATE INDEX IF NOT EXISTS idx_signup_codes_league_id ON signup_codes(league_id)`,
	`CREATE INDEX IF NOT EXISTS idx_user_roles_user_id ON user_roles(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_user_roles_league_id ON user_roles(league_id)`,
	`CREATE INDEX IF NOT EXISTS idx_roster_entries_team_id ON roster_entries(team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_games_league_id ON games(league_id)`,
	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user_id ON refresh_tokens(user_id)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
