package config

import (
	"database/sql"
	"fmt"
)

// RunMigrations applies the idempotent schema. Each statement is safe to run
// repeatedly; ordering matters only for foreign keys.
func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			salt VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL DEFAULT '',
			tier VARCHAR(32) NOT NULL DEFAULT 'free',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			code VARCHAR(32) UNIQUE NOT NULL
		)`,

		`INSERT INTO roles (code) VALUES ('artist'), ('host')
			ON CONFLICT (code) DO NOTHING`,

		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, role_id)
		)`,

		`CREATE TABLE IF NOT EXISTS requests (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			artist_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			host_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			kind VARCHAR(32) NOT NULL,
			status VARCHAR(32) NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			artwork_id UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// Backstop for the duplicate guard: one live request per pair.
		// The race the service's pre-check cannot close lands here.
		`CREATE UNIQUE INDEX IF NOT EXISTS requests_active_pair_idx
			ON requests (artist_id, host_id)
			WHERE status NOT IN ('approved', 'rejected', 'withdrawn', 'removed', 'converted_to_application')`,

		`CREATE INDEX IF NOT EXISTS requests_host_created_idx
			ON requests (host_id, created_at DESC)`,

		`CREATE INDEX IF NOT EXISTS requests_artist_created_idx
			ON requests (artist_id, created_at DESC)`,

		`CREATE TABLE IF NOT EXISTS invites (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			host_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			email VARCHAR(255) NOT NULL,
			token VARCHAR(64) UNIQUE NOT NULL,
			status VARCHAR(32) NOT NULL,
			click_count INTEGER NOT NULL DEFAULT 0,
			first_opened_at TIMESTAMPTZ,
			sent_at TIMESTAMPTZ,
			accepted_at TIMESTAMPTZ,
			declined_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS host_settings (
			host_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			waitlist_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
