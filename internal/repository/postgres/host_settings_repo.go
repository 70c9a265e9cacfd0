package postgres

import (
	"context"
	"database/sql"
	"errors"

	"artwalls/internal/domain"
)

type hostSettingsRepository struct {
	DB *sql.DB
}

func NewHostSettingsRepository(db *sql.DB) domain.HostSettingsRepository {
	return &hostSettingsRepository{DB: db}
}

// GetByHostID returns the host's settings row, or defaults (waitlist
// disabled) when the host has never toggled anything.
func (r *hostSettingsRepository) GetByHostID(ctx context.Context, hostID string) (*domain.HostSettings, error) {
	query := `
		SELECT host_id, waitlist_enabled, updated_at
		FROM host_settings
		WHERE host_id = $1
	`
	s := &domain.HostSettings{}
	err := r.DB.QueryRowContext(ctx, query, hostID).Scan(&s.HostID, &s.WaitlistEnabled, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.HostSettings{HostID: hostID, WaitlistEnabled: false}, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *hostSettingsRepository) Upsert(ctx context.Context, settings *domain.HostSettings) error {
	query := `
		INSERT INTO host_settings (host_id, waitlist_enabled, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (host_id) DO UPDATE
		SET waitlist_enabled = EXCLUDED.waitlist_enabled, updated_at = EXCLUDED.updated_at
	`
	_, err := r.DB.ExecContext(ctx, query, settings.HostID, settings.WaitlistEnabled, settings.UpdatedAt)
	return err
}
