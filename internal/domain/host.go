package domain

import (
	"context"
	"time"
)

// HostSettings holds per-host feature flags.
// swagger:model HostSettings
type HostSettings struct {
	HostID          string    `json:"host_id"`
	WaitlistEnabled bool      `json:"waitlist_enabled"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HostSettingsRepository defines storage operations for host settings.
// GetByHostID returns default settings (waitlist disabled) when no row
// exists yet.
type HostSettingsRepository interface {
	GetByHostID(ctx context.Context, hostID string) (*HostSettings, error)
	Upsert(ctx context.Context, settings *HostSettings) error
}

// HostService defines host-facing settings operations.
type HostService interface {
	GetSettings(ctx context.Context, hostID string) (*HostSettings, error)
	SetWaitlistEnabled(ctx context.Context, hostID, actorID string, enabled bool) (*HostSettings, error)
}
