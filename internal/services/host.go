package services

import (
	"context"
	"fmt"
	"time"

	"artwalls/internal/domain"
)

type hostService struct {
	settingsRepo domain.HostSettingsRepository
	now          func() time.Time
}

// NewHostService creates a HostService over the settings repository.
func NewHostService(settingsRepo domain.HostSettingsRepository) domain.HostService {
	return &hostService{settingsRepo: settingsRepo, now: time.Now}
}

func (s *hostService) GetSettings(ctx context.Context, hostID string) (*domain.HostSettings, error) {
	settings, err := s.settingsRepo.GetByHostID(ctx, hostID)
	if err != nil {
		return nil, fmt.Errorf("get host settings: %w", err)
	}
	return settings, nil
}

func (s *hostService) SetWaitlistEnabled(ctx context.Context, hostID, actorID string, enabled bool) (*domain.HostSettings, error) {
	if actorID != hostID {
		return nil, domain.ErrForbidden
	}
	settings := &domain.HostSettings{
		HostID:          hostID,
		WaitlistEnabled: enabled,
		UpdatedAt:       s.now(),
	}
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("save host settings: %w", err)
	}
	return settings, nil
}
