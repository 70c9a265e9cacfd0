package services

import (
	"context"
	"errors"
	"fmt"

	"artwalls/internal/domain"
)

type billingService struct {
	userRepo domain.UserRepository
}

// NewBillingService returns a BillingService that reads the tier stored on
// the user record. A real billing system would sit behind the same
// interface; only the tier label matters to the quota calculator.
func NewBillingService(userRepo domain.UserRepository) domain.BillingService {
	return &billingService{userRepo: userRepo}
}

func (s *billingService) GetTier(ctx context.Context, artistID string) (domain.Tier, error) {
	user, err := s.userRepo.GetByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get user: %w", err)
	}
	if user.Tier == "" {
		return domain.TierFree, nil
	}
	return user.Tier, nil
}
