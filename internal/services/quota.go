package services

import (
	"context"
	"fmt"
	"time"

	"artwalls/internal/domain"
)

// tierLimits maps each tier to its monthly request allowance. A nil entry
// means unbounded.
var tierLimits = map[domain.Tier]*int{
	domain.TierFree:      intPtr(1),
	domain.TierStarter:   intPtr(5),
	domain.TierPro:       intPtr(20),
	domain.TierUnlimited: nil,
}

// quotaExcludedStatuses are statuses that do not count against the monthly
// allowance: a withdrawn or removed request is demand the artist retracted.
var quotaExcludedStatuses = []domain.RequestStatus{
	domain.StatusWithdrawn,
	domain.StatusRemoved,
}

type quotaCalculator struct {
	requestRepo domain.RequestRepository
	billing     domain.BillingService
	now         func() time.Time
}

// NewQuotaCalculator returns a QuotaCalculator that counts usage from the
// start of the current calendar month. It always hits the authoritative
// store; two concurrent creations must each see an up-to-date count.
func NewQuotaCalculator(requestRepo domain.RequestRepository, billing domain.BillingService) domain.QuotaCalculator {
	return &quotaCalculator{
		requestRepo: requestRepo,
		billing:     billing,
		now:         time.Now,
	}
}

func (c *quotaCalculator) Calculate(ctx context.Context, artistID string) (*domain.QuotaStatus, error) {
	tier, err := c.billing.GetTier(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("resolve tier: %w", err)
	}
	limit, ok := tierLimits[tier]
	if !ok {
		// Unknown tier labels fall back to the smallest allowance.
		tier = domain.TierFree
		limit = tierLimits[domain.TierFree]
	}

	now := c.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	used, err := c.requestRepo.CountByArtistSince(ctx, artistID, monthStart, quotaExcludedStatuses)
	if err != nil {
		return nil, fmt.Errorf("count requests: %w", err)
	}

	status := &domain.QuotaStatus{Tier: tier, Used: used}
	if limit != nil {
		l := *limit
		remaining := l - used
		if remaining < 0 {
			remaining = 0
		}
		status.Limit = &l
		status.Remaining = &remaining
	}
	return status, nil
}

func intPtr(v int) *int { return &v }
