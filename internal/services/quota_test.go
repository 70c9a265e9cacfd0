package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artwalls/internal/domain"
)

type mockBillingService struct {
	tier domain.Tier
	err  error
}

func (m *mockBillingService) GetTier(ctx context.Context, artistID string) (domain.Tier, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.tier, nil
}

// countingRequestRepo counts the non-excluded requests it was seeded with,
// mimicking the repository's quota query.
type countingRequestRepo struct {
	mockRequestRepo
	requests []*domain.Request
}

func (m *countingRequestRepo) CountByArtistSince(ctx context.Context, artistID string, since time.Time, excluded []domain.RequestStatus) (int, error) {
	count := 0
	for _, r := range m.requests {
		if r.ArtistID != artistID || r.CreatedAt.Before(since) {
			continue
		}
		skip := false
		for _, s := range excluded {
			if r.Status == s {
				skip = true
				break
			}
		}
		if !skip {
			count++
		}
	}
	return count, nil
}

func TestQuotaCalculator_Calculate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mk := func(status domain.RequestStatus, createdAt time.Time) *domain.Request {
		return &domain.Request{ArtistID: "artist-1", HostID: "host-x", Status: status, CreatedAt: createdAt}
	}

	tests := []struct {
		name          string
		tier          domain.Tier
		requests      []*domain.Request
		wantUsed      int
		wantLimit     *int
		wantRemaining *int
	}{
		{
			name: "starter counts only this month's requests",
			tier: domain.TierStarter,
			requests: []*domain.Request{
				mk(domain.StatusSubmitted, monthStart),
				mk(domain.StatusApproved, now.Add(-24*time.Hour)),
				mk(domain.StatusSubmitted, monthStart.Add(-time.Second)), // previous month
			},
			wantUsed:      2,
			wantLimit:     intPtr(5),
			wantRemaining: intPtr(3),
		},
		{
			name: "withdrawn and removed are excluded",
			tier: domain.TierStarter,
			requests: []*domain.Request{
				mk(domain.StatusSubmitted, now.Add(-time.Hour)),
				mk(domain.StatusWithdrawn, now.Add(-2*time.Hour)),
				mk(domain.StatusRemoved, now.Add(-3*time.Hour)),
			},
			wantUsed:      1,
			wantLimit:     intPtr(5),
			wantRemaining: intPtr(4),
		},
		{
			name: "remaining clamps at zero",
			tier: domain.TierFree,
			requests: []*domain.Request{
				mk(domain.StatusSubmitted, now.Add(-time.Hour)),
				mk(domain.StatusApproved, now.Add(-2*time.Hour)),
			},
			wantUsed:      2,
			wantLimit:     intPtr(1),
			wantRemaining: intPtr(0),
		},
		{
			name: "unlimited tier reports nil limit and remaining",
			tier: domain.TierUnlimited,
			requests: []*domain.Request{
				mk(domain.StatusSubmitted, now.Add(-time.Hour)),
			},
			wantUsed: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &countingRequestRepo{requests: tt.requests}
			calc := NewQuotaCalculator(repo, &mockBillingService{tier: tt.tier}).(*quotaCalculator)
			calc.now = func() time.Time { return now }

			got, err := calc.Calculate(ctx, "artist-1")
			require.NoError(t, err)
			assert.Equal(t, tt.tier, got.Tier)
			assert.Equal(t, tt.wantUsed, got.Used)
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantRemaining, got.Remaining)
		})
	}
}

func TestQuotaCalculator_UnknownTierFallsBackToFree(t *testing.T) {
	ctx := context.Background()
	repo := &countingRequestRepo{}
	calc := NewQuotaCalculator(repo, &mockBillingService{tier: "platinum"})

	got, err := calc.Calculate(ctx, "artist-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TierFree, got.Tier)
	require.NotNil(t, got.Limit)
	assert.Equal(t, 1, *got.Limit)
}
