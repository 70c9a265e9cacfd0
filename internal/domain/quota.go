package domain

import "context"

// Tier is a named subscription level determining an artist's monthly
// request allowance.
type Tier string

// Tiers, ordered by increasing allowance.
const (
	TierFree      Tier = "free"
	TierStarter   Tier = "starter"
	TierPro       Tier = "pro"
	TierUnlimited Tier = "unlimited"
)

// QuotaStatus is a computed view of an artist's usage in the current
// calendar month. Limit and Remaining are nil for unbounded tiers so
// callers cannot mistake the absence of a ceiling for a large one.
// It is always computed fresh from the store, never cached.
// swagger:model QuotaStatus
type QuotaStatus struct {
	Tier      Tier `json:"tier"`
	Limit     *int `json:"limit"`
	Used      int  `json:"used"`
	Remaining *int `json:"remaining"`
}

// QuotaCalculator computes an artist's current-month usage against their
// tier. Read-only with respect to stored data.
type QuotaCalculator interface {
	Calculate(ctx context.Context, artistID string) (*QuotaStatus, error)
}

// BillingService resolves an artist's subscription tier. The billing
// system itself is an external collaborator; only its output matters here.
type BillingService interface {
	GetTier(ctx context.Context, artistID string) (Tier, error)
}
