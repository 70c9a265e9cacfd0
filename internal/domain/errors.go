package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidInput    = errors.New("invalid input")
	ErrFeatureDisabled = errors.New("feature disabled")
	ErrDuplicateEmail  = errors.New("email already in use")

	// ErrDuplicateActiveRequest is the storage layer's signal that the
	// non-terminal uniqueness constraint rejected an insert. The service
	// translates it into the same *ConflictError the pre-check produces.
	ErrDuplicateActiveRequest = errors.New("active request already exists for pair")
)

// ConflictError is returned when a non-terminal wall request already exists
// for the same (artist, host) pair. It carries the existing record so callers
// can offer a "resume" path instead of a blind retry. Both the optimistic
// pre-check and the storage uniqueness constraint produce this same error.
type ConflictError struct {
	ExistingID     string
	ExistingStatus RequestStatus
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("an active request already exists for this host (id=%s, status=%s)", e.ExistingID, e.ExistingStatus)
}

// QuotaExceededError is returned when an artist has used up the monthly
// request allowance for their tier.
type QuotaExceededError struct {
	Tier  Tier
	Limit int
	Used  int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("monthly request quota exceeded: %d of %d used on tier %q", e.Used, e.Limit, e.Tier)
}

// IllegalTransitionError is returned when a status change is not permitted
// for the acting role from the current status. Allowed lists the statuses
// the actor could legally move to.
type IllegalTransitionError struct {
	Current   RequestStatus
	Requested RequestStatus
	Role      ActorRole
	Allowed   []RequestStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition %s -> %s for role %s", e.Current, e.Requested, e.Role)
}

// IllegalInviteTransitionError is the invite machine's counterpart to
// IllegalTransitionError.
type IllegalInviteTransitionError struct {
	Current   InviteStatus
	Requested InviteStatus
}

func (e *IllegalInviteTransitionError) Error() string {
	return fmt.Sprintf("illegal invite transition %s -> %s", e.Current, e.Requested)
}
