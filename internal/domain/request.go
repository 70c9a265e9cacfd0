package domain

import (
	"context"
	"time"
)

// RequestKind identifies the flavor of a wall request.
type RequestKind string

// Request kinds.
const (
	KindApplication RequestKind = "application"
	KindWaitlist    RequestKind = "waitlist"
)

// RequestStatus is a wall request's lifecycle state.
type RequestStatus string

// Request statuses.
const (
	StatusSubmitted      RequestStatus = "submitted"
	StatusApproved       RequestStatus = "approved"
	StatusRejected       RequestStatus = "rejected"
	StatusWithdrawn      RequestStatus = "withdrawn"
	StatusWaitlisted     RequestStatus = "waitlisted"
	StatusInvitedToApply RequestStatus = "invited_to_apply"
	StatusRemoved        RequestStatus = "removed"
	StatusConverted      RequestStatus = "converted_to_application"
)

// ActorRole identifies which side of a request the acting user is on.
type ActorRole string

// Actor roles. RoleNone means the actor is neither party on the record.
const (
	RoleArtist ActorRole = "artist"
	RoleHost   ActorRole = "host"
	RoleNone   ActorRole = "none"
)

// Request represents an artist's request to show work on a host's wall space.
// swagger:model Request
type Request struct {
	ID        string        `json:"id"`
	ArtistID  string        `json:"artist_id"`
	HostID    string        `json:"host_id"`
	Kind      RequestKind   `json:"kind"`
	Status    RequestStatus `json:"status"`
	Note      string        `json:"note,omitempty"`
	ArtworkID *string       `json:"artwork_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewRequest returns a new Request. ID is set by the repository on create.
func NewRequest(artistID, hostID string, kind RequestKind, status RequestStatus, note string, artworkID *string, createdAt, updatedAt time.Time) *Request {
	return &Request{
		ArtistID:  artistID,
		HostID:    hostID,
		Kind:      kind,
		Status:    status,
		Note:      note,
		ArtworkID: artworkID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ResolveRole returns the role the actor plays on the request, or RoleNone.
func (r *Request) ResolveRole(actorID string) ActorRole {
	switch actorID {
	case r.ArtistID:
		return RoleArtist
	case r.HostID:
		return RoleHost
	}
	return RoleNone
}

// RequestFilter narrows list queries. Zero values mean "no filter".
type RequestFilter struct {
	Kind   RequestKind
	Status RequestStatus
}

// RequestRepository defines storage operations for wall requests.
// ErrDuplicateActiveRequest-style conflicts surface as *ConflictError from
// Create when the partial unique index rejects a second active pair.
type RequestRepository interface {
	Create(ctx context.Context, req *Request) error
	GetByIDAndHost(ctx context.Context, id, hostID string) (*Request, error)
	ListByHostID(ctx context.Context, hostID string, filter RequestFilter) ([]*Request, error)
	ListByArtistID(ctx context.Context, artistID string) ([]*Request, error)
	// FindActiveByPair returns the non-terminal request for the pair, or ErrNotFound.
	FindActiveByPair(ctx context.Context, artistID, hostID string) (*Request, error)
	// CountByArtistSince counts requests created at or after since, excluding
	// the given statuses. Used by the quota calculator.
	CountByArtistSince(ctx context.Context, artistID string, since time.Time, excluded []RequestStatus) (int, error)
	// UpdateStatus sets status and refreshes updated_at.
	UpdateStatus(ctx context.Context, id string, status RequestStatus, updatedAt time.Time) (*Request, error)
	// UpdateStatusAndKind applies the waitlist conversion as a single update.
	UpdateStatusAndKind(ctx context.Context, id string, status RequestStatus, kind RequestKind, updatedAt time.Time) (*Request, error)
}

// CreateRequestInput carries the caller-supplied fields for a new request.
type CreateRequestInput struct {
	ArtistID  string
	HostID    string
	Kind      RequestKind
	Note      string
	ArtworkID *string
}

// RequestService defines the request lifecycle operations.
type RequestService interface {
	Create(ctx context.Context, in CreateRequestInput) (*Request, error)
	ListForHost(ctx context.Context, hostID, actorID string, filter RequestFilter) ([]*Request, error)
	ListForArtist(ctx context.Context, artistID string) ([]*Request, error)
	Transition(ctx context.Context, requestID, hostID, actorID string, next RequestStatus) (*Request, error)
	Quota(ctx context.Context, artistID string) (*QuotaStatus, error)
}
