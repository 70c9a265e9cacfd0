package domain

import (
	"context"
	"time"
)

// InviteStatus is an invite's lifecycle state, independent of the request
// state machine.
type InviteStatus string

// Invite statuses.
const (
	InviteDraft    InviteStatus = "draft"
	InviteSent     InviteStatus = "sent"
	InviteClicked  InviteStatus = "clicked"
	InviteAccepted InviteStatus = "accepted"
	InviteDeclined InviteStatus = "declined"
	InviteExpired  InviteStatus = "expired"
)

// inviteTransitions maps current invite status to the legal next statuses.
// Terminal statuses (accepted, declined, expired) are absent.
var inviteTransitions = map[InviteStatus][]InviteStatus{
	InviteDraft:   {InviteSent, InviteClicked, InviteDeclined, InviteExpired},
	InviteSent:    {InviteClicked, InviteAccepted, InviteDeclined, InviteExpired},
	InviteClicked: {InviteAccepted, InviteDeclined, InviteExpired},
}

// IsInviteTerminal reports whether s admits no further transitions.
func IsInviteTerminal(s InviteStatus) bool {
	switch s {
	case InviteAccepted, InviteDeclined, InviteExpired:
		return true
	}
	return false
}

// IsInviteTransitionAllowed reports whether an invite may move from current
// to next. A same-status transition is always a legal no-op.
func IsInviteTransitionAllowed(current, next InviteStatus) bool {
	if current == next {
		return true
	}
	for _, s := range inviteTransitions[current] {
		if s == next {
			return true
		}
	}
	return false
}

// Invite represents a one-time outbound solicitation from a host to an
// artist who may not have registered yet. The invite is addressed by its
// token, not by artist ID.
// swagger:model Invite
type Invite struct {
	ID            string       `json:"id"`
	HostID        string       `json:"host_id"`
	Email         string       `json:"email"`
	Token         string       `json:"token"`
	Status        InviteStatus `json:"status"`
	ClickCount    int          `json:"click_count"`
	FirstOpenedAt *time.Time   `json:"first_opened_at,omitempty"`
	SentAt        *time.Time   `json:"sent_at,omitempty"`
	AcceptedAt    *time.Time   `json:"accepted_at,omitempty"`
	DeclinedAt    *time.Time   `json:"declined_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// InviteRepository defines storage operations for invites.
type InviteRepository interface {
	Create(ctx context.Context, inv *Invite) error
	GetByToken(ctx context.Context, token string) (*Invite, error)
	ListByHostID(ctx context.Context, hostID string) ([]*Invite, error)
	Update(ctx context.Context, inv *Invite) error
}

// InviteService defines invite lifecycle operations. Open is idempotent:
// opening an already-clicked invite stays clicked, and opening a
// terminal-state invite returns the unchanged record without error.
type InviteService interface {
	Create(ctx context.Context, hostID, actorID, email string) (*Invite, error)
	ListForHost(ctx context.Context, hostID, actorID string) ([]*Invite, error)
	Open(ctx context.Context, token string) (*Invite, error)
	Accept(ctx context.Context, token string) (*Invite, error)
	Decline(ctx context.Context, token string) (*Invite, error)
}
