package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"artwalls/internal/domain"
)

// inviteTokenBytes yields a 32-character hex token, comfortably inside the
// accepted 16-64 range.
const inviteTokenBytes = 16

type inviteService struct {
	inviteRepo   domain.InviteRepository
	userRepo     domain.UserRepository
	emitter      domain.Emitter
	emailService domain.EmailService
	now          func() time.Time
}

// NewInviteService creates an InviteService. emailService may be nil; the
// invite then stays in draft until a later send.
func NewInviteService(
	inviteRepo domain.InviteRepository,
	userRepo domain.UserRepository,
	emitter domain.Emitter,
	emailService domain.EmailService,
) domain.InviteService {
	return &inviteService{
		inviteRepo:   inviteRepo,
		userRepo:     userRepo,
		emitter:      emitter,
		emailService: emailService,
		now:          time.Now,
	}
}

func (s *inviteService) Create(ctx context.Context, hostID, actorID, email string) (*domain.Invite, error) {
	if actorID != hostID {
		return nil, domain.ErrForbidden
	}
	email = strings.TrimSpace(strings.ToLower(email))

	host, err := s.userRepo.GetByID(ctx, hostID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get host: %w", err)
	}

	token, err := generateInviteToken()
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	now := s.now()
	inv := &domain.Invite{
		HostID:    hostID,
		Email:     email,
		Token:     token,
		Status:    domain.InviteDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.inviteRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create invite: %w", err)
	}

	s.emitter.Emit(ctx, "invite.created", map[string]any{
		"invite_id": inv.ID,
		"host_id":   hostID,
	})

	if s.emailService != nil {
		data := &domain.InviteEmailData{Email: email, HostName: host.Name, Token: token}
		if err := s.emailService.SendInvite(ctx, data); err != nil {
			// Delivery failure leaves the invite in draft; it can be resent.
			log.Printf("[EMAIL] Failed to send invite %s: %v", inv.ID, err)
			return inv, nil
		}
		sentAt := s.now()
		inv.Status = domain.InviteSent
		inv.SentAt = &sentAt
		inv.UpdatedAt = sentAt
		if err := s.inviteRepo.Update(ctx, inv); err != nil {
			return nil, fmt.Errorf("mark invite sent: %w", err)
		}
	}

	return inv, nil
}

func (s *inviteService) ListForHost(ctx context.Context, hostID, actorID string) ([]*domain.Invite, error) {
	if actorID != hostID {
		return nil, domain.ErrForbidden
	}
	invites, err := s.inviteRepo.ListByHostID(ctx, hostID)
	if err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	return invites, nil
}

// Open records that the invited artist followed the invite link. It is
// idempotent: draft or sent invites become clicked, an already-clicked
// invite stays clicked, and a terminal invite is returned unchanged.
func (s *inviteService) Open(ctx context.Context, token string) (*domain.Invite, error) {
	inv, err := s.inviteRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invite: %w", err)
	}

	if domain.IsInviteTerminal(inv.Status) {
		return inv, nil
	}

	now := s.now()
	inv.Status = domain.InviteClicked
	inv.ClickCount++
	if inv.FirstOpenedAt == nil {
		inv.FirstOpenedAt = &now
	}
	inv.UpdatedAt = now
	if err := s.inviteRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("record invite open: %w", err)
	}

	s.emitter.Emit(ctx, "invite.opened", map[string]any{
		"invite_id":   inv.ID,
		"click_count": inv.ClickCount,
	})
	return inv, nil
}

func (s *inviteService) Accept(ctx context.Context, token string) (*domain.Invite, error) {
	return s.close(ctx, token, domain.InviteAccepted)
}

func (s *inviteService) Decline(ctx context.Context, token string) (*domain.Invite, error) {
	return s.close(ctx, token, domain.InviteDeclined)
}

func (s *inviteService) close(ctx context.Context, token string, next domain.InviteStatus) (*domain.Invite, error) {
	inv, err := s.inviteRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invite: %w", err)
	}

	if inv.Status == next {
		return inv, nil
	}
	if !domain.IsInviteTransitionAllowed(inv.Status, next) {
		return nil, &domain.IllegalInviteTransitionError{Current: inv.Status, Requested: next}
	}

	now := s.now()
	inv.Status = next
	inv.UpdatedAt = now
	switch next {
	case domain.InviteAccepted:
		inv.AcceptedAt = &now
	case domain.InviteDeclined:
		inv.DeclinedAt = &now
	}
	if err := s.inviteRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("update invite: %w", err)
	}

	s.emitter.Emit(ctx, "invite."+string(next), map[string]any{
		"invite_id": inv.ID,
		"host_id":   inv.HostID,
	})
	return inv, nil
}

func generateInviteToken() (string, error) {
	b := make([]byte, inviteTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
