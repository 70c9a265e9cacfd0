package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"artwalls/internal/domain"
)

type requestService struct {
	requestRepo      domain.RequestRepository
	hostSettingsRepo domain.HostSettingsRepository
	userRepo         domain.UserRepository
	roleRepo         domain.RoleRepository
	quota            domain.QuotaCalculator
	emitter          domain.Emitter
	emailService     domain.EmailService
	now              func() time.Time
}

// NewRequestService creates a RequestService with the given repositories
// and collaborators. emailService may be nil to disable notifications.
func NewRequestService(
	requestRepo domain.RequestRepository,
	hostSettingsRepo domain.HostSettingsRepository,
	userRepo domain.UserRepository,
	roleRepo domain.RoleRepository,
	quota domain.QuotaCalculator,
	emitter domain.Emitter,
	emailService domain.EmailService,
) domain.RequestService {
	return &requestService{
		requestRepo:      requestRepo,
		hostSettingsRepo: hostSettingsRepo,
		userRepo:         userRepo,
		roleRepo:         roleRepo,
		quota:            quota,
		emitter:          emitter,
		emailService:     emailService,
		now:              time.Now,
	}
}

func (s *requestService) Create(ctx context.Context, in domain.CreateRequestInput) (*domain.Request, error) {
	if in.Kind != domain.KindApplication && in.Kind != domain.KindWaitlist {
		return nil, fmt.Errorf("%w: unknown request kind %q", domain.ErrInvalidInput, in.Kind)
	}

	ok, err := s.hasRole(ctx, in.ArtistID, domain.RoleCodeArtist)
	if err != nil {
		return nil, fmt.Errorf("check artist role: %w", err)
	}
	if !ok {
		return nil, domain.ErrForbidden
	}

	host, err := s.userRepo.GetByID(ctx, in.HostID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get host: %w", err)
	}

	// The waitlist flag is checked before quota and duplicate checks so a
	// disabled feature fails fast with the most specific error.
	if in.Kind == domain.KindWaitlist {
		settings, err := s.hostSettingsRepo.GetByHostID(ctx, in.HostID)
		if err != nil {
			return nil, fmt.Errorf("get host settings: %w", err)
		}
		if !settings.WaitlistEnabled {
			return nil, domain.ErrFeatureDisabled
		}
	}

	// Courtesy quota check. Two concurrent creates can both pass it when one
	// slot remains; the quota is a planning allowance, not a hard allocation,
	// so the overshoot is accepted.
	quota, err := s.quota.Calculate(ctx, in.ArtistID)
	if err != nil {
		return nil, fmt.Errorf("calculate quota: %w", err)
	}
	if quota.Remaining != nil && *quota.Remaining == 0 {
		return nil, &domain.QuotaExceededError{Tier: quota.Tier, Limit: *quota.Limit, Used: quota.Used}
	}

	// Optimistic duplicate pre-check: cheap early rejection for the common
	// case. The partial unique index is the authoritative backstop.
	if existing, err := s.requestRepo.FindActiveByPair(ctx, in.ArtistID, in.HostID); err == nil {
		return nil, &domain.ConflictError{ExistingID: existing.ID, ExistingStatus: existing.Status}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find active request: %w", err)
	}

	status := domain.StatusSubmitted
	if in.Kind == domain.KindWaitlist {
		status = domain.StatusWaitlisted
	}
	now := s.now()
	req := domain.NewRequest(in.ArtistID, in.HostID, in.Kind, status, in.Note, in.ArtworkID, now, now)
	if err := s.requestRepo.Create(ctx, req); err != nil {
		if errors.Is(err, domain.ErrDuplicateActiveRequest) {
			// Lost the race against a concurrent create. Surface the same
			// conflict the pre-check would have produced.
			return nil, s.conflictForPair(ctx, in.ArtistID, in.HostID)
		}
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.emitter.Emit(ctx, "request.created", map[string]any{
		"request_id": req.ID,
		"artist_id":  req.ArtistID,
		"host_id":    req.HostID,
		"kind":       string(req.Kind),
	})
	s.notifyHost(ctx, host, req)

	return req, nil
}

func (s *requestService) ListForHost(ctx context.Context, hostID, actorID string, filter domain.RequestFilter) ([]*domain.Request, error) {
	if actorID != hostID {
		return nil, domain.ErrForbidden
	}
	requests, err := s.requestRepo.ListByHostID(ctx, hostID, filter)
	if err != nil {
		return nil, fmt.Errorf("list requests for host: %w", err)
	}
	return requests, nil
}

func (s *requestService) ListForArtist(ctx context.Context, artistID string) ([]*domain.Request, error) {
	requests, err := s.requestRepo.ListByArtistID(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("list requests for artist: %w", err)
	}
	return requests, nil
}

func (s *requestService) Transition(ctx context.Context, requestID, hostID, actorID string, next domain.RequestStatus) (*domain.Request, error) {
	if !domain.ValidRequestStatus(next) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, next)
	}

	req, err := s.requestRepo.GetByIDAndHost(ctx, requestID, hostID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get request: %w", err)
	}

	role := req.ResolveRole(actorID)
	if role == domain.RoleNone {
		return nil, domain.ErrForbidden
	}

	if next == req.Status {
		// Same-status transitions are legal no-ops; nothing is written.
		return req, nil
	}

	if !domain.IsTransitionAllowed(req.Status, next, role) {
		return nil, &domain.IllegalTransitionError{
			Current:   req.Status,
			Requested: next,
			Role:      role,
			Allowed:   domain.AllowedTransitions(req.Status, role),
		}
	}

	var updated *domain.Request
	if next == domain.StatusConverted {
		// Converting a waitlist entry re-enters the application flow: kind
		// becomes application and status resets to submitted, atomically.
		updated, err = s.requestRepo.UpdateStatusAndKind(ctx, req.ID, domain.StatusSubmitted, domain.KindApplication, s.now())
	} else {
		updated, err = s.requestRepo.UpdateStatus(ctx, req.ID, next, s.now())
	}
	if err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}

	s.emitter.Emit(ctx, "request.transitioned", map[string]any{
		"request_id": updated.ID,
		"from":       string(req.Status),
		"to":         string(next),
		"role":       string(role),
	})
	if role == domain.RoleHost {
		s.notifyArtist(ctx, updated)
	}

	return updated, nil
}

func (s *requestService) Quota(ctx context.Context, artistID string) (*domain.QuotaStatus, error) {
	return s.quota.Calculate(ctx, artistID)
}

func (s *requestService) hasRole(ctx context.Context, userID, roleCode string) (bool, error) {
	roles, err := s.roleRepo.ListByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, r := range roles {
		if r.Code == roleCode {
			return true, nil
		}
	}
	return false, nil
}

// conflictForPair rebuilds the pre-check's conflict error after the storage
// constraint rejected an insert.
func (s *requestService) conflictForPair(ctx context.Context, artistID, hostID string) error {
	existing, err := s.requestRepo.FindActiveByPair(ctx, artistID, hostID)
	if err != nil {
		return &domain.ConflictError{}
	}
	return &domain.ConflictError{ExistingID: existing.ID, ExistingStatus: existing.Status}
}

func (s *requestService) notifyHost(ctx context.Context, host *domain.User, req *domain.Request) {
	if s.emailService == nil {
		return
	}
	artist, err := s.userRepo.GetByID(ctx, req.ArtistID)
	if err != nil {
		log.Printf("[EMAIL] Skipping request notification, artist lookup failed: %v", err)
		return
	}
	data := &domain.RequestReceivedEmailData{
		HostEmail:  host.Email,
		ArtistName: artist.Name,
		Kind:       req.Kind,
	}
	if err := s.emailService.SendRequestReceived(ctx, data); err != nil {
		log.Printf("[EMAIL] Failed to notify host %s: %v", host.ID, err)
	}
}

func (s *requestService) notifyArtist(ctx context.Context, req *domain.Request) {
	if s.emailService == nil {
		return
	}
	artist, err := s.userRepo.GetByID(ctx, req.ArtistID)
	if err != nil {
		log.Printf("[EMAIL] Skipping status notification, artist lookup failed: %v", err)
		return
	}
	host, err := s.userRepo.GetByID(ctx, req.HostID)
	if err != nil {
		log.Printf("[EMAIL] Skipping status notification, host lookup failed: %v", err)
		return
	}
	data := &domain.RequestStatusEmailData{
		ArtistEmail: artist.Email,
		HostName:    host.Name,
		Status:      req.Status,
	}
	if err := s.emailService.SendRequestStatusChanged(ctx, data); err != nil {
		log.Printf("[EMAIL] Failed to notify artist %s: %v", artist.ID, err)
	}
}
