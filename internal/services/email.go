package services

import (
	"context"
	"fmt"
	"log"

	"artwalls/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendRequestReceived notifies a host that an artist submitted a new request.
func (s *emailService) SendRequestReceived(ctx context.Context, data *domain.RequestReceivedEmailData) error {
	if data == nil {
		return fmt.Errorf("request received data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("request_received", data)
	if err != nil {
		return fmt.Errorf("failed to render request_received template: %w", err)
	}
	if err := s.mailer.Send(data.HostEmail, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send request received email: %w", err)
	}
	log.Printf("[EMAIL] Request notification sent to %s", data.HostEmail)
	return nil
}

// SendRequestStatusChanged notifies an artist that a host moved their request.
func (s *emailService) SendRequestStatusChanged(ctx context.Context, data *domain.RequestStatusEmailData) error {
	if data == nil {
		return fmt.Errorf("request status data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("request_status", data)
	if err != nil {
		return fmt.Errorf("failed to render request_status template: %w", err)
	}
	if err := s.mailer.Send(data.ArtistEmail, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send status email: %w", err)
	}
	log.Printf("[EMAIL] Status notification sent to %s", data.ArtistEmail)
	return nil
}

// SendInvite sends an invite link to an artist's email address.
func (s *emailService) SendInvite(ctx context.Context, data *domain.InviteEmailData) error {
	if data == nil {
		return fmt.Errorf("invite data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("invite", data)
	if err != nil {
		return fmt.Errorf("failed to render invite template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send invite email: %w", err)
	}
	log.Printf("[EMAIL] Invite sent to %s", data.Email)
	return nil
}
