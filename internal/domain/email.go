package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RequestReceivedEmailData holds data for the email sent to a host when an
// artist submits a new request.
type RequestReceivedEmailData struct {
	HostEmail  string
	ArtistName string
	Kind       RequestKind
}

// RequestStatusEmailData holds data for the email sent to an artist when a
// host changes a request's status.
type RequestStatusEmailData struct {
	ArtistEmail string
	HostName    string
	Status      RequestStatus
}

// InviteEmailData holds data for the invite email sent to an artist.
type InviteEmailData struct {
	Email    string
	HostName string
	Token    string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRequestReceived(ctx context.Context, data *RequestReceivedEmailData) error
	SendRequestStatusChanged(ctx context.Context, data *RequestStatusEmailData) error
	SendInvite(ctx context.Context, data *InviteEmailData) error
}
