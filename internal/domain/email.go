package domain

import "context"

// Mailer sends a single email. Implementations may use SES, SMTP, or a no-op.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named template into subject, html, and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// ConferenceCreatedEmailData is the data for the conference creation confirmation email.
type ConferenceCreatedEmailData struct {
	Email          string
	ConferenceName string
	// ConferenceInfo is a serialized snapshot of the conference as created.
	ConferenceInfo string
}

// EmailService defines the outbound emails this system sends.
type EmailService interface {
	SendConferenceCreated(ctx context.Context, data *ConferenceCreatedEmailData) error
}
