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

// PresentationScheduledEmailData holds data for the schedule-notice email
// sent to a participant when their presentation is scheduled.
type PresentationScheduledEmailData struct {
	Email     string
	FirstName string
	TopicName string
	HallName  string
	StartTime string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendPresentationScheduled(ctx context.Context, data *PresentationScheduledEmailData) error
}
