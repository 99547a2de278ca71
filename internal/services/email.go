package services

import (
	"context"
	"fmt"
	"log"

	"symposium/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendPresentationScheduled sends the schedule notice using the
// "presentation_scheduled" template and the given data.
func (s *emailService) SendPresentationScheduled(ctx context.Context, data *domain.PresentationScheduledEmailData) error {
	if data == nil {
		return fmt.Errorf("presentation scheduled data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("presentation_scheduled", data)
	if err != nil {
		return fmt.Errorf("failed to render presentation_scheduled template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send schedule notice: %w", err)
	}
	log.Printf("[EMAIL] Schedule notice sent to %s", data.Email)
	return nil
}
