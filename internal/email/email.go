package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service sends drafted outreach emails via SendGrid
type Service struct {
	apiKey    string
	fromEmail string
}

// NewService creates a new email service instance
func NewService(apiKey, fromEmail string) *Service {
	if fromEmail == "" {
		fromEmail = "outreach@cpace.dev"
	}
	return &Service{
		apiKey:    apiKey,
		fromEmail: fromEmail,
	}
}

// Configured reports whether a SendGrid API key is set
func (s *Service) Configured() bool {
	return s.apiKey != ""
}

// SendOutreach sends a generated outreach email to a contact
func (s *Service) SendOutreach(toEmail, toName, subject, body string) error {
	if s.apiKey == "" {
		return fmt.Errorf("SendGrid API key not configured")
	}

	from := mail.NewEmail("C-PACE Outreach", s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid API error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
