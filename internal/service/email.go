package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"scooter-backoffice/internal/domain"
)

type sendGridEmailService struct {
	apiKey     string
	fromEmail  string
	fromName   string
	adminEmail string
}

func NewEmailService(apiKey, fromEmail, fromName, adminEmail string) EmailService {
	return &sendGridEmailService{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		adminEmail: adminEmail,
	}
}

func (s *sendGridEmailService) SendOverdueSummary(ctx context.Context, rentals []domain.RentalWithDetails) error {
	if len(rentals) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "There are %d overdue rentals:\n\n", len(rentals))
	for _, rt := range rentals {
		fmt.Fprintf(&b, "- %s (%s) rented by %s (%s), due %s\n",
			rt.ScooterName, rt.ScooterPlate, rt.ClientName, rt.ClientPhone, rt.EndDate)
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("Admin", s.adminEmail)
	subject := fmt.Sprintf("Overdue rentals: %d", len(rentals))
	message := mail.NewSingleEmail(from, subject, to, b.String(), "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send overdue summary: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
