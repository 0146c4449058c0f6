package service

import (
	"context"
	"fmt"
	"time"

	"rentadesk-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendCheckoutConfirmation(ctx context.Context, toEmail, toName, plate string, expectedReturn time.Time) error {
	subject := fmt.Sprintf("Your rental of %s has started", plate)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental car %s has been handed over.\n\nPlease return it by %s. Late returns are billed per started extra day.\n\nSafe travels,\nThe Rentadesk Team",
		toName, plate, expectedReturn.Format("Monday, 02 Jan 2006 at 15:04"))
	return s.send(toEmail, toName, subject, body)
}

func (s *emailService) SendCheckinReceipt(ctx context.Context, toEmail, toName, plate string, rec *domain.CheckinRecord) error {
	subject := fmt.Sprintf("Return receipt for %s", plate)
	body := fmt.Sprintf(
		"Hello %s,\n\nThanks for returning %s.\n\nBilled rental days: %d (including %d extra)\nKilometers beyond allowance: %d\n\nBest regards,\nThe Rentadesk Team",
		toName, plate, rec.BillableDays, rec.ExtraDays, rec.ExtraKilometers)
	return s.send(toEmail, toName, subject, body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, toEmail, toName, plate string, expectedReturn time.Time) error {
	subject := fmt.Sprintf("Reminder: %s is due back", plate)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental car %s was due back on %s. Please return it as soon as possible; every started extra day is billed in full.\n\nBest regards,\nThe Rentadesk Team",
		toName, plate, expectedReturn.Format("Monday, 02 Jan 2006 at 15:04"))
	return s.send(toEmail, toName, subject, body)
}
