package service

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"rentez-backend/internal/config"
	"rentez-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(cfg config.SMTPConfig) EmailService {
	return &emailService{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.User,
		password: cfg.Password,
		from:     cfg.From,
	}
}

func (s *emailService) SendRequestReceived(ctx context.Context, supplierEmail, customerName, productName string) error {
	subject := fmt.Sprintf("New rental request for %s", productName)
	body := fmt.Sprintf("Hello,\n\n%s has requested to rent your equipment: %s.\n\nSign in to review and accept or reject the request.\n\nBest regards,\nThe RentEZ Team", customerName, productName)
	return s.send(supplierEmail, subject, body)
}

func (s *emailService) SendStatusChanged(ctx context.Context, customerEmail, productName string, status domain.RequestStatus) error {
	subject := fmt.Sprintf("Rental order update - %s", productName)
	body := fmt.Sprintf("Hello,\n\nYour rental order for %s is now: %s.\n\nBest regards,\nThe RentEZ Team", productName, status)
	return s.send(customerEmail, subject, body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, customerEmail, productName string, endDate time.Time) error {
	subject := fmt.Sprintf("Return reminder - %s", productName)
	body := fmt.Sprintf("Hello,\n\nYour rental of %s ends on %s. Please arrange the return of the equipment.\n\nBest regards,\nThe RentEZ Team", productName, endDate.Format("Jan 2, 2006"))
	return s.send(customerEmail, subject, body)
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}

	return nil
}
