package service

import (
	"context"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host, port, username, password, from string) EmailService {
	p, _ := strconv.Atoi(port)
	return &emailService{
		host:     host,
		port:     p,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendBookingRequestNotification(ctx context.Context, ownerEmail, customerName, carName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", ownerEmail)
	m.SetHeader("Subject", fmt.Sprintf("New booking request for %s", carName))

	body := fmt.Sprintf("Hello,\n\n%s has requested a booking for your %s.\n\nLog in to your showroom dashboard to accept or reject the request. Pending requests expire after 7 days.\n\nBest regards,\nThe Car Showroom Team", customerName, carName)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking request email: %w", err)
	}

	return nil
}

func (s *emailService) SendBookingAcceptedNotification(ctx context.Context, customerEmail, carName, ownerName, reply string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", customerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your booking for %s was accepted", carName))

	body := fmt.Sprintf("Hello,\n\nGood news! %s has accepted your booking for the %s.", ownerName, carName)
	if reply != "" {
		body += fmt.Sprintf("\n\nMessage from the showroom: %s", reply)
	}
	body += "\n\nBest regards,\nThe Car Showroom Team"
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking accepted email: %w", err)
	}

	return nil
}

func (s *emailService) SendBookingRejectedNotification(ctx context.Context, customerEmail, carName, ownerName, reason string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", customerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your booking for %s was declined", carName))

	body := fmt.Sprintf("Hello,\n\n%s has declined your booking for the %s.", ownerName, carName)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe Car Showroom Team"
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking rejected email: %w", err)
	}

	return nil
}
