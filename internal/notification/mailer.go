package notification

import (
	"context"
	"fmt"
	"log"

	"github.com/wneessen/go-mail"

	"hotelbooking/internal/domain"
)

// Mailer delivers a booking confirmation to a recipient.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, email string, b domain.Booking) error
}

// DevConsoleMailer logs instead of sending, for local runs without SMTP.
type DevConsoleMailer struct {
	enabled bool
}

func NewDevConsoleMailer(enabled bool) *DevConsoleMailer {
	return &DevConsoleMailer{enabled: enabled}
}

func (m *DevConsoleMailer) SendBookingConfirmation(_ context.Context, email string, b domain.Booking) error {
	if m.enabled {
		log.Printf("[DEV-EMAIL] booking confirmation email=%s booking_id=%d from=%s to=%s",
			email, b.ID, b.DateFrom.Format("2006-01-02"), b.DateTo.Format("2006-01-02"))
	}
	return nil
}

// SMTPMailer sends confirmations over SMTP.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

func NewSMTPMailer(host string, port int, user, pass, from string) (*SMTPMailer, error) {
	client, err := mail.NewClient(
		host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(user),
		mail.WithPassword(pass),
	)
	if err != nil {
		return nil, fmt.Errorf("init smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: from}, nil
}

func (m *SMTPMailer) SendBookingConfirmation(ctx context.Context, email string, b domain.Booking) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(email); err != nil {
		return err
	}
	msg.Subject("Booking confirmation")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Your booking #%d is confirmed.\nCheck-in: %s\nCheck-out: %s\nNights: %d\nTotal: %d\n",
		b.ID,
		b.DateFrom.Format("2006-01-02"),
		b.DateTo.Format("2006-01-02"),
		b.TotalDays(),
		b.TotalCost(),
	))
	return m.client.DialAndSendWithContext(ctx, msg)
}
