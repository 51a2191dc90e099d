package mail

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shortener-users/internal/config"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"gopkg.in/gomail.v2"
)

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
	logger *logger.Logger
}

// NewSMTPSender returns a [Sender] that dials cfg.SMTPHost for every
// message. With SMTPSecure the connection uses implicit TLS (port 465),
// otherwise STARTTLS is negotiated when the server offers it.
func NewSMTPSender(cfg config.Mail, log *logger.Logger) Sender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	dialer.SSL = cfg.SMTPSecure

	return &smtpSender{
		dialer: dialer,
		from:   cfg.Sender(),
		logger: log,
	}
}

func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)

	// gomail has no context support; at least skip the dial when the
	// request is already gone.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	if err := s.dialer.DialAndSend(s.buildMessage(msg)); err != nil {
		log.Err(err).Str("func", "*smtpSender.Send").Str("to", msg.To).Msg("error sending mail over smtp")
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	log.Debug().Str("func", "*smtpSender.Send").Str("to", msg.To).Msg("mail sent")
	return nil
}

func (s *smtpSender) buildMessage(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.from, senderName))
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	return m
}
