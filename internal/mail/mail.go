package mail

import (
	"fmt"

	"github.com/MKhiriev/go-shortener-users/internal/config"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
)

// senderName is the display name put in the From header.
const senderName = "URL Shortner"

// NewSender returns the [Sender] configured by cfg.Transport.
func NewSender(cfg config.Mail, log *logger.Logger) (Sender, error) {
	switch cfg.Transport {
	case config.MailTransportSMTP:
		log.Info().Str("func", "mail.NewSender").Str("host", cfg.SMTPHost).Msg("using smtp mail transport")
		return NewSMTPSender(cfg, log), nil
	case config.MailTransportHTTP:
		log.Info().Str("func", "mail.NewSender").Str("url", cfg.APIURL).Msg("using http mail transport")
		return NewHTTPSender(cfg, log), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedTransport, cfg.Transport)
}
