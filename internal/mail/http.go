package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shortener-users/internal/config"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/internal/utils"
)

const httpSendTimeout = 10 * time.Second

// apiMessage is the JSON body posted to the mail API.
type apiMessage struct {
	From     string `json:"from"`
	FromName string `json:"fromName"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTML     string `json:"html"`
}

type httpSender struct {
	client *utils.HTTPClient
	url    string
	apiKey string
	from   string
	logger *logger.Logger
}

// NewHTTPSender returns a [Sender] that posts each message as JSON to
// cfg.APIURL, authenticating with cfg.APIKey as a bearer token.
func NewHTTPSender(cfg config.Mail, log *logger.Logger) Sender {
	return &httpSender{
		client: utils.NewHTTPClient(httpSendTimeout),
		url:    cfg.APIURL,
		apiKey: cfg.APIKey,
		from:   cfg.Sender(),
		logger: log,
	}
}

func (s *httpSender) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)

	req := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(apiMessage{
			From:     s.from,
			FromName: senderName,
			To:       msg.To,
			Subject:  msg.Subject,
			HTML:     msg.HTML,
		})
	if s.apiKey != "" {
		req.SetAuthToken(s.apiKey)
	}

	resp, err := req.Post(s.url)
	if err != nil {
		log.Err(err).Str("func", "*httpSender.Send").Str("to", msg.To).Msg("error calling mail api")
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	if resp.IsError() {
		log.Error().
			Str("func", "*httpSender.Send").
			Int("status", resp.StatusCode()).
			Str("body", resp.String()).
			Msg("mail api rejected message")
		return fmt.Errorf("%w: mail api responded with %s", ErrDelivery, resp.Status())
	}

	log.Debug().Str("func", "*httpSender.Send").Str("to", msg.To).Msg("mail sent")
	return nil
}
