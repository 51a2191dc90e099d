package mail

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/mail_mock.go -package=mock

// Sender delivers a single message. Implementations are safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
