package mail

import "errors"

var (
	ErrDelivery             = errors.New("mail delivery failed")
	ErrUnsupportedTransport = errors.New("unsupported mail transport")
	ErrRenderingTemplate    = errors.New("error rendering mail template")
)
