package mail

// Message is an outgoing HTML e-mail with a single recipient.
type Message struct {
	To      string
	Subject string
	HTML    string
}
