package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const resetPasswordSubject = "Your password reset link"

type resetPasswordData struct {
	Name string
	Link string
}

// ResetPasswordMessage renders the password reset e-mail addressed to
// the given user. name and link are HTML-escaped.
func ResetPasswordMessage(to, name, link string) (Message, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, "reset_password.html", resetPasswordData{Name: name, Link: link}); err != nil {
		return Message{}, fmt.Errorf("%w: %w", ErrRenderingTemplate, err)
	}

	return Message{
		To:      to,
		Subject: resetPasswordSubject,
		HTML:    body.String(),
	}, nil
}
