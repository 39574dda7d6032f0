// Package mail renders and delivers outbound e-mail.
package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"

	"github.com/dashgrid/dashgrid-api/internal/core/ports"
)

const resetSubject = "Reset your password"

var resetTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
  <body>
    <p>We received a request to reset the password of your account.</p>
    <p><a href="{{.Link}}">Choose a new password</a></p>
    <p>The link is valid for {{.Validity}}. If you did not ask for a reset you can ignore this message.</p>
  </body>
</html>
`))

// Composer renders the password-reset message.
type Composer struct {
	resetURL string
	validity string
}

// NewComposer builds reset links as resetURL?token=<token>. validity is a
// human-readable lifetime shown in the body, such as "12 hours".
func NewComposer(resetURL, validity string) *Composer {
	return &Composer{resetURL: resetURL, validity: validity}
}

func (c *Composer) ResetPassword(to, token string) (ports.MailMessage, error) {
	link, err := c.link(token)
	if err != nil {
		return ports.MailMessage{}, err
	}

	var body bytes.Buffer
	data := struct {
		Link     string
		Validity string
	}{Link: link, Validity: c.validity}
	if err := resetTemplate.Execute(&body, data); err != nil {
		return ports.MailMessage{}, fmt.Errorf("render reset mail: %w", err)
	}
	return ports.MailMessage{To: to, Subject: resetSubject, HTML: body.String()}, nil
}

func (c *Composer) link(token string) (string, error) {
	u, err := url.Parse(c.resetURL)
	if err != nil {
		return "", fmt.Errorf("reset url: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
