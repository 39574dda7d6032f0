package ports

import (
	"context"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

// PasswordHasher is the one-way digest + compare capability.
type PasswordHasher interface {
	Digest(secret string) (string, error)
	Compare(digest, secret string) bool
}

// TokenIssuer signs session and reset tokens.
type TokenIssuer interface {
	IssueSession(claims domain.Claims) (string, error)
	IssueReset(username string) (string, error)
}

// MailMessage is a single outbound HTML e-mail.
type MailMessage struct {
	To      string
	Subject string
	HTML    string
}

// Mailer hands a message off for delivery without waiting for the result.
type Mailer interface {
	Send(msg MailMessage)
}

// MailSender performs the actual delivery of a message.
type MailSender interface {
	Send(ctx context.Context, msg MailMessage) error
}

// ResetMailComposer renders the password-reset e-mail for a token.
type ResetMailComposer interface {
	ResetPassword(to, token string) (MailMessage, error)
}
