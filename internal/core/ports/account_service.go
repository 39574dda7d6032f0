package ports

import (
	"context"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

// Session is the result of a successful authentication.
type Session struct {
	Token  string
	Claims domain.Claims
}

// AccountService is the account directory: registration, login and the
// password reset lifecycle.
type AccountService interface {
	Register(ctx context.Context, email, username, password string) (*domain.Account, error)
	Authenticate(ctx context.Context, username, password string) (*Session, error)
	RequestReset(ctx context.Context, username string) (*domain.ResetToken, error)
	ChangePassword(ctx context.Context, username, newPassword string) error
}
