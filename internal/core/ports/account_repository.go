package ports

import (
	"context"
	"time"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

// AccountRepository defines persistence for accounts.
type AccountRepository interface {
	// Create inserts a new account. A unique-index violation on email or
	// username surfaces as domain.ErrUserExists.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	// FindByUsernameOrEmail returns the first account matching either field.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.Account, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// ResetRepository stores password-reset records.
type ResetRepository interface {
	Create(ctx context.Context, reset *domain.ResetToken) error
	DeleteByUsername(ctx context.Context, username string) error
	// TakeByUsername removes and returns the live record for username.
	// Records with ExpireAt <= now are treated as absent and yield
	// domain.ErrResetExpired.
	TakeByUsername(ctx context.Context, username string, now time.Time) (*domain.ResetToken, error)
}
