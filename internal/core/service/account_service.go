package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
	"github.com/dashgrid/dashgrid-api/internal/core/ports"
)

// AccountService implements registration, login and the reset lifecycle.
type AccountService struct {
	accounts ports.AccountRepository
	resets   ports.ResetRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	mailer   ports.Mailer
	mails    ports.ResetMailComposer
	resetTTL time.Duration
	now      func() time.Time
	logger   zerolog.Logger
}

// AccountCollaborators groups the outbound dependencies of AccountService.
type AccountCollaborators struct {
	Hasher   ports.PasswordHasher
	Tokens   ports.TokenIssuer
	Mailer   ports.Mailer
	Mails    ports.ResetMailComposer
	ResetTTL time.Duration
}

func NewAccountService(accounts ports.AccountRepository, resets ports.ResetRepository, c AccountCollaborators, logger zerolog.Logger) *AccountService {
	if c.ResetTTL <= 0 {
		c.ResetTTL = 12 * time.Hour
	}
	return &AccountService{
		accounts: accounts,
		resets:   resets,
		hasher:   c.Hasher,
		tokens:   c.Tokens,
		mailer:   c.Mailer,
		mails:    c.Mails,
		resetTTL: c.ResetTTL,
		now:      time.Now,
		logger:   logger,
	}
}

// Register creates an account unless the email or username is taken.
func (s *AccountService) Register(ctx context.Context, email, username, password string) (_ *domain.Account, err error) {
	ctx, span := startSpan(ctx, "AccountService.Register")
	defer func() { endSpan(span, err) }()

	email = domain.NormalizeEmail(email)
	username = domain.NormalizeUsername(username)

	existing, err := s.accounts.FindByUsernameOrEmail(ctx, username, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := s.hasher.Digest(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.accounts.Create(ctx, &domain.Account{
		Email:            email,
		Username:         username,
		PasswordHash:     hash,
		RegistrationDate: s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("account registered")
	return created, nil
}

// Authenticate checks the credentials and issues a session token.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (_ *ports.Session, err error) {
	ctx, span := startSpan(ctx, "AccountService.Authenticate")
	defer func() { endSpan(span, err) }()

	account, err := s.accounts.FindByUsername(ctx, domain.NormalizeUsername(username))
	if err != nil {
		return nil, err
	}
	if !s.hasher.Compare(account.PasswordHash, password) {
		return nil, domain.ErrPasswordMismatch
	}

	claims := domain.Claims{ID: account.ID, Username: account.Username, Email: account.Email}
	tok, err := s.tokens.IssueSession(claims)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	span.SetAttributes(attribute.String("user.id", account.ID))

	return &ports.Session{Token: tok, Claims: claims}, nil
}

// RequestReset replaces any reset record for username with a fresh one and
// mails the signed token to the account address.
func (s *AccountService) RequestReset(ctx context.Context, username string) (_ *domain.ResetToken, err error) {
	ctx, span := startSpan(ctx, "AccountService.RequestReset")
	defer func() { endSpan(span, err) }()

	account, err := s.accounts.FindByUsername(ctx, domain.NormalizeUsername(username))
	if err != nil {
		return nil, err
	}

	tok, err := s.tokens.IssueReset(account.Username)
	if err != nil {
		return nil, fmt.Errorf("issue reset token: %w", err)
	}

	key := domain.ResetKey(account.Username)
	if err := s.resets.DeleteByUsername(ctx, key); err != nil {
		return nil, err
	}
	reset := &domain.ResetToken{
		Username: key,
		Token:    tok,
		ExpireAt: s.now().UTC().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, reset); err != nil {
		return nil, err
	}

	msg, err := s.mails.ResetPassword(account.Email, tok)
	if err != nil {
		return nil, fmt.Errorf("compose reset mail: %w", err)
	}
	s.mailer.Send(msg)

	s.logger.Info().Str("username", account.Username).Time("expire_at", reset.ExpireAt).Msg("password reset requested")
	return reset, nil
}

// ChangePassword consumes the live reset record for username and stores the
// new password. A missing record and an expired one both yield ErrResetExpired.
func (s *AccountService) ChangePassword(ctx context.Context, username, newPassword string) (err error) {
	ctx, span := startSpan(ctx, "AccountService.ChangePassword")
	defer func() { endSpan(span, err) }()

	account, err := s.accounts.FindByUsername(ctx, domain.NormalizeUsername(username))
	if err != nil {
		return err
	}

	if _, err := s.resets.TakeByUsername(ctx, domain.ResetKey(account.Username), s.now().UTC()); err != nil {
		return err
	}

	hash, err := s.hasher.Digest(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.accounts.UpdatePassword(ctx, account.ID, hash); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", account.ID).Msg("password changed")
	return nil
}
