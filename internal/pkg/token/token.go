// Package token issues and verifies the signed, time-limited tokens used for
// sessions and password resets.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

const (
	DefaultSessionTTL = 7 * 24 * time.Hour
	DefaultResetTTL   = 12 * time.Hour
)

var (
	// ErrTokenExpired means the signature checked out but the token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers every other verification failure.
	ErrTokenInvalid = errors.New("token invalid")
)

type claims struct {
	UserID   string `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs tokens with a single HMAC secret loaded at startup.
type Codec struct {
	secret     []byte
	sessionTTL time.Duration
	resetTTL   time.Duration
	now        func() time.Time
}

// New returns a Codec. Non-positive TTLs fall back to the package defaults.
func New(secret []byte, sessionTTL, resetTTL time.Duration) *Codec {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	if resetTTL <= 0 {
		resetTTL = DefaultResetTTL
	}
	return &Codec{secret: secret, sessionTTL: sessionTTL, resetTTL: resetTTL, now: time.Now}
}

// Issue signs c with the given ttl, or the session default when ttl <= 0.
func (c *Codec) Issue(cl domain.Claims, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = c.sessionTTL
	}
	now := c.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID:   cl.ID,
		Username: cl.Username,
		Email:    cl.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return t.SignedString(c.secret)
}

func (c *Codec) IssueSession(cl domain.Claims) (string, error) {
	return c.Issue(cl, c.sessionTTL)
}

// IssueReset signs a token carrying only the username.
func (c *Codec) IssueReset(username string) (string, error) {
	return c.Issue(domain.Claims{Username: username}, c.resetTTL)
}

// ResetTTL is the validity window applied to reset tokens.
func (c *Codec) ResetTTL() time.Duration {
	return c.resetTTL
}

// Verify checks signature, algorithm and expiry and returns the decoded
// claims. The error is always nil, ErrTokenExpired or ErrTokenInvalid.
func (c *Codec) Verify(tok string) (*domain.Claims, error) {
	var cl claims
	parsed, err := jwt.ParseWithClaims(tok, &cl, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return &domain.Claims{ID: cl.UserID, Username: cl.Username, Email: cl.Email}, nil
}
