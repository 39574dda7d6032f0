package middleware

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/labstack/echo/v4"

	"github.com/dashgrid/dashgrid-api/internal/api/metrics"
	"github.com/dashgrid/dashgrid-api/internal/core/domain"
	"github.com/dashgrid/dashgrid-api/internal/pkg/token"
)

// ClaimsKey is the echo context key holding the verified *domain.Claims.
const ClaimsKey = "claims"

const bearerPrefix = "Bearer "

const (
	MsgTokenMissing = "Authorization Error: token missing."
	MsgTokenExpired = "TokenExpiredError"
	MsgTokenInvalid = "Authorization Error: Failed to verify token."
)

// Verifier checks a raw token. It must return token.ErrTokenExpired for a
// well-signed but expired token.
type Verifier interface {
	Verify(tok string) (*domain.Claims, error)
}

// Rejection is a terminal gate outcome, rendered with its real HTTP status.
type Rejection struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (r *Rejection) Error() string {
	return r.Message
}

// tokenFrom returns the token from ?token, x-access-token or Authorization
// (first non-empty wins) with a literal "Bearer " prefix removed. ok is false
// only when all three are empty; "Bearer " alone yields ("", true).
func tokenFrom(r *http.Request) (tok string, ok bool) {
	raw := r.URL.Query().Get("token")
	if raw == "" {
		raw = r.Header.Get("x-access-token")
	}
	if raw == "" {
		raw = r.Header.Get("Authorization")
	}
	if raw == "" {
		return "", false
	}
	if strings.HasPrefix(raw, bearerPrefix) {
		raw = strings.TrimLeftFunc(raw[len(bearerPrefix):], unicode.IsSpace)
	}
	return raw, true
}

// Authorize extracts the request token and verifies it.
func Authorize(r *http.Request, v Verifier) (*domain.Claims, *Rejection) {
	raw, ok := tokenFrom(r)
	if !ok {
		metrics.AuthRejectionsTotal.WithLabelValues("missing").Inc()
		return nil, &Rejection{Status: http.StatusForbidden, Message: MsgTokenMissing}
	}

	claims, err := v.Verify(raw)
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, token.ErrTokenExpired):
		metrics.AuthRejectionsTotal.WithLabelValues("expired").Inc()
		return nil, &Rejection{Status: http.StatusUnauthorized, Message: MsgTokenExpired}
	default:
		metrics.AuthRejectionsTotal.WithLabelValues("invalid").Inc()
		return nil, &Rejection{Status: http.StatusForbidden, Message: MsgTokenInvalid}
	}
}

// Auth runs Authorize for every request and stores the claims under
// ClaimsKey. Rejections are returned to the HTTP error handler.
func Auth(v Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, rej := Authorize(c.Request(), v)
			if rej != nil {
				return rej
			}
			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// OptionalAuth stores the claims of a valid token under ClaimsKey and lets
// every request through. Missing or bad tokens leave the context anonymous.
func OptionalAuth(v Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if raw, ok := tokenFrom(c.Request()); ok {
				if claims, err := v.Verify(raw); err == nil {
					c.Set(ClaimsKey, claims)
				}
			}
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims stored by Auth, or nil.
func ClaimsFrom(c echo.Context) *domain.Claims {
	claims, _ := c.Get(ClaimsKey).(*domain.Claims)
	return claims
}
