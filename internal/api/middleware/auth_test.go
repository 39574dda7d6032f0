package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
	"github.com/dashgrid/dashgrid-api/internal/pkg/token"
)

var testClaims = domain.Claims{ID: "64b7f0c2a1b2c3d4e5f60001", Username: "alice", Email: "alice@example.com"}

func signed(t *testing.T, codec *token.Codec) string {
	t.Helper()
	tok, err := codec.IssueSession(testClaims)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

// stubVerifier records the token it was asked to verify.
type stubVerifier struct {
	got    string
	claims *domain.Claims
	err    error
}

func (s *stubVerifier) Verify(tok string) (*domain.Claims, error) {
	s.got = tok
	return s.claims, s.err
}

func TestAuthorize_Extraction(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    string
	}{
		{name: "query", target: "/?token=q", headers: map[string]string{"x-access-token": "x", "Authorization": "a"}, want: "q"},
		{name: "x-access-token", target: "/", headers: map[string]string{"x-access-token": "x", "Authorization": "a"}, want: "x"},
		{name: "authorization", target: "/", headers: map[string]string{"Authorization": "a"}, want: "a"},
		{name: "empty query falls through", target: "/?token=", headers: map[string]string{"Authorization": "a"}, want: "a"},
		{name: "bearer stripped", target: "/", headers: map[string]string{"Authorization": "Bearer    abc"}, want: "abc"},
		{name: "bearer prefix is case sensitive", target: "/", headers: map[string]string{"Authorization": "bearer abc"}, want: "bearer abc"},
		{name: "bearer on query", target: "/?token=Bearer%20q", want: "q"},
		{name: "bearer only", target: "/", headers: map[string]string{"Authorization": "Bearer "}, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			v := &stubVerifier{claims: &testClaims}

			claims, rej := Authorize(req, v)
			if rej != nil {
				t.Fatalf("unexpected rejection: %+v", rej)
			}
			if v.got != tc.want {
				t.Fatalf("verified %q, want %q", v.got, tc.want)
			}
			if *claims != testClaims {
				t.Fatalf("unexpected claims: %+v", claims)
			}
		})
	}
}

func TestAuthorize_Outcomes(t *testing.T) {
	codec := token.New([]byte("secret"), time.Hour, time.Hour)
	expired := func() string {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"username": "alice",
			"exp":      time.Now().Add(-time.Minute).Unix(),
		}).SignedString([]byte("secret"))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		return tok
	}()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantMsg    string
	}{
		{name: "missing", wantStatus: http.StatusForbidden, wantMsg: MsgTokenMissing},
		{name: "garbage", header: "Bearer not-a-token", wantStatus: http.StatusForbidden, wantMsg: MsgTokenInvalid},
		{name: "bearer only", header: "Bearer ", wantStatus: http.StatusForbidden, wantMsg: MsgTokenInvalid},
		{name: "wrong secret", header: "Bearer " + signed(t, token.New([]byte("other"), 0, 0)), wantStatus: http.StatusForbidden, wantMsg: MsgTokenInvalid},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized, wantMsg: MsgTokenExpired},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			claims, rej := Authorize(req, codec)
			if claims != nil {
				t.Fatalf("expected no claims, got %+v", claims)
			}
			if rej == nil || rej.Status != tc.wantStatus || rej.Message != tc.wantMsg {
				t.Fatalf("unexpected rejection: %+v", rej)
			}
		})
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	codec := token.New([]byte("secret"), time.Hour, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("x-access-token", signed(t, codec))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(codec)(func(c echo.Context) error {
		called = true
		claims := ClaimsFrom(c)
		if claims == nil || *claims != testClaims {
			t.Fatalf("claims not set: %+v", claims)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RejectionReachesErrorHandler(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		rej, ok := err.(*Rejection)
		if !ok {
			t.Fatalf("expected *Rejection, got %T", err)
		}
		_ = c.JSON(rej.Status, rej)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(token.New([]byte("secret"), 0, 0))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	var body Rejection
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != http.StatusForbidden || body.Message != MsgTokenMissing {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestOptionalAuth(t *testing.T) {
	codec := token.New([]byte("secret"), time.Hour, time.Hour)
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  testClaims.ID,
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	tests := []struct {
		name   string
		header string
		want   *domain.Claims
	}{
		{name: "anonymous", header: "", want: nil},
		{name: "valid bearer", header: "Bearer " + signed(t, codec), want: &testClaims},
		{name: "bad signature", header: signed(t, token.New([]byte("other"), time.Hour, time.Hour)), want: nil},
		{name: "expired", header: expired, want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			called := false
			err := OptionalAuth(codec)(func(c echo.Context) error {
				called = true
				got := ClaimsFrom(c)
				if (got == nil) != (tc.want == nil) || (got != nil && *got != *tc.want) {
					t.Fatalf("claims = %+v, want %+v", got, tc.want)
				}
				return nil
			})(c)
			if err != nil || !called {
				t.Fatalf("next not reached: called=%v err=%v", called, err)
			}
		})
	}
}

func TestClaimsFrom_Absent(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if ClaimsFrom(c) != nil {
		t.Fatalf("expected nil claims")
	}
}
