package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func serve(t *testing.T, h echo.HandlerFunc) (*httptest.ResponseRecorder, readinessResponse) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var body readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec, body
}

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness_NoDependencies(t *testing.T) {
	rec, body := serve(t, NewReadinessHandler().Readiness)
	if rec.Code != http.StatusOK || body.Status != "ok" || len(body.Dependencies) != 0 {
		t.Fatalf("unexpected response %d %+v", rec.Code, body)
	}
}

func TestReadiness_Degraded(t *testing.T) {
	ok := Check{Name: "mongodb", Ping: func(context.Context) error { return nil }}
	down := Check{Name: "redis", Ping: func(context.Context) error { return errors.New("connection refused") }}

	rec, body := serve(t, NewReadinessHandler(ok, down).Readiness)
	if rec.Code != http.StatusServiceUnavailable || body.Status != "degraded" {
		t.Fatalf("unexpected response %d %+v", rec.Code, body)
	}
	if body.Dependencies["mongodb"].Status != "ok" {
		t.Fatalf("expected mongodb ok, got %+v", body.Dependencies["mongodb"])
	}
	if got := body.Dependencies["redis"]; got.Status != "unhealthy" || got.Error != "connection refused" {
		t.Fatalf("unexpected redis status: %+v", got)
	}
}
