package api

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dashgrid/dashgrid-api/internal/core/ports"
	"github.com/dashgrid/dashgrid-api/internal/core/service"
	"github.com/dashgrid/dashgrid-api/internal/infrastructure/db/memory"
	"github.com/dashgrid/dashgrid-api/internal/infrastructure/probe"
	"github.com/dashgrid/dashgrid-api/internal/pkg/password"
	"github.com/dashgrid/dashgrid-api/internal/pkg/token"
)

type capturedMail struct {
	mu   sync.Mutex
	msgs []ports.MailMessage
}

func (m *capturedMail) Send(msg ports.MailMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, msg)
}

type tokenInBody struct{}

func (tokenInBody) ResetPassword(to, tok string) (ports.MailMessage, error) {
	return ports.MailMessage{To: to, Subject: "reset", HTML: tok}, nil
}

type staticProber struct{}

func (staticProber) TestURL(_ context.Context, _ string) probe.Result {
	return probe.Result{Status: http.StatusOK, Active: true}
}

func (staticProber) Request(_ context.Context, _ probe.RequestInput) probe.RequestResult {
	return probe.RequestResult{Status: http.StatusOK, Response: "pong"}
}

type testApp struct {
	e     *echo.Echo
	store *memory.Store
	mail  *capturedMail
	codec *token.Codec
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	store := memory.NewStore()
	codec := token.New([]byte("test-secret"), time.Hour, time.Hour)
	hasher := password.NewHasher(bcrypt.MinCost)
	mail := &capturedMail{}
	log := zerolog.Nop()

	accounts := service.NewAccountService(store.Accounts(), store.Resets(), service.AccountCollaborators{
		Hasher: hasher,
		Tokens: codec,
		Mailer: mail,
		Mails:  tokenInBody{},
	}, log)

	e := NewRouter(Options{
		Logger:     log,
		Version:    "test",
		Tokens:     codec,
		Accounts:   accounts,
		Dashboards: service.NewDashboardService(store.Dashboards(), store.Sources(), hasher, log),
		Sources:    service.NewSourceService(store.Sources(), log),
		Stats:      service.NewStatsService(store.Stats(), nil, log),
		Prober:     staticProber{},
		Registerer: prometheus.NewRegistry(),
		Gatherer:   prometheus.NewRegistry(),
	})
	return &testApp{e: e, store: store, mail: mail, codec: codec}
}

func (a *testApp) api() *apitest.APITest {
	return apitest.New().Handler(a.e)
}

// signUp registers and authenticates username, returning its id and token.
func (a *testApp) signUp(t *testing.T, username string) (string, string) {
	t.Helper()
	a.api().Post("/users/create").
		JSON(map[string]string{"email": username + "@example.com", "username": username, "password": "secret1"}).
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.success", true)).End()

	var out struct {
		User  struct{ ID string } `json:"user"`
		Token string              `json:"token"`
	}
	a.api().Post("/users/authenticate").
		JSON(map[string]string{"username": username, "password": "secret1"}).
		Expect(t).Status(http.StatusOK).End().JSON(&out)
	require.NotEmpty(t, out.Token)
	return out.User.ID, out.Token
}

func (a *testApp) createDashboard(t *testing.T, tok, name string) string {
	t.Helper()
	a.api().Post("/dashboards/create-dashboard").Header("x-access-token", tok).
		JSON(map[string]string{"name": name}).
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.success", true)).End()

	var list struct {
		Dashboards []struct{ ID, Name string } `json:"dashboards"`
	}
	a.api().Get("/dashboards/dashboards").Header("x-access-token", tok).
		Expect(t).Status(http.StatusOK).End().JSON(&list)
	for _, d := range list.Dashboards {
		if d.Name == name {
			return d.ID
		}
	}
	t.Fatalf("dashboard %q not listed", name)
	return ""
}

func TestRouter_GateRejections(t *testing.T) {
	app := newTestApp(t)

	app.api().Get("/dashboards/dashboards").
		Expect(t).Status(http.StatusForbidden).
		Assert(jsonpath.Equal("$.message", "Authorization Error: token missing.")).
		End()

	app.api().Get("/sources/sources").Header("Authorization", "Bearer nope").
		Expect(t).Status(http.StatusForbidden).
		Assert(jsonpath.Equal("$.message", "Authorization Error: Failed to verify token.")).
		End()
}

func TestRouter_RegisterValidationAndDuplicates(t *testing.T) {
	app := newTestApp(t)

	app.api().Post("/users/create").
		JSON(map[string]string{"email": "not-an-email", "username": "ann", "password": "secret1"}).
		Expect(t).Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.status", float64(400))).
		Assert(jsonpath.Contains("$.message", "Validation Error:")).
		End()

	app.signUp(t, "ann")

	app.api().Post("/users/create").
		JSON(map[string]string{"email": "ANN@example.com", "username": "someone", "password": "secret1"}).
		Expect(t).Status(http.StatusOK).
		Assert(jsonpath.Equal("$.status", float64(409))).
		End()

	app.api().Post("/users/authenticate").
		JSON(map[string]string{"username": "ann", "password": "wrong-one"}).
		Expect(t).Status(http.StatusOK).
		Assert(jsonpath.Equal("$.status", float64(401))).
		End()
}

func TestRouter_PasswordResetFlow(t *testing.T) {
	app := newTestApp(t)
	app.signUp(t, "ann")

	app.api().Post("/users/resetpassword").JSON(map[string]string{"username": "ann"}).
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.ok", true)).End()
	require.Len(t, app.mail.msgs, 1)
	resetToken := app.mail.msgs[0].HTML

	// A bad body is rejected before the token is looked at.
	app.api().Post("/users/changepassword").JSON(map[string]string{"password": "abc"}).
		Expect(t).Status(http.StatusBadRequest).End()

	app.api().Post("/users/changepassword").Query("token", resetToken).
		JSON(map[string]string{"password": "brand-new"}).
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.ok", true)).End()

	// The reset record is single use.
	app.api().Post("/users/changepassword").Query("token", resetToken).
		JSON(map[string]string{"password": "again-new"}).
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.status", float64(410))).End()

	app.api().Post("/users/authenticate").
		JSON(map[string]string{"username": "ann", "password": "brand-new"}).
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Present("$.token")).End()
}

func TestRouter_SharingScenario(t *testing.T) {
	app := newTestApp(t)
	aID, aTok := app.signUp(t, "alice")
	bID, _ := app.signUp(t, "bob")
	salesID := app.createDashboard(t, aTok, "Sales")

	check := func() *apitest.Response {
		return app.api().Post("/dashboards/check-password-needed").
			JSON(map[string]any{"user": map[string]string{"id": bID}, "dashboardId": salesID}).
			Expect(t).Status(http.StatusOK)
	}

	check().
		Assert(jsonpath.Equal("$.shared", false)).
		Assert(jsonpath.NotPresent("$.dashboard")).
		End()

	app.api().Post("/dashboards/share-dashboard").Header("x-access-token", aTok).
		JSON(map[string]string{"dashboardId": salesID}).
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.shared", true)).End()

	check().
		Assert(jsonpath.Equal("$.shared", true)).
		Assert(jsonpath.Equal("$.passwordNeeded", false)).
		Assert(jsonpath.Equal("$.owner", aID)).
		Assert(jsonpath.Equal("$.dashboard.name", "Sales")).
		End()

	app.api().Get("/dashboards/dashboards").Header("x-access-token", aTok).
		Expect(t).Status(http.StatusOK).
		Assert(jsonpath.Equal("$.dashboards[0].views", float64(1))).
		End()

	// Protect the dashboard: viewers now get a challenge.
	app.api().Post("/dashboards/change-password").Header("x-access-token", aTok).
		JSON(map[string]string{"dashboardId": salesID, "password": "letmein"}).
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.success", true)).End()

	check().
		Assert(jsonpath.Equal("$.passwordNeeded", true)).
		Assert(jsonpath.NotPresent("$.dashboard")).
		End()

	app.api().Post("/dashboards/check-password").
		JSON(map[string]string{"dashboardId": salesID, "password": "nope"}).
		Expect(t).Status(http.StatusOK).
		Assert(jsonpath.Equal("$.correctPassword", false)).
		End()

	app.api().Post("/dashboards/check-password").
		JSON(map[string]string{"dashboardId": salesID, "password": "letmein"}).
		Expect(t).Status(http.StatusOK).
		Assert(jsonpath.Equal("$.correctPassword", true)).
		Assert(jsonpath.Equal("$.dashboard.name", "Sales")).
		End()

	app.api().Post("/dashboards/check-password-needed").
		JSON(map[string]any{"dashboardId": "000000000000000000000000"}).
		Expect(t).Status(http.StatusOK).
		Assert(jsonpath.Equal("$.status", float64(409))).
		Assert(jsonpath.Equal("$.message", "The specified dashboard has not been found.")).
		End()
}

func TestRouter_CheckPasswordNeededPrefersVerifiedToken(t *testing.T) {
	app := newTestApp(t)
	aID, aTok := app.signUp(t, "alice")
	_, bTok := app.signUp(t, "bob")
	privateID := app.createDashboard(t, aTok, "Payroll")

	// Bob claims to be Alice in the body, but his token says otherwise.
	app.api().Post("/dashboards/check-password-needed").Header("Authorization", "Bearer "+bTok).
		JSON(map[string]any{"user": map[string]string{"id": aID}, "dashboardId": privateID}).
		Expect(t).Status(http.StatusOK).
		Assert(jsonpath.Equal("$.shared", false)).
		Assert(jsonpath.NotPresent("$.dashboard")).
		End()

	app.api().Post("/dashboards/check-password-needed").Header("Authorization", "Bearer "+aTok).
		JSON(map[string]any{"dashboardId": privateID}).
		Expect(t).Status(http.StatusOK).
		Assert(jsonpath.Equal("$.owner", "self")).
		Assert(jsonpath.Equal("$.dashboard.name", "Payroll")).
		End()

	// A bad token is ignored rather than rejected on this public route.
	app.api().Post("/dashboards/check-password-needed").Header("Authorization", "Bearer garbage").
		JSON(map[string]any{"dashboardId": privateID}).
		Expect(t).Status(http.StatusOK).
		Assert(jsonpath.Equal("$.shared", false)).
		End()
}

func TestRouter_DashboardOwnership(t *testing.T) {
	app := newTestApp(t)
	_, aTok := app.signUp(t, "alice")
	_, bTok := app.signUp(t, "bob")
	id := app.createDashboard(t, aTok, "Ops")

	app.api().Post("/dashboards/create-dashboard").Header("x-access-token", aTok).
		JSON(map[string]string{"name": "Ops"}).
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.status", float64(409))).End()

	app.api().Get("/dashboards/dashboard").Query("id", id).Header("x-access-token", bTok).
		Expect(t).Status(http.StatusOK).
		Assert(jsonpath.Equal("$.message", "The selected dashboard has not been found.")).
		End()

	app.api().Post("/dashboards/save-dashboard").Header("x-access-token", aTok).
		JSON(map[string]any{"id": id, "layout": []any{}, "items": map[string]any{}, "nextId": 0}).
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.status", float64(400))).End()

	app.api().Post("/dashboards/clone-dashboard").Header("x-access-token", aTok).
		JSON(map[string]string{"dashboardId": id, "name": "Ops copy"}).
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.success", true)).End()

	app.api().Post("/dashboards/delete-dashboard").Header("x-access-token", bTok).
		JSON(map[string]string{"id": id}).
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.status", float64(409))).End()

	app.api().Get("/dashboards/dashboards").Header("x-access-token", aTok).
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Len("$.dashboards", 2)).End()
}

func TestRouter_Sources(t *testing.T) {
	app := newTestApp(t)
	_, tok := app.signUp(t, "alice")

	app.api().Post("/sources/check-sources").Header("x-access-token", tok).
		JSON(map[string]any{"sources": []string{"mq", "mq", "ws"}}).
		Expect(t).Status(http.StatusOK).
		Assert(jsonpath.Equal("$.newSources", []any{"mq", "ws"})).
		End()

	app.api().Post("/sources/create-source").Header("x-access-token", tok).
		JSON(map[string]string{"name": "mq", "type": "stomp"}).
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.status", float64(409))).End()

	app.api().Post("/sources/source").Header("x-access-token", tok).
		JSON(map[string]string{"name": "ws", "owner": "self"}).
		Expect(t).Status(http.StatusOK).
		Assert(jsonpath.Equal("$.source.type", "stomp")).
		End()

	app.api().Post("/sources/source").Header("x-access-token", tok).
		JSON(map[string]string{"name": "ws", "owner": "someone-else"}).
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.status", float64(409))).End()

	app.api().Get("/sources/sources").Header("x-access-token", tok).
		Expect(t).Status(http.StatusOK).
		Assert(jsonpath.Len("$.sources", 2)).
		Assert(jsonpath.Equal("$.sources[0].active", false)).
		End()
}

func TestRouter_GeneralAndOperational(t *testing.T) {
	app := newTestApp(t)
	_, tok := app.signUp(t, "alice")
	app.createDashboard(t, tok, "One")

	app.api().Get("/general/statistics").
		Expect(t).Status(http.StatusOK).
		Assert(jsonpath.Equal("$.users", float64(1))).
		Assert(jsonpath.Equal("$.dashboards", float64(1))).
		End()

	app.api().Get("/general/test-url").Query("url", "http://example.com").
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.active", true)).End()

	app.api().Get("/general/test-url-request").Query("url", "http://example.com").Query("type", "GET").
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.response", "pong")).End()

	app.api().Get("/").Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.version", "test")).End()
	app.api().Get("/health").Expect(t).Status(http.StatusOK).HeaderPresent(echo.HeaderXRequestID).End()
	app.api().Get("/health/ready").Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.status", "ok")).End()
	app.api().Get("/metrics").Expect(t).Status(http.StatusOK).End()
}
