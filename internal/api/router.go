package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/dashgrid/dashgrid-api/internal/api/handler"
	"github.com/dashgrid/dashgrid-api/internal/api/middleware"
	"github.com/dashgrid/dashgrid-api/internal/core/ports"
	health "github.com/dashgrid/dashgrid-api/internal/infrastructure/http/handlers"
)

// Options carries everything NewRouter wires into the Echo instance.
type Options struct {
	Logger  zerolog.Logger
	Version string

	Tokens     middleware.Verifier
	Accounts   ports.AccountService
	Dashboards ports.DashboardService
	Sources    ports.SourceService
	Stats      ports.StatsService
	Prober     handler.URLProber

	// Checks are the dependencies reported by /health/ready.
	Checks []health.Check

	// Registerer and Gatherer default to the prometheus globals.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(opts.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "dashgrid",
		Registerer: opts.Registerer,
	}))
	e.Use(echomiddleware.CORS())

	auth := middleware.Auth(opts.Tokens)
	optionalAuth := middleware.OptionalAuth(opts.Tokens)

	// --- Accounts ---
	accountHandler := handler.NewAccountHandler(opts.Accounts, opts.Tokens)
	users := e.Group("/users")
	users.POST("/create", accountHandler.Register)
	users.POST("/authenticate", accountHandler.Authenticate)
	users.POST("/resetpassword", accountHandler.ResetPassword)
	// changepassword runs the gate itself after validating the body.
	users.POST("/changepassword", accountHandler.ChangePassword)

	// --- Dashboards ---
	dashboardHandler := handler.NewDashboardHandler(opts.Dashboards)
	dashboards := e.Group("/dashboards")
	dashboards.GET("/dashboards", dashboardHandler.List, auth)
	dashboards.POST("/create-dashboard", dashboardHandler.Create, auth)
	dashboards.POST("/delete-dashboard", dashboardHandler.Delete, auth)
	dashboards.GET("/dashboard", dashboardHandler.Get, auth)
	dashboards.POST("/save-dashboard", dashboardHandler.Save, auth)
	dashboards.POST("/clone-dashboard", dashboardHandler.Clone, auth)
	dashboards.POST("/check-password-needed", dashboardHandler.CheckPasswordNeeded, optionalAuth)
	dashboards.POST("/check-password", dashboardHandler.CheckPassword)
	dashboards.POST("/share-dashboard", dashboardHandler.Share, auth)
	dashboards.POST("/change-password", dashboardHandler.ChangePassword, auth)

	// --- Sources ---
	sourceHandler := handler.NewSourceHandler(opts.Sources)
	sources := e.Group("/sources", auth)
	sources.GET("/sources", sourceHandler.List)
	sources.POST("/create-source", sourceHandler.Create)
	sources.POST("/change-source", sourceHandler.Change)
	sources.POST("/delete-source", sourceHandler.Delete)
	sources.POST("/source", sourceHandler.Get)
	sources.POST("/check-sources", sourceHandler.CheckSources)

	// --- General ---
	generalHandler := handler.NewGeneralHandler(opts.Stats, opts.Prober, opts.Version)
	general := e.Group("/general")
	general.GET("/statistics", generalHandler.Statistics)
	general.GET("/test-url", generalHandler.TestURL)
	general.GET("/test-url-request", generalHandler.TestURLRequest)
	e.GET("/", generalHandler.Root)

	// --- Health probes (no auth required) ---
	healthHandler := health.NewHealthHandler()
	readinessHandler := health.NewReadinessHandler(opts.Checks...)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
