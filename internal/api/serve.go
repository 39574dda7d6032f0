package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 30 * time.Second

// Serve runs e on addr until ctx is cancelled, then drains in-flight
// requests. A listener failure is returned as-is.
func Serve(ctx context.Context, e *echo.Echo, addr string, log zerolog.Logger) error {
	e.Server.ReadHeaderTimeout = time.Minute
	e.Server.ReadTimeout = 5 * time.Minute
	e.Server.WriteTimeout = time.Minute
	e.Server.IdleTimeout = 5 * time.Minute

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("starting HTTP server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("initiating shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("shutdown completed")
	return <-errCh
}
