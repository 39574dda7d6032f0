// @title                      dashgrid API
// @version                    1.0
// @description                Accounts, dashboards and data sources for the dashgrid front end.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "github.com/dashgrid/dashgrid-api/docs"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	app := &cli.App{
		Name:    "dashgrid",
		Usage:   "Dashboard and data-source backend",
		Version: version,
		Commands: []*cli.Command{
			serveCmd(),
			migrateCmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("application failed")
		os.Exit(1)
	}
}
