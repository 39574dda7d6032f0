package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	mongostore "github.com/dashgrid/dashgrid-api/internal/infrastructure/db/mongo"
	"github.com/dashgrid/dashgrid-api/internal/pkg/config"
	"github.com/dashgrid/dashgrid-api/pkg/logger"
)

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create the MongoDB indexes and exit",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.Context)
			if err != nil {
				return err
			}
			log := logger.Init(logger.Options{
				Level:   cfg.LogLevel,
				Pretty:  cfg.IsDevelopment(),
				Service: "dashgrid",
				Version: version,
			})

			client, db, err := mongostore.Connect(c.Context, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
			if err != nil {
				return err
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = client.Disconnect(ctx)
			}()

			if err := mongostore.EnsureIndexes(c.Context, db); err != nil {
				return err
			}
			log.Info().Str("database", cfg.Mongo.Database).Msg("indexes ensured")
			return nil
		},
	}
}
