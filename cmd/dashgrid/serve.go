package main

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/dashgrid/dashgrid-api/internal/api"
	"github.com/dashgrid/dashgrid-api/internal/core/ports"
	"github.com/dashgrid/dashgrid-api/internal/core/service"
	"github.com/dashgrid/dashgrid-api/internal/infrastructure/db/memory"
	mongostore "github.com/dashgrid/dashgrid-api/internal/infrastructure/db/mongo"
	redisstore "github.com/dashgrid/dashgrid-api/internal/infrastructure/db/redis"
	health "github.com/dashgrid/dashgrid-api/internal/infrastructure/http/handlers"
	"github.com/dashgrid/dashgrid-api/internal/infrastructure/mail"
	"github.com/dashgrid/dashgrid-api/internal/infrastructure/probe"
	"github.com/dashgrid/dashgrid-api/internal/infrastructure/queue"
	"github.com/dashgrid/dashgrid-api/internal/pkg/config"
	"github.com/dashgrid/dashgrid-api/internal/pkg/password"
	"github.com/dashgrid/dashgrid-api/internal/pkg/token"
	"github.com/dashgrid/dashgrid-api/pkg/logger"
)

const (
	storeMongo  = "mongo"
	storeMemory = "memory"
)

// repositories is the persistence wiring shared by every service.
type repositories struct {
	accounts   ports.AccountRepository
	resets     ports.ResetRepository
	dashboards ports.DashboardRepository
	sources    ports.SourceRepository
	stats      ports.StatsRepository
	checks     []health.Check
	closers    []func(context.Context) error
}

func (r *repositories) close(ctx context.Context) {
	for i := len(r.closers) - 1; i >= 0; i-- {
		_ = r.closers[i](ctx)
	}
}

func serveCmd() *cli.Command {
	store := storeMongo
	addr := ""
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "store",
				Usage:       "Persistence backend: mongo or memory",
				Value:       store,
				Destination: &store,
			},
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "Address to listen on (defaults to :$PORT)",
				Destination: &addr,
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.Context)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = net.JoinHostPort("", cfg.Port)
			}
			return run(c.Context, cfg, store, addr)
		},
	}
}

func run(ctx context.Context, cfg *config.Config, store, addr string) error {
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "dashgrid",
		Version: version,
	})

	repos, err := openRepositories(ctx, cfg, store, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		repos.close(closeCtx)
	}()

	statsCache, redisCheck, closeRedis, err := openStatsCache(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}
	if closeRedis != nil {
		defer closeRedis()
		repos.checks = append(repos.checks, redisCheck)
	}

	dispatcher := queue.NewMailDispatcher(cfg.Mail.Workers, mailSender(cfg.Mail, log), logger.Component(log, "mail"))
	dispatcher.Start(ctx)
	defer func() {
		drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := dispatcher.Shutdown(drainCtx); err != nil {
			log.Warn().Err(err).Msg("mail queue not drained")
		}
	}()

	prober, err := probe.New(cfg.Probe.Timeout, cfg.Probe.CacheTTL, logger.Component(log, "probe"))
	if err != nil {
		return err
	}
	defer prober.Close()

	codec := token.New([]byte(cfg.ServerSecret), cfg.SessionTTL, cfg.ResetTTL)
	hasher := password.NewHasher(bcrypt.DefaultCost)

	accounts := service.NewAccountService(repos.accounts, repos.resets, service.AccountCollaborators{
		Hasher:   hasher,
		Tokens:   codec,
		Mailer:   dispatcher,
		Mails:    mail.NewComposer(cfg.Mail.ResetURL, humanDuration(codec.ResetTTL())),
		ResetTTL: codec.ResetTTL(),
	}, logger.Component(log, "accounts"))

	router := api.NewRouter(api.Options{
		Logger:     logger.Component(log, "http"),
		Version:    version,
		Tokens:     codec,
		Accounts:   accounts,
		Dashboards: service.NewDashboardService(repos.dashboards, repos.sources, hasher, logger.Component(log, "dashboards")),
		Sources:    service.NewSourceService(repos.sources, logger.Component(log, "sources")),
		Stats:      service.NewStatsService(repos.stats, statsCache, logger.Component(log, "stats")),
		Prober:     prober,
		Checks:     repos.checks,
	})

	log.Info().Str("store", store).Str("env", cfg.Env).Msg("dashgrid ready")
	return api.Serve(ctx, router, addr, log)
}

func openRepositories(ctx context.Context, cfg *config.Config, store string, log zerolog.Logger) (*repositories, error) {
	switch store {
	case storeMemory:
		log.Warn().Msg("using in-memory store: data is lost on exit")
		s := memory.NewStore()
		return &repositories{
			accounts:   s.Accounts(),
			resets:     s.Resets(),
			dashboards: s.Dashboards(),
			sources:    s.Sources(),
			stats:      s.Stats(),
		}, nil

	case storeMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")
		return &repositories{
			accounts:   mongostore.NewAccountRepository(db),
			resets:     mongostore.NewResetRepository(db),
			dashboards: mongostore.NewDashboardRepository(db),
			sources:    mongostore.NewSourceRepository(db),
			stats:      mongostore.NewStatsRepository(db),
			checks:     []health.Check{health.MongoCheck(db)},
			closers:    []func(context.Context) error{client.Disconnect},
		}, nil

	default:
		return nil, fmt.Errorf("unknown store %q (want %s or %s)", store, storeMongo, storeMemory)
	}
}

// openStatsCache connects Redis when configured. The returned cache is an
// untyped nil when Redis is disabled so the stats service skips it.
func openStatsCache(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (service.StatsCache, health.Check, func(), error) {
	if cfg.Addr == "" {
		return nil, health.Check{}, nil, nil
	}
	client, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	if err != nil {
		return nil, health.Check{}, nil, err
	}
	log.Info().Str("addr", cfg.Addr).Msg("connected to Redis")
	closeFn := func() { _ = client.Close() }
	return redisstore.NewStatsCache(client, cfg.StatsTTL), health.RedisCheck(client), closeFn, nil
}

func mailSender(cfg config.MailConfig, log zerolog.Logger) ports.MailSender {
	if cfg.Host == "" {
		return mail.NewLogSender(logger.Component(log, "mail"))
	}
	return mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
	})
}

// humanDuration renders whole hours as "12 hours" and anything else with
// time.Duration's own format.
func humanDuration(d time.Duration) string {
	switch {
	case d == time.Hour:
		return "1 hour"
	case d > 0 && d%time.Hour == 0:
		return fmt.Sprintf("%d hours", int(d.Hours()))
	}
	return strings.TrimSuffix(d.String(), "0s")
}
