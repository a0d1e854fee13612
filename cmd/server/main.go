package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trackr/backend/internal/config"
	"trackr/backend/internal/database"
	"trackr/backend/internal/handler"
	"trackr/backend/internal/hub"
	"trackr/backend/internal/mailer"
	"trackr/backend/internal/metrics"
	"trackr/backend/internal/repository"
	"trackr/backend/internal/router"
	"trackr/backend/internal/seed"
	"trackr/backend/internal/service"
	"trackr/backend/internal/session"
	"trackr/backend/internal/storage"
	"trackr/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"

	// Swagger docs
	_ "trackr/backend/docs"
)

const shutdownTimeout = 10 * time.Second

// @title           Track-R API
// @version         1.0
// @description     Game, console and achievement tracker.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	app := &cli.App{
		Name:  "trackr",
		Usage: "Track-R backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: ".",
				Usage: "directory holding the .env file",
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database tables",
				Action: migrate,
			},
			{
				Name:  "seed",
				Usage: "insert a demo catalog, an admin and a few players",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "admin-email", Value: "admin@trackr.local"},
					&cli.StringFlag{Name: "admin-password", Value: "changeme123"},
					&cli.StringFlag{Name: "player-password", Value: "player1234"},
					&cli.IntFlag{Name: "games", Value: 12},
					&cli.IntFlag{Name: "players", Value: 8},
					&cli.Int64Flag{Name: "seed", Usage: "faker seed, random when 0"},
				},
				Action: seedDemo,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads the configuration, the logger and the database.
func bootstrap(c *cli.Context) (*config.Config, zerolog.Logger, *gorm.DB, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	log := newLogger(cfg.LogLevel)
	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		return nil, log, nil, err
	}
	return cfg, log, db, nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}

func migrate(c *cli.Context) error {
	_, log, db, err := bootstrap(c)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}
	log.Info().Msg("Database migrated.")
	return nil
}

func seedDemo(c *cli.Context) error {
	_, log, db, err := bootstrap(c)
	if err != nil {
		return err
	}
	s := seed.New(seed.Deps{
		Consoles:     repository.NewConsoleRepository(db),
		Games:        repository.NewGameRepository(db),
		Achievements: repository.NewAchievementRepository(db),
		Accounts:     repository.NewAccountRepository(db),
		Follows:      repository.NewFollowRepository(db),
		Log:          log,
	}, seed.Options{
		Games:          c.Int("games"),
		Players:        c.Int("players"),
		AdminEmail:     c.String("admin-email"),
		AdminPassword:  c.String("admin-password"),
		PlayerPassword: c.String("player-password"),
		Seed:           c.Int64("seed"),
	})
	_, err = s.Run(c.Context)
	return err
}

func serve(c *cli.Context) error {
	cfg, log, db, err := bootstrap(c)
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	accounts := repository.NewAccountRepository(db)
	profiles := repository.NewProfileRepository(db)
	games := repository.NewGameRepository(db)
	consoles := repository.NewConsoleRepository(db)
	achievements := repository.NewAchievementRepository(db)
	follows := repository.NewFollowRepository(db)

	var revocations session.RevocationStore = session.NewMemoryRevocations()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		if err := rdb.Ping(c.Context).Err(); err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		revocations = session.NewRedisRevocations(rdb)
		log.Info().Msg("Token revocations stored in Redis.")
	}

	store, err := storage.NewOSStore(cfg.StorageDir, cfg.PublicBaseURL)
	if err != nil {
		return err
	}

	m := mailer.NewLogMailer(log, cfg.PublicBaseURL)
	sessions := session.NewManager(session.Deps{
		Accounts:                 accounts,
		Profiles:                 profiles,
		Tokens:                   jwt.NewProvider(cfg.JWTSecret, cfg.JWTTTL),
		Revocations:              revocations,
		Hub:                      hub.NewHub(log),
		Limiter:                  session.NewLimiter(cfg.LoginRatePerMinute),
		Mailer:                   m,
		RequireEmailConfirmation: cfg.RequireEmailConfirmation,
		Log:                      log,
	})

	h := handler.New(handler.Deps{
		Sessions: sessions,
		Catalog:  service.NewCatalogService(games, consoles, achievements),
		Tracker:  service.NewTrackerService(games, achievements, follows),
		Players:  service.NewPlayerService(profiles),
		Home:     service.NewHomeService(profiles, games, consoles, log),
		Settings: service.NewSettingsService(accounts, profiles, sessions, m, 0),
		Store:    store,
		Metrics:  metrics.New(),
		Log:      log,
	})

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: router.New(router.Options{
			Handler:  h,
			Sessions: sessions,
			Storage:  store.FileSystem(),
			Log:      log,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server is running")
		log.Info().Msgf("Swagger UI is available at %s/swagger/index.html", cfg.PublicBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
