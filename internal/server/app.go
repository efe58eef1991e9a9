// Package server initializes and runs the MediBook application server.
// It connects storage backends, runs schema migrations, wires the session
// and booking services, handles graceful shutdown, and starts the HTTP API.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/medibook/medibook/internal/kvstore"
	"github.com/medibook/medibook/internal/logging"
	"github.com/medibook/medibook/internal/server/auth"
	"github.com/medibook/medibook/internal/server/config"
	"github.com/medibook/medibook/internal/server/httpapi"
	"github.com/medibook/medibook/internal/server/repositories/repomanager"
	"github.com/medibook/medibook/internal/server/services"
	"github.com/medibook/medibook/internal/server/sessions"
	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	redis      *redis.Client
	httpServer *httpapi.Server
}

// NewApp validates the configuration, connects to PostgreSQL and Redis, runs
// migrations, and wires every service. Validation runs before any connection
// is opened, so a bad config (such as an empty signing secret) fails fast.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := connectDB(ctx, cfg.DatabaseDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis init error: %w", err)
	}

	refreshStore := sessions.NewStore(kvstore.NewRedisStore(rdb), cfg.RefreshTokenValidityDuration)
	issuer := auth.NewTokenIssuer([]byte(cfg.SecretKey), cfg.TokenIssuer, cfg.TokenAudience, cfg.AccessTokenValidityDuration)

	sessionService := services.NewSessionService(db, rm, issuer, refreshStore, logger, cfg)
	directoryService := services.NewDirectoryService(db, rm)
	appointmentService := services.NewAppointmentService(db, rm)

	httpServer := httpapi.NewServer(cfg.EndpointAddrHTTP, logger,
		sessionService, directoryService, appointmentService, issuer)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         db,
		redis:      rdb,
		httpServer: httpServer,
	}, nil
}

// connectDB opens the pgx connection pool and pings it with a capped
// exponential backoff, so a server started alongside the database survives
// the database coming up a few seconds later.
func connectDB(ctx context.Context, dsn string, logger logging.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	backoff := retry.WithMaxRetries(5, retry.WithCappedDuration(5*time.Second, retry.NewExponential(500*time.Millisecond)))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			logger.Warn(ctx, "database not ready, retrying", "error", err.Error())
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run starts the HTTP server and blocks until the context is cancelled or an
// OS signal arrives, then closes the storage connections.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.redis.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
