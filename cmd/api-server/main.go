package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/hackgods/barbershop-booking/internal/api"
	"github.com/hackgods/barbershop-booking/internal/appointment"
	"github.com/hackgods/barbershop-booking/internal/config"
	"github.com/hackgods/barbershop-booking/internal/db"
	"github.com/hackgods/barbershop-booking/internal/logging"
	redisclient "github.com/hackgods/barbershop-booking/internal/redis"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logging.New("dev", "info", "api-server")
		bootLog.Fatal().Err(err).Msg("config load error")
	}

	logger := logging.New(cfg.Env, cfg.LogLevel, "api-server")
	logger.Info().
		Str("env", cfg.Env).
		Str("http_port", cfg.HTTPPort).
		Str("storage", cfg.Storage).
		Str("version", version).
		Msg("api-server starting up")

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		repo   appointment.Repository
		locker redisclient.Locker
		checks []api.Check
	)

	switch cfg.Storage {
	case config.StoragePostgres:
		pgCtx, cancelPg := context.WithTimeout(rootCtx, 10*time.Second)
		pgPool, err := db.ConnectPostgres(pgCtx, cfg)
		cancelPg()
		if err != nil {
			logger.Fatal().Err(err).Msg("postgres connection error")
		}
		defer pgPool.Close()
		logger.Info().Msg("connected to Postgres")

		applied, err := db.ApplyMigrations(rootCtx, pgPool)
		if err != nil {
			logger.Fatal().Err(err).Msg("migrations failed")
		}
		if len(applied) > 0 {
			logger.Info().Strs("migrations", applied).Msg("applied migrations")
		}

		rdb, err := redisclient.NewRedisClient(rootCtx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis connection error")
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				logger.Error().Err(err).Msg("error closing redis")
			}
		}()
		logger.Info().Str("addr", cfg.RedisAddr).Msg("connected to Redis")

		repo = appointment.NewPgRepository(pgPool)
		locker = redisclient.NewRedisDayLocker(rdb, cfg.LockTTL)
		checks = []api.Check{api.PostgresCheck(pgPool), api.RedisCheck(rdb)}

	case config.StorageMemory:
		logger.Warn().Msg("using in-memory storage, data is lost on restart")
		repo = appointment.NewMemoryRepository()
		locker = redisclient.NewMemoryDayLocker()
	}

	svc := appointment.NewService(repo, locker, cfg, logger)

	if n, err := svc.EnsureWorkingHours(rootCtx); err != nil {
		logger.Fatal().Err(err).Msg("working hours setup failed")
	} else if n > 0 {
		logger.Info().Int("entries", n).Msg("stored default working hours")
	}

	// Nothing else can reach an in-memory store, so complete appointments here.
	if cfg.Storage == config.StorageMemory {
		go completeLoop(rootCtx, svc, cfg.WorkerInterval, logger)
	}

	srv := &http.Server{
		Addr: ":" + cfg.HTTPPort,
		Handler: api.NewRouter(api.RouterConfig{
			Service: svc,
			Checks:  checks,
			Env:     cfg.Env,
			Version: version,
			Logger:  logger,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error().Err(err).Msg("http server failed")
			stop()
			os.Exit(1)
		}
	case <-rootCtx.Done():
	}

	logger.Info().Msg("shutting down api-server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func completeLoop(ctx context.Context, svc *appointment.Service, interval time.Duration, logger zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.CompleteFinishedAppointments(ctx)
			if err != nil {
				logger.Error().Err(err).Msg("completion run error")
				continue
			}
			if n > 0 {
				logger.Info().Int("completed", n).Msg("completed finished appointments")
			}
		}
	}
}
