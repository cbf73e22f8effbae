package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/hackgods/barbershop-booking/internal/appointment"
	"github.com/hackgods/barbershop-booking/internal/config"
	"github.com/hackgods/barbershop-booking/internal/db"
	"github.com/hackgods/barbershop-booking/internal/logging"
	redisclient "github.com/hackgods/barbershop-booking/internal/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logging.New("dev", "info", "completion-worker")
		bootLog.Fatal().Err(err).Msg("config load error")
	}

	logger := logging.New(cfg.Env, cfg.LogLevel, "completion-worker")

	if cfg.Storage != config.StoragePostgres {
		logger.Fatal().Str("storage", cfg.Storage).Msg("completion worker needs postgres storage; the api-server completes in-memory appointments itself")
	}

	logger.Info().Str("env", cfg.Env).Dur("interval", cfg.WorkerInterval).Msg("completion worker starting up")

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pgCtx, cancelPg := context.WithTimeout(rootCtx, 10*time.Second)
	pgPool, err := db.ConnectPostgres(pgCtx, cfg)
	cancelPg()
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres connection error")
	}
	defer pgPool.Close()
	logger.Info().Msg("connected to Postgres")

	repo := appointment.NewPgRepository(pgPool)
	// Completion never takes a day lock; booking is the api-server's job.
	locker := redisclient.NewMemoryDayLocker()
	svc := appointment.NewService(repo, locker, cfg, logger)

	// Run once at startup
	runOnce(rootCtx, svc, logger)

	ticker := time.NewTicker(cfg.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rootCtx.Done():
			logger.Info().Msg("shutdown signal received, stopping completion worker")
			return
		case <-ticker.C:
			runOnce(rootCtx, svc, logger)
		}
	}
}

func runOnce(ctx context.Context, svc *appointment.Service, logger zerolog.Logger) {
	runCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	start := time.Now()
	n, err := svc.CompleteFinishedAppointments(runCtx)
	if err != nil {
		logger.Error().Err(err).Msg("completion run error")
		return
	}
	logger.Info().Int("completed", n).Dur("took", time.Since(start)).Msg("completion run complete")
}
