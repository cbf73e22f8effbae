package main

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/rs/zerolog"

	"github.com/hackgods/barbershop-booking/internal/appointment"
	"github.com/hackgods/barbershop-booking/internal/calendar"
	"github.com/hackgods/barbershop-booking/internal/config"
	"github.com/hackgods/barbershop-booking/internal/db"
	"github.com/hackgods/barbershop-booking/internal/logging"
	redisclient "github.com/hackgods/barbershop-booking/internal/redis"
	"github.com/hackgods/barbershop-booking/internal/schedule"
)

const seedDays = 30

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logging.New("dev", "info", "seed")
		bootLog.Fatal().Err(err).Msg("config load error")
	}

	logger := logging.New(cfg.Env, cfg.LogLevel, "seed")
	if cfg.Storage != config.StoragePostgres {
		logger.Fatal().Str("storage", cfg.Storage).Msg("seed writes to postgres only")
	}
	logger.Info().Msg("seed starting")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.ConnectPostgres(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	if _, err := db.ApplyMigrations(context.Background(), pool); err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}

	gofakeit.Seed(time.Now().UnixNano())

	repo := appointment.NewPgRepository(pool)
	svc := appointment.NewService(repo, redisclient.NewMemoryDayLocker(), cfg, logger)

	if _, err := svc.EnsureWorkingHours(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("seed working hours")
	}

	n, err := seedAppointments(context.Background(), svc, repo, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("seed appointments")
	}

	logger.Info().Int("appointments", n).Msg("seed complete")
}

// seedAppointments fills every open day from seedDays ago to seedDays ahead with
// non-overlapping appointments. Past days end up completed or cancelled.
func seedAppointments(ctx context.Context, svc *appointment.Service, repo appointment.Repository, logger zerolog.Logger) (int, error) {
	hours, err := svc.WorkingHours(ctx)
	if err != nil {
		return 0, err
	}

	today := calendar.StartOfDay(svc.Now())
	interval := svc.SlotInterval()
	total := 0

	for offset := -seedDays; offset <= seedDays; offset++ {
		day := today.AddDate(0, 0, offset)
		entry := hours[day.Weekday()]
		if !entry.IsOpen {
			continue
		}

		slots, err := schedule.GenerateTimeSlots(entry.Open, entry.Close, interval)
		if err != nil {
			return total, fmt.Errorf("slots for %s: %w", entry.Day, err)
		}
		closing, _ := schedule.ParseClock(entry.Close)

		freeFrom := 0
		for _, slot := range slots {
			start, _ := schedule.ParseClock(slot)
			if start < freeFrom || gofakeit.Number(1, 100) > 45 {
				continue
			}

			svcOpt := appointment.Catalogue[gofakeit.Number(0, len(appointment.Catalogue)-1)]
			if start+svcOpt.Duration > closing {
				continue
			}

			_, err := repo.CreateAppointment(ctx, appointment.Appointment{
				ClientName:  gofakeit.FirstName() + " " + gofakeit.LastName(),
				ClientPhone: fmt.Sprintf("05%d-%07d", gofakeit.Number(0, 9), gofakeit.Number(0, 9999999)),
				Service:     svcOpt.Name,
				Date:        calendar.ISODate(day),
				Time:        slot,
				Duration:    svcOpt.Duration,
				Price:       svcOpt.Price,
				Status:      seedStatus(offset),
			})
			if err != nil {
				return total, err
			}

			freeFrom = start + svcOpt.Duration
			total++
		}

		logger.Debug().Str("date", calendar.ISODate(day)).Int("total", total).Msg("day seeded")
	}

	return total, nil
}

func seedStatus(offset int) appointment.Status {
	roll := gofakeit.Number(1, 100)
	if offset < 0 {
		if roll <= 10 {
			return appointment.StatusCancelled
		}
		return appointment.StatusCompleted
	}
	switch {
	case roll <= 5:
		return appointment.StatusCancelled
	case roll <= 30:
		return appointment.StatusPending
	default:
		return appointment.StatusConfirmed
	}
}
