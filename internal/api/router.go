package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/hackgods/barbershop-booking/internal/appointment"
)

type RouterConfig struct {
	Service *appointment.Service
	Checks  []Check
	Env     string
	Version string
	Logger  zerolog.Logger
}

// middlewares is the chain applied to every route. Recovery sits inside
// logging so a recovered panic is still logged as a 500 request.
func middlewares(logger zerolog.Logger) chi.Middlewares {
	return chi.Middlewares{
		RequestIDMiddleware,
		LoggingMiddleware(logger),
		RecoveryMiddleware(logger),
	}
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares(cfg.Logger)...)

	// Health endpoints
	health := NewHealthHandler(cfg.Checks, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	// Appointment endpoints
	r.Get("/appointments", listAppointmentsHandler(cfg.Service))
	r.Post("/appointments", createAppointmentHandler(cfg.Service))
	r.Post("/appointments/{id}/confirm", confirmAppointmentHandler(cfg.Service))
	r.Post("/appointments/{id}/cancel", cancelAppointmentHandler(cfg.Service))

	r.Get("/slots", slotsHandler(cfg.Service))
	r.Get("/stats", statsHandler(cfg.Service))

	r.Route("/working-hours", func(r chi.Router) {
		r.Get("/", listWorkingHoursHandler(cfg.Service))
		r.Patch("/{index}", updateWorkingHourHandler(cfg.Service))
	})

	r.Get("/calendar", calendarHandler(cfg.Service))
	r.Get("/demo/appointments", demoAppointmentsHandler(cfg.Service))

	return r
}
