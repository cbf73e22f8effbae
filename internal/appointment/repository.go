package appointment

import (
	"context"
	"errors"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrWorkingHourNotFound = errors.New("working hour entry not found")
)

// Repository contains all storage interactions needed by the service.
type Repository interface {
	// ListAppointments returns appointments dated within [from, to], both
	// YYYY-MM-DD and inclusive. An empty bound is open. Results are ordered by
	// date, time and id.
	ListAppointments(ctx context.Context, from, to string) ([]Appointment, error)
	// ListAppointmentsByStatus returns appointments with status dated on or
	// before to, in the same order as ListAppointments.
	ListAppointmentsByStatus(ctx context.Context, status Status, to string) ([]Appointment, error)
	GetAppointmentByID(ctx context.Context, id int64) (*Appointment, error)

	// Creation and updates
	CreateAppointment(ctx context.Context, a Appointment) (*Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id int64, from, to Status) (*Appointment, error)

	// Weekly schedule, one entry per weekday with Sunday at position 0
	ListWorkingHours(ctx context.Context) ([]WorkingHourEntry, error)
	SaveWorkingHour(ctx context.Context, position int, e WorkingHourEntry) error

	// Event logging
	InsertEvent(ctx context.Context, ev EventLog) error
}
