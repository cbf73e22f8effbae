package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

const appointmentColumns = `id, client_name, client_phone, service, to_char(appt_date, 'YYYY-MM-DD'),
		appt_time, duration_minutes, price, status, created_at, updated_at`

// Helpers

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment

	err := row.Scan(
		&a.ID,
		&a.ClientName,
		&a.ClientPhone,
		&a.Service,
		&a.Date,
		&a.Time,
		&a.Duration,
		&a.Price,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	return &a, nil
}

// Interface methods

func (r *PgRepository) ListAppointments(ctx context.Context, from, to string) ([]Appointment, error) {
	var (
		where []string
		args  []any
	)
	if from != "" {
		args = append(args, from)
		where = append(where, fmt.Sprintf("appt_date >= to_date($%d, 'YYYY-MM-DD')", len(args)))
	}
	if to != "" {
		args = append(args, to)
		where = append(where, fmt.Sprintf("appt_date <= to_date($%d, 'YYYY-MM-DD')", len(args)))
	}

	return r.queryAppointments(ctx, where, args)
}

func (r *PgRepository) ListAppointmentsByStatus(ctx context.Context, status Status, to string) ([]Appointment, error) {
	where := []string{"status = $1"}
	args := []any{status}
	if to != "" {
		args = append(args, to)
		where = append(where, fmt.Sprintf("appt_date <= to_date($%d, 'YYYY-MM-DD')", len(args)))
	}

	return r.queryAppointments(ctx, where, args)
}

func (r *PgRepository) queryAppointments(ctx context.Context, where []string, args []any) ([]Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY appt_date, appt_time, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PgRepository) GetAppointmentByID(ctx context.Context, id int64) (*Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE id = $1
	`, id)
	return scanAppointment(row)
}

func (r *PgRepository) CreateAppointment(ctx context.Context, a Appointment) (*Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (client_name, client_phone, service, appt_date, appt_time,
		                          duration_minutes, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, to_date($4, 'YYYY-MM-DD'), $5, $6, $7, $8, now(), now())
		RETURNING `+appointmentColumns+`
	`, a.ClientName, a.ClientPhone, a.Service, a.Date, a.Time, a.Duration, a.Price, a.Status)

	return scanAppointment(row)
}

func (r *PgRepository) UpdateAppointmentStatus(ctx context.Context, id int64, from, to Status) (*Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE appointments
		SET status = $2,
		    updated_at = now()
		WHERE id = $1
		  AND status = $3
		RETURNING `+appointmentColumns+`
	`, id, to, from)

	return scanAppointment(row)
}

func (r *PgRepository) ListWorkingHours(ctx context.Context) ([]WorkingHourEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT day, open_time, close_time, is_open
		FROM working_hours
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []WorkingHourEntry
	for rows.Next() {
		var e WorkingHourEntry
		if err := rows.Scan(&e.Day, &e.Open, &e.Close, &e.IsOpen); err != nil {
			return nil, err
		}
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PgRepository) SaveWorkingHour(ctx context.Context, position int, e WorkingHourEntry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO working_hours (position, day, open_time, close_time, is_open)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (position) DO UPDATE
		SET day = EXCLUDED.day,
		    open_time = EXCLUDED.open_time,
		    close_time = EXCLUDED.close_time,
		    is_open = EXCLUDED.is_open
	`, position, e.Day, e.Open, e.Close, e.IsOpen)
	if err != nil {
		return fmt.Errorf("save working hour %d: %w", position, err)
	}
	return nil
}

func (r *PgRepository) InsertEvent(ctx context.Context, ev EventLog) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO event_logs (event_type, appointment_id, payload, created_at)
		VALUES ($1, $2, $3, COALESCE($4, now()))
	`, ev.EventType, ev.AppointmentID, ev.Payload, nullableTime(ev.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert event log: %w", err)
	}

	return nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
