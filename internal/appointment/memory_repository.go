package appointment

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryRepository keeps everything in process memory. It backs single-instance
// demo deployments and tests.
type MemoryRepository struct {
	mu           sync.RWMutex
	nextID       int64
	appointments map[int64]*Appointment
	hours        []WorkingHourEntry
	events       []EventLog
	now          func() time.Time
}

// NewMemoryRepository creates an empty store with the default working week.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		appointments: make(map[int64]*Appointment),
		hours:        DefaultWorkingHours(),
		now:          time.Now,
	}
}

func (r *MemoryRepository) ListAppointments(_ context.Context, from, to string) ([]Appointment, error) {
	return r.list(func(a *Appointment) bool {
		// YYYY-MM-DD compares chronologically as a string.
		return (from == "" || a.Date >= from) && (to == "" || a.Date <= to)
	}), nil
}

func (r *MemoryRepository) ListAppointmentsByStatus(_ context.Context, status Status, to string) ([]Appointment, error) {
	return r.list(func(a *Appointment) bool {
		return a.Status == status && (to == "" || a.Date <= to)
	}), nil
}

func (r *MemoryRepository) list(keep func(*Appointment) bool) []Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Appointment, 0)
	for _, a := range r.appointments {
		if keep(a) {
			result = append(result, *a)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		if result[i].Time != result[j].Time {
			return result[i].Time < result[j].Time
		}
		return result[i].ID < result[j].ID
	})

	return result
}

func (r *MemoryRepository) GetAppointmentByID(_ context.Context, id int64) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *MemoryRepository) CreateAppointment(_ context.Context, a Appointment) (*Appointment, error) {
	if !a.Status.Valid() {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidArgument, a.Status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := r.now()
	a.ID = r.nextID
	a.CreatedAt = now
	a.UpdatedAt = now
	r.appointments[a.ID] = &a

	cp := a
	return &cp, nil
}

func (r *MemoryRepository) UpdateAppointmentStatus(_ context.Context, id int64, from, to Status) (*Appointment, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidArgument, to)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.appointments[id]
	if !ok || a.Status != from {
		return nil, ErrAppointmentNotFound
	}
	a.Status = to
	a.UpdatedAt = r.now()

	cp := *a
	return &cp, nil
}

func (r *MemoryRepository) ListWorkingHours(_ context.Context) ([]WorkingHourEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]WorkingHourEntry, len(r.hours))
	copy(out, r.hours)
	return out, nil
}

func (r *MemoryRepository) SaveWorkingHour(_ context.Context, position int, e WorkingHourEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case position >= 0 && position < len(r.hours):
		r.hours[position] = e
	case position == len(r.hours):
		r.hours = append(r.hours, e)
	default:
		return ErrWorkingHourNotFound
	}
	return nil
}

func (r *MemoryRepository) InsertEvent(_ context.Context, ev EventLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev.ID = int64(len(r.events) + 1)
	r.events = append(r.events, ev)
	return nil
}

// Events returns a snapshot of the recorded event log.
func (r *MemoryRepository) Events() []EventLog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]EventLog, len(r.events))
	copy(out, r.events)
	return out
}
