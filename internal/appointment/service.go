package appointment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hackgods/barbershop-booking/internal/calendar"
	"github.com/hackgods/barbershop-booking/internal/config"
	"github.com/hackgods/barbershop-booking/internal/contact"
	redisclient "github.com/hackgods/barbershop-booking/internal/redis"
	"github.com/hackgods/barbershop-booking/internal/schedule"
)

const (
	EventAppointmentCreated   = "APPOINTMENT_CREATED"
	EventAppointmentConfirmed = "APPOINTMENT_CONFIRMED"
	EventAppointmentCancelled = "APPOINTMENT_CANCELLED"
	EventAppointmentCompleted = "APPOINTMENT_COMPLETED"
	EventWorkingHoursUpdated  = "WORKING_HOURS_UPDATED"
)

var (
	ErrIncompleteForm          = errors.New("booking form is incomplete")
	ErrInvalidPhone            = errors.New("phone number is not a valid mobile number")
	ErrUnknownService          = errors.New("service is not offered")
	ErrDateInPast              = errors.New("selected date is in the past")
	ErrShopClosed              = errors.New("shop is closed on the selected day")
	ErrSlotUnavailable         = errors.New("selected time is not a bookable slot")
	ErrSlotAlreadyBooked       = errors.New("selected time overlaps an existing appointment")
	ErrSlotBeingBooked         = errors.New("day is currently being booked, please retry")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

type Service struct {
	repo   Repository
	locker redisclient.Locker
	cfg    config.Config
	loc    *time.Location
	now    func() time.Time
	log    zerolog.Logger
}

func NewService(repo Repository, locker redisclient.Locker, cfg config.Config, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		locker: locker,
		cfg:    cfg,
		loc:    cfg.Location(),
		now:    time.Now,
		log:    logger,
	}
}

// Now returns the service clock in the shop's timezone.
func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

// Location is the shop's timezone.
func (s *Service) Location() *time.Location {
	return s.loc
}

// SlotInterval is the length in minutes of one bookable slot.
func (s *Service) SlotInterval() int {
	if s.cfg.SlotInterval <= 0 {
		return schedule.DefaultInterval
	}
	return s.cfg.SlotInterval
}

// Book validates a completed booking wizard and reserves the slot as a pending
// appointment. Bookings for the same day are serialized through the locker so
// two clients cannot take overlapping times.
func (s *Service) Book(ctx context.Context, form FormState) (*Appointment, error) {
	for step := StepClient; step <= StepSlot; step++ {
		if !CanProceed(step, form) {
			return nil, fmt.Errorf("%w: step %d", ErrIncompleteForm, step)
		}
	}

	if !contact.IsValidPhone(form.ClientPhone) {
		return nil, ErrInvalidPhone
	}

	svc, ok := FindService(form.SelectedService.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, form.SelectedService.Name)
	}

	now := s.Now()
	day := form.SelectedDate.In(s.loc)
	if calendar.IsPast(day.Day(), day, now) {
		return nil, ErrDateInPast
	}

	start, err := schedule.ParseClock(form.SelectedTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	date := calendar.ISODate(day)
	if date == calendar.ISODate(now) && start <= now.Hour()*60+now.Minute() {
		return nil, ErrDateInPast
	}

	if err := s.checkSlot(ctx, day.Weekday(), form.SelectedTime, svc.Duration); err != nil {
		return nil, err
	}

	var created *Appointment

	err = s.locker.WithDayLock(ctx, date, func(lockCtx context.Context) error {
		// Inside the critical section re-read the day's bookings
		existing, err := s.repo.ListAppointments(lockCtx, date, date)
		if err != nil {
			return fmt.Errorf("list day appointments: %w", err)
		}
		for _, a := range existing {
			if a.Status == StatusCancelled {
				continue
			}
			begin, err := schedule.ParseClock(a.Time)
			if err != nil {
				s.log.Warn().Int64("appointment_id", a.ID).Str("time", a.Time).Msg("skipping appointment with unreadable time")
				continue
			}
			if schedule.Overlaps(start, svc.Duration, begin, a.Duration) {
				return ErrSlotAlreadyBooked
			}
		}

		appt, err := s.repo.CreateAppointment(lockCtx, Appointment{
			ClientName:  strings.TrimSpace(form.ClientName),
			ClientPhone: contact.StripSpaces(form.ClientPhone),
			Service:     svc.Name,
			Date:        date,
			Time:        form.SelectedTime,
			Duration:    svc.Duration,
			Price:       svc.Price,
			Status:      StatusPending,
		})
		if err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}

		created = appt

		s.logEvent(lockCtx, &appt.ID, EventAppointmentCreated, map[string]any{
			"date":    appt.Date,
			"time":    appt.Time,
			"service": appt.Service,
		})

		return nil
	})

	if err != nil {
		if errors.Is(err, redisclient.ErrLockNotAcquired) {
			return nil, ErrSlotBeingBooked
		}
		return nil, err
	}

	return created, nil
}

// checkSlot verifies that start is one of the day's generated slots and that a
// service of duration minutes finishes by closing time.
func (s *Service) checkSlot(ctx context.Context, weekday time.Weekday, start string, duration int) error {
	entry, err := s.workingDay(ctx, weekday)
	if err != nil {
		return err
	}
	if !entry.IsOpen {
		return ErrShopClosed
	}

	slots, err := schedule.GenerateTimeSlots(entry.Open, entry.Close, s.SlotInterval())
	if err != nil {
		return fmt.Errorf("working hours for %s: %w", entry.Day, err)
	}
	if !slices.Contains(slots, start) {
		return ErrSlotUnavailable
	}

	begin, _ := schedule.ParseClock(start)
	closing, _ := schedule.ParseClock(entry.Close)
	if begin+duration > closing {
		return fmt.Errorf("%w: service ends after closing time %s", ErrSlotUnavailable, entry.Close)
	}
	return nil
}

func (s *Service) workingDay(ctx context.Context, weekday time.Weekday) (WorkingHourEntry, error) {
	hours, err := s.repo.ListWorkingHours(ctx)
	if err != nil {
		return WorkingHourEntry{}, fmt.Errorf("load working hours: %w", err)
	}
	if int(weekday) >= len(hours) {
		return WorkingHourEntry{}, fmt.Errorf("%w: weekday %d", ErrWorkingHourNotFound, weekday)
	}
	return hours[weekday], nil
}

// ConfirmAppointment moves a pending appointment to confirmed
func (s *Service) ConfirmAppointment(ctx context.Context, id int64) (*Appointment, error) {
	appt, err := s.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load appointment: %w", err)
	}

	if appt.Status != StatusPending {
		return nil, ErrInvalidStatusTransition
	}

	updated, err := s.repo.UpdateAppointmentStatus(ctx, appt.ID, StatusPending, StatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("confirm appointment: %w", guardedUpdateError(err))
	}

	s.logEvent(ctx, &updated.ID, EventAppointmentConfirmed, map[string]any{})

	return updated, nil
}

// CancelAppointment cancels a pending or confirmed appointment
func (s *Service) CancelAppointment(ctx context.Context, id int64) (*Appointment, error) {
	appt, err := s.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load appointment: %w", err)
	}

	if appt.Status != StatusPending && appt.Status != StatusConfirmed {
		return nil, ErrInvalidStatusTransition
	}

	updated, err := s.repo.UpdateAppointmentStatus(ctx, appt.ID, appt.Status, StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel appointment: %w", guardedUpdateError(err))
	}

	s.logEvent(ctx, &updated.ID, EventAppointmentCancelled, map[string]any{
		"previous_status": appt.Status,
	})

	return updated, nil
}

// guardedUpdateError maps a missed status-guarded update on a row that was just
// read: the status changed in between, so the transition no longer applies.
func guardedUpdateError(err error) error {
	if errors.Is(err, ErrAppointmentNotFound) {
		return ErrInvalidStatusTransition
	}
	return err
}

// CompleteFinishedAppointments is intended to be called by the worker periodically.
// Confirmed appointments whose end time has passed become completed.
func (s *Service) CompleteFinishedAppointments(ctx context.Context) (int, error) {
	now := s.Now()
	candidates, err := s.repo.ListAppointmentsByStatus(ctx, StatusConfirmed, calendar.ISODate(now))
	if err != nil {
		return 0, fmt.Errorf("list finished appointments: %w", err)
	}

	completed := 0
	for _, appt := range candidates {
		end, err := s.endsAt(appt)
		if err != nil {
			s.log.Warn().Err(err).Int64("appointment_id", appt.ID).Msg("cannot compute appointment end")
			continue
		}
		if end.After(now) {
			continue
		}

		_, err = s.repo.UpdateAppointmentStatus(ctx, appt.ID, StatusConfirmed, StatusCompleted)
		if err != nil {
			// ErrAppointmentNotFound means the status changed under us
			if !errors.Is(err, ErrAppointmentNotFound) {
				s.log.Error().Err(err).Int64("appointment_id", appt.ID).Msg("failed to complete appointment")
			}
			continue
		}
		completed++
		s.logEvent(ctx, &appt.ID, EventAppointmentCompleted, map[string]any{
			"reason": "worker",
		})
	}

	return completed, nil
}

func (s *Service) endsAt(a Appointment) (time.Time, error) {
	day, err := calendar.ParseDate(a.Date, s.loc)
	if err != nil {
		return time.Time{}, err
	}
	start, err := schedule.ParseClock(a.Time)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(start+a.Duration) * time.Minute), nil
}

// DayAppointments lists the appointments on day's calendar date
func (s *Service) DayAppointments(ctx context.Context, day time.Time) ([]Appointment, error) {
	date := calendar.ISODate(day.In(s.loc))
	appts, err := s.repo.ListAppointments(ctx, date, date)
	if err != nil {
		return nil, fmt.Errorf("list appointments for %s: %w", date, err)
	}
	return AppointmentsOn(appts, day.In(s.loc)), nil
}

// AvailableSlots lists the slot starts on day that no active appointment covers.
// On the current day, slots that already started are left out.
func (s *Service) AvailableSlots(ctx context.Context, day time.Time) ([]string, error) {
	day = day.In(s.loc)
	now := s.Now()
	if calendar.IsPast(day.Day(), day, now) {
		return []string{}, nil
	}

	entry, err := s.workingDay(ctx, day.Weekday())
	if err != nil {
		return nil, err
	}
	if !entry.IsOpen {
		return []string{}, nil
	}

	slots, err := schedule.GenerateTimeSlots(entry.Open, entry.Close, s.SlotInterval())
	if err != nil {
		return nil, fmt.Errorf("working hours for %s: %w", entry.Day, err)
	}

	booked, err := s.DayAppointments(ctx, day)
	if err != nil {
		return nil, err
	}

	isToday := calendar.ISODate(day) == calendar.ISODate(now)
	nowMinute := now.Hour()*60 + now.Minute()

	free := make([]string, 0, len(slots))
	for _, slot := range slots {
		start, _ := schedule.ParseClock(slot)
		if isToday && start <= nowMinute {
			continue
		}
		if s.slotTaken(start, booked) {
			continue
		}
		free = append(free, slot)
	}
	return free, nil
}

func (s *Service) slotTaken(start int, booked []Appointment) bool {
	for _, a := range booked {
		if a.Status == StatusCancelled {
			continue
		}
		begin, err := schedule.ParseClock(a.Time)
		if err != nil {
			continue
		}
		if schedule.Overlaps(start, s.SlotInterval(), begin, a.Duration) {
			return true
		}
	}
	return false
}

// Stats computes the statistics for period ending at ref
func (s *Service) Stats(ctx context.Context, period string, ref time.Time) (StatsResult, error) {
	ref = ref.In(s.loc)
	start, err := PeriodStart(period, ref)
	if err != nil {
		return StatsResult{}, err
	}

	appts, err := s.repo.ListAppointments(ctx, calendar.ISODate(start), "")
	if err != nil {
		return StatsResult{}, fmt.Errorf("list appointments for stats: %w", err)
	}

	return CalculateStats(appts, period, ref)
}

// WorkingHours returns the weekly schedule, Sunday first
func (s *Service) WorkingHours(ctx context.Context) ([]WorkingHourEntry, error) {
	hours, err := s.repo.ListWorkingHours(ctx)
	if err != nil {
		return nil, fmt.Errorf("load working hours: %w", err)
	}
	return hours, nil
}

// EnsureWorkingHours stores the default entry for every weekday the repository
// does not have yet. It returns how many entries were written.
func (s *Service) EnsureWorkingHours(ctx context.Context) (int, error) {
	hours, err := s.WorkingHours(ctx)
	if err != nil {
		return 0, err
	}

	defaults := DefaultWorkingHours()
	written := 0
	for i := len(hours); i < len(defaults); i++ {
		if err := s.repo.SaveWorkingHour(ctx, i, defaults[i]); err != nil {
			return written, fmt.Errorf("save default working hour: %w", err)
		}
		written++
	}
	return written, nil
}

// UpdateWorkingHour changes one field of one weekday and persists the entry.
// Open and close values must be empty or valid HH:MM times.
func (s *Service) UpdateWorkingHour(ctx context.Context, index int, field HourField, value any) ([]WorkingHourEntry, error) {
	hours, err := s.WorkingHours(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(hours) {
		return nil, fmt.Errorf("%w: index %d", ErrWorkingHourNotFound, index)
	}

	if field == FieldOpen || field == FieldClose {
		if v, ok := value.(string); ok && v != "" {
			if _, err := schedule.ParseClock(v); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
			}
		}
	}

	updated, err := UpdateHour(hours, index, field, value)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveWorkingHour(ctx, index, updated[index]); err != nil {
		return nil, fmt.Errorf("save working hour: %w", err)
	}

	s.logEvent(ctx, nil, EventWorkingHoursUpdated, map[string]any{
		"index": index,
		"field": field,
		"value": value,
	})

	return updated, nil
}

func (s *Service) logEvent(ctx context.Context, appointmentID *int64, eventType string, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Str("event", eventType).Msg("failed to marshal event payload")
		data = nil
	}

	ev := EventLog{
		EventType:     eventType,
		AppointmentID: appointmentID,
		Payload:       data,
		CreatedAt:     s.now(),
	}

	if err := s.repo.InsertEvent(ctx, ev); err != nil {
		s.log.Error().Err(err).Str("event", eventType).Msg("failed to insert event log")
	}
}
