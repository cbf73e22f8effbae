package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hackgods/barbershop-booking/internal/appointment"
	"github.com/hackgods/barbershop-booking/internal/calendar"
	"github.com/hackgods/barbershop-booking/internal/schedule"
)

// dateParam reads an optional YYYY-MM-DD query parameter, defaulting to today.
func dateParam(r *http.Request, key string, svc *appointment.Service) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return calendar.StartOfDay(svc.Now()), nil
	}
	return calendar.ParseDate(raw, svc.Location())
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func listAppointmentsHandler(svc *appointment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := dateParam(r, "date", svc)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
			return
		}

		appts, err := svc.DayAppointments(r.Context(), day)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponses(appts))
	}
}

func createAppointmentHandler(svc *appointment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		form := appointment.FormState{
			ClientName:   req.ClientName,
			ClientPhone:  req.ClientPhone,
			SelectedTime: req.Time,
		}
		if req.Service != "" {
			opt, ok := appointment.FindService(req.Service)
			if !ok {
				opt = appointment.ServiceOption{Name: req.Service}
			}
			form.SelectedService = &opt
		}
		if req.Date != "" {
			day, err := calendar.ParseDate(req.Date, svc.Location())
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
				return
			}
			form.SelectedDate = &day
		}

		appt, err := svc.Book(r.Context(), form)
		if err != nil {
			handleBookError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(*appt))
	}
}

func confirmAppointmentHandler(svc *appointment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_appointment_id", "id must be an integer")
			return
		}

		appt, err := svc.ConfirmAppointment(r.Context(), id)
		if err != nil {
			handleTransitionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(*appt))
	}
}

func cancelAppointmentHandler(svc *appointment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_appointment_id", "id must be an integer")
			return
		}

		appt, err := svc.CancelAppointment(r.Context(), id)
		if err != nil {
			handleTransitionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(*appt))
	}
}

func slotsHandler(svc *appointment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := dateParam(r, "date", svc)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
			return
		}

		starts, err := svc.AvailableSlots(r.Context(), day)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		interval := svc.SlotInterval()
		slots := make([]SlotResponse, 0, len(starts))
		for _, s := range starts {
			end, _ := schedule.CalculateEndTime(s, interval)
			slots = append(slots, SlotResponse{Start: s, End: end})
		}

		writeJSON(w, http.StatusOK, SlotsResponse{
			Date:  calendar.ISODate(day),
			Label: calendar.FormatDateDisplay(&day),
			Slots: slots,
		})
	}
}

func statsHandler(svc *appointment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := r.URL.Query().Get("period")
		if period == "" {
			period = appointment.PeriodWeek
		}

		ref := svc.Now()
		if raw := r.URL.Query().Get("ref"); raw != "" {
			day, err := calendar.ParseDate(raw, svc.Location())
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_date", "ref must be YYYY-MM-DD")
				return
			}
			ref = day
		}

		stats, err := svc.Stats(r.Context(), period, ref)
		if err != nil {
			if errors.Is(err, appointment.ErrInvalidArgument) {
				writeError(w, http.StatusBadRequest, "invalid_period", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, StatsResponse{
			Period:                period,
			Ref:                   calendar.ISODate(ref),
			TotalIncome:           stats.TotalIncome,
			TotalAppointments:     stats.TotalAppointments,
			CompletedAppointments: stats.CompletedAppointments,
			AvgIncome:             stats.AvgIncome,
			PopularService:        stats.PopularService,
			IncomeChange:          stats.IncomeChange,
		})
	}
}

func listWorkingHoursHandler(svc *appointment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hours, err := svc.WorkingHours(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toWorkingHourResponses(hours))
	}
}

func updateWorkingHourHandler(svc *appointment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_index", "index must be an integer")
			return
		}

		var req UpdateWorkingHourRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		hours, err := svc.UpdateWorkingHour(r.Context(), index, appointment.HourField(req.Field), req.Value)
		if err != nil {
			switch {
			case errors.Is(err, appointment.ErrWorkingHourNotFound):
				writeError(w, http.StatusNotFound, "working_hour_not_found", err.Error())
			case errors.Is(err, appointment.ErrInvalidArgument):
				writeError(w, http.StatusBadRequest, "invalid_working_hour", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, toWorkingHourResponses(hours))
	}
}

func calendarHandler(svc *appointment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := dateParam(r, "date", svc)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
			return
		}

		step := 0
		if raw := r.URL.Query().Get("step"); raw != "" {
			step, err = strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_step", "step must be an integer")
				return
			}
		}

		mode := calendar.ViewMode(r.URL.Query().Get("mode"))
		if mode == "" {
			mode = calendar.ViewDay
		}

		target := calendar.NavigateDate(current, mode, step)

		writeJSON(w, http.StatusOK, CalendarResponse{
			Date:    calendar.ISODate(target),
			Mode:    string(mode),
			Label:   calendar.FormatDate(target),
			Long:    calendar.FormatDateLong(target),
			Display: calendar.FormatDateDisplay(&target),
			IsPast:  calendar.IsPast(target.Day(), target, svc.Now()),
		})
	}
}

func demoAppointmentsHandler(svc *appointment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base, err := dateParam(r, "base", svc)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_date", "base must be YYYY-MM-DD")
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponses(appointment.GenerateMockAppointments(base)))
	}
}

func handleBookError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appointment.ErrIncompleteForm):
		writeError(w, http.StatusBadRequest, "incomplete_form", err.Error())
	case errors.Is(err, appointment.ErrInvalidPhone):
		writeError(w, http.StatusBadRequest, "invalid_phone", err.Error())
	case errors.Is(err, appointment.ErrUnknownService):
		writeError(w, http.StatusBadRequest, "unknown_service", err.Error())
	case errors.Is(err, appointment.ErrDateInPast):
		writeError(w, http.StatusUnprocessableEntity, "date_in_past", err.Error())
	case errors.Is(err, appointment.ErrShopClosed):
		writeError(w, http.StatusUnprocessableEntity, "shop_closed", err.Error())
	case errors.Is(err, appointment.ErrSlotUnavailable):
		writeError(w, http.StatusUnprocessableEntity, "slot_unavailable", err.Error())
	case errors.Is(err, appointment.ErrSlotAlreadyBooked):
		writeError(w, http.StatusConflict, "slot_already_booked", err.Error())
	case errors.Is(err, appointment.ErrSlotBeingBooked):
		writeError(w, http.StatusConflict, "slot_being_booked", "day is currently being booked, please retry shortly")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func handleTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appointment.ErrAppointmentNotFound):
		writeError(w, http.StatusNotFound, "appointment_not_found", err.Error())
	case errors.Is(err, appointment.ErrInvalidStatusTransition):
		writeError(w, http.StatusConflict, "invalid_status_transition", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
