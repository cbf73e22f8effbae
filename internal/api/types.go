package api

import (
	"github.com/hackgods/barbershop-booking/internal/appointment"
	"github.com/hackgods/barbershop-booking/internal/calendar"
	"github.com/hackgods/barbershop-booking/internal/contact"
	"github.com/hackgods/barbershop-booking/internal/schedule"
)

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	Service     string `json:"service"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

type BadgeResponse struct {
	Style string `json:"style"`
	Label string `json:"label"`
}

type AppointmentResponse struct {
	ID             int64         `json:"id"`
	ClientName     string        `json:"client_name"`
	ClientInitials string        `json:"client_initials"`
	ClientPhone    string        `json:"client_phone"`
	Service        string        `json:"service"`
	Date           string        `json:"date"`
	Time           string        `json:"time"`
	EndTime        string        `json:"end_time,omitempty"`
	Duration       int           `json:"duration"`
	Price          int           `json:"price"`
	Status         string        `json:"status"`
	Badge          BadgeResponse `json:"badge"`
}

type StatsResponse struct {
	Period                string `json:"period"`
	Ref                   string `json:"ref"`
	TotalIncome           int    `json:"total_income"`
	TotalAppointments     int    `json:"total_appointments"`
	CompletedAppointments int    `json:"completed_appointments"`
	AvgIncome             int    `json:"avg_income"`
	PopularService        string `json:"popular_service"`
	IncomeChange          int    `json:"income_change"`
}

type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type SlotsResponse struct {
	Date  string         `json:"date"`
	Label string         `json:"label"`
	Slots []SlotResponse `json:"slots"`
}

type WorkingHourResponse struct {
	Index  int    `json:"index"`
	Day    string `json:"day"`
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"is_open"`
}

type UpdateWorkingHourRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

type CalendarResponse struct {
	Date    string             `json:"date"`
	Mode    string             `json:"mode"`
	Label   calendar.DateLabel `json:"label"`
	Long    string             `json:"long"`
	Display string             `json:"display"`
	IsPast  bool               `json:"is_past"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func toAppointmentResponse(a appointment.Appointment) AppointmentResponse {
	badge := appointment.StatusBadge(string(a.Status))
	end, _ := schedule.CalculateEndTime(a.Time, a.Duration)

	return AppointmentResponse{
		ID:             a.ID,
		ClientName:     a.ClientName,
		ClientInitials: contact.Initials(a.ClientName),
		ClientPhone:    a.ClientPhone,
		Service:        a.Service,
		Date:           a.Date,
		Time:           a.Time,
		EndTime:        end,
		Duration:       a.Duration,
		Price:          a.Price,
		Status:         string(a.Status),
		Badge:          BadgeResponse{Style: badge.Style, Label: badge.Label},
	}
}

func toAppointmentResponses(appts []appointment.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, toAppointmentResponse(a))
	}
	return out
}

func toWorkingHourResponses(hours []appointment.WorkingHourEntry) []WorkingHourResponse {
	out := make([]WorkingHourResponse, 0, len(hours))
	for i, h := range hours {
		out = append(out, WorkingHourResponse{Index: i, Day: h.Day, Open: h.Open, Close: h.Close, IsOpen: h.IsOpen})
	}
	return out
}
