package appointment

import (
	"time"

	"github.com/hackgods/barbershop-booking/internal/calendar"
)

// AppointmentsOn keeps the appointments booked on day's calendar date, in input order.
func AppointmentsOn(appts []Appointment, day time.Time) []Appointment {
	target := calendar.ISODate(day)
	out := make([]Appointment, 0)
	for _, a := range appts {
		if a.Date == target {
			out = append(out, a)
		}
	}
	return out
}
