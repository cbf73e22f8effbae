package appointment

import (
	"fmt"
	"time"

	"github.com/hackgods/barbershop-booking/internal/calendar"
)

const mockCount = 15

var (
	mockClients = []string{
		"יוסי כהן", "דני לוי", "משה אברהם", "אבי מזרחי",
		"רון פרץ", "עומר ביטון", "איתי דהן", "נועם שפירא",
	}
	mockTimes = []string{"09:00", "09:45", "10:30", "11:15", "12:00", "14:00", "15:30", "17:00"}

	// Only the first three generated appointments draw from this pool.
	mockStatuses = []Status{StatusCompleted, StatusCancelled, StatusPending, StatusConfirmed, StatusConfirmed}
)

// GenerateMockAppointments builds a deterministic demo agenda of 15 appointments,
// three per day from two days before base to two days after it.
func GenerateMockAppointments(base time.Time) []Appointment {
	today := calendar.StartOfDay(base)
	out := make([]Appointment, 0, mockCount)

	for i := 0; i < mockCount; i++ {
		day := today.AddDate(0, 0, i/3-2)
		svc := Catalogue[i%len(Catalogue)]

		status := StatusConfirmed
		switch {
		case i < 3:
			status = mockStatuses[i%len(mockStatuses)]
		case day.Before(today):
			status = StatusCompleted
		}

		out = append(out, Appointment{
			ID:          int64(i + 1),
			ClientName:  mockClients[i%len(mockClients)],
			ClientPhone: fmt.Sprintf("05%d-%07d", i%10, 1234500+i),
			Service:     svc.Name,
			Date:        calendar.ISODate(day),
			Time:        mockTimes[i%len(mockTimes)],
			Duration:    svc.Duration,
			Price:       svc.Price,
			Status:      status,
		})
	}

	return out
}
