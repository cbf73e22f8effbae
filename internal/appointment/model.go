package appointment

import (
	"time"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Appointment is one booked visit. Date is YYYY-MM-DD and Time is HH:MM in the
// shop's local time.
type Appointment struct {
	ID          int64
	ClientName  string
	ClientPhone string
	Service     string
	Date        string
	Time        string
	Duration    int // minutes
	Price       int
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServiceOption is one entry of the shop's service catalogue.
type ServiceOption struct {
	Name     string
	Duration int
	Price    int
}

// Catalogue is the fixed list of services offered by the shop.
var Catalogue = []ServiceOption{
	{Name: "תספורת גברים", Duration: 40, Price: 100},
	{Name: "תספורת וזקן", Duration: 45, Price: 130},
	{Name: "עיצוב זקן", Duration: 20, Price: 70},
	{Name: "צבע ותספורת", Duration: 60, Price: 180},
}

// FindService looks a catalogue entry up by name.
func FindService(name string) (ServiceOption, bool) {
	for _, s := range Catalogue {
		if s.Name == name {
			return s, true
		}
	}
	return ServiceOption{}, false
}

type StatsResult struct {
	TotalIncome           int
	TotalAppointments     int
	CompletedAppointments int
	AvgIncome             int
	PopularService        string
	IncomeChange          int
}

type WorkingHourEntry struct {
	Day    string
	Open   string
	Close  string
	IsOpen bool
}

// FormState is the booking wizard's input as collected by the client.
type FormState struct {
	ClientName      string
	ClientPhone     string
	SelectedService *ServiceOption
	SelectedDate    *time.Time
	SelectedTime    string
}

type EventLog struct {
	ID            int64
	EventType     string
	AppointmentID *int64
	Payload       []byte
	CreatedAt     time.Time
}
