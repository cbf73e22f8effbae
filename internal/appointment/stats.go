package appointment

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hackgods/barbershop-booking/internal/calendar"
)

const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// NoPopularService is reported when no appointment falls inside the window.
const NoPopularService = "-"

// previousPeriodRatio stands in for a real previous-period income until
// historical totals are stored; IncomeChange is therefore a fixed trend figure.
const previousPeriodRatio = 0.85

var ErrInvalidArgument = errors.New("invalid argument")

// PeriodStart returns the first instant of the statistics window ending at ref.
func PeriodStart(period string, ref time.Time) (time.Time, error) {
	switch period {
	case PeriodToday:
		return calendar.StartOfDay(ref), nil
	case PeriodWeek:
		return ref.AddDate(0, 0, -7), nil
	case PeriodMonth:
		return ref.AddDate(0, -1, 0), nil
	case PeriodYear:
		return ref.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unknown period %q", ErrInvalidArgument, period)
	}
}

// CalculateStats aggregates the non-cancelled appointments dated on or after the
// start of period. Appointment dates are read in ref's location.
func CalculateStats(appts []Appointment, period string, ref time.Time) (StatsResult, error) {
	start, err := PeriodStart(period, ref)
	if err != nil {
		return StatsResult{}, err
	}

	var res StatsResult
	counts := make(map[string]int)
	var order []string

	for _, a := range appts {
		if a.Status == StatusCancelled {
			continue
		}
		day, err := calendar.ParseDate(a.Date, ref.Location())
		if err != nil || day.Before(start) {
			continue
		}

		res.TotalIncome += a.Price
		res.TotalAppointments++
		if a.Status == StatusCompleted {
			res.CompletedAppointments++
		}
		if _, seen := counts[a.Service]; !seen {
			order = append(order, a.Service)
		}
		counts[a.Service]++
	}

	res.PopularService = NoPopularService
	best := 0
	for _, name := range order {
		if counts[name] > best {
			best = counts[name]
			res.PopularService = name
		}
	}

	if res.TotalAppointments > 0 {
		res.AvgIncome = int(math.Round(float64(res.TotalIncome) / float64(res.TotalAppointments)))
	}
	if res.TotalIncome > 0 {
		prev := float64(res.TotalIncome) * previousPeriodRatio
		res.IncomeChange = int(math.Round((float64(res.TotalIncome) - prev) / prev * 100))
	}

	return res, nil
}
