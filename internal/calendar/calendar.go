// Package calendar holds the date helpers behind the booking calendar: ISO
// calendar-date conversion, month navigation and Hebrew date labels.
package calendar

import "time"

// DateLayout is the ISO calendar-date form appointments are stored in.
const DateLayout = "2006-01-02"

// ViewMode selects the calendar granularity used for navigation.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// ISODate renders the calendar date of t in t's own location.
func ISODate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate reads a YYYY-MM-DD string as local midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

// StartOfDay zeroes the time of day, keeping t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsPast reports whether day of month's month and year lies strictly before
// today's date. Today itself is not past.
func IsPast(day int, month, today time.Time) bool {
	date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, today.Location())
	return date.Before(StartOfDay(today))
}

// NavigateDate moves current by step days, weeks or months depending on mode.
// Any mode other than day or week moves by months. Overflowing days roll into
// the following month.
func NavigateDate(current time.Time, mode ViewMode, step int) time.Time {
	switch mode {
	case ViewDay:
		return current.AddDate(0, 0, step)
	case ViewWeek:
		return current.AddDate(0, 0, step*7)
	default:
		return current.AddDate(0, step, 0)
	}
}
