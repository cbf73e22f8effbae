package appointment

import (
	"fmt"
	"time"

	"github.com/hackgods/barbershop-booking/internal/calendar"
)

type HourField string

const (
	FieldDay    HourField = "day"
	FieldOpen   HourField = "open"
	FieldClose  HourField = "close"
	FieldIsOpen HourField = "isOpen"
)

// UpdateHour returns a copy of hours where the entry at index has field set to
// value. hours itself is never modified. An index outside the slice returns an
// unchanged copy. value must be a string for day/open/close and a bool for isOpen.
func UpdateHour(hours []WorkingHourEntry, index int, field HourField, value any) ([]WorkingHourEntry, error) {
	out := make([]WorkingHourEntry, len(hours))
	copy(out, hours)

	if index < 0 || index >= len(out) {
		return out, nil
	}

	entry := out[index]
	switch field {
	case FieldDay, FieldOpen, FieldClose:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: field %s expects a string, got %T", ErrInvalidArgument, field, value)
		}
		switch field {
		case FieldDay:
			entry.Day = s
		case FieldOpen:
			entry.Open = s
		case FieldClose:
			entry.Close = s
		}
	case FieldIsOpen:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: field %s expects a bool, got %T", ErrInvalidArgument, field, value)
		}
		entry.IsOpen = b
	default:
		return nil, fmt.Errorf("%w: unknown working hour field %q", ErrInvalidArgument, field)
	}
	out[index] = entry

	return out, nil
}

// DefaultWorkingHours is the week a new shop starts with, Sunday first.
func DefaultWorkingHours() []WorkingHourEntry {
	hours := make([]WorkingHourEntry, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		hours[d] = WorkingHourEntry{Day: calendar.WeekdayName(d), Open: "09:00", Close: "19:00", IsOpen: true}
	}
	hours[time.Friday].Open, hours[time.Friday].Close = "08:00", "14:00"
	hours[time.Saturday] = WorkingHourEntry{Day: calendar.WeekdayName(time.Saturday)}
	return hours
}
