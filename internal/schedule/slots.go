package schedule

import "fmt"

const DefaultInterval = 30

// CalculateEndTime returns the wall-clock time duration minutes after start.
// Only the wrapped time of day is returned; crossing midnight is not reported.
func CalculateEndTime(start string, duration int) (string, error) {
	begin, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	return FormatClock(begin + duration), nil
}

// GenerateTimeSlots lists slot starts from open, every interval minutes, strictly
// before close. An interval <= 0 uses DefaultInterval. Ranges are same-day only:
// a close at or before open yields no slots.
func GenerateTimeSlots(open, close string, interval int) ([]string, error) {
	from, err := ParseClock(open)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	to, err := ParseClock(close)
	if err != nil {
		return nil, fmt.Errorf("close: %w", err)
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	slots := make([]string, 0, max(0, (to-from+interval-1)/interval))
	for t := from; t < to; t += interval {
		slots = append(slots, FormatClock(t))
	}
	return slots, nil
}

// Overlaps reports whether [aStart, aStart+aDur) and [bStart, bStart+bDur) intersect.
// Both ranges are same-day minute offsets.
func Overlaps(aStart, aDur, bStart, bDur int) bool {
	return aStart < bStart+bDur && bStart < aStart+aDur
}
