package appointment

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestUpdateHour_CopyOnWrite(t *testing.T) {
	original := DefaultWorkingHours()
	snapshot := make([]WorkingHourEntry, len(original))
	copy(snapshot, original)

	updated, err := UpdateHour(original, 2, FieldOpen, "10:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(original, snapshot) {
		t.Fatal("original working hours were modified")
	}
	if updated[2].Open != "10:00" {
		t.Errorf("expected open 10:00, got %s", updated[2].Open)
	}
	if updated[2].Close != original[2].Close || updated[2].Day != original[2].Day || updated[2].IsOpen != original[2].IsOpen {
		t.Error("untouched fields of the updated entry changed")
	}
	for i := range original {
		if i == 2 {
			continue
		}
		if !reflect.DeepEqual(updated[i], original[i]) {
			t.Errorf("entry %d changed", i)
		}
	}
}

func TestUpdateHour_AllFields(t *testing.T) {
	hours := DefaultWorkingHours()

	tests := []struct {
		field HourField
		value any
		check func(WorkingHourEntry) bool
	}{
		{FieldDay, "יום חופש", func(e WorkingHourEntry) bool { return e.Day == "יום חופש" }},
		{FieldOpen, "07:30", func(e WorkingHourEntry) bool { return e.Open == "07:30" }},
		{FieldClose, "21:00", func(e WorkingHourEntry) bool { return e.Close == "21:00" }},
		{FieldIsOpen, false, func(e WorkingHourEntry) bool { return !e.IsOpen }},
	}

	for _, tc := range tests {
		got, err := UpdateHour(hours, 0, tc.field, tc.value)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.field, err)
		}
		if !tc.check(got[0]) {
			t.Errorf("%s: field not updated: %+v", tc.field, got[0])
		}
	}
}

func TestUpdateHour_IndexOutOfRange(t *testing.T) {
	hours := DefaultWorkingHours()

	got, err := UpdateHour(hours, 9, FieldOpen, "10:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, hours) {
		t.Error("expected unchanged copy for out of range index")
	}
	if len(got) > 0 && &got[0] == &hours[0] {
		t.Error("expected a new slice")
	}
}

func TestUpdateHour_RejectsBadInput(t *testing.T) {
	hours := DefaultWorkingHours()

	if _, err := UpdateHour(hours, 0, FieldIsOpen, "yes"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for non-bool isOpen, got %v", err)
	}
	if _, err := UpdateHour(hours, 0, FieldOpen, 9); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for non-string open, got %v", err)
	}
	if _, err := UpdateHour(hours, 0, HourField("lunch"), "12:00"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for unknown field, got %v", err)
	}
}

func TestDefaultWorkingHours(t *testing.T) {
	hours := DefaultWorkingHours()
	if len(hours) != 7 {
		t.Fatalf("expected 7 days, got %d", len(hours))
	}
	if hours[time.Sunday].Day != "ראשון" || !hours[time.Sunday].IsOpen {
		t.Errorf("unexpected Sunday entry %+v", hours[time.Sunday])
	}
	if hours[time.Friday].Close != "14:00" {
		t.Errorf("expected short Friday, got %+v", hours[time.Friday])
	}
	if hours[time.Saturday].IsOpen || hours[time.Saturday].Open != "" {
		t.Errorf("expected Saturday closed, got %+v", hours[time.Saturday])
	}
}
