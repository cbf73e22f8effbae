package appointment

import (
	"testing"
	"time"
)

func TestCanProceed(t *testing.T) {
	svc := Catalogue[0]
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		step int
		form FormState
		want bool
	}{
		{"step1 complete", 1, FormState{ClientName: "דני", ClientPhone: "0501234567"}, true},
		{"step1 missing phone", 1, FormState{ClientName: "דני"}, false},
		{"step1 missing name", 1, FormState{ClientPhone: "0501234567"}, false},
		{"step1 whitespace name", 1, FormState{ClientName: "   ", ClientPhone: "0501234567"}, false},
		{"step1 whitespace phone", 1, FormState{ClientName: "דני", ClientPhone: "\t "}, false},
		{"step2 service", 2, FormState{SelectedService: &svc}, true},
		{"step2 no service", 2, FormState{}, false},
		{"step3 date and time", 3, FormState{SelectedDate: &day, SelectedTime: "10:00"}, true},
		{"step3 no time", 3, FormState{SelectedDate: &day}, false},
		{"step3 no date", 3, FormState{SelectedTime: "10:00"}, false},
		{"step0", 0, FormState{ClientName: "a", ClientPhone: "b"}, false},
		{"step4", 4, FormState{ClientName: "a", ClientPhone: "b", SelectedService: &svc, SelectedDate: &day, SelectedTime: "10:00"}, false},
	}

	for _, tc := range tests {
		if got := CanProceed(tc.step, tc.form); got != tc.want {
			t.Errorf("%s: CanProceed = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestStatusBadge(t *testing.T) {
	for status, label := range map[Status]string{
		StatusConfirmed: "מאושר",
		StatusPending:   "ממתין",
		StatusCompleted: "הושלם",
		StatusCancelled: "בוטל",
	} {
		b := StatusBadge(string(status))
		if b.Label != label {
			t.Errorf("%s: label %q, want %q", status, b.Label, label)
		}
		if b.Style != statusStyles[status] {
			t.Errorf("%s: style %q", status, b.Style)
		}
	}
}

func TestStatusBadge_UnknownFallsBackToPendingStyle(t *testing.T) {
	b := StatusBadge("no_show")
	if b.Style != statusStyles[StatusPending] {
		t.Errorf("expected pending style, got %q", b.Style)
	}
	if b.Label != "no_show" {
		t.Errorf("expected raw label, got %q", b.Label)
	}
}

func TestFindService(t *testing.T) {
	if _, ok := FindService(Catalogue[2].Name); !ok {
		t.Error("expected catalogue entry to be found")
	}
	if _, ok := FindService("מניקור"); ok {
		t.Error("unexpected service found")
	}
}
