package calendar

import (
	"strings"
	"testing"
	"time"
)

// ---------- Helper ----------

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ---------- IsPast ----------

func TestIsPast_AroundToday(t *testing.T) {
	today := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)
	month := date(2025, 1, 1)

	for day := 1; day <= 14; day++ {
		if !IsPast(day, month, today) {
			t.Errorf("day %d should be past", day)
		}
	}
	if IsPast(15, month, today) {
		t.Error("today must not be past")
	}
	for day := 16; day <= 31; day++ {
		if IsPast(day, month, today) {
			t.Errorf("day %d should not be past", day)
		}
	}
}

func TestIsPast_OtherMonths(t *testing.T) {
	today := date(2025, 1, 15)
	if !IsPast(31, date(2024, 12, 1), today) {
		t.Error("last month should be past")
	}
	if IsPast(1, date(2025, 2, 1), today) {
		t.Error("next month should not be past")
	}
}

// ---------- NavigateDate ----------

func TestNavigateDate(t *testing.T) {
	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		mode ViewMode
		step int
		want time.Time
	}{
		{ViewDay, 1, time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC)},
		{ViewDay, -1, time.Date(2025, 1, 14, 10, 0, 0, 0, time.UTC)},
		{ViewWeek, 1, time.Date(2025, 1, 22, 10, 0, 0, 0, time.UTC)},
		{ViewWeek, -2, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
		{ViewMonth, 1, time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC)},
		{ViewMonth, -1, time.Date(2024, 12, 15, 10, 0, 0, 0, time.UTC)},
		{ViewMode("agenda"), 2, time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		got := NavigateDate(base, tc.mode, tc.step)
		if !got.Equal(tc.want) {
			t.Errorf("NavigateDate(%s, %d) = %s, want %s", tc.mode, tc.step, got, tc.want)
		}
	}

	if !base.Equal(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)) {
		t.Error("input date was modified")
	}
}

func TestNavigateDate_MonthEndRollover(t *testing.T) {
	got := NavigateDate(date(2025, 1, 31), ViewDay, 1)
	if ISODate(got) != "2025-02-01" {
		t.Errorf("expected 2025-02-01, got %s", ISODate(got))
	}

	got = NavigateDate(date(2024, 12, 31), ViewDay, 1)
	if ISODate(got) != "2025-01-01" {
		t.Errorf("expected 2025-01-01, got %s", ISODate(got))
	}
}

// ---------- ISO dates ----------

func TestParseDate_RoundTrip(t *testing.T) {
	loc := time.FixedZone("IST", 2*60*60)
	got, err := ParseDate("2025-03-09", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 0 || got.Location() != loc {
		t.Errorf("expected local midnight in loc, got %s", got)
	}
	if ISODate(got) != "2025-03-09" {
		t.Errorf("round trip mismatch: %s", ISODate(got))
	}

	if _, err := ParseDate("09/03/2025", loc); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(time.Date(2025, 1, 15, 23, 59, 59, 999, time.UTC))
	if !got.Equal(date(2025, 1, 15)) {
		t.Errorf("got %s", got)
	}
}

// ---------- Hebrew labels ----------

func TestFormatDate_WeekdayTags(t *testing.T) {
	sunday := FormatDate(date(2025, 1, 12))
	if sunday.Day != "א׳" {
		t.Errorf("Sunday tag = %q, want א׳", sunday.Day)
	}
	if sunday.Date != 12 {
		t.Errorf("date = %d, want 12", sunday.Date)
	}
	if sunday.Month != "ינו׳" {
		t.Errorf("month = %q, want ינו׳", sunday.Month)
	}
	if !strings.Contains(sunday.Full, "2025") || !strings.Contains(sunday.Full, "ינואר") {
		t.Errorf("full label missing year or month: %q", sunday.Full)
	}

	if got := FormatDate(date(2025, 1, 11)).Day; got != "ש׳" {
		t.Errorf("Saturday tag = %q, want ש׳", got)
	}
}

func TestFormatDateLong(t *testing.T) {
	got := FormatDateLong(date(2025, 1, 12))
	if got != "יום ראשון, 12 בינואר" {
		t.Errorf("got %q", got)
	}
}

func TestFormatDateDisplay(t *testing.T) {
	if got := FormatDateDisplay(nil); got != DatePlaceholder {
		t.Errorf("nil date = %q, want placeholder", got)
	}

	d := date(2025, 1, 12)
	got := FormatDateDisplay(&d)
	if !strings.Contains(got, "ראשון") || !strings.Contains(got, "12") {
		t.Errorf("got %q", got)
	}
	if got != "יום ראשון, 12/1" {
		t.Errorf("got %q, want יום ראשון, 12/1", got)
	}
}

func TestWeekdayAndMonthNames(t *testing.T) {
	if WeekdayName(time.Saturday) != "שבת" {
		t.Errorf("Saturday = %q", WeekdayName(time.Saturday))
	}
	if MonthName(time.December) != "דצמבר" {
		t.Errorf("December = %q", MonthName(time.December))
	}
}
