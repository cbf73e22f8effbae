package calendar

import (
	"fmt"
	"time"
)

// DatePlaceholder is shown when no date has been picked yet.
const DatePlaceholder = "בחר תאריך"

// Sunday first, matching time.Weekday.
var (
	weekdayTags = [7]string{"א׳", "ב׳", "ג׳", "ד׳", "ה׳", "ו׳", "ש׳"}

	weekdayNames = [7]string{"ראשון", "שני", "שלישי", "רביעי", "חמישי", "שישי", "שבת"}
)

// Indexed by time.Month - 1.
var (
	monthNames = [12]string{
		"ינואר", "פברואר", "מרץ", "אפריל", "מאי", "יוני",
		"יולי", "אוגוסט", "ספטמבר", "אוקטובר", "נובמבר", "דצמבר",
	}

	monthShortNames = [12]string{
		"ינו׳", "פבר׳", "מרץ", "אפר׳", "מאי", "יוני",
		"יולי", "אוג׳", "ספט׳", "אוק׳", "נוב׳", "דצמ׳",
	}
)

// DateLabel is the compact form used by the date picker strip.
type DateLabel struct {
	Day   string `json:"day"`
	Date  int    `json:"date"`
	Month string `json:"month"`
	Full  string `json:"full"`
}

// WeekdayName returns the full Hebrew weekday name, e.g. "ראשון".
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// MonthName returns the full Hebrew month name.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// FormatDateLong renders "יום ראשון, 12 בינואר".
func FormatDateLong(t time.Time) string {
	return fmt.Sprintf("יום %s, %d ב%s", WeekdayName(t.Weekday()), t.Day(), MonthName(t.Month()))
}

// FormatDate builds the compact label for t.
func FormatDate(t time.Time) DateLabel {
	return DateLabel{
		Day:   weekdayTags[t.Weekday()],
		Date:  t.Day(),
		Month: monthShortNames[t.Month()-1],
		Full:  fmt.Sprintf("%s %d", FormatDateLong(t), t.Year()),
	}
}

// FormatDateDisplay renders "יום ראשון, 12/1", or the placeholder for a nil date.
func FormatDateDisplay(t *time.Time) string {
	if t == nil {
		return DatePlaceholder
	}
	return fmt.Sprintf("יום %s, %d/%d", weekdayNames[t.Weekday()], t.Day(), int(t.Month()))
}
