package entry

import (
	"time"
)

const (
	// LayoutDate is the calendar-day layout of Entry.Date.
	LayoutDate = "2006-01-02"
	// LayoutCreated matches the millisecond UTC form of Entry.CreatedAt.
	LayoutCreated = "2006-01-02T15:04:05.000Z"
	// LayoutMonth keys a month bucket.
	LayoutMonth = "2006-01"
)

// FormatDate renders the local calendar day of t.
func FormatDate(t time.Time) string {
	return t.Format(LayoutDate)
}

// ParseDate reads a YYYY-MM-DD string as UTC midnight.
func ParseDate(v string) (time.Time, error) {
	return time.Parse(LayoutDate, v)
}

// FormatCreated renders t as a createdAt key.
func FormatCreated(t time.Time) string {
	return t.UTC().Format(LayoutCreated)
}

// Midnight returns the calendar day of t, read in t's location, as UTC
// midnight. Day arithmetic on the result is free of DST drift.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBefore returns the date string n days before the calendar day of t.
func DaysBefore(t time.Time, n int) string {
	return Midnight(t).AddDate(0, 0, -n).Format(LayoutDate)
}
