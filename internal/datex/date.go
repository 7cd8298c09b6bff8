// Package datex implements the calendar-date type used throughout the bot:
// a plain year/month/day with no time-of-day and no timezone.
//
// User input is accepted in exactly one literal format, dd.mm.yyyy
// (two-digit day and month, four-digit year). Anything else is a parse
// failure; there is no partial matching.
package datex

import (
	"fmt"
	"time"
)

// UserFormat is the only date layout accepted from and shown to users.
const UserFormat = "02.01.2006"

// ISOFormat is the layout used for storage.
const ISOFormat = "2006-01-02"

// Date is a calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// FromTime truncates t to its calendar date.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Parse parses text in UserFormat. The layout is strict: "1.6.2025" or
// "2025-06-01" do not parse.
func Parse(text string) (Date, error) {
	t, err := time.ParseInLocation(UserFormat, text, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", text, err)
	}
	// time.Parse normalizes out-of-range values only for some layout parts;
	// re-format to reject anything that did not round-trip exactly.
	d := FromTime(t)
	if d.String() != text {
		return Date{}, fmt.Errorf("invalid date %q", text)
	}
	return d, nil
}

// ParseISO parses a stored yyyy-mm-dd value.
func ParseISO(text string) (Date, error) {
	t, err := time.ParseInLocation(ISOFormat, text, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("invalid stored date %q: %w", text, err)
	}
	return FromTime(t), nil
}

// String renders the date in UserFormat.
func (d Date) String() string {
	return d.time().Format(UserFormat)
}

// ISO renders the date in ISOFormat.
func (d Date) ISO() string {
	return d.time().Format(ISOFormat)
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}
