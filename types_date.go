package divitrek

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// Date represents a calendar date with day-level granularity.
//
// Broker exports carry no meaningful time-of-day, so the whole system works in
// plain dates: run dates, settlement dates, payment dates and as-of dates.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in its standard ISO-8601 format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date formatted according to
// the layout, see [time.Time.Format].
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return NewDate(d.y, d.m, d.d+days) }

// AddMonth returns a new Date with the given number of months added. When the
// anchor day does not exist in the target month the result clamps to that
// month's last day: Jan 31 plus one month is Feb 29 in a leap year, not Mar 2.
func (d Date) AddMonth(months int) Date {
	first := NewDate(d.y, d.m+time.Month(months), 1)
	if last := first.EndOfMonth(); d.d > last.d {
		return last
	}
	return NewDate(first.y, first.m, d.d)
}

// StartOfMonth returns the first day of the date's month.
func (d Date) StartOfMonth() Date { return NewDate(d.y, d.m, 1) }

// EndOfMonth returns the last day of the date's month.
func (d Date) EndOfMonth() Date { return NewDate(d.y, d.m+1, 0) }

// DaysSince returns the number of whole days elapsed from x to d.
func (d Date) DaysSince(x Date) int { return int(d.time().Sub(x.time()) / (24 * time.Hour)) }

// ParseDate parses a Date from a string. It is lenient and accepts formats
// like "2025-7-1" in addition to "2025-07-01".
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustDate is like ParseDate but panics on error.
func MustDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json.Unmarshaler interface for Date.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
