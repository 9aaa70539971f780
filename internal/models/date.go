package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateLayout is the canonical wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a timezone-naive calendar day. It carries no time component, so two
// values compare equal iff they name the same year/month/day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates an instant to its calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a canonical YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Today returns the current calendar day in the local zone.
func Today() Date {
	return DateOf(time.Now())
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns the day's midnight in UTC, the anchor for all arithmetic.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Equal reports year/month/day equality.
func (d Date) Equal(other Date) bool {
	return d == other
}

// Before reports whether d falls strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// AddDays shifts the date by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// AddMonths shifts the date by n calendar months, clamping the day-of-month to
// the target month's length (Jan 31 + 1 month = Feb 28/29, not Mar 3).
func (d Date) AddMonths(n int) Date {
	months := int(d.Month) - 1 + n
	year := d.Year + months/12
	month := time.Month(months%12 + 1)
	if months < 0 {
		m := months % 12
		if m != 0 {
			year--
			month = time.Month(m + 13)
		}
	}
	day := d.Day
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return Date{Year: year, Month: month, Day: day}
}

// Weekday returns the day of week, Sunday = 0.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// WeekOfYear numbers weeks from the start of the year: weeks run Sunday
// through Saturday and week 1 is the week containing January 1. This mirrors
// the locale week rule used by the calendar grid, not ISO 8601.
func (d Date) WeekOfYear() int {
	jan1 := Date{Year: d.Year, Month: time.January, Day: 1}
	diff := startOfWeek(d).Sub(startOfWeek(jan1))
	return int(diff/(7*24*time.Hour)) + 1
}

func startOfWeek(d Date) time.Time {
	t := d.Time()
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" || raw == `""` {
		*d = Date{}
		return nil
	}
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", raw)
	}
	parsed, err := ParseDate(raw[1 : len(raw)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value persists the date as a SQL DATE.
func (d Date) Value() (driver.Value, error) {
	return d.Time(), nil
}

// Scan reads DATE columns delivered as time.Time, []byte, or string.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("unsupported type %T for Date", value)
	}
}

func (d *Date) scanString(raw string) error {
	if len(raw) > len(DateLayout) {
		raw = raw[:len(DateLayout)]
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
