package kernel

import (
	"fmt"
	"time"
)

// deliveryDateLayout is the wire format for delivery dates.
const deliveryDateLayout = "2006-01-02"

// DeliveryDate is a value object representing a calendar date with no time
// component. The zero value means "no date selected", which is a legal state
// for a form still being composed; the validator rejects it at submit time.
//
// All comparisons are date-only: two DeliveryDates on the same calendar day
// are equal regardless of the clock time they were derived from.
type DeliveryDate struct {
	year  int
	month time.Month
	day   int
}

// ParseDeliveryDate parses a "YYYY-MM-DD" string into a DeliveryDate.
// An empty string yields the zero (absent) date without error; any other
// malformed input is rejected.
func ParseDeliveryDate(s string) (DeliveryDate, error) {
	if s == "" {
		return DeliveryDate{}, nil
	}
	t, err := time.Parse(deliveryDateLayout, s)
	if err != nil {
		return DeliveryDate{}, fmt.Errorf("invalid delivery date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf truncates an instant to its calendar date, discarding the time of day.
func DateOf(t time.Time) DeliveryDate {
	year, month, day := t.Date()
	return DeliveryDate{year: year, month: month, day: day}
}

// IsZero reports whether no date has been selected.
func (d DeliveryDate) IsZero() bool {
	return d == DeliveryDate{}
}

// Time returns the date as a time.Time at midnight UTC.
func (d DeliveryDate) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d falls strictly before other.
func (d DeliveryDate) Before(other DeliveryDate) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d falls strictly after other.
func (d DeliveryDate) After(other DeliveryDate) bool {
	return d.Time().After(other.Time())
}

// IsEqual reports whether two dates are the same calendar day.
func (d DeliveryDate) IsEqual(other DeliveryDate) bool {
	return d == other
}

// AddMonths returns the date the given number of calendar months later,
// normalizing overflow the way the calendar does (Jan 31 + 1 month = Mar 3
// or Mar 2 depending on the year, per time.Time.AddDate).
func (d DeliveryDate) AddMonths(months int) DeliveryDate {
	return DateOf(d.Time().AddDate(0, months, 0))
}

// Weekday returns the day of the week the date falls on.
func (d DeliveryDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// String returns the "YYYY-MM-DD" wire representation, or "" for the zero date.
func (d DeliveryDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(deliveryDateLayout)
}
