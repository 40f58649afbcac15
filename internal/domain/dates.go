package domain

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// ParseDate parses an ISO 8601 calendar date (YYYY-MM-DD).
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// IsZeroDate reports whether d is the zero civil date.
func IsZeroDate(d civil.Date) bool {
	return d == civil.Date{}
}

// FormatOptionalDate renders d as YYYY-MM-DD, or "" for the zero date.
func FormatOptionalDate(d civil.Date) string {
	if IsZeroDate(d) {
		return ""
	}
	return d.String()
}

// ParseOptionalDate is the inverse of FormatOptionalDate.
func ParseOptionalDate(s string) (civil.Date, error) {
	if s == "" {
		return civil.Date{}, nil
	}
	return ParseDate(s)
}

// DaysBetween returns the signed number of days from "from" to "to".
func DaysBetween(from, to civil.Date) int {
	return to.DaysSince(from)
}

// AddMonths moves d by n calendar months, clamping to the last day of the
// target month.
func AddMonths(d civil.Date, n int) civil.Date {
	first := civil.Date{Year: d.Year, Month: d.Month, Day: 1}
	target := civil.DateOf(first.In(time.UTC).AddDate(0, n, 0))
	last := EndOfMonth(target)
	if d.Day > last.Day {
		return last
	}
	return civil.Date{Year: target.Year, Month: target.Month, Day: d.Day}
}

// EndOfMonth returns the last day of d's month.
func EndOfMonth(d civil.Date) civil.Date {
	first := civil.Date{Year: d.Year, Month: d.Month, Day: 1}
	next := civil.DateOf(first.In(time.UTC).AddDate(0, 1, 0))
	return next.AddDays(-1)
}

// Today returns the current UTC calendar date.
func Today() civil.Date {
	return civil.DateOf(time.Now().UTC())
}
