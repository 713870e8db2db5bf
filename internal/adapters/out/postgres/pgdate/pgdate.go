// Package pgdate converts calendar days to and from DATE columns.
//
// pgx sends time.Time parameters as timestamptz and the server casts them to
// date in the session time zone, so midnight in the business zone can land on
// the previous day. Days are written as noon UTC, which falls on the same
// calendar day in every zone within twelve hours of UTC, and read back as
// midnight in the business zone.
package pgdate

import "time"

// ToColumn returns the value to store for the calendar day of t.
func ToColumn(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// FromColumn re-anchors a scanned DATE value at midnight in loc. A nil loc
// keeps the value's own location.
func FromColumn(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = t.Location()
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Param formats t as a DATE literal for raw SQL parameters.
func Param(t time.Time) string {
	return t.Format(time.DateOnly)
}
