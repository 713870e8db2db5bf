package kernel

import "time"

// Clock supplies the current time so transitions are deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the business time zone.
type SystemClock struct {
	loc *time.Location
}

func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return SystemClock{loc: loc}
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Location returns the business time zone.
func (c SystemClock) Location() *time.Location {
	return c.loc
}

// DayOf truncates t to midnight of its calendar day in t's own location.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
