// Package clock owns the reference timezone and the day-boundary function.
// Check-out matching and daily aggregation must agree on what "today" means,
// so both take the same Clock instead of calling time.Now directly.
package clock

import "time"

type Clock struct {
	loc *time.Location
	now func() time.Time
}

func New(loc *time.Location) *Clock {
	return &Clock{loc: loc, now: time.Now}
}

// NewWithNow injects the time source, for tests.
func NewWithNow(loc *time.Location, now func() time.Time) *Clock {
	return &Clock{loc: loc, now: now}
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// DayStart returns midnight of t's calendar day in the reference timezone.
// The day window is [DayStart, NextDayStart).
func (c *Clock) DayStart(t time.Time) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

func (c *Clock) NextDayStart(t time.Time) time.Time {
	return c.DayStart(t).AddDate(0, 0, 1)
}
