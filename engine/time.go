/*
Package engine provides the pure calculation core of the production engine.

PURPOSE:
  This package contains the dependency-free building blocks every other
  package composes: civil dates, holiday sets, business-day counting,
  hour quantities, weekly work-schedule templates, and the shared error
  vocabulary. Nothing here performs I/O; every function is a pure
  computation over its arguments and is safe to call from concurrent
  request handlers.

KEY CONCEPTS IN THIS FILE (time.go):
  - Date: A civil date in the local calendar (no timezones, no clock)
  - HolidaySet: Public-holiday membership by ISO date string

DESIGN PRINCIPLES:
  1. Local civil dates only: the business operates in one calendar;
     a Date is year/month/day and nothing else
  2. Referential transparency: holiday data is always passed in,
     never looked up from ambient state
  3. Plain data in, plain data out: the host service owns persistence

SEE ALSO:
  - calendar.go: Business-day classification and counting
  - period.go: Date ranges and ISO-week bucketing
  - schedule.go: Weekly expected-hours templates
*/
package engine

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Civil date (day granularity, local calendar)
// =============================================================================

// Date is a civil date. The zero value is "no date".
// Internally anchored at UTC midnight so comparisons are exact.
type Date struct {
	t time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// MustParseDate is for tests and seed data where the literal is known good.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the current civil date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date   { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date { return Date{t: d.t.AddDate(0, n, 0)} }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }

// IsWeekend reports whether the date is a Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ISOWeek returns the ISO 8601 week the date belongs to.
func (d Date) ISOWeek() ISOWeek {
	year, week := d.t.ISOWeek()
	return ISOWeek{Year: year, Week: week}
}

// String returns the ISO YYYY-MM-DD form.
func (d Date) String() string { return d.t.Format(dateLayout) }

// DaysUntil returns the whole-day distance to other (negative if other is earlier).
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// =============================================================================
// HOLIDAY SET - Public holidays by ISO date string
// =============================================================================

// HolidaySet is a membership set of ISO YYYY-MM-DD strings, as supplied
// by the host's public-holiday feed. A nil set means "no holidays".
type HolidaySet map[string]struct{}

func NewHolidaySet(dates ...string) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

func (h HolidaySet) Add(date string) {
	h[date] = struct{}{}
}

// Contains reports whether the date is a listed holiday.
func (h HolidaySet) Contains(d Date) bool {
	if h == nil {
		return false
	}
	_, ok := h[d.String()]
	return ok
}
