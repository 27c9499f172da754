package calendar

import (
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidInstant is returned when a civil time has no single offset in
	// its location, because it falls in a DST gap or overlap.
	ErrInvalidInstant = errors.New("local time is ambiguous or does not exist")
	ErrOutOfRange     = errors.New("date or time field out of range")
)

// Date builds an instant from civil components in loc.
// Unlike time.Date it never normalises: out of range fields and local times
// with zero or two valid offsets are errors.
func Date(year, month, day, hour, min, sec int, loc *time.Location) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, ErrOutOfRange
	}
	if day < 1 || day > DaysIn(year, time.Month(month), loc) {
		return time.Time{}, ErrOutOfRange
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 || sec < 0 || sec > 59 {
		return time.Time{}, ErrOutOfRange
	}

	// the civil time read as UTC, shifted by every offset in effect nearby
	naive := time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC)
	var found []time.Time
	for _, probe := range []time.Time{naive.Add(-24 * time.Hour), naive, naive.Add(24 * time.Hour)} {
		_, offset := probe.In(loc).Zone()
		t := naive.Add(-time.Duration(offset) * time.Second).In(loc)
		if !sameClock(t, year, month, day, hour, min, sec) {
			continue
		}
		if !contains(found, t) {
			found = append(found, t)
		}
	}
	if len(found) != 1 {
		return time.Time{}, ErrInvalidInstant
	}
	return found[0], nil
}

func sameClock(t time.Time, year, month, day, hour, min, sec int) bool {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return y == year && int(m) == month && d == day && hh == hour && mm == min && ss == sec
}

func contains(ts []time.Time, t time.Time) bool {
	for _, u := range ts {
		if u.Equal(t) {
			return true
		}
	}
	return false
}

// DaysIn returns the number of days in the given month.
// It steps back one day from the first of the following month, so leap years
// need no special casing.
func DaysIn(year int, month time.Month, loc *time.Location) int {
	y, m := year, month+1
	if m > time.December {
		y, m = y+1, time.January
	}
	// noon keeps the step clear of midnight DST transitions
	first := time.Date(y, m, 1, 12, 0, 0, 0, loc)
	return first.AddDate(0, 0, -1).Day()
}

// AddMonths moves t by n months (n may be negative), clamping the day to the
// last day of the destination month. Jan 31 + 1 month is Feb 28 or 29.
func AddMonths(t time.Time, n int) (time.Time, error) {
	// zero based month index so the modulo wraps cleanly
	total := t.Year()*12 + int(t.Month()) - 1 + n
	year := floorDiv(total, 12)
	month := total - year*12 + 1

	day := t.Day()
	if last := DaysIn(year, time.Month(month), t.Location()); day > last {
		day = last
	}
	hour, min, sec := t.Clock()
	return Date(year, month, day, hour, min, sec, t.Location())
}

// AddYears is AddMonths with n*12 months; Feb 29 - 1 year is Feb 28.
func AddYears(t time.Time, n int) (time.Time, error) {
	return AddMonths(t, n*12)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
