package calendar

import "time"

// WeekdayIndex maps a time.Weekday onto 0..6 with Monday as 0.
func WeekdayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// NextWeekday returns the day offset from weekday index from to target in the
// following week. From a Wednesday, next monday is 5 days away and next
// wednesday 7.
func NextWeekday(from, target int) int {
	return 7 + (target - from)
}

// LastWeekday returns the (negative) day offset to the nearest target strictly
// before today.
func LastWeekday(from, target int) int {
	if target >= from {
		return -(7 + (from - target))
	}
	return target - from
}

// ThisWeekday returns the offset to target within the current week.
// It never wraps: a weekday that is today or already passed is not found.
func ThisWeekday(from, target int) (int, bool) {
	if target <= from {
		return 0, false
	}
	return target - from, true
}
