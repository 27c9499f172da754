package langtime

import (
	"math"
	"time"

	"github.com/td0m/langtime/pkg/langtime/calendar"
)

type unit int

const (
	unitSecond unit = iota
	unitMinute
	unitHour
	unitDay
	unitWeek
	unitMonth
	unitYear
)

var unitNames = []struct {
	name string
	unit unit
}{
	{"second", unitSecond},
	{"minute", unitMinute},
	{"hour", unitHour},
	{"day", unitDay},
	{"week", unitWeek},
	{"month", unitMonth},
	{"year", unitYear},
}

// unitSeconds is the flat length of the units applied as durations.
var unitSeconds = map[unit]int64{
	unitSecond: 1,
	unitMinute: 60,
	unitHour:   60 * 60,
	unitDay:    24 * 60 * 60,
	unitWeek:   7 * 24 * 60 * 60,
}

var (
	clockUnits    = []unit{unitHour, unitMinute, unitSecond}
	calendarUnits = []unit{unitDay, unitWeek, unitMonth, unitYear}
)

const (
	maxSeconds = math.MaxInt64 / int64(time.Second)
	// ten thousand years keeps month arithmetic far from int overflow
	maxMonths   = 12 * 10000
	maxQuantity = 366 * 10000
)

type term struct {
	n    int
	unit unit
}

// terms reads one or more "<n> <unit>[s]" joined by ", " or " and ".
// Only units in allowed are accepted.
func terms(s string, allowed []unit) (string, []term, error) {
	var ts []term
	rest := s
	for {
		r, t, err := readTerm(rest, allowed)
		if err != nil {
			break
		}
		ts = append(ts, t)
		rest = r
	}
	if len(ts) == 0 {
		return s, nil, errNoMatch
	}
	return rest, ts, nil
}

// readTerm reads a single term, including a trailing separator if present.
func readTerm(s string, allowed []unit) (string, term, error) {
	rest, n, err := digits(s, 1, 0)
	if err != nil {
		return s, term{}, err
	}
	if rest, err = space1(rest); err != nil {
		return s, term{}, err
	}
	u, rest, err := unitName(rest, allowed)
	if err != nil {
		return s, term{}, err
	}
	if r, err := tag(rest, "s"); err == nil {
		rest = r
	}
	if r, _, err := oneOf(rest, " and ", ", "); err == nil {
		rest = r
	}
	return rest, term{n: n, unit: u}, nil
}

func unitName(s string, allowed []unit) (unit, string, error) {
	for _, u := range allowed {
		for _, n := range unitNames {
			if n.unit != u {
				continue
			}
			if rest, err := tag(s, n.name); err == nil {
				return u, rest, nil
			}
		}
	}
	return 0, s, errNoMatch
}

// elapsed folds clock terms into one duration.
func elapsed(ts []term) (time.Duration, error) {
	var secs int64
	for _, t := range ts {
		per := unitSeconds[t.unit]
		if int64(t.n) > (maxSeconds-secs)/per {
			return 0, errNoMatch
		}
		secs += int64(t.n) * per
	}
	return time.Duration(secs) * time.Second, nil
}

// shift applies calendar terms to t with the given sign. Quantities of the
// same unit are summed first, then each unit is applied once in the order it
// first appeared.
func shift(t time.Time, ts []term, sign int) (time.Time, error) {
	var order []unit
	totals := map[unit]int{}
	for _, tm := range ts {
		if _, ok := totals[tm.unit]; !ok {
			order = append(order, tm.unit)
		}
		if tm.n > maxQuantity || totals[tm.unit] > maxQuantity-tm.n {
			return time.Time{}, errNoMatch
		}
		totals[tm.unit] += tm.n
	}

	for _, u := range order {
		n := totals[u]
		var err error
		switch u {
		case unitDay, unitWeek:
			var d time.Duration
			d, err = elapsed([]term{{n: n, unit: u}})
			if err == nil {
				t = t.Add(time.Duration(sign) * d)
			}
		case unitMonth:
			if n > maxMonths {
				return time.Time{}, errNoMatch
			}
			t, err = calendar.AddMonths(t, sign*n)
		case unitYear:
			if n > maxMonths/12 {
				return time.Time{}, errNoMatch
			}
			t, err = calendar.AddYears(t, sign*n)
		}
		if err != nil {
			return time.Time{}, err
		}
	}
	return t, nil
}

// timeAgo reads "3 hours and 2 minutes ago".
func (p *Parser) timeAgo(s string) (string, time.Time, error) {
	rest, ts, err := terms(s, clockUnits)
	if err != nil {
		return s, time.Time{}, err
	}
	if rest, err = tag(rest, " ago"); err != nil {
		return s, time.Time{}, err
	}
	d, err := elapsed(ts)
	if err != nil {
		return s, time.Time{}, err
	}
	return rest, p.now().Add(-d), nil
}

// inTime reads "in 3 hours, 2 minutes".
func (p *Parser) inTime(s string) (string, time.Time, error) {
	rest, err := tag(s, "in")
	if err != nil {
		return s, time.Time{}, err
	}
	if rest, err = space1(rest); err != nil {
		return s, time.Time{}, err
	}
	rest, ts, err := terms(rest, clockUnits)
	if err != nil {
		return s, time.Time{}, err
	}
	d, err := elapsed(ts)
	if err != nil {
		return s, time.Time{}, err
	}
	return rest, p.now().Add(d), nil
}

// dateAgo reads "1 month and 2 days ago". Clock terms may follow the
// calendar ones ("2 days and 3 hours ago"); they are applied last.
func (p *Parser) dateAgo(s string) (string, time.Time, error) {
	rest, ts, d, err := calendarTerms(s)
	if err != nil {
		return s, time.Time{}, err
	}
	if rest, err = tag(rest, " ago"); err != nil {
		return s, time.Time{}, err
	}
	t, err := shift(p.now(), ts, -1)
	if err != nil {
		return s, time.Time{}, err
	}
	return rest, t.Add(-d), nil
}

// inDate reads "in 2 weeks" or "in 3 days and 2 hours".
func (p *Parser) inDate(s string) (string, time.Time, error) {
	rest, err := tag(s, "in")
	if err != nil {
		return s, time.Time{}, err
	}
	if rest, err = space1(rest); err != nil {
		return s, time.Time{}, err
	}
	rest, ts, d, err := calendarTerms(rest)
	if err != nil {
		return s, time.Time{}, err
	}
	t, err := shift(p.now(), ts, 1)
	if err != nil {
		return s, time.Time{}, err
	}
	return rest, t.Add(d), nil
}

// calendarTerms reads calendar terms and an optional run of clock terms
// after them, folded into a duration.
func calendarTerms(s string) (string, []term, time.Duration, error) {
	rest, ts, err := terms(s, calendarUnits)
	if err != nil {
		return s, nil, 0, err
	}
	r, clock, err := terms(rest, clockUnits)
	if err != nil {
		return rest, ts, 0, nil
	}
	d, err := elapsed(clock)
	if err != nil {
		return s, nil, 0, err
	}
	return r, ts, d, nil
}

// relativeWeekday reads "next <weekday>" or "last <weekday>".
func (p *Parser) relativeWeekday(s string) (string, time.Time, error) {
	rest, rel, err := oneOf(s, "next", "last")
	if err != nil {
		return s, time.Time{}, err
	}
	if rest, err = space1(rest); err != nil {
		return s, time.Time{}, err
	}
	rest, target, err := weekday(rest)
	if err != nil {
		return s, time.Time{}, err
	}

	now := p.now()
	from := calendar.WeekdayIndex(now.Weekday())
	days := calendar.NextWeekday(from, target)
	if rel == "last" {
		days = calendar.LastWeekday(from, target)
	}
	return rest, now.Add(time.Duration(days) * 24 * time.Hour), nil
}

// thisWeekday reads "this <weekday>" or a bare weekday, later this week only.
func (p *Parser) thisWeekday(s string) (string, time.Time, error) {
	rest := s
	if r, err := tag(rest, "this"); err == nil {
		if r, err = space1(r); err == nil {
			rest = r
		}
	}
	rest, target, err := weekday(rest)
	if err != nil {
		return s, time.Time{}, err
	}

	now := p.now()
	days, ok := calendar.ThisWeekday(calendar.WeekdayIndex(now.Weekday()), target)
	if !ok {
		return s, time.Time{}, errNoMatch
	}
	return rest, now.Add(time.Duration(days) * 24 * time.Hour), nil
}
