package langtime

import (
	"time"

	"github.com/td0m/langtime/pkg/langtime/calendar"
)

// grammar consumes a prefix of its input and returns the remainder together
// with the instant the prefix describes.
type grammar struct {
	name  string
	parse func(s string) (string, time.Time, error)
}

// alt tries each grammar in order and returns the first match.
// It is a priority list, not a longest match: order decides ambiguous input.
func alt(gs ...grammar) func(s string) (string, time.Time, error) {
	return func(s string) (string, time.Time, error) {
		for _, g := range gs {
			if rest, t, err := g.parse(s); err == nil {
				return rest, t, nil
			}
		}
		return s, time.Time{}, errNoMatch
	}
}

// grammars is the top level priority order.
func (p *Parser) grammars(cfg Config) []grammar {
	return []grammar{
		{"time", p.times()},
		{"datetime", p.datetimes(cfg)},
		{"date", p.dates(cfg)},
		{"time ago", p.timeAgo},
		{"in time", p.inTime},
	}
}

func (p *Parser) times() func(string) (string, time.Time, error) {
	// 12 hour time goes first, ahead of ISO and 24 hour time, so the am/pm
	// suffix is part of the match: "09:30pm" is 21:30, not 09:30 with "pm"
	// left over.
	return alt(
		grammar{"12 hour time", p.time12h},
		grammar{"iso time", p.isoTime},
		grammar{"24 hour time", p.time24h},
		grammar{"spelled time", p.spelledTime},
	)
}

func (p *Parser) dates(cfg Config) func(string) (string, time.Time, error) {
	return alt(
		grammar{"iso date", p.isoDate},
		grammar{"numeric date", p.numericDate(cfg.Dialect)},
		grammar{"spelled date", p.spelledDate(cfg.Dialect)},
		grammar{"month and year", p.monthYear(cfg.Dialect)},
		grammar{"named day", p.namedDay},
		grammar{"next or last weekday", p.relativeWeekday},
		grammar{"this weekday", p.thisWeekday},
		grammar{"date ago", p.dateAgo},
		grammar{"in date", p.inDate},
	)
}

// datetimes is an ISO datetime, or a date and a time separated by " at " or
// whitespace. The time of day of the date is replaced by the time.
func (p *Parser) datetimes(cfg Config) func(string) (string, time.Time, error) {
	dates, times := p.dates(cfg), p.times()
	joined := func(s string) (string, time.Time, error) {
		rest, date, err := dates(s)
		if err != nil {
			return s, time.Time{}, err
		}
		if r, err := tag(rest, " at "); err == nil {
			rest = r
		} else if rest, err = space1(rest); err != nil {
			return s, time.Time{}, errNoMatch
		}
		rest, clock, err := times(rest)
		if err != nil {
			return s, time.Time{}, err
		}
		t, err := joinDateTime(date, clock)
		if err != nil {
			return s, time.Time{}, err
		}
		return rest, t, nil
	}
	return alt(
		grammar{"iso datetime", p.isoDateTime},
		grammar{"date and time", joined},
	)
}

// joinDateTime takes the calendar date of date and the clock of clock.
func joinDateTime(date, clock time.Time) (time.Time, error) {
	y, m, d := date.Date()
	hh, mm, ss := clock.Clock()
	return calendar.Date(y, int(m), d, hh, mm, ss, date.Location())
}
