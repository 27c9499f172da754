package langtime

import (
	"time"

	"github.com/td0m/langtime/pkg/langtime/calendar"
)

// numericDate reads D/M/YYYY (UK) or M/D/YYYY (US) at midnight.
func (p *Parser) numericDate(dialect Dialect) func(string) (string, time.Time, error) {
	return func(s string) (string, time.Time, error) {
		rest, first, err := field(s)
		if err != nil {
			return s, time.Time{}, err
		}
		if rest, err = tag(rest, "/"); err != nil {
			return s, time.Time{}, err
		}
		rest, second, err := field(rest)
		if err != nil {
			return s, time.Time{}, err
		}
		if rest, err = tag(rest, "/"); err != nil {
			return s, time.Time{}, err
		}
		rest, y, err := year(rest)
		if err != nil {
			return s, time.Time{}, err
		}

		d, m := first, second
		if dialect == US {
			d, m = second, first
		}
		t, err := calendar.Date(y, m, d, 0, 0, 0, p.now().Location())
		if err != nil {
			return s, time.Time{}, err
		}
		return rest, t, nil
	}
}

// spelledDate reads "23rd of december 2024" (UK) or "december 23rd, 2024" (US).
func (p *Parser) spelledDate(dialect Dialect) func(string) (string, time.Time, error) {
	dayMonth := func(s string) (string, int, int, error) {
		rest, d, err := field(s)
		if err != nil {
			return s, 0, 0, err
		}
		if rest, err = ordinal(rest, d); err != nil {
			return s, 0, 0, err
		}
		if rest, err = space1(rest); err != nil {
			return s, 0, 0, err
		}
		if r, err := tag(rest, "of "); err == nil {
			rest = space0(r)
		}
		rest, m, err := monthName(rest)
		if err != nil {
			return s, 0, 0, err
		}
		return rest, d, m, nil
	}
	monthDay := func(s string) (string, int, int, error) {
		rest, m, err := monthName(s)
		if err != nil {
			return s, 0, 0, err
		}
		if rest, err = space1(rest); err != nil {
			return s, 0, 0, err
		}
		rest, d, err := field(rest)
		if err != nil {
			return s, 0, 0, err
		}
		if rest, err = ordinal(rest, d); err != nil {
			return s, 0, 0, err
		}
		return rest, d, m, nil
	}

	read := dayMonth
	if dialect == US {
		read = monthDay
	}
	return func(s string) (string, time.Time, error) {
		rest, d, m, err := read(s)
		if err != nil {
			return s, time.Time{}, err
		}
		if r, err := tag(rest, ","); err == nil {
			rest = r
		}
		if rest, err = space1(rest); err != nil {
			return s, time.Time{}, err
		}
		rest, y, err := year(rest)
		if err != nil {
			return s, time.Time{}, err
		}
		t, err := calendar.Date(y, m, d, 0, 0, 0, p.now().Location())
		if err != nil {
			return s, time.Time{}, err
		}
		return rest, t, nil
	}
}

// monthYear reads "december 2024" or "12/2024" as the first of the month.
// The comma of "december, 2024" is US style and only read in that dialect.
func (p *Parser) monthYear(dialect Dialect) func(string) (string, time.Time, error) {
	return func(s string) (string, time.Time, error) {
		rest, m, err := monthName(s)
		if err == nil {
			if r, err := tag(rest, ","); err == nil && dialect == US {
				rest = r
			}
			rest, err = space1(rest)
		} else {
			rest, m, err = field(s)
			if err == nil {
				rest, err = tag(rest, "/")
			}
		}
		if err != nil {
			return s, time.Time{}, err
		}
		rest, y, err := fullYear(rest)
		if err != nil {
			return s, time.Time{}, err
		}
		t, err := calendar.Date(y, m, 1, 0, 0, 0, p.now().Location())
		if err != nil {
			return s, time.Time{}, err
		}
		return rest, t, nil
	}
}

// namedDay reads yesterday, today or tomorrow, keeping the current clock.
func (p *Parser) namedDay(s string) (string, time.Time, error) {
	rest, name, err := oneOf(s, "yesterday", "today", "tomorrow")
	if err != nil {
		return s, time.Time{}, err
	}
	now := p.now()
	switch name {
	case "yesterday":
		return rest, now.Add(-24 * time.Hour), nil
	case "tomorrow":
		return rest, now.Add(24 * time.Hour), nil
	default:
		return rest, now, nil
	}
}

// time24h reads H:M with optional :S, one or two digits each.
func (p *Parser) time24h(s string) (string, time.Time, error) {
	rest, hh, err := field(s)
	if err != nil {
		return s, time.Time{}, err
	}
	if rest, err = tag(rest, ":"); err != nil {
		return s, time.Time{}, err
	}
	rest, mm, err := field(rest)
	if err != nil {
		return s, time.Time{}, err
	}
	ss := 0
	if r, err := tag(rest, ":"); err == nil {
		if r, sec, err := field(r); err == nil {
			rest, ss = r, sec
		}
	}
	t, err := p.today(hh, mm, ss)
	if err != nil {
		return s, time.Time{}, err
	}
	return rest, t, nil
}

// time12h reads H[:M[:S]] followed by am, a.m., pm or p.m.
func (p *Parser) time12h(s string) (string, time.Time, error) {
	rest, hh, err := field(s)
	if err != nil {
		return s, time.Time{}, err
	}
	mm, ss := 0, 0
	if r, err := tag(rest, ":"); err == nil {
		if r, m, err := field(r); err == nil {
			rest, mm = r, m
			if r, err := tag(rest, ":"); err == nil {
				if r, sec, err := field(r); err == nil {
					rest, ss = r, sec
				}
			}
		}
	}
	rest, suffix, err := oneOf(space0(rest), "a.m.", "am", "p.m.", "pm")
	if err != nil {
		return s, time.Time{}, err
	}
	if hh > 12 {
		return s, time.Time{}, errNoMatch
	}
	hh = to24h(hh, suffix == "p.m." || suffix == "pm")

	t, err := p.today(hh, mm, ss)
	if err != nil {
		return s, time.Time{}, err
	}
	return rest, t, nil
}

// to24h converts a 0..12 hour: 12am is 0, 12pm stays 12.
func to24h(hh int, pm bool) int {
	switch {
	case !pm && hh == 12:
		return 0
	case pm && hh < 12:
		return hh + 12
	}
	return hh
}

var spelledOffsets = []struct {
	prefix string
	offset time.Duration
}{
	{"half past ", 30 * time.Minute},
	{"a quarter past ", 15 * time.Minute},
	{"quarter past ", 15 * time.Minute},
	{"half to ", -30 * time.Minute},
	{"a quarter to ", -15 * time.Minute},
	{"quarter to ", -15 * time.Minute},
}

// spelledTime reads "<hour> o'clock" or "half past <hour>",
// "a quarter to <hour>" and similar. The offset is applied to the bare hour.
func (p *Parser) spelledTime(s string) (string, time.Time, error) {
	if rest, hh, err := field(s); err == nil {
		if rest, err := tag(space0(rest), "o'clock"); err == nil {
			t, err := p.today(hh, 0, 0)
			if err != nil {
				return s, time.Time{}, err
			}
			return rest, t, nil
		}
	}

	for _, o := range spelledOffsets {
		rest, err := tag(s, o.prefix)
		if err != nil {
			continue
		}
		rest, hh, err := field(rest)
		if err != nil {
			return s, time.Time{}, err
		}
		t, err := p.today(hh, 0, 0)
		if err != nil {
			return s, time.Time{}, err
		}
		return rest, t.Add(o.offset), nil
	}
	return s, time.Time{}, errNoMatch
}
