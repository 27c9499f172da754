package langtime

import (
	"time"

	"github.com/td0m/langtime/pkg/langtime/calendar"
)

// isoDate reads YYYY-MM-DD at midnight.
func (p *Parser) isoDate(s string) (string, time.Time, error) {
	rest, y, err := year(s)
	if err != nil {
		return s, time.Time{}, err
	}
	if rest, err = tag(rest, "-"); err != nil {
		return s, time.Time{}, err
	}
	rest, m, err := fixed(rest, 2)
	if err != nil {
		return s, time.Time{}, err
	}
	if rest, err = tag(rest, "-"); err != nil {
		return s, time.Time{}, err
	}
	rest, d, err := fixed(rest, 2)
	if err != nil {
		return s, time.Time{}, err
	}

	t, err := calendar.Date(y, m, d, 0, 0, 0, p.now().Location())
	if err != nil {
		return s, time.Time{}, err
	}
	return rest, t, nil
}

// isoClock reads HH:MM with optional :SS, two digits each.
func isoClock(s string) (rest string, hh, mm, ss int, err error) {
	if rest, hh, err = fixed(s, 2); err != nil {
		return s, 0, 0, 0, err
	}
	if rest, err = tag(rest, ":"); err != nil {
		return s, 0, 0, 0, err
	}
	if rest, mm, err = fixed(rest, 2); err != nil {
		return s, 0, 0, 0, err
	}
	if r, err := tag(rest, ":"); err == nil {
		if r, sec, err := fixed(r, 2); err == nil {
			rest, ss = r, sec
		}
	}
	return rest, hh, mm, ss, nil
}

// isoTime reads an ISO clock on today's date.
func (p *Parser) isoTime(s string) (string, time.Time, error) {
	rest, hh, mm, ss, err := isoClock(s)
	if err != nil {
		return s, time.Time{}, err
	}
	t, err := p.today(hh, mm, ss)
	if err != nil {
		return s, time.Time{}, err
	}
	return rest, t, nil
}

// isoDateTime reads <iso date>T<iso time>.
func (p *Parser) isoDateTime(s string) (string, time.Time, error) {
	rest, date, err := p.isoDate(s)
	if err != nil {
		return s, time.Time{}, err
	}
	// input is lowercased before it gets here
	if rest, err = tag(rest, "t"); err != nil {
		return s, time.Time{}, err
	}
	rest, hh, mm, ss, err := isoClock(rest)
	if err != nil {
		return s, time.Time{}, err
	}
	y, m, d := date.Date()
	t, err := calendar.Date(y, int(m), d, hh, mm, ss, date.Location())
	if err != nil {
		return s, time.Time{}, err
	}
	return rest, t, nil
}

// today builds a clock time on the current date.
func (p *Parser) today(hh, mm, ss int) (time.Time, error) {
	now := p.now()
	y, m, d := now.Date()
	return calendar.Date(y, int(m), d, hh, mm, ss, now.Location())
}
