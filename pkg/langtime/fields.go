package langtime

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// errNoMatch is returned by every reader and grammar that does not accept its
// input. The dispatcher treats it as "try the next alternative".
var errNoMatch = errors.New("no match")

func tag(s, lit string) (string, error) {
	if !strings.HasPrefix(s, lit) {
		return s, errNoMatch
	}
	return s[len(lit):], nil
}

// oneOf accepts the first literal of lits that prefixes s.
func oneOf(s string, lits ...string) (string, string, error) {
	for _, lit := range lits {
		if rest, err := tag(s, lit); err == nil {
			return rest, lit, nil
		}
	}
	return s, "", errNoMatch
}

func space0(s string) string {
	return strings.TrimLeft(s, " \t")
}

func space1(s string) (string, error) {
	rest := space0(s)
	if len(rest) == len(s) {
		return s, errNoMatch
	}
	return rest, nil
}

// digits reads between min and max ASCII digits. max <= 0 means unbounded.
func digits(s string, min, max int) (string, int, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' && (max <= 0 || i < max) {
		i++
	}
	if i < min || i == 0 {
		return s, 0, errNoMatch
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return s, 0, errNoMatch
	}
	return s[i:], n, nil
}

// fixed reads exactly n digits.
func fixed(s string, n int) (string, int, error) {
	return digits(s, n, n)
}

func year(s string) (string, int, error) {
	return digits(s, 1, 0)
}

// fullYear reads a year of four or more digits that is not followed by
// another "/" field, so "13/2024" in "1/13/2024" is not a month and year.
func fullYear(s string) (string, int, error) {
	rest, y, err := digits(s, 4, 0)
	if err != nil {
		return s, 0, err
	}
	if _, err := tag(rest, "/"); err == nil {
		return s, 0, errNoMatch
	}
	return rest, y, nil
}

// field reads a one or two digit day, month, hour, minute or second.
func field(s string) (string, int, error) {
	return digits(s, 1, 2)
}

var weekdayNames = [][]string{
	{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
	{"mon", "tue", "wed", "thu", "fri", "sat", "sun"},
}

// word is tag for names: the literal must not run on into more letters,
// so "mon" does not match the start of "month".
func word(s, lit string) (string, error) {
	rest, err := tag(s, lit)
	if err != nil {
		return s, err
	}
	if rest != "" && rest[0] >= 'a' && rest[0] <= 'z' {
		return s, errNoMatch
	}
	return rest, nil
}

// weekday reads a weekday name and returns its index, Monday being 0.
// Full names are tried before abbreviations.
func weekday(s string) (string, int, error) {
	for _, names := range weekdayNames {
		for i, name := range names {
			if rest, err := word(s, name); err == nil {
				return rest, i, nil
			}
		}
	}
	return s, 0, errNoMatch
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// monthName reads a month name, full or three letter, and returns 1..12.
func monthName(s string) (string, int, error) {
	for i, name := range monthNames {
		if rest, err := word(s, name); err == nil {
			return rest, i + 1, nil
		}
	}
	for i, name := range monthNames {
		if name == "may" {
			continue
		}
		if rest, err := word(s, name[:3]); err == nil {
			return rest, i + 1, nil
		}
	}
	return s, 0, errNoMatch
}

// ordinal strips the ordinal suffix matching n, if there is one.
// A suffix that does not fit n (like "1nd") is rejected.
func ordinal(s string, n int) (string, error) {
	rest, suffix, err := oneOf(s, "st", "nd", "rd", "th")
	if err != nil {
		return s, nil
	}
	lastDigit := n % 10
	forceTh := (n%100 - lastDigit) == 10

	var want string
	switch {
	case lastDigit == 1 && !forceTh:
		want = "st"
	case lastDigit == 2 && !forceTh:
		want = "nd"
	case lastDigit == 3 && !forceTh:
		want = "rd"
	default:
		want = "th"
	}
	if suffix != want {
		return s, errNoMatch
	}
	return rest, nil
}
