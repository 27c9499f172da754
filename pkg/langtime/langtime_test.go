package langtime

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/matryer/is"
	"github.com/pkg/errors"
)

const layout = "2006-01-02 15:04:05"

// Wednesday 12 June 2024, with a sub-second part that must never leak out
var wednesday = time.Date(2024, time.June, 12, 15, 30, 45, 500_000_000, time.UTC)

func fixedClock(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}

func london(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Fatal(err)
	}
	return loc
}

func TestParser_Parse(t *testing.T) {
	p := New(fixedClock(wednesday))
	uk := Config{Dialect: UK}
	us := Config{Dialect: US}

	tests := []struct {
		name string
		args []string
		cfg  Config
		want string
	}{
		{"iso date", []string{"2024-12-23", "  2024-12-23  "}, uk, "2024-12-23 00:00:00"},
		{"iso datetime", []string{"2024-06-05T07:02:24", "2024-06-05t07:02:24"}, uk, "2024-06-05 07:02:24"},
		{"iso datetime without seconds", []string{"2024-06-05T07:02"}, uk, "2024-06-05 07:02:00"},
		{"iso time", []string{"07:02", "07:02:00"}, uk, "2024-06-12 07:02:00"},

		{"uk numeric date", []string{"12/06/2024", "12/6/2024"}, uk, "2024-06-12 00:00:00"},
		{"us numeric date", []string{"12/06/2024", "12/6/2024"}, us, "2024-12-06 00:00:00"},
		{"uk spelled date", []string{"23 december 2024", "23rd december 2024", "23rd of december, 2024", "23 dec 2024"}, uk, "2024-12-23 00:00:00"},
		{"us spelled date", []string{"december 23 2024", "december 23rd, 2024", "dec 23, 2024"}, us, "2024-12-23 00:00:00"},
		{"month and year", []string{"december 2024", "dec 2024", "12/2024"}, uk, "2024-12-01 00:00:00"},
		{"month and year, us", []string{"december 2024", "december, 2024"}, us, "2024-12-01 00:00:00"},

		{"yesterday", []string{"yesterday", "Yesterday"}, uk, "2024-06-11 15:30:45"},
		{"today", []string{"today", "TODAY"}, uk, "2024-06-12 15:30:45"},
		{"tomorrow", []string{"tomorrow"}, uk, "2024-06-13 15:30:45"},

		{"12 hour time", []string{"9pm", "9 pm", "9p.m.", "9 p.m.", "09pm", "9:00pm"}, uk, "2024-06-12 21:00:00"},
		{"12 hour time with minutes", []string{"9:30pm", "9:30 p.m.", "9:30:00pm", "09:30pm"}, uk, "2024-06-12 21:30:00"},
		{"12am is midnight", []string{"12am", "12 a.m."}, uk, "2024-06-12 00:00:00"},
		{"12pm is noon", []string{"12pm", "12 p.m."}, uk, "2024-06-12 12:00:00"},
		{"12:15am", []string{"12:15am"}, uk, "2024-06-12 00:15:00"},
		{"24 hour time", []string{"17:45", "17:45:00"}, uk, "2024-06-12 17:45:00"},
		{"24 hour time, short fields", []string{"7:5:9"}, uk, "2024-06-12 07:05:09"},

		{"o'clock", []string{"9 o'clock", "9o'clock"}, uk, "2024-06-12 09:00:00"},
		{"half past", []string{"half past 3"}, uk, "2024-06-12 03:30:00"},
		{"quarter past", []string{"a quarter past 11", "quarter past 11"}, uk, "2024-06-12 11:15:00"},
		{"half to", []string{"half to 10"}, uk, "2024-06-12 09:30:00"},
		{"quarter to", []string{"a quarter to 5", "quarter to 5"}, uk, "2024-06-12 04:45:00"},

		{"date at time", []string{"yesterday at 9pm", "yesterday 9pm", "YESTERDAY AT 9PM"}, uk, "2024-06-11 21:00:00"},
		{"tomorrow at half past", []string{"tomorrow at half past 3"}, uk, "2024-06-13 03:30:00"},
		{"numeric date and time", []string{"12/06/2024 at 10:30:15", "12/06/2024 10:30:15"}, uk, "2024-06-12 10:30:15"},
		{"spelled date and time", []string{"december 23, 2024 at 8am"}, us, "2024-12-23 08:00:00"},
		{"relative date and time", []string{"in 2 days at 7:15"}, uk, "2024-06-14 07:15:00"},

		{"time ago", []string{"3 hours and 2 minutes ago", "3 hours, 2 minutes ago", "2 minutes and 3 hours ago"}, uk, "2024-06-12 12:28:45"},
		{"seconds ago", []string{"10 seconds ago", "10 second ago"}, uk, "2024-06-12 15:30:35"},
		{"in time", []string{"in 2 hours, 15 minutes", "in 2 hours and 15 minutes", "in 1 hour and 75 minutes"}, uk, "2024-06-12 17:45:45"},
		{"in days", []string{"in 3 days", "in 1 day and 2 days"}, uk, "2024-06-15 15:30:45"},
		{"in days and hours", []string{"in 3 days and 2 hours"}, uk, "2024-06-15 17:30:45"},
		{"weeks ago", []string{"2 weeks ago", "1 week and 7 days ago"}, uk, "2024-05-29 15:30:45"},
		{"month ago", []string{"1 month ago"}, uk, "2024-05-12 15:30:45"},
		{"in years and months", []string{"in 1 year and 2 months", "in 2 months and 1 year"}, uk, "2025-08-12 15:30:45"},

		{"next monday", []string{"next monday", "next mon"}, uk, "2024-06-17 15:30:45"},
		{"last monday", []string{"last monday", "last mon"}, uk, "2024-06-10 15:30:45"},
		{"next wednesday", []string{"next wednesday"}, uk, "2024-06-19 15:30:45"},
		{"last wednesday", []string{"last wednesday"}, uk, "2024-06-05 15:30:45"},
		{"last friday", []string{"last friday"}, uk, "2024-06-07 15:30:45"},
		{"this friday", []string{"this friday", "friday", "fri"}, uk, "2024-06-14 15:30:45"},
		{"next friday at noon", []string{"next friday at 12pm"}, uk, "2024-06-21 12:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, arg := range tt.args {
				got, err := p.Parse(arg, tt.cfg)
				if err != nil {
					t.Errorf("Parse(%q) error = %v", arg, err)
					continue
				}
				if got.Format(layout) != tt.want {
					t.Errorf("Parse(%q) = %s, want %s", arg, got.Format(layout), tt.want)
				}
			}
		})
	}
}

func TestParser_ParseFails(t *testing.T) {
	p := New(fixedClock(wednesday))

	full := Config{FullMatch: true}
	usFull := Config{Dialect: US, FullMatch: true}
	partial := Config{}

	tests := []struct {
		name string
		args []string
		cfg  Config
	}{
		{"empty", []string{"", "   "}, full},
		{"garbage", []string{"hello", "the day after"}, full},
		{"12 hour time above 12", []string{"13pm", "13am", "25 a.m.", "99pm"}, full},
		{"24 hour time out of range", []string{"24:00", "12:60"}, full},
		{"invalid dates", []string{"31/02/2024", "2024-13-01", "2024-02-30", "0/1/2024"}, full},
		{"iso date needs two digit fields", []string{"2024-6-05"}, full},
		{"weekday already passed", []string{"this monday", "monday", "this wednesday", "wednesday"}, full},
		{"weekday prefix of a longer word", []string{"last month", "next monthly"}, full},
		{"wrong ordinal", []string{"1nd december 2024", "11st december 2024"}, full},
		{"dangling separator", []string{"3 hours and ago"}, full},
		{"quantity overflow", []string{"99999999999999999999 seconds ago", "in 9999999999 days"}, full},
		{"month and day without year", []string{"june 12", "march 5", "dec 25th"}, usFull},
		{"month and short year", []string{"june 12", "12/24", "december 202"}, full},
		{"month past 12 is not month and year", []string{"1/13/2024", "13/2024"}, partial},
		{"comma after month is us style", []string{"december, 2024"}, full},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, arg := range tt.args {
				got, err := p.Parse(arg, tt.cfg)
				if err == nil {
					t.Errorf("Parse(%q) = %s, want error", arg, got.Format(layout))
					continue
				}
				if !errors.Is(err, ErrNotParsable) {
					t.Errorf("Parse(%q) error = %v, want ErrNotParsable", arg, err)
				}
			}
		})
	}
}

func TestParser_FullMatch(t *testing.T) {
	p := New(fixedClock(wednesday))
	text := "12/06/2024 is the date"

	t.Run("Full match rejects trailing text", func(t *testing.T) {
		is := is.New(t)
		_, err := p.Parse(text, Config{Dialect: UK, FullMatch: true})
		is.True(errors.Is(err, ErrNotParsable))
	})
	t.Run("Partial match ignores trailing text", func(t *testing.T) {
		is := is.New(t)
		got, err := p.Parse(text, DefaultConfig())
		is.NoErr(err)
		is.Equal(got.Day(), 12)
		is.Equal(got.Month(), time.June)
		is.Equal(got.Year(), 2024)
	})
	t.Run("Full match accepts surrounding whitespace", func(t *testing.T) {
		is := is.New(t)
		_, err := p.Parse("  next friday ", Config{FullMatch: true})
		is.NoErr(err)
	})
}

func TestParser_SubSecondDropped(t *testing.T) {
	is := is.New(t)
	p := New(fixedClock(wednesday))
	for _, s := range []string{"today", "yesterday", "3 hours ago", "in 2 days", "next monday"} {
		got, err := p.Parse(s, DefaultConfig())
		is.NoErr(err)
		is.Equal(got.Nanosecond(), 0) // sub-second part of the clock is dropped
	}
}

func TestParser_MonthEndClamping(t *testing.T) {
	t.Run("Jan 31 + 1 month in a leap year", func(t *testing.T) {
		is := is.New(t)
		p := New(fixedClock(time.Date(2024, time.January, 31, 9, 0, 0, 0, time.UTC)))
		got, err := p.Parse("in 1 month", DefaultConfig())
		is.NoErr(err)
		is.Equal(got.Format(layout), "2024-02-29 09:00:00")
	})
	t.Run("Jan 31 + 1 month in a common year", func(t *testing.T) {
		is := is.New(t)
		p := New(fixedClock(time.Date(2023, time.January, 31, 9, 0, 0, 0, time.UTC)))
		got, err := p.Parse("in 1 month", DefaultConfig())
		is.NoErr(err)
		is.Equal(got.Format(layout), "2023-02-28 09:00:00")
	})
	t.Run("Feb 29 - 1 year", func(t *testing.T) {
		is := is.New(t)
		p := New(fixedClock(time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC)))
		got, err := p.Parse("1 year ago", DefaultConfig())
		is.NoErr(err)
		is.Equal(got.Format(layout), "2023-02-28 09:00:00")
	})
	t.Run("Months are applied before days", func(t *testing.T) {
		is := is.New(t)
		p := New(fixedClock(time.Date(2024, time.January, 30, 9, 0, 0, 0, time.UTC)))
		got, err := p.Parse("in 1 month and 2 days", DefaultConfig())
		is.NoErr(err)
		is.Equal(got.Format(layout), "2024-03-02 09:00:00")
	})
}

func TestParser_DaylightSaving(t *testing.T) {
	loc := london(t)
	full := Config{FullMatch: true}

	t.Run("Spring forward gap", func(t *testing.T) {
		is := is.New(t)
		p := New(fixedClock(time.Date(2024, time.March, 31, 10, 0, 0, 0, loc)))

		_, err := p.Parse("01:30", full)
		is.True(errors.Is(err, ErrNotParsable))
		_, err = p.Parse("1:30am", full)
		is.True(errors.Is(err, ErrNotParsable))
		_, err = p.Parse("2024-03-31T01:30", full)
		is.True(errors.Is(err, ErrNotParsable))

		got, err := p.Parse("02:30", full)
		is.NoErr(err)
		is.Equal(got.Format(layout+" MST"), "2024-03-31 02:30:00 BST")
	})
	t.Run("Fall back overlap", func(t *testing.T) {
		is := is.New(t)
		p := New(fixedClock(time.Date(2024, time.October, 26, 10, 0, 0, 0, loc)))

		_, err := p.Parse("tomorrow at 1:30am", full)
		is.True(errors.Is(err, ErrNotParsable))

		got, err := p.Parse("tomorrow at 2:30am", full)
		is.NoErr(err)
		is.Equal(got.Format(layout+" MST"), "2024-10-27 02:30:00 GMT")
	})
	t.Run("Partial match falls back to the date alone", func(t *testing.T) {
		is := is.New(t)
		p := New(fixedClock(time.Date(2024, time.October, 26, 10, 0, 0, 0, loc)))

		got, err := p.Parse("tomorrow at 1:30am", DefaultConfig())
		is.NoErr(err)
		is.Equal(got.Format(layout), "2024-10-27 09:00:00") // 24h later, clocks went back
	})
}

func TestParser_IsoRoundTrip(t *testing.T) {
	p := New(fixedClock(wednesday))
	for _, s := range []string{"2024-12-23", "yesterday at 9pm", "23rd of march 2020", "in 1 year and 2 months", "last sunday"} {
		t.Run(s, func(t *testing.T) {
			is := is.New(t)
			first, err := p.Parse(s, DefaultConfig())
			is.NoErr(err)
			again, err := p.Parse(first.Format("2006-01-02"), Config{FullMatch: true})
			is.NoErr(err)
			is.Equal(again.Year(), first.Year())
			is.Equal(again.Month(), first.Month())
			is.Equal(again.Day(), first.Day())
		})
	}
}

func TestParse_Defaults(t *testing.T) {
	is := is.New(t)

	got, err := Parse("2024-12-23")
	is.NoErr(err)
	is.Equal(got.Location(), time.Local)
	is.Equal(got.Year(), 2024)
	is.Equal(got.Month(), time.December)
	is.Equal(got.Day(), 23)
	is.Equal(got.Hour(), 0)

	uk, err := Parse("12/06/2024")
	is.NoErr(err)
	is.Equal(uk.Month(), time.June)

	us, err := ParseWithConfig("12/06/2024", Config{Dialect: US})
	is.NoErr(err)
	is.Equal(us.Month(), time.December)
	is.Equal(us.Day(), 6)

	_, err = ParseWithConfig("12/06/2024 is the date", Config{FullMatch: true})
	is.True(errors.Is(err, ErrNotParsable))
}

func TestParseDialect(t *testing.T) {
	is := is.New(t)

	d, err := ParseDialect("US")
	is.NoErr(err)
	is.Equal(d, US)

	d, err = ParseDialect(" uk ")
	is.NoErr(err)
	is.Equal(d, UK)

	_, err = ParseDialect("fr")
	is.True(err != nil)

	var fromText Dialect
	is.NoErr(fromText.UnmarshalText([]byte("us")))
	is.Equal(fromText, US)
	is.Equal(US.String(), "us")
}
