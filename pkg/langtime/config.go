package langtime

import (
	"strings"

	"github.com/pkg/errors"
)

// Dialect selects how numeric and spelled dates are ordered.
type Dialect int

const (
	// UK reads dates day first: 12/06/2024 is 12 June.
	UK Dialect = iota
	// US reads dates month first: 12/06/2024 is 6 December.
	US
)

func (d Dialect) String() string {
	switch d {
	case US:
		return "us"
	default:
		return "uk"
	}
}

// ParseDialect accepts "uk" or "us" in any case.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uk", "gb", "en-gb":
		return UK, nil
	case "us", "en-us":
		return US, nil
	}
	return UK, errors.Errorf("unknown dialect %q, expected \"uk\" or \"us\"", s)
}

func (d *Dialect) UnmarshalText(text []byte) error {
	v, err := ParseDialect(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Dialect) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config changes how an expression is matched.
type Config struct {
	Dialect Dialect
	// FullMatch rejects input with trailing text the grammar did not consume.
	FullMatch bool
}

// DefaultConfig is the UK dialect with partial matching.
func DefaultConfig() Config {
	return Config{Dialect: UK, FullMatch: false}
}
