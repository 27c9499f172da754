// Package langtime converts English date and time expressions such as
// "yesterday at 9pm", "2024-12-23", "in 3 days" or "next friday" into a
// single instant in the local timezone.
//
//	t, err := langtime.Parse("tomorrow at half past 3")
//
// Every alternative grammar is tried in a fixed order and the first that
// matches wins. Ambiguous or nonexistent local times (DST transitions) are
// rejected rather than guessed.
package langtime

import (
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNotParsable is returned when no grammar matches the input, or when
// Config.FullMatch is set and a grammar matched only a prefix.
var ErrNotParsable = errors.New("string not parsable to a valid datetime")

// Parser holds the collaborators the grammars need: the clock and a logger.
// The zero value is not usable, use New.
type Parser struct {
	clock func() time.Time
	log   logrus.FieldLogger
}

// Option configures a Parser built by New.
type Option func(*Parser)

// WithClock replaces time.Now. The location of the returned time is used as
// the local timezone for every instant the parser builds.
func WithClock(clock func() time.Time) Option {
	return func(p *Parser) {
		p.clock = clock
	}
}

// WithLogger sets where the parser reports which grammar matched, at Debug.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// New returns a Parser reading time.Now and logging nowhere unless opts say otherwise.
func New(opts ...Option) *Parser {
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	p := &Parser{
		clock: time.Now,
		log:   silent,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse parses input with DefaultConfig.
func Parse(input string) (time.Time, error) {
	return defaultParser.Parse(input, DefaultConfig())
}

// ParseWithConfig parses input with the given dialect and match strictness.
func ParseWithConfig(input string, cfg Config) (time.Time, error) {
	return defaultParser.Parse(input, cfg)
}

// Parse trims and lowercases input, then tries each grammar in priority order.
func (p *Parser) Parse(input string, cfg Config) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(input))

	for _, g := range p.grammars(cfg) {
		rest, t, err := g.parse(s)
		if err != nil {
			continue
		}
		log := p.log.WithFields(logrus.Fields{"grammar": g.name, "rest": rest})
		if rest != "" && cfg.FullMatch {
			log.Debug("partial match rejected")
			return time.Time{}, errors.Wrapf(ErrNotParsable, "%q", input)
		}
		log.Debug("matched")
		return t, nil
	}
	p.log.WithField("input", s).Debug("no grammar matched")
	return time.Time{}, errors.Wrapf(ErrNotParsable, "%q", input)
}

// Now is the parser's clock reading that relative expressions start from.
func (p *Parser) Now() time.Time {
	return p.now()
}

// now reads the clock once, dropping sub-second precision.
func (p *Parser) now() time.Time {
	return p.clock().Truncate(time.Second)
}
