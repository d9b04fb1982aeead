package roundservice

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ErrBadTeeTime covers tee-time input the parser cannot accept: empty, unrecognized,
// or already in the past.
var ErrBadTeeTime = errors.New("unusable tee time")

// TripTimezone is where the trip plays. Champions Pointe sits just across the river
// from Louisville, on Eastern time.
const TripTimezone = "America/Kentucky/Louisville"

// compactClock turns "932am" into "9:32 am" so the parser recognizes it.
var compactClock = regexp.MustCompile(`(\d{1,2})(\d{2})\s*(am|pm)`)

// TeeTimeParser turns natural-language tee times ("friday 8am", "tomorrow at 7:30")
// into concrete timestamps in the trip's timezone.
type TeeTimeParser struct {
	parser *when.Parser
	loc    *time.Location
}

// NewTeeTimeParser creates a parser for the trip timezone.
func NewTeeTimeParser() (*TeeTimeParser, error) {
	loc, err := time.LoadLocation(TripTimezone)
	if err != nil {
		return nil, fmt.Errorf("load trip timezone: %w", err)
	}
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &TeeTimeParser{parser: w, loc: loc}, nil
}

// Parse resolves the input relative to now and returns the tee time in UTC. Tee times
// in the past are rejected; nobody schedules a round that already happened.
func (p *TeeTimeParser) Parse(input string, now time.Time) (time.Time, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrBadTeeTime)
	}
	normalized = compactClock.ReplaceAllString(normalized, "$1:$2 $3")

	result, err := p.parser.Parse(normalized, now.In(p.loc))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse tee time %q: %w", input, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("%w: could not recognize %q", ErrBadTeeTime, input)
	}

	teeTime := result.Time.In(p.loc).Truncate(time.Minute)
	if teeTime.Before(now.In(p.loc).Truncate(time.Minute)) {
		return time.Time{}, fmt.Errorf("%w: %q is in the past", ErrBadTeeTime, input)
	}
	return teeTime.UTC(), nil
}
