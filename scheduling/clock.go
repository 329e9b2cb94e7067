// File: scheduling/clock.go
package scheduling

import (
	"fmt"
	"time"
)

// LocalDateTime is a wall-clock date and time with no attached zone. It is
// meaningful only together with an IANA timezone name at the point of
// conversion; keeping it a separate type from time.Time prevents local and
// absolute values from being mixed up silently.
type LocalDateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

func (l LocalDateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		l.Year, int(l.Month), l.Day, l.Hour, l.Minute, l.Second)
}

// LookupTimezone resolves an IANA zone name against the tzdb. The empty
// name and "Local" are rejected before LoadLocation sees them:
// LoadLocation maps those to UTC and the host zone respectively, which
// would coerce an invalid input instead of failing it.
func LookupTimezone(tz string) (*time.Location, error) {
	if tz == "" || tz == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}
	return loc, nil
}

// ToLocal converts an absolute instant to the wall clock observed in tz at
// that instant, including any daylight-saving offset in effect.
func ToLocal(instant time.Time, tz string) (LocalDateTime, error) {
	loc, err := LookupTimezone(tz)
	if err != nil {
		return LocalDateTime{}, err
	}
	lt := instant.In(loc)
	return LocalDateTime{
		Year:   lt.Year(),
		Month:  lt.Month(),
		Day:    lt.Day(),
		Hour:   lt.Hour(),
		Minute: lt.Minute(),
		Second: lt.Second(),
	}, nil
}

// ToInstant converts a wall-clock value, interpreted in tz, to an absolute
// instant. Wall clocks that fall inside a DST gap or overlap are rejected
// with ErrAmbiguousLocalTime rather than resolved by guessing.
func ToInstant(local LocalDateTime, tz string) (time.Time, error) {
	loc, err := LookupTimezone(tz)
	if err != nil {
		return time.Time{}, err
	}

	t := time.Date(local.Year, local.Month, local.Day,
		local.Hour, local.Minute, local.Second, 0, loc)

	// A wall clock inside a spring-forward gap does not survive the round
	// trip: time.Date shifts it onto a neighbouring valid time.
	if !sameWall(t, local) {
		return time.Time{}, fmt.Errorf("%w: %s does not exist in %s", ErrAmbiguousLocalTime, local, tz)
	}

	// During a fall-back overlap the same wall clock maps onto two
	// instants. Probe the transition sizes the tzdb actually uses (30m,
	// 1h, and the 2h shift of zones like Antarctica/Troll) for a second
	// instant showing the same local fields.
	for _, d := range []time.Duration{
		-2 * time.Hour, -time.Hour, -30 * time.Minute,
		30 * time.Minute, time.Hour, 2 * time.Hour,
	} {
		alt := t.Add(d)
		if !alt.Equal(t) && sameWall(alt, local) {
			return time.Time{}, fmt.Errorf("%w: %s occurs twice in %s", ErrAmbiguousLocalTime, local, tz)
		}
	}

	return t, nil
}

// sameWall reports whether t's local fields match the given wall clock.
func sameWall(t time.Time, local LocalDateTime) bool {
	return t.Year() == local.Year &&
		t.Month() == local.Month &&
		t.Day() == local.Day &&
		t.Hour() == local.Hour &&
		t.Minute() == local.Minute &&
		t.Second() == local.Second
}
