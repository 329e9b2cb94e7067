// File: scheduling/errors.go
package scheduling

import "errors"

var (
	// ErrInvalidTimezone is returned when a timezone name is not a
	// recognized IANA identifier. The engine never falls back to UTC.
	ErrInvalidTimezone = errors.New("unrecognized IANA timezone")

	// ErrAmbiguousLocalTime is returned when a wall-clock value does not
	// map to exactly one instant: it either falls inside a DST
	// spring-forward gap or occurs twice during a fall-back overlap.
	ErrAmbiguousLocalTime = errors.New("local time is ambiguous or does not exist")

	// ErrNoAvailability is returned when no availability rule covers the
	// requested weekday. Business-level condition, not a system failure.
	ErrNoAvailability = errors.New("no availability rule for requested day")

	// ErrInvalidWindow is returned when a rule resolves to a window whose
	// close instant is not strictly after its open instant.
	ErrInvalidWindow = errors.New("availability window closes before it opens")
)
