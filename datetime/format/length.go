package format

import (
	"fmt"

	"github.com/theory/isodatetime/datetime/unit"
)

const (
	// MaxLength is the buffer length that fits any formatted value,
	// terminator included: the widest year, attosecond precision, and an
	// offset.
	MaxLength = 62

	// natLength is the length of "NaT" plus the terminator.
	natLength = 4

	// MaxOffset is the widest fixed offset, in minutes, that fits in ±hhmm.
	MaxOffset = 99*60 + 59
)

// width returns the number of bytes u adds to the output of the next
// coarser unit.
func width(u unit.Unit) int {
	switch u {
	case unit.Year:
		return 21 // sign and 20 digits
	case unit.Week:
		return 0
	case unit.Millisecond:
		return 4 // ".###"
	default:
		return 3 // "-##", "T##", ":##", or "###"
	}
}

// RequiredLength returns the buffer length Into requires to format any value
// with unit u, including the terminator. Local determines whether the zone
// suffix is "Z" or "±hhmm". For unit.Auto it returns MaxLength.
func RequiredLength(local bool, u unit.Unit) int {
	switch u {
	case unit.Auto:
		return MaxLength
	case unit.Generic:
		return natLength
	case unit.Week:
		u = unit.Day
	}
	if !u.Valid() {
		return MaxLength
	}

	n := 0
	for v := unit.Year; v <= u; v++ {
		n += width(v)
	}

	if u.HasTime() {
		if local {
			n += 5
		} else {
			n++
		}
	}

	return n + 1
}

func invalidUnit(u unit.Unit) error {
	return fmt.Errorf("%w: invalid unit %d", unit.ErrUnit, int(u))
}
