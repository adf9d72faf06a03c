// Package unit defines the time units and casting rules shared by the
// datetime parser and formatter.
//
// Units are strictly ordered from coarsest to finest, and that ordering is
// what the casting gate compares. [Generic] is reserved for NaT values.
package unit

// Use golang.org/x/tools/cmd/stringer to generate the String method for enums
// for their inline comments.

//go:generate stringer -linecomment -output unit_string.go -type Unit,Casting

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// ErrUnit wraps errors returned by the unit package.
var ErrUnit = errors.New("unit")

// Unit represents a time unit, ordered from coarsest to finest.
type Unit int

//revive:disable:exported
const (
	Unspecified Unit = iota - 1 // unspecified
	Generic                     // generic
	Year                        // Y
	Month                       // M
	Week                        // W
	Day                         // D
	Hour                        // h
	Minute                      // m
	Second                      // s
	Millisecond                 // ms
	Microsecond                 // us
	Nanosecond                  // ns
	Picosecond                  // ps
	Femtosecond                 // fs
	Attosecond                  // as
)

// Auto asks the formatter to detect the finest unit with data. It is the same
// value as Unspecified, which the parser reads as "no unit requested".
const Auto = Unspecified

// names maps every accepted unit name to its Unit. The short codes match
// String; the long names are conveniences for configuration files.
//
//nolint:gochecknoglobals
var names = map[string]Unit{
	"generic":     Generic,
	"Y":           Year,
	"year":        Year,
	"M":           Month,
	"month":       Month,
	"W":           Week,
	"week":        Week,
	"D":           Day,
	"day":         Day,
	"h":           Hour,
	"hour":        Hour,
	"m":           Minute,
	"minute":      Minute,
	"s":           Second,
	"second":      Second,
	"ms":          Millisecond,
	"millisecond": Millisecond,
	"us":          Microsecond,
	"microsecond": Microsecond,
	"ns":          Nanosecond,
	"nanosecond":  Nanosecond,
	"ps":          Picosecond,
	"picosecond":  Picosecond,
	"fs":          Femtosecond,
	"femtosecond": Femtosecond,
	"as":          Attosecond,
	"attosecond":  Attosecond,
	"auto":        Auto,
	"":            Unspecified,
}

// ParseUnit returns the Unit for name. Short codes are case-sensitive ("M"
// is month, "m" is minute); long names are not.
func ParseUnit(name string) (Unit, error) {
	if u, ok := names[name]; ok {
		return u, nil
	}
	if u, ok := names[strings.ToLower(name)]; ok && len(name) > 2 {
		return u, nil
	}
	return Unspecified, fmt.Errorf(
		"%w: unknown unit %q, expected one of %v",
		ErrUnit, name, strings.Join(Names(), ", "),
	)
}

// Names returns the sorted list of short unit codes.
func Names() []string {
	short := make(map[string]Unit, len(names))
	for name, u := range names {
		if u > Unspecified && name == u.String() {
			short[name] = u
		}
	}
	keys := maps.Keys(short)
	slices.SortFunc(keys, func(a, b string) int { return int(short[a] - short[b]) })
	return keys
}

// Valid returns true if u is a concrete unit, Generic included.
func (u Unit) Valid() bool {
	return u >= Generic && u <= Attosecond
}

// FinerThan returns true if u has more resolution than v.
func (u Unit) FinerThan(v Unit) bool {
	return u > v
}

// HasTime returns true if u carries a time of day, and therefore a time zone
// when formatted.
func (u Unit) HasTime() bool {
	return u >= Hour
}
