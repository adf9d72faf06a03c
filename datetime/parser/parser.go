// Package parser parses ISO 8601-style datetime strings into broken-down
// datetime values.
//
// The accepted syntax is
//
//	[-]YYYY[-MM[-DD[(T| )hh[:mm[:ss[.ffffff[ffffff[ffffff]]]]][ ](Z|±hh[[:]mm])]]]
//
// with these deviations from strict ISO 8601:
//
//   - The '-' separators are not optional: "20100312" is the year 20100312,
//     not March 12, 2010.
//   - A leading '-' is the sign of the year.
//   - Either 'T' or a space separates the date from the time.
//   - Only seconds may have a fractional part, with up to 18 digits
//     (attosecond precision).
//   - A single space may precede the time zone.
//   - Week dates ("YYYY-Www"), ordinal dates ("YYYY-DDD"), leap seconds,
//     and 24:00:00 are rejected.
//   - The special values "" and "NaT" (not-a-time), "today" (the current
//     local date), and "now" (the current UTC time) are recognized without
//     regard to case.
//
// A time of day without a time zone is local time, and is converted to UTC
// using the [types.Clock] found in the context for years between 1900 and
// 10000, exclusive.
package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/theory/isodatetime/datetime/types"
	"github.com/theory/isodatetime/datetime/unit"
)

// Result is the outcome of a successful Parse.
type Result struct {
	// Value is the parsed datetime, in UTC.
	Value types.Struct

	// Local is true if the input was a time of day without a time zone, and
	// therefore local time. The special values, "Z", and explicit offsets
	// are not local, because none of them depend on the local time zone.
	Local bool

	// Unit is the finest unit present in the input: Generic for NaT, Day
	// for "today", Second for "now".
	Unit unit.Unit

	// Special is true for "", "NaT", "today", and "now".
	Special bool
}

// Option specifies a parse option.
type Option func(*config)

type config struct {
	unit    unit.Unit
	casting unit.Casting
	table   unit.Table
}

// WithUnit requests the unit the result will be used with. Parse fails if
// the casting rule does not allow the unit detected in the input to be cast
// to u. The default, unit.Unspecified, accepts any unit.
func WithUnit(u unit.Unit) Option { return func(c *config) { c.unit = u } }

// WithCasting sets the casting rule used to compare the detected unit to the
// unit passed to WithUnit. Defaults to unit.SameKind.
func WithCasting(rule unit.Casting) Option { return func(c *config) { c.casting = rule } }

// WithTable sets the unit compatibility table consulted by the casting
// gate. Defaults to unit.DefaultTable.
func WithTable(table unit.Table) Option { return func(c *config) { c.table = table } }

func newConfig(opt ...Option) *config {
	c := &config{
		unit:    unit.Unspecified,
		casting: unit.SameKind,
		table:   unit.DefaultTable,
	}
	for _, o := range opt {
		o(c)
	}
	return c
}

// Parse parses text into a Result. Errors wrap one of
// [types.ErrMalformed], [types.ErrFieldRange], [types.ErrCast],
// [types.ErrGenericUnit], or [types.ErrClock].
func Parse(ctx context.Context, text string, opt ...Option) (*Result, error) {
	cfg := newConfig(opt...)

	switch {
	case text == "" || strings.EqualFold(text, "nat"):
		// NaT parses with any requested unit.
		return &Result{Value: types.NaT(), Unit: unit.Generic, Special: true}, nil
	case cfg.unit == unit.Generic:
		return nil, fmt.Errorf("%w: cannot parse %q", types.ErrGenericUnit, text)
	case strings.EqualFold(text, "today"):
		return cfg.today(ctx, text)
	case strings.EqualFold(text, "now"):
		return cfg.now(ctx, text)
	}

	res, err := newScanner(text).scan(ctx)
	if err != nil {
		return nil, err
	}
	if err := cfg.gate(text, res.Unit); err != nil {
		return nil, err
	}
	return res, nil
}

// gate applies the casting gate to the detected unit.
func (c *config) gate(text string, detected unit.Unit) error {
	if unit.Allowed(c.table, detected, c.unit, c.casting) {
		return nil
	}
	return &types.CastError{
		Input:     text,
		Detected:  detected,
		Requested: c.unit,
		Rule:      c.casting,
	}
}

// today resolves to midnight of the current local date, expressed as a UTC
// date, so that truncation to days produces the date expected rather than an
// adjacent one depending on the time of day and time zone.
func (c *config) today(ctx context.Context, text string) (*Result, error) {
	// Only works for units of days or coarser.
	if c.unit != unit.Unspecified && c.unit.FinerThan(unit.Day) {
		return nil, &types.CastError{
			Input:     text,
			Detected:  unit.Day,
			Requested: c.unit,
			Rule:      c.casting,
		}
	}

	clock := types.ClockFromContext(ctx)
	secs, err := clock.Now()
	if err != nil {
		return nil, types.WrapClockError("now", err)
	}
	local, err := clock.Local(secs)
	if err != nil {
		return nil, types.WrapClockError("local", err)
	}

	dts := types.New(local.Year)
	dts.Month, dts.Day = local.Month, local.Day
	if err := c.gate(text, unit.Day); err != nil {
		return nil, err
	}
	return &Result{Value: dts, Unit: unit.Day, Special: true}, nil
}

// now resolves to the current UTC time with second precision.
func (c *config) now(ctx context.Context, text string) (*Result, error) {
	secs, err := types.ClockFromContext(ctx).Now()
	if err != nil {
		return nil, types.WrapClockError("now", err)
	}
	if err := c.gate(text, unit.Second); err != nil {
		return nil, err
	}
	return &Result{
		Value:   types.FromEpochSeconds(secs),
		Unit:    unit.Second,
		Special: true,
	}, nil
}
