// Package format formats broken-down datetime values as ISO 8601-style
// strings, the inverse of package parser.
//
// Output takes the form
//
//	[-]YYYY[-MM[-DD[Thh[:mm[:ss[.fff[fff[fff[fff[fff[fff]]]]]]]](Z|±hhmm)]]]
//
// truncated at the requested unit. Values are UTC unless local output is
// requested, in which case they are shifted to the local time zone of the
// [types.Clock] found in the context, or to a fixed offset, and suffixed
// with the offset.
package format

import (
	"context"

	"github.com/theory/isodatetime/datetime/types"
	"github.com/theory/isodatetime/datetime/unit"
)

// Option specifies a format option.
type Option func(*config)

type config struct {
	local     bool
	unit      unit.Unit
	offset    int64
	hasOffset bool
	casting   unit.Casting
	table     unit.Table
}

// WithLocal requests output in local time with a ±hhmm suffix rather than
// UTC with a "Z" suffix. Values with years outside (1900, 10000), and units
// without a time of day, are always formatted as UTC unless WithOffset
// also applies.
func WithLocal() Option { return func(c *config) { c.local = true } }

// WithUnit sets the finest unit to format. The default, unit.Auto, selects
// the finest unit with a nonzero field. unit.Week formats as unit.Day, and
// unit.Generic formats as "NaT".
func WithUnit(u unit.Unit) Option { return func(c *config) { c.unit = u } }

// WithOffset requests local output at a fixed offset of minutes east of
// UTC, instead of the time zone of the context clock. Implies WithLocal.
// The offset must fit in ±hhmm, between -MaxOffset and MaxOffset; Into
// returns a [types.FieldRangeError] for "offset" otherwise.
func WithOffset(minutes int) Option {
	return func(c *config) {
		c.local = true
		c.offset = int64(minutes)
		c.hasOffset = true
	}
}

// WithCasting sets the casting rule used to compare the coarsest unit that
// holds the value without loss, as returned by Lossless, to the unit passed
// to WithUnit. Defaults to unit.SameKind.
func WithCasting(rule unit.Casting) Option { return func(c *config) { c.casting = rule } }

// WithTable sets the unit compatibility table consulted by the casting
// gate. Defaults to unit.DefaultTable.
func WithTable(table unit.Table) Option { return func(c *config) { c.table = table } }

func newConfig(opt ...Option) *config {
	c := &config{
		unit:    unit.Auto,
		casting: unit.SameKind,
		table:   unit.DefaultTable,
	}
	for _, o := range opt {
		o(c)
	}
	return c
}

// Format formats s as a string. See Into for the errors it may return.
func Format(ctx context.Context, s types.Struct, opt ...Option) (string, error) {
	cfg := newConfig(opt...)
	buf := make([]byte, RequiredLength(cfg.local, cfg.unit))
	n, err := cfg.into(ctx, buf, s)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// Into formats s into buf followed by a NUL byte and returns the number of
// bytes written, not including the NUL. Size buf with RequiredLength to
// guarantee success. If buf is too short, Into fills it with as much of the
// output as fits ahead of a NUL in its last byte and returns a
// [types.BufferTooShortError]. Other errors wrap [types.ErrCast],
// [types.ErrClock], [types.ErrFieldRange], or [unit.ErrUnit].
func Into(ctx context.Context, buf []byte, s types.Struct, opt ...Option) (int, error) {
	return newConfig(opt...).into(ctx, buf, s)
}

func (c *config) into(ctx context.Context, buf []byte, s types.Struct) (int, error) {
	if c.unit != unit.Auto && !c.unit.Valid() {
		return 0, invalidUnit(c.unit)
	}

	// NaT, and any value with generic units.
	if s.IsNaT() || c.unit == unit.Generic {
		w := newWriter(buf, natLength)
		if !w.write([]byte("NaT")) {
			return 0, w.short()
		}
		return w.finish(), nil
	}

	// Only do local time within the years the parser converts.
	local := c.local
	if local && !c.hasOffset && !s.InLocalRange() {
		local = false
	}

	u := c.unit
	switch u {
	case unit.Auto:
		u = Detect(s, local)
	case unit.Week:
		u = unit.Day
	}

	// Dates have no time zone.
	if !u.HasTime() {
		local = false
	}

	// The gate sees the UTC value.
	detected := Lossless(s)
	utc := s

	var offset int64
	if local {
		var err error
		if s, offset, err = c.toLocal(ctx, s); err != nil {
			return 0, err
		}
	}

	if !unit.Allowed(c.table, detected, c.unit, c.casting) {
		return 0, &types.CastError{
			Input:     utcText(utc, detected),
			Detected:  detected,
			Requested: c.unit,
			Rule:      c.casting,
		}
	}

	w := newWriter(buf, RequiredLength(local, u))
	if !w.emit(s, u, local, offset) {
		return 0, w.short()
	}
	return w.finish(), nil
}

// toLocal shifts s from UTC to local time and returns it with the offset
// applied, in minutes east of UTC.
func (c *config) toLocal(ctx context.Context, s types.Struct) (types.Struct, int64, error) {
	if c.hasOffset {
		if c.offset < -MaxOffset || c.offset > MaxOffset {
			return s, 0, rangeError(s, "offset", c.offset)
		}
		local, ok := types.AddMinutes(s, c.offset)
		if !ok {
			return s, 0, rangeError(s, "year", s.Year)
		}
		return local, c.offset, nil
	}

	// Convert at minute granularity and keep the seconds of the input.
	secs := types.Minutes(s) * 60
	lt, err := types.ClockFromContext(ctx).Local(secs)
	if err != nil {
		return s, 0, types.WrapClockError("local", err)
	}

	local := s
	local.Year, local.Month, local.Day = lt.Year, lt.Month, lt.Day
	local.Hour, local.Min = lt.Hour, lt.Min
	return local, types.Minutes(local) - types.Minutes(s), nil
}

// Detect returns the display unit for unit.Auto: the finest unit with a
// nonzero field in s. Hours and minutes are not split up, so a nonzero hour
// detects unit.Minute, as does local. A value with no time of day detects
// unit.Day.
func Detect(s types.Struct, local bool) unit.Unit {
	switch {
	case s.As%1000 != 0:
		return unit.Attosecond
	case s.As != 0:
		return unit.Femtosecond
	case s.Ps%1000 != 0:
		return unit.Picosecond
	case s.Ps != 0:
		return unit.Nanosecond
	case s.Us%1000 != 0:
		return unit.Microsecond
	case s.Us != 0:
		return unit.Millisecond
	case s.Sec != 0:
		return unit.Second
	case local || s.Min != 0 || s.Hour != 0:
		return unit.Minute
	default:
		return unit.Day
	}
}

// Lossless returns the coarsest unit that represents s without losing a
// nonzero field. Unlike Detect it continues past unit.Minute, so that
// 2016-01-01T12:00 detects unit.Hour and 2016-01-01 detects unit.Year.
func Lossless(s types.Struct) unit.Unit {
	switch u := Detect(s, false); {
	case u != unit.Minute && u != unit.Day:
		return u
	case s.Min != 0:
		return unit.Minute
	case s.Hour != 0:
		return unit.Hour
	case s.Day != 1:
		return unit.Day
	case s.Month != 1:
		return unit.Month
	default:
		return unit.Year
	}
}

// rangeError reports a field that prevents formatting UTC value s.
func rangeError(s types.Struct, field string, val int64) error {
	return &types.FieldRangeError{Input: utcText(s, Lossless(s)), Field: field, Value: val}
}

// utcText formats s in UTC at unit u for error messages.
func utcText(s types.Struct, u unit.Unit) string {
	buf := make([]byte, MaxLength)
	w := newWriter(buf, MaxLength)
	w.emit(s, u, false, 0)
	return string(buf[:w.n])
}
