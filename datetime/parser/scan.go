package parser

import (
	"context"
	"math"

	"github.com/theory/isodatetime/datetime/types"
	"github.com/theory/isodatetime/datetime/unit"
)

// scanner walks the bytes of a datetime string from left to right. Each
// stage either finishes because the input is exhausted, consumes a
// delimiter and moves on to the next finer field, or fails.
type scanner struct {
	input string
	pos   int // offset of the next byte in input
	end   int // offset just past the last non-space byte
	dts   types.Struct
}

func newScanner(input string) *scanner {
	end := len(input)
	for end > 0 && isSpace(input[end-1]) {
		end--
	}
	return &scanner{input: input, end: end, dts: types.New(0)}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// done returns true when no input remains.
func (s *scanner) done() bool { return s.pos >= s.end }

// accept consumes c if it is the next byte.
func (s *scanner) accept(c byte) bool {
	if !s.done() && s.input[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

// digitNext returns true if the next byte is a digit.
func (s *scanner) digitNext() bool {
	return !s.done() && isDigit(s.input[s.pos])
}

// twoDigits consumes exactly two digits.
func (s *scanner) twoDigits() (int32, bool) {
	if s.end-s.pos < 2 || !isDigit(s.input[s.pos]) || !isDigit(s.input[s.pos+1]) {
		return 0, false
	}
	val := int32(s.input[s.pos]-'0')*10 + int32(s.input[s.pos+1]-'0')
	s.pos += 2
	return val, true
}

func (s *scanner) malformed() error {
	return &types.MalformedInputError{Input: s.input, Pos: s.pos}
}

func (s *scanner) outOfRange(field string, val int64) error {
	return &types.FieldRangeError{Input: s.input, Field: field, Value: val}
}

// field consumes a two-digit field and checks that it falls within
// [low, high].
func (s *scanner) field(name string, low, high int32) (int32, error) {
	val, ok := s.twoDigits()
	if !ok {
		return 0, s.malformed()
	}
	if val < low || val > high {
		return 0, s.outOfRange(name, int64(val))
	}
	return val, nil
}

// finish returns the Result for a scan that ended at unit u.
func (s *scanner) finish(u unit.Unit, local bool) (*Result, error) {
	return &Result{Value: s.dts, Local: local, Unit: u}, nil
}

// scan scans the input.
//
//nolint:funlen,gocognit,gocyclo // Linear state machine reads best in one place.
func (s *scanner) scan(ctx context.Context) (*Result, error) {
	// Skip leading whitespace.
	for !s.done() && isSpace(s.input[s.pos]) {
		s.pos++
	}

	// Leading '-' sign for negative year.
	neg := s.accept('-')
	if !s.digitNext() {
		return nil, s.malformed()
	}

	// YEAR: digits until the '-' or the end.
	var year int64
	for s.digitNext() {
		d := int64(s.input[s.pos] - '0')
		if year > (math.MaxInt64-d)/10 {
			return nil, s.malformed()
		}
		year = year*10 + d
		s.pos++
	}
	if neg {
		year = -year
	}
	s.dts.Year = year

	if s.done() {
		return s.finish(unit.Year, false)
	}
	if !s.accept('-') || s.done() {
		return nil, s.malformed()
	}

	// MONTH
	var err error
	if s.dts.Month, err = s.field("month", 1, 12); err != nil {
		return nil, err
	}
	if s.done() {
		return s.finish(unit.Month, false)
	}
	if !s.accept('-') || s.done() {
		return nil, s.malformed()
	}

	// DAY
	if s.dts.Day, err = s.field("day", 1, types.DaysInMonth(year, s.dts.Month)); err != nil {
		return nil, err
	}
	if s.done() {
		return s.finish(unit.Day, false)
	}

	// Date and time separated by 'T' or ' '.
	if !s.accept('T') && !s.accept(' ') {
		return nil, s.malformed()
	}

	// HOUR
	if s.dts.Hour, err = s.field("hour", 0, 23); err != nil {
		return nil, err
	}
	if !s.accept(':') {
		return s.timezone(ctx, unit.Hour)
	}
	if s.done() {
		return nil, s.malformed()
	}

	// MINUTE
	if s.dts.Min, err = s.field("minute", 0, 59); err != nil {
		return nil, err
	}
	if !s.accept(':') {
		return s.timezone(ctx, unit.Minute)
	}
	if s.done() {
		return nil, s.malformed()
	}

	// SECOND
	if s.dts.Sec, err = s.field("second", 0, 59); err != nil {
		return nil, err
	}
	if !s.accept('.') {
		return s.timezone(ctx, unit.Second)
	}

	// FRACTION: up to three groups of six digits.
	for i, tier := range fractionTiers {
		digits := s.fraction(tier.field(&s.dts))
		if i == len(fractionTiers)-1 || !s.digitNext() {
			return s.timezone(ctx, tier.unit(digits))
		}
	}

	// Unreachable: the last tier always returns.
	return nil, s.malformed()
}

// fractionTier describes one six-digit group of fractional seconds. A group
// with one to three digits present resolves to the coarse unit; four to six
// digits resolve to the fine unit.
type fractionTier struct {
	field  func(*types.Struct) *int32
	coarse unit.Unit
	fine   unit.Unit
}

// unit returns the unit implied by the number of digits present in the
// group.
func (t fractionTier) unit(digits int) unit.Unit {
	if digits > 3 {
		return t.fine
	}
	return t.coarse
}

//nolint:gochecknoglobals
var fractionTiers = [...]fractionTier{
	{func(s *types.Struct) *int32 { return &s.Us }, unit.Millisecond, unit.Microsecond},
	{func(s *types.Struct) *int32 { return &s.Ps }, unit.Nanosecond, unit.Picosecond},
	{func(s *types.Struct) *int32 { return &s.As }, unit.Femtosecond, unit.Attosecond},
}

// fraction reads up to six digits into dst, treating missing trailing digits
// as zeros, and returns the number of digits actually present.
func (s *scanner) fraction(dst *int32) int {
	var val int32
	digits := 0
	for range 6 {
		val *= 10
		if s.digitNext() {
			val += int32(s.input[s.pos] - '0')
			s.pos++
			digits++
		}
	}
	*dst = val
	return digits
}

// timezone parses the optional time zone that may follow a time of day,
// then checks for trailing input.
func (s *scanner) timezone(ctx context.Context, best unit.Unit) (*Result, error) {
	if s.done() {
		// No "Z" or offset: ISO 8601 says this is local time. Only convert
		// for recent and future years.
		if s.dts.InLocalRange() {
			if err := s.localToUTC(ctx); err != nil {
				return nil, err
			}
		}
		return s.finish(best, true)
	}

	// A single space may precede the zone.
	s.accept(' ')

	switch {
	case s.accept('Z'):
	case !s.done() && (s.input[s.pos] == '+' || s.input[s.pos] == '-'):
		if err := s.offset(); err != nil {
			return nil, err
		}
	default:
		return nil, s.malformed()
	}

	if !s.done() {
		return nil, s.malformed()
	}
	return s.finish(best, false)
}

// offset parses a ±hh[[:]mm] offset and subtracts it from the value.
func (s *scanner) offset() error {
	sign := int64(1)
	if s.input[s.pos] == '-' {
		sign = -1
	}
	s.pos++

	hour, err := s.field("offset hour", 0, 23)
	if err != nil {
		return err
	}

	// The minutes are optional.
	var minute int32
	if !s.done() {
		s.accept(':')
		if minute, err = s.field("offset minute", 0, 59); err != nil {
			return err
		}
	}

	utc, ok := types.AddMinutes(s.dts, -sign*(int64(hour)*60+int64(minute)))
	if !ok {
		return s.outOfRange("year", s.dts.Year)
	}
	s.dts = utc
	return nil
}

// localToUTC converts s.dts from local wall time to UTC through the clock in
// ctx. Fields below the second are kept.
func (s *scanner) localToUTC(ctx context.Context) error {
	secs, err := types.ClockFromContext(ctx).FromLocal(s.dts)
	if err != nil {
		return types.WrapClockError("from local", err)
	}
	utc := types.FromEpochSeconds(secs)
	utc.Us, utc.Ps, utc.As = s.dts.Us, s.dts.Ps, s.dts.As
	s.dts = utc
	return nil
}
