// Package datetime converts between broken-down datetime values with up to
// attosecond precision and ISO 8601-style strings. It parses strings such as
// "2016-01-01T12:30:45.123456789012Z" into a [types.Struct] and the finest
// [unit.Unit] present in the input, and formats values back into strings.
// Both directions consult a unit casting gate to reject values whose
// precision is incompatible with a requested unit.
//
// Local times, whether parsed from strings without a time zone or
// requested for output, are converted using the [types.Clock] in the
// context passed to Parse and Format, which defaults to the time zone set
// by [types.ContextWithTZ] or else [time.Local].
package datetime

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/theory/isodatetime/datetime/format"
	"github.com/theory/isodatetime/datetime/parser"
	"github.com/theory/isodatetime/datetime/types"
	"github.com/theory/isodatetime/datetime/unit"
)

var (
	// ErrDatetime wraps parsing and formatting errors.
	ErrDatetime = errors.New("datetime")

	// ErrScan wraps scanning errors.
	ErrScan = errors.New("scan")
)

// Parse parses text and returns the result. Returns an error wrapping
// ErrDatetime on failure.
func Parse(ctx context.Context, text string, opt ...parser.Option) (*parser.Result, error) {
	res, err := parser.Parse(ctx, text, opt...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatetime, err)
	}
	return res, nil
}

// MustParse is like Parse but panics on parse failure.
func MustParse(ctx context.Context, text string, opt ...parser.Option) *parser.Result {
	res, err := parser.Parse(ctx, text, opt...)
	if err != nil {
		panic(err)
	}
	return res
}

// Format formats s. Returns an error wrapping ErrDatetime on failure.
func Format(ctx context.Context, s types.Struct, opt ...format.Option) (string, error) {
	str, err := format.Format(ctx, s, opt...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDatetime, err)
	}
	return str, nil
}

// RequiredLength returns the length of the buffer [format.Into] requires to
// format a value with unit u, in local time or not.
func RequiredLength(local bool, u unit.Unit) int {
	return format.RequiredLength(local, u)
}

// Value is a UTC datetime and its unit. It marshals to and from the ISO
// 8601-style strings parsed by Parse, with no time zone conversion
// beyond that required by the text itself. The zero Value is not valid; use
// NaT for a missing value.
type Value struct {
	types.Struct
	Unit unit.Unit
}

// NaT returns the not-a-time Value.
func NaT() Value {
	return Value{Struct: types.NaT(), Unit: unit.Generic}
}

// NewValue returns the Value of a parse result.
func NewValue(res *parser.Result) Value {
	return Value{Struct: res.Value, Unit: res.Unit}
}

// ParseValue parses text into a Value.
func ParseValue(ctx context.Context, text string, opt ...parser.Option) (Value, error) {
	res, err := Parse(ctx, text, opt...)
	if err != nil {
		return Value{}, err
	}
	return NewValue(res), nil
}

// String returns the UTC string representation of v at its unit.
func (v Value) String() string {
	str, err := format.Format(context.Background(), v.Struct, format.WithUnit(v.Unit))
	if err != nil {
		return err.Error()
	}
	return str
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	str, err := Format(context.Background(), v.Struct, format.WithUnit(v.Unit))
	if err != nil {
		return nil, err
	}
	return []byte(str), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Local times are
// converted to UTC using time.Local.
func (v *Value) UnmarshalText(data []byte) error {
	val, err := ParseValue(context.Background(), string(data))
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// MarshalJSON implements the json.Marshaler interface. The value is a quoted
// string as returned by MarshalText.
func (v Value) MarshalJSON() ([]byte, error) {
	text, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, len(text)+len(`""`))
	b = append(b, '"')
	b = append(b, text...)
	return append(b, '"'), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The value must
// be a JSON string or null, which decodes as NaT.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = NaT()
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w: cannot unmarshal %s into Value", ErrScan, data)
	}
	return v.UnmarshalText([]byte(str))
}

// Scan implements sql.Scanner so that Values can be read from databases
// transparently. Database types that map to string and []byte are
// supported; nil scans as NaT.
func (v *Value) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		*v = NaT()
		return nil
	case string:
		val, err := parser.Parse(context.Background(), src)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScan, err)
		}
		*v = NewValue(val)
		return nil
	case []byte:
		return v.Scan(string(src))
	default:
		return fmt.Errorf("%w: unable to scan type %T into Value", ErrScan, src)
	}
}

// Value implements driver.Valuer so that Values can be written to databases
// transparently. Values map to strings, and NaT to NULL.
func (v Value) Value() (driver.Value, error) {
	if v.IsNaT() {
		return nil, nil //nolint:nilnil
	}
	text, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}
