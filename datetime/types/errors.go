package types

import (
	"errors"
	"fmt"

	"github.com/theory/isodatetime/datetime/unit"
)

var (
	// ErrMalformed errors denote structural scan failures: a bad delimiter,
	// a non-digit where a digit is expected, or unexpected trailing input.
	ErrMalformed = errors.New("malformed datetime")

	// ErrFieldRange errors denote a field value outside its valid range.
	ErrFieldRange = errors.New("datetime field out of range")

	// ErrCast errors denote a casting gate rejection.
	ErrCast = errors.New("disallowed unit cast")

	// ErrGenericUnit errors denote a request for generic units with a value
	// other than NaT.
	ErrGenericUnit = errors.New("generic units are reserved for NaT")

	// ErrBufferTooShort errors denote a formatter output buffer too small
	// for the result.
	ErrBufferTooShort = errors.New("buffer too short")

	// ErrClock errors denote a failure of the wall clock or time zone
	// service.
	ErrClock = errors.New("clock")

	errOutOfRange = errors.New("time value out of range")
)

// MalformedInputError reports a scan failure at byte offset Pos of Input.
type MalformedInputError struct {
	Input string
	Pos   int
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%v: error parsing %q at position %d", ErrMalformed, e.Input, e.Pos)
}

// Unwrap returns ErrMalformed.
func (e *MalformedInputError) Unwrap() error { return ErrMalformed }

// FieldRangeError reports a field of Input whose Value is out of range.
type FieldRangeError struct {
	Input string
	Field string
	Value int64
}

func (e *FieldRangeError) Error() string {
	return fmt.Sprintf("%v: %v %d in %q", ErrFieldRange, e.Field, e.Value, e.Input)
}

// Unwrap returns ErrFieldRange.
func (e *FieldRangeError) Unwrap() error { return ErrFieldRange }

// CastError reports that a value of unit Detected cannot be used with unit
// Requested under casting rule Rule.
type CastError struct {
	Input     string
	Detected  unit.Unit
	Requested unit.Unit
	Rule      unit.Casting
}

func (e *CastError) Error() string {
	return fmt.Sprintf(
		"%v: cannot use %q with unit %v as unit %v using casting rule %v",
		ErrCast, e.Input, e.Detected, e.Requested, e.Rule,
	)
}

// Unwrap returns ErrCast.
func (e *CastError) Unwrap() error { return ErrCast }

// BufferTooShortError reports a formatter buffer of Capacity bytes when at
// least Required bytes are needed.
type BufferTooShortError struct {
	Capacity int
	Required int
}

func (e *BufferTooShortError) Error() string {
	return fmt.Sprintf(
		"%v: capacity %d, need at least %d",
		ErrBufferTooShort, e.Capacity, e.Required,
	)
}

// Unwrap returns ErrBufferTooShort.
func (e *BufferTooShortError) Unwrap() error { return ErrBufferTooShort }

// ClockError reports a failure of clock operation Op.
type ClockError struct {
	Op  string
	Err error
}

func (e *ClockError) Error() string {
	return fmt.Sprintf("%v: %v: %v", ErrClock, e.Op, e.Err)
}

// Unwrap returns ErrClock and the underlying error.
func (e *ClockError) Unwrap() []error { return []error{ErrClock, e.Err} }

// WrapClockError wraps err in a ClockError for op unless it already wraps
// ErrClock.
func WrapClockError(op string, err error) error {
	if errors.Is(err, ErrClock) {
		return err
	}
	return &ClockError{Op: op, Err: err}
}
