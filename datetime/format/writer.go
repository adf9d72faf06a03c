package format

import (
	"strconv"

	"github.com/theory/isodatetime/datetime/types"
	"github.com/theory/isodatetime/datetime/unit"
	"golang.org/x/exp/constraints"
)

// writer appends to a fixed buffer, always leaving room for a NUL
// terminator.
type writer struct {
	buf      []byte
	n        int
	required int // RequiredLength for the value being written
}

func newWriter(buf []byte, required int) *writer {
	return &writer{buf: buf, required: required}
}

// write appends p if it fits ahead of the terminator. Otherwise it appends
// as much of p as fits and returns false.
func (w *writer) write(p []byte) bool {
	if w.n+len(p) >= len(w.buf) {
		if w.n < len(w.buf) {
			w.n += copy(w.buf[w.n:len(w.buf)-1], p)
		}
		return false
	}
	w.n += copy(w.buf[w.n:], p)
	return true
}

// finish writes the terminator and returns the text length.
func (w *writer) finish() int {
	w.buf[w.n] = 0
	return w.n
}

// short terminates the truncated output and returns a BufferTooShortError.
func (w *writer) short() error {
	if w.n < len(w.buf) {
		w.buf[w.n] = 0
	}
	return &types.BufferTooShortError{Capacity: len(w.buf), Required: w.required}
}

// digits writes v as exactly width decimal digits, preceded by sep unless
// sep is 0. v must be non-negative.
func digits[T constraints.Integer](w *writer, sep byte, v T, width int) bool {
	var tmp [8]byte
	b := tmp[:0]
	if sep != 0 {
		b = append(b, sep)
	}
	start := len(b)
	b = b[:start+width]
	for i := len(b) - 1; i >= start; i-- {
		b[i] = byte('0' + v%10)
		v /= 10
	}
	return w.write(b)
}

// year writes y zero-padded to four characters, sign included.
func (w *writer) year(y int64) bool {
	var tmp, num [24]byte
	b := tmp[:0]
	mag := uint64(y)
	if y < 0 {
		b = append(b, '-')
		mag = uint64(-y)
	}
	d := strconv.AppendUint(num[:0], mag, 10)
	for i := len(b) + len(d); i < 4; i++ {
		b = append(b, '0')
	}
	return w.write(append(b, d...))
}

// field is one fixed-width group of the output following the year.
type field struct {
	unit  unit.Unit
	sep   byte
	width int
	value func(*types.Struct) int32
}

//nolint:gochecknoglobals
var fields = [...]field{
	{unit.Month, '-', 2, func(s *types.Struct) int32 { return s.Month }},
	{unit.Day, '-', 2, func(s *types.Struct) int32 { return s.Day }},
	{unit.Hour, 'T', 2, func(s *types.Struct) int32 { return s.Hour }},
	{unit.Minute, ':', 2, func(s *types.Struct) int32 { return s.Min }},
	{unit.Second, ':', 2, func(s *types.Struct) int32 { return s.Sec }},
	{unit.Millisecond, '.', 3, func(s *types.Struct) int32 { return s.Us / 1000 }},
	{unit.Microsecond, 0, 3, func(s *types.Struct) int32 { return s.Us % 1000 }},
	{unit.Nanosecond, 0, 3, func(s *types.Struct) int32 { return s.Ps / 1000 }},
	{unit.Picosecond, 0, 3, func(s *types.Struct) int32 { return s.Ps % 1000 }},
	{unit.Femtosecond, 0, 3, func(s *types.Struct) int32 { return s.As / 1000 }},
	{unit.Attosecond, 0, 3, func(s *types.Struct) int32 { return s.As % 1000 }},
}

// emit writes s down to unit u, which must not be Week, Generic, or Auto,
// followed by the zone suffix for units with a time of day.
func (w *writer) emit(s types.Struct, u unit.Unit, local bool, offset int64) bool {
	if !w.year(s.Year) {
		return false
	}
	for _, f := range fields {
		if f.unit.FinerThan(u) {
			break
		}
		if !digits(w, f.sep, f.value(&s), f.width) {
			return false
		}
	}
	if !u.HasTime() {
		return true
	}
	if !local {
		return w.write([]byte{'Z'})
	}

	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return digits(w, sign, offset/60*100+offset%60, 4)
}
