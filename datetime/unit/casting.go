package unit

import (
	"fmt"
	"strings"
)

// Casting represents a rule controlling which unit conversions may happen
// implicitly.
type Casting int

//revive:disable:exported
const (
	No       Casting = iota // no
	Equiv                   // equiv
	Safe                    // safe
	SameKind                // same_kind
	Unsafe                  // unsafe
)

// ParseCasting returns the Casting rule for name, ignoring case. A hyphen
// may stand in for the underscore in "same_kind".
func ParseCasting(name string) (Casting, error) {
	norm := strings.ReplaceAll(strings.ToLower(name), "-", "_")
	for c := No; c <= Unsafe; c++ {
		if c.String() == norm {
			return c, nil
		}
	}
	return No, fmt.Errorf(
		"%w: unknown casting rule %q, expected one of no, equiv, safe, same_kind, unsafe",
		ErrUnit, name,
	)
}

// Table reports whether a value detected with unit src may be converted to
// unit dst under rule.
type Table interface {
	CanCast(src, dst Unit, rule Casting) bool
}

// TableFunc adapts an ordinary function to the Table interface.
type TableFunc func(src, dst Unit, rule Casting) bool

// CanCast calls f(src, dst, rule).
func (f TableFunc) CanCast(src, dst Unit, rule Casting) bool {
	return f(src, dst, rule)
}

// DefaultTable is the standard datetime unit compatibility table:
//
//   - Unsafe allows everything.
//   - SameKind allows any pair of concrete units. When exactly one side is
//     Generic, only a Generic source is allowed.
//   - Safe allows only conversions to an equal or finer unit, and from
//     Generic.
//   - No and Equiv require the units to be equal.
//
//nolint:gochecknoglobals
var DefaultTable Table = TableFunc(canCastDatetime)

func canCastDatetime(src, dst Unit, rule Casting) bool {
	switch rule {
	case Unsafe:
		return true
	case SameKind:
		if src == Generic || dst == Generic {
			return src == Generic
		}
		return true
	case Safe:
		if src == Generic || dst == Generic {
			return src == Generic
		}
		return src <= dst
	default:
		return src == dst
	}
}

// Allowed is the casting gate. It returns true if requested is Unspecified;
// otherwise it consults table, or DefaultTable when table is nil.
func Allowed(table Table, detected, requested Unit, rule Casting) bool {
	if requested == Unspecified {
		return true
	}
	if table == nil {
		table = DefaultTable
	}
	return table.CanCast(detected, requested, rule)
}
