package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCasting(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test string
		rule Casting
		str  string
	}{
		{"no", No, "no"},
		{"equiv", Equiv, "equiv"},
		{"safe", Safe, "safe"},
		{"same_kind", SameKind, "same_kind"},
		{"unsafe", Unsafe, "unsafe"},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			a.Equal(tc.str, tc.rule.String())
			rule, err := ParseCasting(tc.str)
			require.NoError(t, err)
			a.Equal(tc.rule, rule)
		})
	}

	t.Run("variants", func(t *testing.T) {
		t.Parallel()
		a := assert.New(t)

		rule, err := ParseCasting("Same-Kind")
		require.NoError(t, err)
		a.Equal(SameKind, rule)
		a.Equal("Casting(9)", Casting(9).String())

		_, err = ParseCasting("lax")
		require.ErrorIs(t, err, ErrUnit)
		require.EqualError(t, err, `unit: unknown casting rule "lax", expected one of no, equiv, safe, same_kind, unsafe`)
	})
}

func TestDefaultTable(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test string
		src  Unit
		dst  Unit
		exp  map[Casting]bool
	}{
		{
			test: "same",
			src:  Day,
			dst:  Day,
			exp:  map[Casting]bool{No: true, Equiv: true, Safe: true, SameKind: true, Unsafe: true},
		},
		{
			test: "to_finer",
			src:  Day,
			dst:  Second,
			exp:  map[Casting]bool{No: false, Equiv: false, Safe: true, SameKind: true, Unsafe: true},
		},
		{
			test: "to_coarser",
			src:  Nanosecond,
			dst:  Second,
			exp:  map[Casting]bool{No: false, Equiv: false, Safe: false, SameKind: true, Unsafe: true},
		},
		{
			test: "from_generic",
			src:  Generic,
			dst:  Minute,
			exp:  map[Casting]bool{No: false, Equiv: false, Safe: true, SameKind: true, Unsafe: true},
		},
		{
			test: "to_generic",
			src:  Minute,
			dst:  Generic,
			exp:  map[Casting]bool{No: false, Equiv: false, Safe: false, SameKind: false, Unsafe: true},
		},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			for rule, exp := range tc.exp {
				a.Equal(exp, DefaultTable.CanCast(tc.src, tc.dst, rule), rule.String())
				a.Equal(exp, Allowed(nil, tc.src, tc.dst, rule), rule.String())
			}
		})
	}
}

func TestAllowed(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	calls := 0
	table := TableFunc(func(src, dst Unit, rule Casting) bool {
		calls++
		a.Equal(Second, src)
		a.Equal(Day, dst)
		a.Equal(Safe, rule)
		return true
	})

	// Unspecified never consults the table.
	a.True(Allowed(table, Second, Unspecified, No))
	a.Equal(0, calls)

	a.True(Allowed(table, Second, Day, Safe))
	a.Equal(1, calls)
}
