package types

import (
	"context"
	"time"
)

// Clock provides the wall clock and local time zone services used to resolve
// "now" and "today" and to convert between local time and UTC.
type Clock interface {
	// Now returns the current time as seconds since the Unix epoch.
	Now() (int64, error)

	// Local converts seconds since the Unix epoch to a Struct in the local
	// time zone, with second precision.
	Local(secs int64) (Struct, error)

	// FromLocal converts a Struct in the local time zone to seconds since
	// the Unix epoch. Fields below the second are ignored.
	FromLocal(s Struct) (int64, error)
}

// SystemClock is a Clock backed by the time package. Its zero value uses
// time.Local.
type SystemClock struct {
	// Location is the local time zone. Nil means time.Local.
	Location *time.Location

	// NowFunc returns the current time. Nil means time.Now.
	NowFunc func() time.Time
}

func (c SystemClock) location() *time.Location {
	if c.Location == nil {
		//nolint:gosmopolitan // The host zone is the point.
		return time.Local
	}
	return c.Location
}

// Now returns the current time as seconds since the Unix epoch.
func (c SystemClock) Now() (int64, error) {
	if c.NowFunc != nil {
		return c.NowFunc().Unix(), nil
	}
	return time.Now().Unix(), nil
}

// Local converts secs to a Struct in c's location.
func (c SystemClock) Local(secs int64) (Struct, error) {
	t := time.Unix(secs, 0).In(c.location())
	if t.Unix() != secs {
		return Struct{}, &ClockError{Op: "local", Err: errOutOfRange}
	}
	return Struct{
		Year:  int64(t.Year()),
		Month: int32(t.Month()),
		Day:   int32(t.Day()),
		Hour:  int32(t.Hour()),
		Min:   int32(t.Minute()),
		Sec:   int32(t.Second()),
	}, nil
}

// FromLocal converts s, read as wall time in c's location, to seconds since
// the Unix epoch. Wall times skipped or repeated by a transition resolve the
// way [time.Date] resolves them.
func (c SystemClock) FromLocal(s Struct) (int64, error) {
	if s.IsNaT() || !s.InLocalRange() {
		return 0, &ClockError{Op: "from local", Err: errOutOfRange}
	}
	return time.Date(
		int(s.Year), time.Month(s.Month), int(s.Day),
		int(s.Hour), int(s.Min), int(s.Sec), 0,
		c.location(),
	).Unix(), nil
}

// key is an unexported type for keys defined in this package. This prevents
// collisions with keys defined in other packages.
type key int

const (
	// tzKey is the key for time.Location values in Contexts. It is
	// unexported; clients use ContextWithTZ and TZFromContext instead of
	// using this key directly.
	tzKey key = iota

	// clockKey is the key for Clock values in Contexts.
	clockKey
)

// ContextWithTZ returns a new Context that carries value tz. The Clock
// returned by ClockFromContext uses it as the local time zone.
func ContextWithTZ(ctx context.Context, tz *time.Location) context.Context {
	if tz == nil {
		return ctx
	}
	return context.WithValue(ctx, tzKey, tz)
}

// TZFromContext returns the time.Location value stored in ctx or
// time.Local.
func TZFromContext(ctx context.Context) *time.Location {
	tz, ok := ctx.Value(tzKey).(*time.Location)
	if ok {
		return tz
	}
	//nolint:gosmopolitan // The host zone is the default.
	return time.Local
}

// ContextWithClock returns a new Context that carries clock.
func ContextWithClock(ctx context.Context, clock Clock) context.Context {
	if clock == nil {
		return ctx
	}
	return context.WithValue(ctx, clockKey, clock)
}

// ClockFromContext returns the Clock stored in ctx or a SystemClock in the
// time zone returned by TZFromContext.
func ClockFromContext(ctx context.Context) Clock {
	clock, ok := ctx.Value(clockKey).(Clock)
	if ok {
		return clock
	}
	return SystemClock{Location: TZFromContext(ctx)}
}
