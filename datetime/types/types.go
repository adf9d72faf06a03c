// Package types provides the broken-down datetime value shared by the parser
// and formatter, along with the calendar arithmetic and wall clock services
// they depend on.
//
// A [Struct] decomposes an instant into calendar fields down to attosecond
// resolution. Unlike [time.Time], it carries no location: values produced by
// the parser are always in UTC, and the formatter converts them to local time
// on request through a [Clock] carried in a [context.Context].
package types

import (
	"math"
	"time"
)

// NaTYear is the Year of a not-a-time Struct. When a Struct's Year is
// NaTYear, none of its other fields are meaningful.
const NaTYear int64 = math.MinInt64

// The local time window: only years strictly between LocalYearMin and
// LocalYearMax are converted between local time and UTC. Values outside it
// are treated as UTC in both directions.
const (
	LocalYearMin = 1900
	LocalYearMax = 10000
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
	secondsPerDay  = minutesPerDay * 60
)

// Struct is a broken-down datetime.
type Struct struct {
	Year  int64
	Month int32 // 1–12
	Day   int32 // 1–DaysInMonth(Year, Month)
	Hour  int32 // 0–23
	Min   int32 // 0–59
	Sec   int32 // 0–59
	Us    int32 // microseconds, 0–999999
	Ps    int32 // picoseconds past the microsecond, 0–999999
	As    int32 // attoseconds past the picosecond, 0–999999
}

// New returns a Struct for midnight on January 1 of year.
func New(year int64) Struct {
	return Struct{Year: year, Month: 1, Day: 1}
}

// NaT returns a not-a-time Struct.
func NaT() Struct {
	return Struct{Year: NaTYear, Month: 1, Day: 1}
}

// IsNaT returns true if s represents not-a-time.
func (s Struct) IsNaT() bool {
	return s.Year == NaTYear
}

// InLocalRange returns true if s.Year falls within the window in which local
// time conversion applies.
func (s Struct) InLocalRange() bool {
	return s.Year > LocalYearMin && s.Year < LocalYearMax
}

// Time converts s to a UTC [time.Time]. Precision below the nanosecond is
// truncated. Returns false for NaT or for years time.Time cannot represent.
func (s Struct) Time() (time.Time, bool) {
	if s.IsNaT() || s.Year > math.MaxInt32 || s.Year < math.MinInt32 {
		return time.Time{}, false
	}
	return time.Date(
		int(s.Year), time.Month(s.Month), int(s.Day),
		int(s.Hour), int(s.Min), int(s.Sec),
		int(s.Us)*1000+int(s.Ps)/1000, time.UTC,
	), true
}

// FromTime converts t to a Struct in UTC.
func FromTime(t time.Time) Struct {
	t = t.UTC()
	ns := t.Nanosecond()
	return Struct{
		Year:  int64(t.Year()),
		Month: int32(t.Month()),
		Day:   int32(t.Day()),
		Hour:  int32(t.Hour()),
		Min:   int32(t.Minute()),
		Sec:   int32(t.Second()),
		Us:    int32(ns / 1000),
		Ps:    int32(ns%1000) * 1000,
	}
}
