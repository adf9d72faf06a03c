package types

import "golang.org/x/exp/constraints"

// daysPerMonth is the number of days in each month, indexed by leap year and
// then by month starting at 0.
//
//nolint:gochecknoglobals
var daysPerMonth = [2][12]int32{
	{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar. Year 0 is a leap year.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year. Returns 0 for a
// month outside 1–12.
func DaysInMonth(year int64, month int32) int32 {
	if month < 1 || month > 12 {
		return 0
	}
	leap := 0
	if IsLeapYear(year) {
		leap = 1
	}
	return daysPerMonth[leap][month-1]
}

// Days in a 400-year Gregorian cycle, and the offset of 1970-01-01 from
// 0000-03-01, the start of the cycle used by DaysSinceEpoch and FromDays.
const (
	daysPerEra    = 146097
	epochOffset   = 719468
	minutesPerEra = daysPerEra * minutesPerDay
)

// floorDiv divides a by b, rounding toward negative infinity. b must be
// positive.
func floorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// DaysSinceEpoch returns the number of days from 1970-01-01 to the date in s.
// The time of day is ignored.
func DaysSinceEpoch(s Struct) int64 {
	year, month := s.Year, int64(s.Month)
	if month <= 2 {
		year--
	}
	era := floorDiv(year, 400)
	yoe := year - era*400
	doy := (153*((month+9)%12)+2)/5 + int64(s.Day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPerEra + doe - epochOffset
}

// FromDays returns the year, month, and day that fall days after 1970-01-01.
func FromDays(days int64) (int64, int32, int32) {
	z := days + epochOffset
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if mp >= 10 {
		month = mp - 9
	}
	year := yoe + era*400
	if month <= 2 {
		year++
	}
	return year, int32(month), int32(day)
}

// EpochSeconds returns the number of seconds from 1970-01-01T00:00:00 to s,
// ignoring sub-second fields.
func EpochSeconds(s Struct) int64 {
	return DaysSinceEpoch(s)*secondsPerDay +
		int64(s.Hour)*3600 + int64(s.Min)*60 + int64(s.Sec)
}

// FromEpochSeconds converts a count of seconds since 1970-01-01T00:00:00 to a
// Struct with second precision.
func FromEpochSeconds(secs int64) Struct {
	days := floorDiv(secs, secondsPerDay)
	rem := secs - days*secondsPerDay
	s := Struct{
		Hour: int32(rem / 3600),
		Min:  int32(rem % 3600 / 60),
		Sec:  int32(rem % 60),
	}
	s.Year, s.Month, s.Day = FromDays(days)
	return s
}

// AddMinutes returns s shifted by minutes, carrying into hours, days,
// months, and years. Seconds and smaller fields are unchanged. It returns
// false if the resulting year does not fit in an int64 or collides with
// NaTYear.
func AddMinutes(s Struct, minutes int64) (Struct, bool) {
	// The calendar repeats every 400 years: shift within a small year and
	// restore the whole cycles afterward.
	base := s.Year / 400 * 400
	cycles := minutes / minutesPerEra
	minutes -= cycles * minutesPerEra
	s.Year -= base

	total := Minutes(s) + minutes
	days := floorDiv(total, minutesPerDay)
	rem := total - days*minutesPerDay
	s.Year, s.Month, s.Day = FromDays(days)
	s.Hour = int32(rem / minutesPerHour)
	s.Min = int32(rem % minutesPerHour)

	var ok bool
	if s.Year, ok = addYears(s.Year, base); !ok {
		return s, false
	}
	if s.Year, ok = addYears(s.Year, cycles*400); !ok {
		return s, false
	}
	return s, s.Year != NaTYear
}

// addYears returns year+delta, or false on int64 overflow.
func addYears(year, delta int64) (int64, bool) {
	sum := year + delta
	if (delta > 0 && sum < year) || (delta < 0 && sum > year) {
		return year, false
	}
	return sum, true
}

// Minutes returns the number of minutes from 1970-01-01T00:00 to s, ignoring
// seconds and smaller fields.
func Minutes(s Struct) int64 {
	return DaysSinceEpoch(s)*minutesPerDay +
		int64(s.Hour)*minutesPerHour + int64(s.Min)
}
