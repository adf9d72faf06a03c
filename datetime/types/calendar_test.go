package types

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsLeapYear(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for _, year := range []int64{2000, 2004, 2016, 2024, 1600, 0, -4, -400} {
		a.True(IsLeapYear(year), year)
	}
	for _, year := range []int64{1900, 2010, 2100, 2023, 1, -1, -100} {
		a.False(IsLeapYear(year), year)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test  string
		year  int64
		month int32
		exp   int32
	}{
		{"jan", 2010, 1, 31},
		{"feb", 2010, 2, 28},
		{"feb_leap", 2000, 2, 29},
		{"feb_century", 1900, 2, 28},
		{"apr", 2016, 4, 30},
		{"dec", 2016, 12, 31},
		{"zero", 2016, 0, 0},
		{"thirteen", 2016, 13, 0},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, DaysInMonth(tc.year, tc.month))
		})
	}
}

func TestDaysSinceEpoch(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test string
		date Struct
		days int64
	}{
		{"epoch", Struct{Year: 1970, Month: 1, Day: 1}, 0},
		{"yesterday", Struct{Year: 1969, Month: 12, Day: 31}, -1},
		{"y2k", Struct{Year: 2000, Month: 1, Day: 1}, 10957},
		{"leap_day", Struct{Year: 2000, Month: 2, Day: 29}, 11016},
		{"march", Struct{Year: 2000, Month: 3, Day: 1}, 11017},
		{"year_zero", Struct{Year: 0, Month: 1, Day: 1}, -719528},
		{"negative", Struct{Year: -1, Month: 12, Day: 31}, -719529},
		{"far", Struct{Year: 10000, Month: 1, Day: 1}, 2932897},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			a.Equal(tc.days, DaysSinceEpoch(tc.date))
			year, month, day := FromDays(tc.days)
			a.Equal(tc.date.Year, year)
			a.Equal(tc.date.Month, month)
			a.Equal(tc.date.Day, day)
		})
	}
}

func TestFromDaysMatchesTime(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	start := time.Date(1896, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 366*8; i += 7 {
		ts := start.AddDate(0, 0, i)
		days := ts.Unix() / secondsPerDay
		year, month, day := FromDays(days)
		a.Equal(int64(ts.Year()), year)
		a.Equal(int32(ts.Month()), month)
		a.Equal(int32(ts.Day()), day)
		a.Equal(days, DaysSinceEpoch(Struct{Year: year, Month: month, Day: day}))
	}
}

func TestEpochSeconds(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for _, ts := range []time.Time{
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2016, 1, 1, 12, 30, 45, 0, time.UTC),
		time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(1066, 10, 14, 9, 0, 0, 0, time.UTC),
	} {
		s := FromEpochSeconds(ts.Unix())
		a.Equal(FromTime(ts), s)
		a.Equal(ts.Unix(), EpochSeconds(s))
	}
}

func TestAddMinutes(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test    string
		start   Struct
		minutes int64
		exp     Struct
	}{
		{
			test:    "zero",
			start:   Struct{Year: 2016, Month: 1, Day: 1, Hour: 12, Min: 30, Sec: 15},
			minutes: 0,
			exp:     Struct{Year: 2016, Month: 1, Day: 1, Hour: 12, Min: 30, Sec: 15},
		},
		{
			test:    "back_across_year",
			start:   Struct{Year: 2016, Month: 1, Day: 1, Sec: 7, Us: 123},
			minutes: -330,
			exp:     Struct{Year: 2015, Month: 12, Day: 31, Hour: 18, Min: 30, Sec: 7, Us: 123},
		},
		{
			test:    "forward_leap_day",
			start:   Struct{Year: 2000, Month: 2, Day: 28, Hour: 23, Min: 45},
			minutes: 30,
			exp:     Struct{Year: 2000, Month: 2, Day: 29, Hour: 0, Min: 15},
		},
		{
			test:    "forward_non_leap",
			start:   Struct{Year: 2010, Month: 2, Day: 28, Hour: 23, Min: 45},
			minutes: 30,
			exp:     Struct{Year: 2010, Month: 3, Day: 1, Hour: 0, Min: 15},
		},
		{
			test:    "days",
			start:   Struct{Year: 2016, Month: 3, Day: 1},
			minutes: -minutesPerDay * 2,
			exp:     Struct{Year: 2016, Month: 2, Day: 28},
		},
		{
			test:    "negative_year",
			start:   Struct{Year: -5, Month: 1, Day: 1},
			minutes: -1,
			exp:     Struct{Year: -6, Month: 12, Day: 31, Hour: 23, Min: 59},
		},
		{
			test:    "across_cycles",
			start:   Struct{Year: 2016, Month: 1, Day: 1},
			minutes: minutesPerEra*3 + 90,
			exp:     Struct{Year: 3216, Month: 1, Day: 1, Hour: 1, Min: 30},
		},
		{
			test:    "max_year_back",
			start:   Struct{Year: math.MaxInt64, Month: 1, Day: 1},
			minutes: -60,
			exp:     Struct{Year: math.MaxInt64 - 1, Month: 12, Day: 31, Hour: 23},
		},
		{
			test:    "max_year_forward",
			start:   Struct{Year: math.MaxInt64, Month: 12, Day: 31, Hour: 23, Min: 30},
			minutes: 29,
			exp:     Struct{Year: math.MaxInt64, Month: 12, Day: 31, Hour: 23, Min: 59},
		},
		{
			test:    "huge_year_leap_day",
			start:   Struct{Year: 40000000000000000, Month: 2, Day: 28, Hour: 23},
			minutes: 60,
			exp:     Struct{Year: 40000000000000000, Month: 2, Day: 29},
		},
		{
			test:    "min_year_forward",
			start:   Struct{Year: math.MinInt64 + 1, Month: 1, Day: 1},
			minutes: 1,
			exp:     Struct{Year: math.MinInt64 + 1, Month: 1, Day: 1, Min: 1},
		},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			got, ok := AddMinutes(tc.start, tc.minutes)
			assert.True(t, ok)
			assert.Equal(t, tc.exp, got)
		})
	}
}

func TestAddMinutesOverflow(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test    string
		start   Struct
		minutes int64
	}{
		{"past_max", Struct{Year: math.MaxInt64, Month: 12, Day: 31, Hour: 23, Min: 30}, 30},
		{"into_nat", Struct{Year: math.MinInt64 + 1, Month: 1, Day: 1}, -1},
		{"cycles_past_max", Struct{Year: math.MaxInt64 - 1000, Month: 1, Day: 1}, minutesPerEra * 3},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			_, ok := AddMinutes(tc.start, tc.minutes)
			assert.False(t, ok)
		})
	}
}

func TestMinutes(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(int64(0), Minutes(Struct{Year: 1970, Month: 1, Day: 1, Sec: 59}))
	a.Equal(int64(minutesPerDay+90), Minutes(Struct{Year: 1970, Month: 1, Day: 2, Hour: 1, Min: 30}))
	a.Equal(int64(-1), Minutes(Struct{Year: 1969, Month: 12, Day: 31, Hour: 23, Min: 59}))
}
