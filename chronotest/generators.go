// Package chronotest provides rapid generators for chrono value types,
// for use in property-based tests.
package chronotest

import (
	"github.com/auth-platform/libs/go/chrono"
	"pgregory.net/rapid"
)

// YearGen generates valid Year values across the full supported range.
func YearGen() *rapid.Generator[chrono.Year] {
	return rapid.Custom(func(t *rapid.T) chrono.Year {
		return chrono.MustYear(rapid.IntRange(chrono.MinYear, chrono.MaxYear).Draw(t, "year"))
	})
}

// YearGenRange generates valid Year values within [min, max].
func YearGenRange(min, max int) *rapid.Generator[chrono.Year] {
	return rapid.Custom(func(t *rapid.T) chrono.Year {
		return chrono.MustYear(rapid.IntRange(min, max).Draw(t, "year"))
	})
}

// MonthGen generates valid Month values.
func MonthGen() *rapid.Generator[chrono.Month] {
	return rapid.Custom(func(t *rapid.T) chrono.Month {
		return chrono.MustMonth(rapid.IntRange(1, 12).Draw(t, "month"))
	})
}

// DayOfWeekGen generates valid DayOfWeek values.
func DayOfWeekGen() *rapid.Generator[chrono.DayOfWeek] {
	return rapid.Custom(func(t *rapid.T) chrono.DayOfWeek {
		return chrono.MustDayOfWeek(rapid.IntRange(1, 7).Draw(t, "dayOfWeek"))
	})
}

// YearMonthGen generates valid YearMonth values across the full supported
// range.
func YearMonthGen() *rapid.Generator[chrono.YearMonth] {
	return rapid.Custom(func(t *rapid.T) chrono.YearMonth {
		return chrono.MustYearMonth(
			rapid.IntRange(chrono.MinYear, chrono.MaxYear).Draw(t, "year"),
			rapid.IntRange(1, 12).Draw(t, "month"),
		)
	})
}

// YearMonthGenRange generates valid YearMonth values with years within
// [minYear, maxYear].
func YearMonthGenRange(minYear, maxYear int) *rapid.Generator[chrono.YearMonth] {
	return rapid.Custom(func(t *rapid.T) chrono.YearMonth {
		return chrono.MustYearMonth(
			rapid.IntRange(minYear, maxYear).Draw(t, "year"),
			rapid.IntRange(1, 12).Draw(t, "month"),
		)
	})
}

// PeriodGen generates Period values with components in [-bound, bound].
func PeriodGen(bound int64) *rapid.Generator[chrono.Period] {
	return rapid.Custom(func(t *rapid.T) chrono.Period {
		return chrono.PeriodOf(
			rapid.Int64Range(-bound, bound).Draw(t, "years"),
			rapid.Int64Range(-bound, bound).Draw(t, "months"),
		)
	})
}
