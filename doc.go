// Package chrono provides immutable ISO-8601 calendar value types.
//
// Calendar primitives are value objects that encapsulate validation rules
// and ensure that invalid values cannot be created. This package provides
// the calendar types shared across services:
//
//   - Year: a proleptic ISO year in the range ±999,999,999
//   - YearMonth: a year combined with a month-of-year
//   - Month: month-of-year, January (1) through December (12)
//   - DayOfWeek: ISO day-of-week, Monday (1) through Sunday (7)
//   - Period: a signed amount of years and months
//
// The types cooperate through a small field/unit vocabulary: every value
// type implements Temporal (query a Field, replace a Field, add a Unit),
// and strategies that derive one value from another implement Adjuster or
// Amount. Fields and units are closed enumerations (Field, Unit) carrying
// their own valid ranges and relative ordering.
//
// All types are immutable; arithmetic and with-style operations return a
// new value and never modify the receiver. Validation errors are returned
// during construction, ensuring that once created, a calendar value is
// always valid. All types implement json.Marshaler/Unmarshaler and the
// yaml.v3 marshalling interfaces.
//
// Current-time constructors take a Clock so tests can substitute a fixed
// instant:
//
//	year := chrono.YearNow(chrono.SystemClock())
//	ym, err := chrono.ParseYearMonth("2020-01")
//	if err != nil {
//	    // Handle validation error
//	}
//
//	later, _ := ym.PlusMonths(25) // 2022-02, carry handled with floor division
package chrono
