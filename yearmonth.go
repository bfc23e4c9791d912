package chrono

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// YearMonth is a year combined with a month-of-year, e.g. 2020-01. Both
// components are validated at construction; a YearMonth is immutable and
// always valid once created.
type YearMonth struct {
	year  Year
	month Month
}

// yearMonthRegex matches the year-month text grammar: the year text
// grammar, a dash, then month digits.
var yearMonthRegex = regexp.MustCompile(`^([-+]?[0-9]+)-([0-9]+)$`)

// YearMonthOf creates a YearMonth from a proleptic year and a 1-based
// month number.
func YearMonthOf(year, month int) (YearMonth, error) {
	y, err := YearOf(year)
	if err != nil {
		return YearMonth{}, err
	}
	m, err := MonthOf(month)
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonth{year: y, month: m}, nil
}

// MustYearMonth creates a YearMonth, panicking on invalid input.
func MustYearMonth(year, month int) YearMonth {
	ym, err := YearMonthOf(year, month)
	if err != nil {
		panic(err)
	}
	return ym
}

// ParseYearMonth parses the "year-month" text form: the year grammar
// (optional sign, digits) followed by a dash and month digits, e.g.
// "2020-01", "-2-01" or "999999-12".
func ParseYearMonth(value string) (YearMonth, error) {
	match := yearMonthRegex.FindStringSubmatch(value)
	if match == nil {
		return YearMonth{}, errParse("year-month", value)
	}
	year, err := strconv.Atoi(match[1])
	if err != nil {
		return YearMonth{}, newError(ErrCodeValueOutOfRange,
			"year out of range: "+match[1]).WithCause(err)
	}
	month, err := strconv.Atoi(match[2])
	if err != nil {
		return YearMonth{}, newError(ErrCodeValueOutOfRange,
			"month out of range: "+match[2]).WithCause(err)
	}
	return YearMonthOf(year, month)
}

// YearMonthFromTime extracts the year-month from a native date-time.
func YearMonthFromTime(t time.Time) YearMonth {
	return YearMonth{
		year:  YearFromTime(t),
		month: MonthFromTime(t),
	}
}

// YearMonthNow returns the current year-month read from the clock.
func YearMonthNow(c Clock) YearMonth {
	if c == nil {
		c = SystemClock()
	}
	return YearMonthFromTime(c.Now())
}

// Year returns the year component.
func (ym YearMonth) Year() Year {
	return ym.year
}

// Month returns the month component.
func (ym YearMonth) Month() Month {
	return ym.month
}

// YearValue returns the proleptic year value.
func (ym YearMonth) YearValue() int {
	return ym.year.value
}

// MonthValue returns the 1-based month number.
func (ym YearMonth) MonthValue() int {
	return int(ym.month)
}

// WithYear returns a copy with the year replaced; the month is untouched.
func (ym YearMonth) WithYear(year int) (YearMonth, error) {
	y, err := YearOf(year)
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonth{year: y, month: ym.month}, nil
}

// WithYearOf returns a copy with the year replaced by an existing Year.
func (ym YearMonth) WithYearOf(y Year) YearMonth {
	return YearMonth{year: y, month: ym.month}
}

// WithMonth returns a copy with the month replaced; the year is untouched.
func (ym YearMonth) WithMonth(month int) (YearMonth, error) {
	m, err := MonthOf(month)
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonth{year: ym.year, month: m}, nil
}

// WithMonthOf returns a copy with the month replaced by an existing Month.
func (ym YearMonth) WithMonthOf(m Month) (YearMonth, error) {
	return ym.WithMonth(int(m))
}

// prolepticMonth is the zero-based count of months since year zero, the
// composite value the month carry arithmetic runs on.
func (ym YearMonth) prolepticMonth() int64 {
	return int64(ym.year.value)*12 + int64(ym.month) - 1
}

// PlusMonths returns the year-month the given number of months later,
// carrying across the year boundary with floor division so negative
// amounts behave correctly.
func (ym YearMonth) PlusMonths(months int64) (YearMonth, error) {
	if months == 0 {
		return ym, nil
	}
	total, ok := addExact(ym.prolepticMonth(), months)
	if !ok {
		return YearMonth{}, errValueOutOfRange(FieldProlepticMonth, ym.prolepticMonth()).
			WithDetail("amount", months)
	}
	checked, err := FieldProlepticMonth.CheckValidValue(total)
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonth{
		year:  Year{value: int(floorDiv(checked, 12))},
		month: Month(floorMod(checked, 12) + 1),
	}, nil
}

// MinusMonths returns the year-month the given number of months earlier.
func (ym YearMonth) MinusMonths(months int64) (YearMonth, error) {
	r, err := Subtract(ym, months, UnitMonths)
	if err != nil {
		return YearMonth{}, err
	}
	return r.(YearMonth), nil
}

// PlusYears returns the year-month the given number of years later; the
// month is untouched.
func (ym YearMonth) PlusYears(years int64) (YearMonth, error) {
	y, err := ym.year.PlusYears(years)
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonth{year: y, month: ym.month}, nil
}

// MinusYears returns the year-month the given number of years earlier.
func (ym YearMonth) MinusYears(years int64) (YearMonth, error) {
	r, err := Subtract(ym, years, UnitYears)
	if err != nil {
		return YearMonth{}, err
	}
	return r.(YearMonth), nil
}

// Plus returns a copy with the signed amount of the unit added.
func (ym YearMonth) Plus(amount int64, unit Unit) (YearMonth, error) {
	if unit == UnitMonths {
		return ym.PlusMonths(amount)
	}
	factor, ok := yearUnitFactor(unit)
	if !ok {
		return YearMonth{}, errUnsupportedUnit(ym, unit)
	}
	scaled, ok := scaleExact(amount, factor)
	if !ok {
		return YearMonth{}, errValueOutOfRange(FieldYear, int64(ym.year.value)).
			WithDetail("amount", amount).
			WithDetail("unit", unit.String())
	}
	return ym.PlusYears(scaled)
}

// Minus returns a copy with the signed amount of the unit removed.
func (ym YearMonth) Minus(amount int64, unit Unit) (YearMonth, error) {
	r, err := Subtract(ym, amount, unit)
	if err != nil {
		return YearMonth{}, err
	}
	return r.(YearMonth), nil
}

// Compare orders year-months lexicographically, first by year and then by
// month.
func (ym YearMonth) Compare(other YearMonth) int {
	if c := ym.year.Compare(other.year); c != 0 {
		return c
	}
	return ym.month.Compare(other.month)
}

// IsBefore reports whether ym is strictly before other.
func (ym YearMonth) IsBefore(other YearMonth) bool {
	return ym.Compare(other) < 0
}

// IsAfter reports whether ym is strictly after other.
func (ym YearMonth) IsAfter(other YearMonth) bool {
	return ym.Compare(other) > 0
}

// Equals checks if two year-months are equal.
func (ym YearMonth) Equals(other YearMonth) bool {
	return ym == other
}

// Hash returns the composite identity hash year*100+month. The formula is
// part of the documented contract, including its behavior for negative
// years and its collisions at extreme magnitudes; it must not be changed.
func (ym YearMonth) Hash() int64 {
	return int64(ym.year.value)*100 + int64(ym.month)
}

// String returns the "year-month" text form with the month always two
// digits and the year never padded, e.g. "2020-01", "-2-01", "999999-01".
func (ym YearMonth) String() string {
	return fmt.Sprintf("%d-%02d", ym.year.value, int(ym.month))
}

// SupportsField implements Temporal.
func (ym YearMonth) SupportsField(f Field) bool {
	switch f {
	case FieldYear, FieldMonthOfYear, FieldProlepticMonth:
		return true
	default:
		return false
	}
}

// SupportsUnit implements Temporal.
func (ym YearMonth) SupportsUnit(u Unit) bool {
	if u == UnitMonths {
		return true
	}
	_, ok := yearUnitFactor(u)
	return ok
}

// Get implements Temporal.
func (ym YearMonth) Get(f Field) (int64, error) {
	switch f {
	case FieldYear:
		return int64(ym.year.value), nil
	case FieldMonthOfYear:
		return int64(ym.month), nil
	case FieldProlepticMonth:
		return ym.prolepticMonth(), nil
	default:
		return 0, errUnsupportedField(ym, f)
	}
}

// WithField implements Temporal.
func (ym YearMonth) WithField(f Field, v int64) (Temporal, error) {
	if !ym.SupportsField(f) {
		return nil, errUnsupportedField(ym, f)
	}
	checked, err := f.CheckValidValue(v)
	if err != nil {
		return nil, err
	}
	switch f {
	case FieldYear:
		return YearMonth{year: Year{value: int(checked)}, month: ym.month}, nil
	case FieldMonthOfYear:
		return YearMonth{year: ym.year, month: Month(checked)}, nil
	default: // FieldProlepticMonth
		return YearMonth{
			year:  Year{value: int(floorDiv(checked, 12))},
			month: Month(floorMod(checked, 12) + 1),
		}, nil
	}
}

// Add implements Temporal.
func (ym YearMonth) Add(amount int64, u Unit) (Temporal, error) {
	r, err := ym.Plus(amount, u)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// AdjustInto implements Adjuster: a YearMonth adjusting into another
// YearMonth is the year-month itself; adjusting into any other temporal
// replaces its proleptic-month field.
func (ym YearMonth) AdjustInto(t Temporal) (Temporal, error) {
	if _, ok := t.(YearMonth); ok {
		return ym, nil
	}
	return t.WithField(FieldProlepticMonth, ym.prolepticMonth())
}

// MarshalJSON implements json.Marshaler.
func (ym YearMonth) MarshalJSON() ([]byte, error) {
	return json.Marshal(ym.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (ym *YearMonth) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseYearMonth(s)
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (ym YearMonth) MarshalYAML() (any, error) {
	return ym.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (ym *YearMonth) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseYearMonth(s)
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}
