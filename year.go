package chrono

import (
	"encoding/json"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Year is a proleptic ISO year, e.g. 2020 or -3. The value is validated
// against the FieldYear range at construction; a Year is immutable and
// always valid once created.
type Year struct {
	value int
}

// yearRegex matches the year text grammar: an optional sign and digits.
var yearRegex = regexp.MustCompile(`^[-+]?[0-9]+$`)

// YearOf creates a Year from its proleptic value.
func YearOf(value int) (Year, error) {
	v, err := FieldYear.CheckValidValue(int64(value))
	if err != nil {
		return Year{}, err
	}
	return Year{value: int(v)}, nil
}

// MustYear creates a Year, panicking on invalid input.
func MustYear(value int) Year {
	y, err := YearOf(value)
	if err != nil {
		panic(err)
	}
	return y
}

// ParseYear parses a year from its decimal text form, an optional sign
// followed by one or more digits.
func ParseYear(value string) (Year, error) {
	if !yearRegex.MatchString(value) {
		return Year{}, errParse("year", value)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		// Digits only, so the text can only fail by exceeding int64.
		return Year{}, newError(ErrCodeValueOutOfRange,
			"year out of range: "+value).WithCause(err)
	}
	return YearOf(n)
}

// YearFromTime extracts the year from a native date-time.
func YearFromTime(t time.Time) Year {
	return Year{value: int(FieldYear.From(t))}
}

// YearNow returns the current year read from the clock.
func YearNow(c Clock) Year {
	if c == nil {
		c = SystemClock()
	}
	return YearFromTime(c.Now())
}

// IsLeapYear reports whether the proleptic year is a leap year under the
// Gregorian rule: divisible by 4, except centuries not divisible by 400.
// Year zero is not a leap year by convention.
func IsLeapYear(year int) bool {
	if year == 0 {
		return false
	}
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Value returns the proleptic year value.
func (y Year) Value() int {
	return y.value
}

// IsLeap reports whether the year is a leap year.
func (y Year) IsLeap() bool {
	return IsLeapYear(y.value)
}

// Length returns the number of days in the year, 366 for leap years and
// 365 otherwise.
func (y Year) Length() int {
	if y.IsLeap() {
		return 366
	}
	return 365
}

// Compare orders years chronologically.
func (y Year) Compare(other Year) int {
	switch {
	case y.value < other.value:
		return -1
	case y.value > other.value:
		return 1
	default:
		return 0
	}
}

// IsBefore reports whether y is strictly before other.
func (y Year) IsBefore(other Year) bool {
	return y.Compare(other) < 0
}

// IsAfter reports whether y is strictly after other.
func (y Year) IsAfter(other Year) bool {
	return y.Compare(other) > 0
}

// Equals checks if two years are equal.
func (y Year) Equals(other Year) bool {
	return y.value == other.value
}

// Hash returns the identity hash, the year value itself.
func (y Year) Hash() int64 {
	return int64(y.value)
}

// String returns the year as a plain decimal, sign included only when
// negative and never zero-padded.
func (y Year) String() string {
	return strconv.Itoa(y.value)
}

// AtMonth combines the year with a month into a YearMonth.
func (y Year) AtMonth(m Month) (YearMonth, error) {
	return YearMonthOf(y.value, int(m))
}

// PlusYears returns the year the given number of years later.
func (y Year) PlusYears(years int64) (Year, error) {
	sum, ok := addExact(int64(y.value), years)
	if !ok {
		return Year{}, errValueOutOfRange(FieldYear, int64(y.value)).
			WithDetail("amount", years)
	}
	v, err := FieldYear.CheckValidValue(sum)
	if err != nil {
		return Year{}, err
	}
	return Year{value: int(v)}, nil
}

// MinusYears returns the year the given number of years earlier.
func (y Year) MinusYears(years int64) (Year, error) {
	r, err := Subtract(y, years, UnitYears)
	if err != nil {
		return Year{}, err
	}
	return r.(Year), nil
}

// Plus returns a copy with the signed amount of the unit added. Years
// support arithmetic in years, decades, centuries and millennia.
func (y Year) Plus(amount int64, unit Unit) (Year, error) {
	factor, ok := yearUnitFactor(unit)
	if !ok {
		return Year{}, errUnsupportedUnit(y, unit)
	}
	scaled, ok := scaleExact(amount, factor)
	if !ok {
		return Year{}, errValueOutOfRange(FieldYear, int64(y.value)).
			WithDetail("amount", amount).
			WithDetail("unit", unit.String())
	}
	return y.PlusYears(scaled)
}

// Minus returns a copy with the signed amount of the unit removed.
func (y Year) Minus(amount int64, unit Unit) (Year, error) {
	r, err := Subtract(y, amount, unit)
	if err != nil {
		return Year{}, err
	}
	return r.(Year), nil
}

// yearUnitFactor maps a unit supported by Year to its size in years.
func yearUnitFactor(unit Unit) (int64, bool) {
	switch unit {
	case UnitYears:
		return 1, true
	case UnitDecades:
		return 10, true
	case UnitCenturies:
		return 100, true
	case UnitMillennia:
		return 1000, true
	default:
		return 0, false
	}
}

// SupportsField implements Temporal.
func (y Year) SupportsField(f Field) bool {
	return f == FieldYear
}

// SupportsUnit implements Temporal.
func (y Year) SupportsUnit(u Unit) bool {
	_, ok := yearUnitFactor(u)
	return ok
}

// Get implements Temporal.
func (y Year) Get(f Field) (int64, error) {
	if !y.SupportsField(f) {
		return 0, errUnsupportedField(y, f)
	}
	return int64(y.value), nil
}

// WithField implements Temporal.
func (y Year) WithField(f Field, v int64) (Temporal, error) {
	if !y.SupportsField(f) {
		return nil, errUnsupportedField(y, f)
	}
	checked, err := f.CheckValidValue(v)
	if err != nil {
		return nil, err
	}
	return Year{value: int(checked)}, nil
}

// Add implements Temporal.
func (y Year) Add(amount int64, u Unit) (Temporal, error) {
	r, err := y.Plus(amount, u)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// AdjustInto implements Adjuster: a Year adjusting into another Year is
// the year itself; adjusting into any other temporal replaces its year
// field.
func (y Year) AdjustInto(t Temporal) (Temporal, error) {
	if _, ok := t.(Year); ok {
		return y, nil
	}
	return t.WithField(FieldYear, int64(y.value))
}

// MarshalJSON implements json.Marshaler.
func (y Year) MarshalJSON() ([]byte, error) {
	return json.Marshal(y.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (y *Year) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := YearOf(v)
	if err != nil {
		return err
	}
	*y = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (y Year) MarshalYAML() (any, error) {
	return y.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (y *Year) UnmarshalYAML(node *yaml.Node) error {
	var v int
	if err := node.Decode(&v); err != nil {
		return err
	}
	parsed, err := YearOf(v)
	if err != nil {
		return err
	}
	*y = parsed
	return nil
}
