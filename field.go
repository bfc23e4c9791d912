package chrono

import (
	"fmt"
	"time"
)

// Year bounds of the proleptic ISO calendar supported by this package.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

// ValueRange is the closed range of valid values for a Field.
type ValueRange struct {
	Min int64
	Max int64
}

// Contains reports whether v lies inside the range.
func (r ValueRange) Contains(v int64) bool {
	return v >= r.Min && v <= r.Max
}

// String returns a human-readable representation.
func (r ValueRange) String() string {
	return fmt.Sprintf("%d - %d", r.Min, r.Max)
}

// Field is a named, range-bounded calendar component.
// Fields form a closed enumeration; each variant carries its valid range
// and knows how to read itself off a native time.Time.
type Field int

// Calendar fields, ordered from finer to coarser granularity.
const (
	FieldDayOfWeek Field = iota
	FieldDayOfMonth
	FieldMonthOfYear
	FieldProlepticMonth
	FieldYear
)

var fieldNames = [...]string{
	FieldDayOfWeek:      "DayOfWeek",
	FieldDayOfMonth:     "DayOfMonth",
	FieldMonthOfYear:    "MonthOfYear",
	FieldProlepticMonth: "ProlepticMonth",
	FieldYear:           "Year",
}

var fieldRanges = [...]ValueRange{
	FieldDayOfWeek:      {Min: 1, Max: 7},
	FieldDayOfMonth:     {Min: 1, Max: 31},
	FieldMonthOfYear:    {Min: 1, Max: 12},
	FieldProlepticMonth: {Min: MinYear * 12, Max: MaxYear*12 + 11},
	FieldYear:           {Min: MinYear, Max: MaxYear},
}

// String returns the field name.
func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Range returns the inclusive range of valid values for the field.
func (f Field) Range() ValueRange {
	return fieldRanges[f]
}

// CheckValidValue returns v unchanged when it lies inside the field's
// range, or a VALUE_OUT_OF_RANGE error.
func (f Field) CheckValidValue(v int64) (int64, error) {
	if !f.Range().Contains(v) {
		return 0, errValueOutOfRange(f, v)
	}
	return v, nil
}

// From extracts the field's value from a native date-time.
func (f Field) From(t time.Time) int64 {
	switch f {
	case FieldDayOfWeek:
		// time.Weekday counts Sunday as 0; ISO counts Monday as 1.
		return int64((int(t.Weekday())+6)%7) + 1
	case FieldDayOfMonth:
		return int64(t.Day())
	case FieldMonthOfYear:
		return int64(t.Month())
	case FieldProlepticMonth:
		return int64(t.Year())*12 + int64(t.Month()) - 1
	case FieldYear:
		return int64(t.Year())
	default:
		return 0
	}
}

// IsSupportedBy reports whether the temporal exposes this field. It is the
// reverse direction of Temporal.SupportsField; both must agree.
func (f Field) IsSupportedBy(t Temporal) bool {
	return t != nil && t.SupportsField(f)
}
