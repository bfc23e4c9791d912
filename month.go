package chrono

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Month is a month-of-year, January (1) through December (12).
type Month int

// Months of the year.
const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// monthDays is the length of each month in a non-leap year.
var monthDays = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// MonthOf creates a Month from its 1-based number.
func MonthOf(value int) (Month, error) {
	v, err := FieldMonthOfYear.CheckValidValue(int64(value))
	if err != nil {
		return 0, err
	}
	return Month(v), nil
}

// MustMonth creates a Month, panicking on invalid input.
func MustMonth(value int) Month {
	m, err := MonthOf(value)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMonth parses a month from its English name (case-insensitive) or
// its 1-based number.
func ParseMonth(value string) (Month, error) {
	for i, name := range monthNames {
		if strings.EqualFold(value, name) {
			return Month(i + 1), nil
		}
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errParse("month", value)
	}
	return MonthOf(n)
}

// MonthFromTime extracts the month from a native date-time.
func MonthFromTime(t time.Time) Month {
	return Month(FieldMonthOfYear.From(t))
}

// MonthNow returns the current month read from the clock.
func MonthNow(c Clock) Month {
	if c == nil {
		c = SystemClock()
	}
	return MonthFromTime(c.Now())
}

// Value returns the 1-based month number.
func (m Month) Value() int {
	return int(m)
}

// String returns the English month name.
func (m Month) String() string {
	if m < January || m > December {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}

// Plus returns the month the given number of months after this one,
// wrapping around the year.
func (m Month) Plus(months int64) Month {
	return Month(floorMod(int64(m)-1+floorMod(months, 12), 12) + 1)
}

// Minus returns the month the given number of months before this one,
// wrapping around the year.
func (m Month) Minus(months int64) Month {
	return m.Plus(-floorMod(months, 12))
}

// Length returns the number of days in the month for the given leap flag.
func (m Month) Length(leapYear bool) int {
	if m == February && leapYear {
		return 29
	}
	return monthDays[m-1]
}

// MinLength returns the minimum number of days in the month.
func (m Month) MinLength() int {
	return m.Length(false)
}

// MaxLength returns the maximum number of days in the month.
func (m Month) MaxLength() int {
	return m.Length(true)
}

// FirstDayOfYear returns the 1-based day-of-year of the month's first day.
func (m Month) FirstDayOfYear(leapYear bool) int {
	day := 1
	for i := January; i < m; i++ {
		day += i.Length(leapYear)
	}
	return day
}

// Compare orders months chronologically.
func (m Month) Compare(other Month) int {
	switch {
	case m < other:
		return -1
	case m > other:
		return 1
	default:
		return 0
	}
}

// IsBefore reports whether m is strictly earlier in the year than other.
func (m Month) IsBefore(other Month) bool {
	return m.Compare(other) < 0
}

// IsAfter reports whether m is strictly later in the year than other.
func (m Month) IsAfter(other Month) bool {
	return m.Compare(other) > 0
}

// Hash returns the identity hash, the 1-based month number.
func (m Month) Hash() int64 {
	return int64(m)
}

// SupportsField implements Temporal.
func (m Month) SupportsField(f Field) bool {
	return f == FieldMonthOfYear
}

// SupportsUnit implements Temporal.
func (m Month) SupportsUnit(u Unit) bool {
	return u == UnitMonths
}

// Get implements Temporal.
func (m Month) Get(f Field) (int64, error) {
	if !m.SupportsField(f) {
		return 0, errUnsupportedField(m, f)
	}
	return int64(m), nil
}

// WithField implements Temporal.
func (m Month) WithField(f Field, v int64) (Temporal, error) {
	if !m.SupportsField(f) {
		return nil, errUnsupportedField(m, f)
	}
	checked, err := f.CheckValidValue(v)
	if err != nil {
		return nil, err
	}
	return Month(checked), nil
}

// Add implements Temporal.
func (m Month) Add(amount int64, u Unit) (Temporal, error) {
	if !m.SupportsUnit(u) {
		return nil, errUnsupportedUnit(m, u)
	}
	return m.Plus(amount), nil
}

// AdjustInto implements Adjuster: a Month adjusting into another Month is
// the month itself; adjusting into any other temporal replaces its
// month-of-year field.
func (m Month) AdjustInto(t Temporal) (Temporal, error) {
	if _, ok := t.(Month); ok {
		return m, nil
	}
	return t.WithField(FieldMonthOfYear, int64(m))
}

// MarshalJSON implements json.Marshaler.
func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Month) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Month) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Month) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
