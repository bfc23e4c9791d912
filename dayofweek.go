package chrono

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DayOfWeek is an ISO day-of-week, Monday (1) through Sunday (7).
type DayOfWeek int

// Days of the week.
const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayOfWeekNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayOfWeekOf creates a DayOfWeek from its ISO number.
func DayOfWeekOf(value int) (DayOfWeek, error) {
	v, err := FieldDayOfWeek.CheckValidValue(int64(value))
	if err != nil {
		return 0, err
	}
	return DayOfWeek(v), nil
}

// MustDayOfWeek creates a DayOfWeek, panicking on invalid input.
func MustDayOfWeek(value int) DayOfWeek {
	d, err := DayOfWeekOf(value)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDayOfWeek parses a day from its English name (case-insensitive) or
// its ISO number.
func ParseDayOfWeek(value string) (DayOfWeek, error) {
	for i, name := range dayOfWeekNames {
		if strings.EqualFold(value, name) {
			return DayOfWeek(i + 1), nil
		}
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errParse("day-of-week", value)
	}
	return DayOfWeekOf(n)
}

// DayOfWeekFromTime extracts the ISO day-of-week from a native date-time.
func DayOfWeekFromTime(t time.Time) DayOfWeek {
	return DayOfWeek(FieldDayOfWeek.From(t))
}

// DayOfWeekNow returns the current day-of-week read from the clock.
func DayOfWeekNow(c Clock) DayOfWeek {
	if c == nil {
		c = SystemClock()
	}
	return DayOfWeekFromTime(c.Now())
}

// Value returns the ISO day number.
func (d DayOfWeek) Value() int {
	return int(d)
}

// String returns the English day name.
func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return "DayOfWeek(" + strconv.Itoa(int(d)) + ")"
	}
	return dayOfWeekNames[d-1]
}

// Plus returns the day the given number of days after this one, wrapping
// around the week.
func (d DayOfWeek) Plus(days int64) DayOfWeek {
	return DayOfWeek(floorMod(int64(d)-1+floorMod(days, 7), 7) + 1)
}

// Minus returns the day the given number of days before this one, wrapping
// around the week.
func (d DayOfWeek) Minus(days int64) DayOfWeek {
	return d.Plus(-floorMod(days, 7))
}

// Compare orders days by their ISO number.
func (d DayOfWeek) Compare(other DayOfWeek) int {
	switch {
	case d < other:
		return -1
	case d > other:
		return 1
	default:
		return 0
	}
}

// Hash returns the identity hash, the ISO day number.
func (d DayOfWeek) Hash() int64 {
	return int64(d)
}

// SupportsField implements Temporal.
func (d DayOfWeek) SupportsField(f Field) bool {
	return f == FieldDayOfWeek
}

// SupportsUnit implements Temporal.
func (d DayOfWeek) SupportsUnit(u Unit) bool {
	return u == UnitDays
}

// Get implements Temporal.
func (d DayOfWeek) Get(f Field) (int64, error) {
	if !d.SupportsField(f) {
		return 0, errUnsupportedField(d, f)
	}
	return int64(d), nil
}

// WithField implements Temporal.
func (d DayOfWeek) WithField(f Field, v int64) (Temporal, error) {
	if !d.SupportsField(f) {
		return nil, errUnsupportedField(d, f)
	}
	checked, err := f.CheckValidValue(v)
	if err != nil {
		return nil, err
	}
	return DayOfWeek(checked), nil
}

// Add implements Temporal.
func (d DayOfWeek) Add(amount int64, u Unit) (Temporal, error) {
	if !d.SupportsUnit(u) {
		return nil, errUnsupportedUnit(d, u)
	}
	return d.Plus(amount), nil
}

// AdjustInto implements Adjuster.
func (d DayOfWeek) AdjustInto(t Temporal) (Temporal, error) {
	if _, ok := t.(DayOfWeek); ok {
		return d, nil
	}
	return t.WithField(FieldDayOfWeek, int64(d))
}

// MarshalJSON implements json.Marshaler.
func (d DayOfWeek) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DayOfWeek) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDayOfWeek(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d DayOfWeek) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *DayOfWeek) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDayOfWeek(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
