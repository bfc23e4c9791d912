package chrono

import "math"

// Temporal is the capability contract shared by all calendar value types.
// Implementations are immutable: WithField and Add return a new value and
// never modify the receiver. Concrete types additionally expose strongly
// typed variants of these operations (Year.Plus, YearMonth.PlusMonths, ...)
// that return the concrete type.
type Temporal interface {
	// SupportsField reports whether the field can be read from this type.
	SupportsField(Field) bool

	// SupportsUnit reports whether arithmetic in the unit is defined for
	// this type.
	SupportsUnit(Unit) bool

	// Get returns the current value of the field, or an UNSUPPORTED_FIELD
	// error when SupportsField is false.
	Get(Field) (int64, error)

	// WithField returns a copy with the field set to the given value,
	// re-validated against the field's range.
	WithField(Field, int64) (Temporal, error)

	// Add returns a copy with the signed amount of the unit added.
	Add(amount int64, unit Unit) (Temporal, error)
}

// Interface conformance for the closed set of value types.
var (
	_ Temporal = Year{}
	_ Temporal = YearMonth{}
	_ Temporal = Month(0)
	_ Temporal = DayOfWeek(0)

	_ Adjuster = Year{}
	_ Adjuster = YearMonth{}
	_ Adjuster = Month(0)
	_ Adjuster = DayOfWeek(0)

	_ Amount = Period{}
)

// Subtract returns a copy of t with the signed amount of the unit removed.
// It is defined as Add with the negated amount.
func Subtract(t Temporal, amount int64, unit Unit) (Temporal, error) {
	if amount == math.MinInt64 {
		// -MinInt64 overflows; split into two additions.
		half, err := t.Add(math.MaxInt64, unit)
		if err != nil {
			return nil, err
		}
		return half.Add(1, unit)
	}
	return t.Add(-amount, unit)
}

// Compare orders two temporals of the same concrete type. Comparing values
// of different concrete types fails with a TYPE_MISMATCH error.
func Compare(a, b Temporal) (int, error) {
	switch av := a.(type) {
	case Year:
		if bv, ok := b.(Year); ok {
			return av.Compare(bv), nil
		}
	case YearMonth:
		if bv, ok := b.(YearMonth); ok {
			return av.Compare(bv), nil
		}
	case Month:
		if bv, ok := b.(Month); ok {
			return av.Compare(bv), nil
		}
	case DayOfWeek:
		if bv, ok := b.(DayOfWeek); ok {
			return av.Compare(bv), nil
		}
	}
	return 0, errTypeMismatch(a, b)
}

// floorDiv returns the quotient rounded toward negative infinity. Carry
// arithmetic across composite fields relies on floor semantics so negative
// amounts carry correctly over the year boundary.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns the remainder matching floorDiv; the result always has
// the sign of b.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// addExact adds two int64 values, reporting overflow.
func addExact(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// scaleExact multiplies amount by a positive factor, reporting overflow.
func scaleExact(amount, factor int64) (int64, bool) {
	if amount > math.MaxInt64/factor || amount < math.MinInt64/factor {
		return 0, false
	}
	return amount * factor, true
}
