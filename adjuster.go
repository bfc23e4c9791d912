package chrono

// Adjuster is a strategy that computes a new temporal from an existing one.
// Every value type in this package is itself an Adjuster: adjusting into a
// temporal of the same concrete type returns the adjuster unchanged, while
// adjusting into a different type replaces the adjuster's field on the
// target.
type Adjuster interface {
	AdjustInto(Temporal) (Temporal, error)
}

// With applies an adjuster to a temporal, returning the adjusted copy.
func With(t Temporal, a Adjuster) (Temporal, error) {
	return a.AdjustInto(t)
}

// PlusUnit returns an adjuster that adds a signed amount of a unit.
// Adjusting a temporal that does not support the unit fails with an
// UNSUPPORTED_UNIT error; otherwise the temporal's own carry rules apply
// and a freshly validated value is returned.
func PlusUnit(amount int64, unit Unit) Adjuster {
	return plusUnit{amount: amount, unit: unit}
}

type plusUnit struct {
	amount int64
	unit   Unit
}

func (p plusUnit) AdjustInto(t Temporal) (Temporal, error) {
	if !t.SupportsUnit(p.unit) {
		return nil, errUnsupportedUnit(t, p.unit)
	}
	return t.Add(p.amount, p.unit)
}
