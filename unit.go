package chrono

import "fmt"

// Unit is a named granularity of time used for calendar arithmetic.
// Units form a closed enumeration ordered from finer to coarser.
type Unit int

// Calendar units, ordered from finer to coarser duration.
const (
	UnitDays Unit = iota
	UnitWeeks
	UnitMonths
	UnitYears
	UnitDecades
	UnitCenturies
	UnitMillennia
	UnitEras
)

var unitNames = [...]string{
	UnitDays:      "Days",
	UnitWeeks:     "Weeks",
	UnitMonths:    "Months",
	UnitYears:     "Years",
	UnitDecades:   "Decades",
	UnitCenturies: "Centuries",
	UnitMillennia: "Millennia",
	UnitEras:      "Eras",
}

// String returns the unit name.
func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// Compare orders units by duration: negative when u is finer than other,
// positive when coarser, zero when equal.
func (u Unit) Compare(other Unit) int {
	switch {
	case u < other:
		return -1
	case u > other:
		return 1
	default:
		return 0
	}
}

// IsCoarserThan reports whether u spans a longer duration than other.
func (u Unit) IsCoarserThan(other Unit) bool {
	return u.Compare(other) > 0
}

// IsFinerThan reports whether u spans a shorter duration than other.
func (u Unit) IsFinerThan(other Unit) bool {
	return u.Compare(other) < 0
}

// IsSupportedBy reports whether the temporal supports arithmetic in this
// unit. It is the reverse direction of Temporal.SupportsUnit; both must
// agree.
func (u Unit) IsSupportedBy(t Temporal) bool {
	return t != nil && t.SupportsUnit(u)
}
