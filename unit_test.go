package chrono

import "testing"

func TestUnitOrdering(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Unit
		coarser bool
		finer   bool
	}{
		{"months finer than years", UnitMonths, UnitYears, false, true},
		{"years coarser than months", UnitYears, UnitMonths, true, false},
		{"decades coarser than years", UnitDecades, UnitYears, true, false},
		{"millennia coarser than centuries", UnitMillennia, UnitCenturies, true, false},
		{"days finer than weeks", UnitDays, UnitWeeks, false, true},
		{"equal units", UnitYears, UnitYears, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IsCoarserThan(tt.b); got != tt.coarser {
				t.Errorf("IsCoarserThan: expected %v, got %v", tt.coarser, got)
			}
			if got := tt.a.IsFinerThan(tt.b); got != tt.finer {
				t.Errorf("IsFinerThan: expected %v, got %v", tt.finer, got)
			}
		})
	}
}

// Unit.IsSupportedBy and Temporal.SupportsUnit are the two directions of
// the same dispatch and must always agree.
func TestUnitSupportAgreement(t *testing.T) {
	temporals := []Temporal{
		MustYear(2020),
		MustYearMonth(2020, 3),
		MustMonth(3),
		MustDayOfWeek(2),
	}
	units := []Unit{
		UnitDays, UnitWeeks, UnitMonths, UnitYears,
		UnitDecades, UnitCenturies, UnitMillennia, UnitEras,
	}

	for _, temporal := range temporals {
		for _, unit := range units {
			if unit.IsSupportedBy(temporal) != temporal.SupportsUnit(unit) {
				t.Errorf("%T and %s disagree on support", temporal, unit)
			}
		}
	}
}

func TestUnitSupportMatrix(t *testing.T) {
	year := MustYear(2020)
	if year.SupportsUnit(UnitMonths) {
		t.Error("Year must not support Months")
	}
	if year.SupportsUnit(UnitDays) {
		t.Error("Year must not support Days")
	}
	for _, u := range []Unit{UnitYears, UnitDecades, UnitCenturies, UnitMillennia} {
		if !year.SupportsUnit(u) {
			t.Errorf("Year must support %s", u)
		}
	}

	ym := MustYearMonth(2020, 3)
	for _, u := range []Unit{UnitMonths, UnitYears, UnitDecades, UnitCenturies, UnitMillennia} {
		if !ym.SupportsUnit(u) {
			t.Errorf("YearMonth must support %s", u)
		}
	}
	if ym.SupportsUnit(UnitDays) {
		t.Error("YearMonth must not support Days")
	}
	if ym.SupportsUnit(UnitEras) {
		t.Error("YearMonth must not support Eras")
	}
}

func TestUnitString(t *testing.T) {
	if UnitDecades.String() != "Decades" {
		t.Errorf("unexpected name: %s", UnitDecades)
	}
	if Unit(42).String() != "Unit(42)" {
		t.Errorf("unexpected out-of-range rendering: %s", Unit(42))
	}
}
