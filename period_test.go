package chrono

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Period
		wantErr bool
	}{
		{"years and months", "P1Y2M", PeriodOf(1, 2), false},
		{"years only", "P3Y", PeriodOfYears(3), false},
		{"months only", "P14M", PeriodOfMonths(14), false},
		{"negative components", "P-1Y-2M", PeriodOf(-1, -2), false},
		{"leading sign negates whole", "-P1Y2M", PeriodOf(-1, -2), false},
		{"leading plus", "+P1Y", PeriodOfYears(1), false},
		{"zero months", "P0M", Period{}, false},
		{"bare P", "P", Period{}, true},
		{"empty", "", Period{}, true},
		{"days not modeled", "P1D", Period{}, true},
		{"garbage", "one year", Period{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.text)
			if tt.wantErr {
				if !IsCode(err, ErrCodeParse) {
					t.Errorf("expected PARSE_ERROR, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPeriodString(t *testing.T) {
	tests := []struct {
		period Period
		want   string
	}{
		{PeriodOf(1, 2), "P1Y2M"},
		{PeriodOfYears(3), "P3Y"},
		{PeriodOfMonths(14), "P14M"},
		{PeriodOf(-1, -2), "P-1Y-2M"},
		{Period{}, "P0M"},
	}
	for _, tt := range tests {
		if got := tt.period.String(); got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}
}

func TestPeriodAddTo(t *testing.T) {
	t.Run("year-month takes both components", func(t *testing.T) {
		got, err := AddAmount(MustYearMonth(2015, 3), PeriodOf(1, 2))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != MustYearMonth(2016, 5) {
			t.Errorf("expected 2016-05, got %v", got)
		}
	})

	t.Run("months carry across the year", func(t *testing.T) {
		got, err := AddAmount(MustYearMonth(2015, 11), PeriodOfMonths(3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != MustYearMonth(2016, 2) {
			t.Errorf("expected 2016-02, got %v", got)
		}
	})

	t.Run("pure years period applies to a year", func(t *testing.T) {
		got, err := AddAmount(MustYear(2015), PeriodOfYears(5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != MustYear(2020) {
			t.Errorf("expected 2020, got %v", got)
		}
	})

	t.Run("months component rejected by a year", func(t *testing.T) {
		_, err := AddAmount(MustYear(2015), PeriodOf(1, 2))
		if !IsCode(err, ErrCodeUnsupportedUnit) {
			t.Errorf("expected UNSUPPORTED_UNIT, got %v", err)
		}
	})

	t.Run("zero period is identity", func(t *testing.T) {
		got, err := AddAmount(MustYearMonth(2015, 3), Period{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != MustYearMonth(2015, 3) {
			t.Errorf("expected 2015-03, got %v", got)
		}
	})
}

func TestPeriodSubtractFrom(t *testing.T) {
	got, err := SubtractAmount(MustYearMonth(2016, 5), PeriodOf(1, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != MustYearMonth(2015, 3) {
		t.Errorf("expected 2015-03, got %v", got)
	}
}

func TestPeriodPlusAndNegated(t *testing.T) {
	p := PeriodOf(1, 2).Plus(PeriodOf(2, -5))
	if !p.Equals(PeriodOf(3, -3)) {
		t.Errorf("expected P3Y-3M, got %v", p)
	}
	if !p.Negated().Equals(PeriodOf(-3, 3)) {
		t.Errorf("expected negation, got %v", p.Negated())
	}
	if !PeriodOf(0, 0).IsZero() {
		t.Error("expected zero period")
	}
}

func TestPeriodJSONRoundTrip(t *testing.T) {
	original := PeriodOf(-1, 7)
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var restored Period
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !original.Equals(restored) {
		t.Errorf("round-trip failed: %v != %v", original, restored)
	}
}

func TestPeriodYAMLRoundTrip(t *testing.T) {
	original := PeriodOf(2, 11)
	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var restored Period
	if err := yaml.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !original.Equals(restored) {
		t.Errorf("round-trip failed: %v != %v", original, restored)
	}
}
