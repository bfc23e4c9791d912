package chronotest_test

import (
	"testing"

	"github.com/auth-platform/libs/go/chrono"
	"github.com/auth-platform/libs/go/chrono/chronotest"
	"pgregory.net/rapid"
)

func TestGeneratorsProduceValidValues(t *testing.T) {
	t.Run("years", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			year := chronotest.YearGen().Draw(t, "year")
			if year.Value() < chrono.MinYear || year.Value() > chrono.MaxYear {
				t.Fatalf("year escaped its range: %v", year)
			}
		})
	})

	t.Run("year months", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			ym := chronotest.YearMonthGen().Draw(t, "ym")
			if m := ym.MonthValue(); m < 1 || m > 12 {
				t.Fatalf("month escaped its range: %v", ym)
			}
		})
	})

	t.Run("bounded year range", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			year := chronotest.YearGenRange(1900, 2100).Draw(t, "year")
			if year.Value() < 1900 || year.Value() > 2100 {
				t.Fatalf("year escaped the requested range: %v", year)
			}
		})
	})

	t.Run("periods", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			p := chronotest.PeriodGen(100).Draw(t, "period")
			if p.Years() < -100 || p.Years() > 100 || p.Months() < -100 || p.Months() > 100 {
				t.Fatalf("period escaped its bound: %v", p)
			}
		})
	})
}
