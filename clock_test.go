package chrono

import (
	"testing"
	"time"
)

func TestFixedClockIsDeterministic(t *testing.T) {
	at := time.Date(2015, time.March, 17, 10, 30, 0, 0, time.UTC)
	clock := FixedClock(at)

	for i := 0; i < 3; i++ {
		if got := clock.Now(); !got.Equal(at) {
			t.Errorf("expected %v, got %v", at, got)
		}
	}
}

func TestFixedClockNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	at := time.Date(2015, time.March, 17, 2, 0, 0, 0, loc)

	got := FixedClock(at).Now()
	if got.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", got.Location())
	}
	// 02:00 at UTC+5 is the previous day in UTC.
	if YearMonthFromTime(got) != MustYearMonth(2015, 3) {
		t.Errorf("unexpected year-month: %v", YearMonthFromTime(got))
	}
	if got.Day() != 16 {
		t.Errorf("expected UTC day 16, got %d", got.Day())
	}
}

func TestSystemClockReturnsUTC(t *testing.T) {
	if got := SystemClock().Now(); got.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", got.Location())
	}
}

func TestNowConstructorsUseInjectedClock(t *testing.T) {
	at := time.Date(1969, time.July, 21, 2, 56, 0, 0, time.UTC)
	clock := FixedClock(at)

	if got := YearNow(clock); got != MustYear(1969) {
		t.Errorf("YearNow: expected 1969, got %v", got)
	}
	if got := YearMonthNow(clock); got != MustYearMonth(1969, 7) {
		t.Errorf("YearMonthNow: expected 1969-07, got %v", got)
	}
	if got := MonthNow(clock); got != July {
		t.Errorf("MonthNow: expected July, got %v", got)
	}
	if got := DayOfWeekNow(clock); got != Monday {
		t.Errorf("DayOfWeekNow: expected Monday, got %v", got)
	}
}
