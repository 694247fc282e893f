package ingestion

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestIsTradingDayUS(t *testing.T) {
	cases := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"regular weekday", day(2025, time.September, 10), true},
		{"saturday", day(2025, time.September, 6), false},
		{"sunday", day(2025, time.September, 7), false},
		{"new year", day(2025, time.January, 1), false},
		{"juneteenth", day(2025, time.June, 19), false},
		{"independence day", day(2025, time.July, 4), false},
		{"christmas", day(2025, time.December, 25), false},
		{"mlk day 2025", day(2025, time.January, 20), false},
		{"presidents day 2025", day(2025, time.February, 17), false},
		{"memorial day 2025", day(2025, time.May, 26), false},
		{"labor day 2025", day(2025, time.September, 1), false},
		{"thanksgiving 2025", day(2025, time.November, 27), false},
		{"good friday 2025", day(2025, time.April, 18), false},
		{"day after good friday holiday week", day(2025, time.April, 21), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isTradingDayUS(tc.d); got != tc.want {
				t.Fatalf("isTradingDayUS(%s)=%v want %v", tc.d.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestEasterSunday(t *testing.T) {
	cases := []struct {
		year int
		want time.Time
	}{
		{2024, day(2024, time.March, 31)},
		{2025, day(2025, time.April, 20)},
		{2026, day(2026, time.April, 5)},
	}
	for _, tc := range cases {
		if got := easterSunday(tc.year); !got.Equal(tc.want) {
			t.Fatalf("easterSunday(%d)=%s want %s", tc.year, got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
		}
	}
}

func TestLastNTradingDays_SkipsWeekendAndHoliday(t *testing.T) {
	// Monday after Labor Day 2025; walking back must skip Sep 6-7
	// (weekend) and Sep 1 (Labor Day).
	from := day(2025, time.September, 8)
	got := LastNTradingDays(6, from)

	want := []time.Time{
		day(2025, time.September, 8),
		day(2025, time.September, 5),
		day(2025, time.September, 4),
		day(2025, time.September, 3),
		day(2025, time.September, 2),
		day(2025, time.August, 29),
	}
	if len(got) != len(want) {
		t.Fatalf("len=%d want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("day %d: got %s want %s", i, got[i].Format("2006-01-02"), want[i].Format("2006-01-02"))
		}
	}
}

func TestLastNTradingDays_StartsOnNonTradingDay(t *testing.T) {
	// Starting on a Sunday must not include the Sunday itself.
	got := LastNTradingDays(1, day(2025, time.September, 7))
	if len(got) != 1 || !got[0].Equal(day(2025, time.September, 5)) {
		t.Fatalf("got %v", got)
	}
}

func TestNthAndLastWeekday(t *testing.T) {
	if got := nthWeekday(2025, time.November, time.Thursday, 4); !got.Equal(day(2025, time.November, 27)) {
		t.Fatalf("4th Thursday Nov 2025 = %s", got.Format("2006-01-02"))
	}
	if got := lastWeekday(2025, time.May, time.Monday); !got.Equal(day(2025, time.May, 26)) {
		t.Fatalf("last Monday May 2025 = %s", got.Format("2006-01-02"))
	}
}
