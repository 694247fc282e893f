package ingestion

import "time"

// LastNTradingDays returns the last n U.S. trading days (most recent
// first). It excludes Saturdays, Sundays, and NYSE full-day holidays.
func LastNTradingDays(n int, from time.Time) []time.Time {
	out := make([]time.Time, 0, n)
	d := truncateToDate(from)

	for len(out) < n {
		if isTradingDayUS(d) {
			out = append(out, d)
		}
		d = d.AddDate(0, 0, -1)
	}
	return out
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// isTradingDayUS returns true if the NYSE is open on the given date.
func isTradingDayUS(d time.Time) bool {
	// Weekend
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}

	// Fixed-date holidays
	fixed := map[string]struct{}{
		"01-01": {}, // New Year's Day
		"06-19": {}, // Juneteenth
		"07-04": {}, // Independence Day
		"12-25": {}, // Christmas
	}
	if _, ok := fixed[d.Format("01-02")]; ok {
		return false
	}

	// Weekday-anchored holidays
	y := d.Year()
	anchored := map[time.Time]struct{}{
		nthWeekday(y, time.January, time.Monday, 3):    {}, // MLK Day
		nthWeekday(y, time.February, time.Monday, 3):   {}, // Presidents' Day
		lastWeekday(y, time.May, time.Monday):          {}, // Memorial Day
		nthWeekday(y, time.September, time.Monday, 1):  {}, // Labor Day
		nthWeekday(y, time.November, time.Thursday, 4): {}, // Thanksgiving
	}
	if _, ok := anchored[truncateToDate(d)]; ok {
		return false
	}

	// Good Friday (2 days before Easter Sunday)
	goodFriday := easterSunday(y).AddDate(0, 0, -2)
	return truncateToDate(d) != truncateToDate(goodFriday)
}

// nthWeekday returns the nth occurrence of a weekday in a month.
func nthWeekday(year int, month time.Month, wd time.Weekday, n int) time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	offset := (int(wd) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset+(n-1)*7)
}

// lastWeekday returns the last occurrence of a weekday in a month.
func lastWeekday(year int, month time.Month, wd time.Weekday) time.Time {
	d := time.Date(year, month+1, 1, 0, 0, 0, 0, time.Local).AddDate(0, 0, -1)
	offset := (int(d.Weekday()) - int(wd) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// easterSunday returns the date of Easter Sunday for a given year
// (Meeus/Jones/Butcher algorithm).
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}
