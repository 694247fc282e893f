package service

import (
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout       = "2006-01-02"
	defaultRangeDays = 60
	defaultDaysParam = "60"
)

// allTimeFloor is the lower bound used for days=all: far enough in the
// past to cover every stored observation.
var allTimeFloor = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// DateRange is the resolved inclusive query interval plus the normalized
// parameter echoes that go into response metadata. FromDate/ToDate hold
// the literal input when it parsed, or the computed bound formatted as
// YYYY-MM-DD when it was defaulted, so callers can always tell what
// range was actually queried.
type DateRange struct {
	From time.Time
	To   time.Time

	Days     string
	FromDate string
	ToDate   string
}

// ResolveDateRange turns the raw days/from/to query parameters into a
// concrete inclusive interval anchored at now. Malformed input never
// fails the request; every value degrades to a documented default:
//
//   - to: parsed as YYYY-MM-DD, else now
//   - from: parsed as YYYY-MM-DD, else derived from days
//   - days "all" (case-insensitive): lower bound pinned to 1900-01-01
//   - days as integer N: lower bound is to minus N days
//   - anything else: lower bound is to minus 60 days
//
// A from later than to is passed through as-is; the query simply matches
// nothing. The caller supplies now so resolution stays deterministic.
func ResolveDateRange(days, from, to string, now time.Time) DateRange {
	if days == "" {
		days = defaultDaysParam
	}

	toTime, toOK := parseDate(to)
	if !toOK {
		toTime = now
	}

	fromTime, fromOK := parseDate(from)
	if !fromOK {
		if strings.EqualFold(days, "all") {
			fromTime = allTimeFloor
		} else if n, err := strconv.Atoi(days); err == nil {
			fromTime = toTime.AddDate(0, 0, -n)
		} else {
			fromTime = toTime.AddDate(0, 0, -defaultRangeDays)
		}
	}

	r := DateRange{From: fromTime, To: toTime, Days: days}
	if fromOK {
		r.FromDate = from
	} else {
		r.FromDate = fromTime.Format(dateLayout)
	}
	if toOK {
		r.ToDate = to
	} else {
		r.ToDate = toTime.Format(dateLayout)
	}
	return r
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
