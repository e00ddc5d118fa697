package ledger

import (
	"time"
)

// Period names a reporting window over the ledger.
type Period string

const (
	PeriodToday  Period = "today"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodCustom Period = "custom"
	PeriodAll    Period = "all"
)

// ParsePeriod maps a period token to a Period. Empty and unrecognized tokens
// mean all; an unknown filter should widen the view, not hide records.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodCustom:
		return Period(s)
	}
	return PeriodAll
}

// dateLayouts are the shapes dates have been persisted in over the
// application's history.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a persisted date string. The second return is false when
// the value is missing or unparseable; callers filter such records out rather
// than erroring.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DatePredicate decides whether a record's raw date string falls inside a
// period.
type DatePredicate func(date string) bool

// Predicate builds the filter for a period relative to now. For
// PeriodCustom, start and end are calendar dates ("2006-01-02"); the range is
// inclusive of the whole end day. Records with unparseable dates are excluded
// from every period except all.
func (p Period) Predicate(now time.Time, start, end string) DatePredicate {
	if p == PeriodAll {
		return func(string) bool { return true }
	}

	today := truncateDay(now)
	switch p {
	case PeriodToday:
		return func(date string) bool {
			t, ok := ParseDate(date)
			return ok && truncateDay(t).Equal(today)
		}
	case PeriodWeek:
		// Weeks start on the most recent Sunday on or before today, with no
		// upper bound.
		weekStart := today.AddDate(0, 0, -int(today.Weekday()))
		return func(date string) bool {
			t, ok := ParseDate(date)
			return ok && !truncateDay(t).Before(weekStart)
		}
	case PeriodMonth:
		return func(date string) bool {
			t, ok := ParseDate(date)
			return ok && t.Year() == today.Year() && t.Month() == today.Month()
		}
	case PeriodCustom:
		startT, okStart := ParseDate(start)
		endT, okEnd := ParseDate(end)
		if !okStart || !okEnd {
			return func(string) bool { return false }
		}
		lo := truncateDay(startT)
		hi := truncateDay(endT).AddDate(0, 0, 1) // whole end day included
		return func(date string) bool {
			t, ok := ParseDate(date)
			return ok && !t.Before(lo) && t.Before(hi)
		}
	}
	return func(string) bool { return false }
}

// Dated is any record carrying its persisted date string.
type Dated interface {
	EntryDate() string
}

// FilterByPeriod applies a date predicate uniformly to any record collection.
func FilterByPeriod[T Dated](items []T, pred DatePredicate) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it.EntryDate()) {
			out = append(out, it)
		}
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
