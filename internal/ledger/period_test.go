package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"backend/internal/model"
)

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, PeriodToday, ParsePeriod("today"))
	assert.Equal(t, PeriodWeek, ParsePeriod("week"))
	assert.Equal(t, PeriodAll, ParsePeriod(""))
	assert.Equal(t, PeriodAll, ParsePeriod("bogus"))
}

func TestParseDateLayouts(t *testing.T) {
	for _, s := range []string{
		"2024-03-15",
		"2024-03-15T10:30:00",
		"2024-03-15T10:30:00Z",
		"2024-03-15T10:30:00.123Z",
	} {
		_, ok := ParseDate(s)
		assert.True(t, ok, s)
	}

	for _, s := range []string{"", "yesterday", "15/03/2024"} {
		_, ok := ParseDate(s)
		assert.False(t, ok, s)
	}
}

func TestPeriodToday(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	pred := PeriodToday.Predicate(now, "", "")

	assert.True(t, pred("2024-03-15"))
	assert.True(t, pred("2024-03-15T23:59:00"))
	assert.False(t, pred("2024-03-14"))
	assert.False(t, pred("garbage"))
}

func TestPeriodWeekStartsSundayWithNoUpperBound(t *testing.T) {
	// 2024-03-15 is a Friday; the week started Sunday 2024-03-10.
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	pred := PeriodWeek.Predicate(now, "", "")

	assert.True(t, pred("2024-03-10"))
	assert.True(t, pred("2024-03-15"))
	assert.True(t, pred("2024-03-20")) // future dates still pass
	assert.False(t, pred("2024-03-09"))
}

func TestPeriodMonth(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	pred := PeriodMonth.Predicate(now, "", "")

	assert.True(t, pred("2024-03-01"))
	assert.True(t, pred("2024-03-31"))
	assert.False(t, pred("2024-02-29"))
	assert.False(t, pred("2023-03-15"))
}

func TestPeriodCustomIncludesWholeEndDay(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	pred := PeriodCustom.Predicate(now, "2024-03-01", "2024-03-10")

	assert.True(t, pred("2024-03-01"))
	assert.True(t, pred("2024-03-10T23:00:00"))
	assert.False(t, pred("2024-03-11"))
	assert.False(t, pred("2024-02-29"))
}

func TestPeriodCustomWithBadBoundsMatchesNothing(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	pred := PeriodCustom.Predicate(now, "not-a-date", "2024-03-10")

	assert.False(t, pred("2024-03-05"))
}

func TestPeriodAllKeepsUnparseableDates(t *testing.T) {
	pred := PeriodAll.Predicate(time.Now(), "", "")

	assert.True(t, pred("garbage"))
	assert.True(t, pred(""))
}

func TestFilterByPeriod(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	entries := []model.SaleEntry{
		{ID: "s1", Date: "2024-03-15"},
		{ID: "s2", Date: "2024-03-01"},
		{ID: "s3", Date: "bad"},
	}

	got := FilterByPeriod(entries, PeriodToday.Predicate(now, "", ""))

	assert.Len(t, got, 1)
	assert.Equal(t, model.FlexID("s1"), got[0].ID)
}
