package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/northstar/pkg/entry"
)

var today = time.Date(2026, time.March, 2, 21, 15, 0, 0, time.Local)

func on(daysAgo int, theme, action string) *entry.Entry {
	return &entry.Entry{
		Date:       entry.DaysBefore(today, daysAgo),
		Theme:      theme,
		ActionItem: action,
		CreatedAt:  entry.DaysBefore(today, daysAgo) + "T12:00:00.000Z",
	}
}

func TestStreak(t *testing.T) {
	t.Run("three days ending today", func(t *testing.T) {
		entries := []*entry.Entry{on(0, "Faith", ""), on(1, "Faith", ""), on(2, "Faith", ""), on(4, "Faith", "")}
		assert.Equal(t, 3, Streak(entries, today))
	})

	t.Run("no entry today", func(t *testing.T) {
		entries := []*entry.Entry{on(1, "Faith", ""), on(2, "Faith", "")}
		assert.Equal(t, 0, Streak(entries, today))
	})

	t.Run("duplicates on a day count once", func(t *testing.T) {
		entries := []*entry.Entry{on(0, "Faith", "a"), on(0, "Career", "b"), on(1, "Faith", "")}
		assert.Equal(t, 2, Streak(entries, today))
	})

	t.Run("crosses month and year boundaries", func(t *testing.T) {
		newYear := time.Date(2026, time.January, 1, 8, 0, 0, 0, time.Local)
		entries := []*entry.Entry{
			{Date: "2026-01-01"}, {Date: "2025-12-31"}, {Date: "2025-12-30"},
		}
		assert.Equal(t, 3, Streak(entries, newYear))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0, Streak(nil, today))
	})
}

func TestWeekly(t *testing.T) {
	entries := []*entry.Entry{
		on(0, "Career", "ship it"),
		on(3, "Faith", ""),
		on(6, "Career", "plan week"),
		on(6, "Romance", "date night"),
		on(7, "Parenting", "too old"),
		on(-1, "Hobbies", "from the future"),
	}

	s := Weekly(entries, today)
	assert.Equal(t, "2026-02-24", s.Since)
	assert.Equal(t, "2026-03-02", s.Until)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 3, s.Days)
	assert.Equal(t, []string{"Career", "Faith", "Romance"}, s.Themes)
	assert.Equal(t, []string{"ship it", "plan week", "date night"}, s.Actions)
}

func TestWeeklyEmpty(t *testing.T) {
	s := Weekly(nil, today)
	assert.Zero(t, s.Count)
	assert.Empty(t, s.Themes)
	assert.NotNil(t, s.Actions)
}

func TestMonthly(t *testing.T) {
	entries := []*entry.Entry{
		{Date: "2026-01-01", Theme: "Health/Fitness"},
		{Date: "2026-01-01", Theme: "Faith"},
		{Date: "2026-01-05", Theme: "Career"},
		{Date: "2025-12-31", Theme: "Reflection"},
		{Date: "not-a-date"},
	}

	months := Monthly(entries)
	require.Len(t, months, 2)
	assert.Equal(t, Month{Key: "2026-01", Label: "January 2026", Days: 2}, months[0])
	assert.Equal(t, Month{Key: "2025-12", Label: "December 2025", Days: 1}, months[1])
}
