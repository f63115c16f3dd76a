package stats

import (
	"sort"
	"time"

	"tableflip.dev/northstar/pkg/entry"
)

// WeekDays is the length of the trailing weekly window, today included.
const WeekDays = 7

// Streak counts consecutive calendar days, ending with the day of today,
// that hold at least one entry. A day without an entry today means 0.
func Streak(entries []*entry.Entry, today time.Time) int {
	days := Dates(entries)
	streak := 0
	check := entry.Midnight(today)
	for {
		if _, ok := days[check.Format(entry.LayoutDate)]; !ok {
			return streak
		}
		streak++
		check = check.AddDate(0, 0, -1)
	}
}

// Dates returns the distinct entry dates.
func Dates(entries []*entry.Entry) map[string]struct{} {
	days := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		days[e.Date] = struct{}{}
	}
	return days
}

// WeeklySummary covers the trailing week ending today.
type WeeklySummary struct {
	Since   string   `json:"since"`
	Until   string   `json:"until"`
	Count   int      `json:"count"`
	Days    int      `json:"days"`
	Themes  []string `json:"themes"`
	Actions []string `json:"actions"`
}

// Weekly summarises entries dated within [today-6, today]. Themes keep the
// order they are first seen in entries; empty action items are dropped.
func Weekly(entries []*entry.Entry, today time.Time) WeeklySummary {
	s := WeeklySummary{
		Since:   entry.DaysBefore(today, WeekDays-1),
		Until:   entry.DaysBefore(today, 0),
		Themes:  []string{},
		Actions: []string{},
	}
	seenTheme := make(map[string]struct{})
	seenDay := make(map[string]struct{})
	for _, e := range entries {
		if e == nil || e.Date < s.Since || e.Date > s.Until {
			continue
		}
		s.Count++
		seenDay[e.Date] = struct{}{}
		if _, ok := seenTheme[e.Theme]; !ok {
			seenTheme[e.Theme] = struct{}{}
			s.Themes = append(s.Themes, e.Theme)
		}
		if e.ActionItem != "" {
			s.Actions = append(s.Actions, e.ActionItem)
		}
	}
	s.Days = len(seenDay)
	return s
}

// Month is the number of distinct days journaled in one calendar month.
type Month struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Days  int    `json:"days"`
}

// Monthly groups entries by the YYYY-MM of their date and counts distinct
// days, newest month first. Entries with a malformed date are skipped.
func Monthly(entries []*entry.Entry) []Month {
	buckets := make(map[string]map[string]struct{})
	for _, e := range entries {
		if e == nil {
			continue
		}
		day, err := e.Day()
		if err != nil {
			continue
		}
		key := day.Format(entry.LayoutMonth)
		if buckets[key] == nil {
			buckets[key] = make(map[string]struct{})
		}
		buckets[key][e.Date] = struct{}{}
	}

	months := make([]Month, 0, len(buckets))
	for key, days := range buckets {
		t, _ := time.Parse(entry.LayoutMonth, key)
		months = append(months, Month{
			Key:   key,
			Label: t.Format("January 2006"),
			Days:  len(days),
		})
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Key > months[j].Key
	})
	return months
}
