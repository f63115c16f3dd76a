package theme

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Theme is the focus assigned to a calendar day.
type Theme struct {
	Index     int
	Name      string
	Scripture string
}

func (t Theme) String() string {
	return t.Name
}

// All is the filter value that matches every theme.
const All = "all"

const secondsPerDay = 24 * 60 * 60

// Anchor is the day that maps to the first theme.
var Anchor = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	themes = []Theme{
		{Name: "Health/Fitness", Scripture: "1 Corinthians 6:19–20"},
		{Name: "Faith", Scripture: "Hebrews 11:6"},
		{Name: "Discipline/Habits", Scripture: "1 Corinthians 9:27"},
		{Name: "Romance", Scripture: "Ephesians 5:25"},
		{Name: "Parenting", Scripture: "Proverbs 22:6"},
		{Name: "Career", Scripture: "Colossians 3:23"},
		{Name: "Finances", Scripture: "Proverbs 3:9–10"},
		{Name: "Service/Legacy", Scripture: "Matthew 20:26–28"},
		{Name: "Developing Intellect & Skills", Scripture: "Proverbs 18:15"},
		{Name: "Friendships/Networking", Scripture: "Proverbs 27:17"},
		{Name: "Hobbies", Scripture: "Ecclesiastes 3:13"},
		{Name: "Reflection/Planning", Scripture: "Psalm 90:12"},
	}

	nonWord = regexp.MustCompile(`\W+`)
)

func init() {
	for i := range themes {
		themes[i].Index = i
	}
}

// Themes returns the rotation in order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// Names returns the theme names in rotation order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for _, t := range themes {
		names = append(names, t.Name)
	}
	return names
}

// Count is the length of the rotation.
func Count() int {
	return len(themes)
}

// ForDate maps the calendar day of t, read in t's own location, onto the
// rotation. Days are counted between UTC midnights so daylight saving
// transitions never shift the result.
func ForDate(t time.Time) Theme {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	offset := (day.Unix() - Anchor.Unix()) / secondsPerDay
	n := int64(len(themes))
	return themes[((offset%n)+n)%n]
}

// Scripture returns the reference paired with the named theme, or "" for a
// name outside the rotation.
func Scripture(name string) string {
	if t, ok := lookup(name); ok {
		return t.Scripture
	}
	return ""
}

// Parse resolves a user supplied theme name. Matching ignores case. The
// value "all" (or "") is returned as All.
func Parse(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, All) {
		return All, nil
	}
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) || strings.EqualFold(Slug(t.Name), name) {
			return t.Name, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q", name)
}

// Slug lowercases name and collapses every run of non-word characters to
// an underscore, e.g. "Health/Fitness" -> "health_fitness".
func Slug(name string) string {
	return strings.ToLower(nonWord.ReplaceAllString(name, "_"))
}

func lookup(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}
