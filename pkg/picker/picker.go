// Package picker lets the user choose an entry from a searchable list.
package picker

import (
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/northstar/pkg/entry"
)

var (
	ErrNoEntries = errors.New("picker: nothing to choose from")
	ErrCancelled = errors.New("picker: cancelled")
)

// Row is the view of an entry shown in the list.
type Row struct {
	Key    string
	Date   string
	Theme  string
	Action string
}

var templates = &promptui.SelectTemplates{
	Label:    "{{ . }}?",
	Active:   "➜  {{ .Date | bold }} {{ .Theme | green }}",
	Inactive: "   {{ .Date }} {{ .Theme | cyan }}",
	Selected: "{{ .Date | bold }} {{ .Theme }}",
	Details: `
--------- Action Item ----------
{{ .Action }}
`,
}

// Rows projects entries into list rows, keeping their order.
func Rows(entries []*entry.Entry) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			Key:    e.CreatedAt,
			Date:   e.Date,
			Theme:  e.Theme,
			Action: e.ActionItem,
		})
	}
	return rows
}

// Searcher matches input against a row's date, theme and action item,
// ignoring case and spaces.
func Searcher(rows []Row) func(input string, index int) bool {
	return func(input string, index int) bool {
		r := rows[index]
		haystack := squash(r.Date + r.Theme + r.Action)
		return strings.Contains(haystack, squash(input))
	}
}

func squash(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

// Pick shows entries, newest first, and returns the one selected.
func Pick(entries []*entry.Entry, in io.Reader, out io.Writer) (*entry.Entry, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	rows := Rows(entries)

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Entries",
		Items:     rows,
		Templates: templates,
		Size:      10,
		Searcher:  Searcher(rows),
		Stdin:     io.NopCloser(in),
		Stdout:    nopCloser{out},
	}

	i, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
			return nil, ErrCancelled
		}
		return nil, err
	}
	return entries[i], nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
