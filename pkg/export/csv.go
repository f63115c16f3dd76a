package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"tableflip.dev/northstar/pkg/entry"
)

// ErrNoEntries is returned when there is nothing to export.
var ErrNoEntries = errors.New("export: no entries to export")

var csvHeader = []string{
	"Date", "Theme",
	"Question 1", "Question 2", "Question 3", "Question 4", "Question 5",
	"Action Item", "Created At",
}

// CSV writes a header and one row per entry, in the order given. Rows are
// separated by a bare newline and carry no trailing newline.
func CSV(w io.Writer, entries []*entry.Entry) error {
	if len(entries) == 0 {
		return ErrNoEntries
	}
	rows := make([]string, 0, len(entries)+1)
	rows = append(rows, strings.Join(csvHeader, ","))
	for _, e := range entries {
		if e == nil {
			continue
		}
		fields := make([]string, 0, len(csvHeader))
		fields = append(fields, EscapeCSV(e.Date), EscapeCSV(e.Theme))
		for _, answer := range e.Responses.Ordered() {
			fields = append(fields, EscapeCSV(answer))
		}
		fields = append(fields, EscapeCSV(e.ActionItem), EscapeCSV(e.CreatedAt))
		rows = append(rows, strings.Join(fields, ","))
	}
	_, err := io.WriteString(w, strings.Join(rows, "\n"))
	return err
}

// EscapeCSV quotes a field holding a comma, quote or newline and doubles
// any embedded quotes. Other fields pass through untouched.
func EscapeCSV(field string) string {
	if !strings.ContainsAny(field, ",\n\"") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// CSVFilename names a full export made on the given day.
func CSVFilename(today string) string {
	return fmt.Sprintf("%s_full_export_%s.csv", FilePrefix, today)
}
