package export

import (
	"fmt"
	"io"
	"strings"

	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/theme"
)

// FilePrefix starts every exported file name.
const FilePrefix = "fit-2026"

// Text writes a single entry as plain text.
func Text(w io.Writer, e *entry.Entry) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Date: %s\n", e.Date)
	fmt.Fprintf(&b, "Theme: %s\n", e.Theme)
	fmt.Fprintf(&b, "Scripture: %s\n\n", e.Scripture())
	for i, answer := range e.Responses.Ordered() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, answer)
	}
	fmt.Fprintf(&b, "\nAction Item:\n%s", e.ActionItem)

	_, err := io.WriteString(w, strings.TrimSpace(b.String()))
	return err
}

// TextFilename names the export of e, e.g.
// fit-2026_2026-01-02_health_fitness.txt.
func TextFilename(e *entry.Entry) string {
	return fmt.Sprintf("%s_%s_%s.txt", FilePrefix, fileDate(e), theme.Slug(e.Theme))
}

// fileDate is e.Date when it is a real calendar day. Anything else, such as
// a legacy date holding path separators, is slugged so the name stays
// inside the export directory.
func fileDate(e *entry.Entry) string {
	if _, err := entry.ParseDate(e.Date); err == nil {
		return e.Date
	}
	return theme.Slug(e.Date)
}
