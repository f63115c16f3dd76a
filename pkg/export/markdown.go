package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/theme"
)

// Markdown writes a single entry as a Markdown document with one section
// per question.
func Markdown(w io.Writer, e *entry.Entry) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Title())
	if s := e.Scripture(); s != "" {
		fmt.Fprintf(&b, "> %s\n\n", s)
	}
	for i, answer := range e.Responses.Ordered() {
		prompt := fmt.Sprintf("Question %d", i+1)
		if i < len(entry.Prompts) {
			prompt = entry.Prompts[i]
		}
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, prompt)
		if answer == "" {
			answer = "_No answer._"
		}
		fmt.Fprintf(&b, "%s\n\n", answer)
	}
	if e.ActionItem != "" {
		fmt.Fprintf(&b, "## Action Item\n\n- [ ] %s\n", e.ActionItem)
	}

	_, err := io.WriteString(w, strings.TrimSpace(b.String())+"\n")
	return err
}

// MarkdownFilename names the Markdown export of e.
func MarkdownFilename(e *entry.Entry) string {
	return fmt.Sprintf("%s_%s_%s.md", FilePrefix, fileDate(e), theme.Slug(e.Theme))
}

// RenderMarkdown writes e to w wrapped at width, using the named glamour
// style ("dark", "light", "notty", ...).
func RenderMarkdown(w io.Writer, e *entry.Entry, width int, style string) error {
	var b strings.Builder
	if err := Markdown(&b, e); err != nil {
		return err
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return fmt.Errorf("export: markdown renderer: %w", err)
	}
	out, err := renderer.Render(b.String())
	if err != nil {
		return fmt.Errorf("export: render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
