package printers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/northstar/pkg/app"
	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/stats"
)

const wrapWidth = 76

type PrettyPrint struct {
	ShowKey bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	if color.Output != nil {
		return color.Output
	}
	return os.Stdout
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Today prints the header shown before writing: date, focus, scripture
// and the current streak.
func (pp *PrettyPrint) Today(day app.Day, streak int) {
	w := pp.out()
	pp.Title(day.Time.Format("Monday, January 2, 2006"))
	f := color.New(color.FgHiCyan, color.Bold)
	i := color.New(color.Italic, color.Faint)
	_, _ = f.Fprintf(w, "Today's Focus: %s\n", day.Theme)
	_, _ = i.Fprintf(w, "Scripture: %s\n", day.Scripture)
	_, _ = fmt.Fprintf(w, "Current Streak: %s\n", Days(streak))
}

// History prints one line per entry.
func (pp *PrettyPrint) History(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " no entries\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	for _, e := range entries {
		action := e.ActionItem
		if action == "" {
			action = "-"
		}
		if pp.ShowKey {
			tbl.AddRow(y.Sprint(e.CreatedAt), e.Date, e.Theme, action)
		} else {
			tbl.AddRow(e.Date, e.Theme, action)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Entry prints every field of e.
func (pp *PrettyPrint) Entry(e *entry.Entry, questions []string) {
	w := pp.out()
	pp.Title(e.Title())
	i := color.New(color.Italic, color.Faint)
	b := color.New(color.Bold)
	if s := e.Scripture(); s != "" {
		_, _ = i.Fprintf(w, "Scripture: %s\n", s)
	}
	pp.NewLine()
	for n, answer := range e.Responses.Ordered() {
		label := fmt.Sprintf("Q%d", n+1)
		if n < len(questions) {
			label = fmt.Sprintf("Q%d %s", n+1, questions[n])
		}
		_, _ = b.Fprintln(w, label)
		if answer == "" {
			answer = "-"
		}
		answer = wordwrap.String(answer, wrapWidth)
		_, _ = fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(answer, "\n", "\n  "))
	}
	pp.NewLine()
	_, _ = b.Fprint(w, "Action: ")
	_, _ = fmt.Fprintln(w, e.ActionItem)
	if pp.ShowKey {
		_, _ = i.Fprintf(w, "created %s\n", e.CreatedAt)
	}
}

// Weekly prints the trailing seven day summary. Nothing is printed for an
// empty week.
func (pp *PrettyPrint) Weekly(s stats.WeeklySummary) {
	if s.Count == 0 {
		return
	}
	w := pp.out()
	pp.Title("Weekly Summary")
	_, _ = fmt.Fprintf(w, "Days Completed: %d/%d\n", s.Count, stats.WeekDays)
	_, _ = fmt.Fprintf(w, "Themes: %s\n", strings.Join(s.Themes, ", "))
	if len(s.Actions) > 0 {
		_, _ = color.New(color.Bold).Fprintln(w, "Action Items:")
		for _, a := range s.Actions {
			_, _ = fmt.Fprintf(w, "  • %s\n", a)
		}
	}
	pp.NewLine()
}

// Monthly prints distinct journaled days per month, newest first.
func (pp *PrettyPrint) Monthly(months []stats.Month) {
	if len(months) == 0 {
		return
	}
	pp.Title("Monthly Consistency")
	profile := Profile(pp.out())
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, m := range months {
		ratio := 0.0
		if t, err := time.Parse(entry.LayoutMonth, m.Key); err == nil {
			ratio = float64(m.Days) / float64(DaysIn(t))
		}
		tbl.AddRow(m.Label, Bar(ratio, profile), Days(m.Days))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Days renders n with a singular or plural unit.
func Days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
