// Package themes provides CLI helpers to display the theme rotation.
package themes

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/theme"
)

// Themes prints the rotation, the next date each theme comes up, and
// marks the theme of On.
type Themes struct {
	On  time.Time
	Out io.Writer
}

// Do renders the rotation table.
func (k *Themes) Do(_ context.Context) error {
	bold := color.New(color.Bold)
	today := color.New(color.Bold, color.FgHiCyan)

	current := theme.ForDate(k.On)
	day := entry.Midnight(k.On)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Theme"), bold.Sprint("Scripture"), bold.Sprint("Next"))
	for _, t := range theme.Themes() {
		ahead := (t.Index - current.Index + theme.Count()) % theme.Count()
		next := day.AddDate(0, 0, ahead).Format("Mon Jan 2")
		if t.Index == current.Index {
			tbl.AddRow(today.Sprint("›"), today.Sprint(t.Name), t.Scripture, "today")
			continue
		}
		tbl.AddRow(fmt.Sprintf("%2d", t.Index+1), t.Name, t.Scripture, next)
	}
	tbl.RightAlign(0)

	_, err := fmt.Fprintln(k.Out, tbl)
	return err
}
