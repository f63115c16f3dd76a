package history

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/northstar/pkg/app"
	"tableflip.dev/northstar/pkg/printers"
	"tableflip.dev/northstar/pkg/theme"
	"tableflip.dev/northstar/pkg/timeutil"
)

type History struct {
	Service *app.Service
	Theme   string
	// Days limits the listing to the last Days calendar days; 0 is all.
	Days    int
	ShowKey bool
	JSON    bool
	Out     io.Writer
}

func (n *History) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get history, no service")
	}
	entries, err := n.Service.History(ctx, n.Theme)
	if err != nil {
		return err
	}
	entries = n.Service.Recent(entries, n.Days)
	if n.JSON {
		return printers.JSON(n.Out, entries)
	}

	pp := printers.PrettyPrint{Out: n.Out, ShowKey: n.ShowKey}
	title := "History"
	if name, _ := theme.Parse(n.Theme); name != theme.All {
		title = "History · " + name
	}
	if n.Days > 0 {
		title += " · last " + timeutil.FormatDays(n.Days)
	}
	pp.TitleWithCount(title, len(entries))
	pp.History(entries...)
	return nil
}
