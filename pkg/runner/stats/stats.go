package stats

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"tableflip.dev/northstar/pkg/app"
	"tableflip.dev/northstar/pkg/printers"
	"tableflip.dev/northstar/pkg/stats"
	"tableflip.dev/northstar/pkg/store"
)

const clearScreen = "\x1b[H\x1b[2J"

type Stats struct {
	Service *app.Service
	// Watch re-renders whenever the entry table changes, until ctx ends.
	Watch bool
	JSON  bool
	Out   io.Writer
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get stats, no service")
	}
	if !n.Watch {
		return n.render(ctx)
	}

	if n.Service.Persistence == nil {
		return app.ErrNoPersistence
	}
	events, err := n.Service.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	if err := n.redraw(ctx); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if n.Service.Logger != nil {
				n.Service.Logger.Debug("store changed", zap.String("key", ev.Key), zap.Bool("invalidated", ev.Type == store.EventInvalidated))
			}
			if err := n.redraw(ctx); err != nil {
				return err
			}
		}
	}
}

func (n *Stats) redraw(ctx context.Context) error {
	if !n.JSON {
		if _, err := io.WriteString(n.Out, clearScreen); err != nil {
			return err
		}
	}
	return n.render(ctx)
}

func (n *Stats) render(ctx context.Context) error {
	entries, err := n.Service.Entries(ctx)
	if err != nil {
		return err
	}
	sum := n.Service.Summarize(entries)
	if n.JSON {
		return printers.JSON(n.Out, sum)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Today(sum.Today, sum.Streak)
	pp.NewLine()
	pp.Month(sum.Today.Time, stats.Dates(entries))
	if sum.Total == 0 {
		pp.History()
		return nil
	}
	pp.Weekly(sum.Weekly)
	pp.Monthly(sum.Monthly)
	return nil
}
