package today

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/northstar/pkg/app"
	"tableflip.dev/northstar/pkg/printers"
)

type Today struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

type result struct {
	app.Day
	Streak int `json:"streak"`
}

func (n *Today) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show today, no service")
	}
	day := n.Service.Today()
	streak, err := n.Service.Streak(ctx)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, result{Day: day, Streak: streak})
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Today(day, streak)
	return nil
}
