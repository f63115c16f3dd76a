package write

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/northstar/pkg/app"
	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/form"
	"tableflip.dev/northstar/pkg/printers"
)

type Write struct {
	Service    *app.Service
	Responses  entry.Responses
	ActionItem string
	// Interactive collects the answers with the terminal form from In.
	Interactive bool
	JSON        bool

	In  io.Reader
	Out io.Writer
}

func (n *Write) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not write, no service")
	}

	if n.Interactive {
		day := n.Service.Today()
		m := form.New("Today's Focus: "+day.Theme, "Scripture: "+day.Scripture, entry.Prompts)
		answers, err := form.Run(ctx, m, n.In, n.Out)
		if err != nil {
			return err
		}
		n.Responses = answers.Responses
		n.ActionItem = answers.ActionItem
	}

	e, err := n.Service.Record(ctx, n.Responses, n.ActionItem)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, e)
	}

	pp := printers.PrettyPrint{Out: n.Out, ShowKey: true}
	pp.Entry(e, entry.Prompts)
	pp.NewLine()
	_, err = io.WriteString(n.Out, "Entry saved.\n")
	return err
}
