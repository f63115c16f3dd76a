package calendar

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/northstar/pkg/app"
	"tableflip.dev/northstar/pkg/export"
)

// Calendar prints a link that opens a new calendar event for an action
// item. With no Action, the latest entry's action item is used.
type Calendar struct {
	Service *app.Service
	Action  string
	Out     io.Writer
}

func (n *Calendar) Do(ctx context.Context) error {
	action := n.Action
	if action == "" {
		if n.Service == nil {
			return errors.New("can not find an action item, no service")
		}
		latest, err := n.Service.Latest(ctx)
		if err != nil {
			return err
		}
		if latest != nil {
			action = latest.ActionItem
		}
	}
	link, err := export.CalendarURL(action)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(n.Out, link)
	return err
}
