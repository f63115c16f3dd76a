package migrate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/northstar/pkg/app"
	"tableflip.dev/northstar/pkg/printers"
)

type Migrate struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (n *Migrate) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not migrate, no service")
	}
	res, err := n.Service.Migrate(ctx)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, res)
	}
	switch {
	case res.Discarded:
		_, err = fmt.Fprintln(n.Out, "Legacy entries were unreadable and have been discarded.")
	case res.Migrated == 0:
		_, err = fmt.Fprintln(n.Out, "Nothing to migrate.")
	default:
		_, err = fmt.Fprintf(n.Out, "Your journal entries have been upgraded to the new format (%d migrated).\n", res.Migrated)
	}
	return err
}
