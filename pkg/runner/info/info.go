package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"tableflip.dev/northstar/pkg/app"
	"tableflip.dev/northstar/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if override := os.Getenv("NORTHSTAR_CONFIG_PATH"); override != "" {
		fmt.Fprintln(n.Out, "NORTHSTAR_CONFIG_PATH found on env, using", override)
	} else {
		fmt.Fprintln(n.Out, "NORTHSTAR_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(n.Out, "Config.path:", n.Config.BasePath())

	if n.Service == nil || n.Service.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	entries, err := n.Service.Entries(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(n.Out, "Entries: %d\n", len(entries))
	if len(entries) > 0 {
		fmt.Fprintf(n.Out, "  newest: %s\n", entries[0].CreatedAt)
		fmt.Fprintf(n.Out, "  oldest: %s\n", entries[len(entries)-1].CreatedAt)
	}

	if n.Service.Local != nil {
		_, pending, err := n.Service.Local.Get(store.LegacyKey)
		if err != nil {
			return err
		}
		if pending {
			fmt.Fprintln(n.Out, "Legacy entries: pending migration")
		}
	}
	return nil
}
