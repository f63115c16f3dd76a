package show

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/northstar/pkg/app"
	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/export"
	"tableflip.dev/northstar/pkg/picker"
	"tableflip.dev/northstar/pkg/printers"
)

// Latest selects the newest entry instead of a createdAt key.
const Latest = "latest"

type Show struct {
	Service *app.Service
	Key     string
	ShowKey bool
	JSON    bool
	// Pick asks the user to choose the entry from In.
	Pick bool
	// Markdown renders the entry as styled Markdown, Width columns wide.
	Markdown bool
	Width    int
	In       io.Reader
	Out      io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	var (
		e   *entry.Entry
		err error
	)
	if n.Pick {
		e, err = n.pick(ctx)
	} else {
		e, err = Resolve(ctx, n.Service, n.Key)
	}
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, e)
	}
	if n.Markdown {
		width := n.Width
		if width <= 0 {
			width = 80
		}
		return export.RenderMarkdown(n.Out, e, width, printers.MarkdownStyle(n.Out))
	}
	pp := printers.PrettyPrint{Out: n.Out, ShowKey: n.ShowKey}
	pp.Entry(e, entry.Prompts)
	return nil
}

func (n *Show) pick(ctx context.Context) (*entry.Entry, error) {
	if n.Service == nil {
		return nil, errors.New("can not find entry, no service")
	}
	entries, err := n.Service.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return picker.Pick(entries, n.In, n.Out)
}

// Resolve finds the entry named by key, where key is a createdAt or
// "latest".
func Resolve(ctx context.Context, svc *app.Service, key string) (*entry.Entry, error) {
	if svc == nil {
		return nil, errors.New("can not find entry, no service")
	}
	if key == "" || key == Latest {
		e, err := svc.Latest(ctx)
		if err != nil {
			return nil, err
		}
		if e == nil {
			return nil, errors.New("no entries yet")
		}
		return e, nil
	}
	return svc.Entry(ctx, key)
}
