package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tableflip.dev/northstar/pkg/app"
	"tableflip.dev/northstar/pkg/entry"
	"tableflip.dev/northstar/pkg/export"
	"tableflip.dev/northstar/pkg/runner/show"
)

// Stdout as Dir writes the export to Out instead of a file.
const Stdout = "-"

// Text exports one entry as a plain text file.
type Text struct {
	Service *app.Service
	Key     string
	Dir     string
	Out     io.Writer
}

func (n *Text) Do(ctx context.Context) error {
	e, err := show.Resolve(ctx, n.Service, n.Key)
	if err != nil {
		return err
	}
	return write(n.Dir, export.TextFilename(e), n.Out, func(w io.Writer) error {
		return export.Text(w, e)
	})
}

// Markdown exports one entry as a Markdown file.
type Markdown struct {
	Service *app.Service
	Key     string
	Dir     string
	Out     io.Writer
}

func (n *Markdown) Do(ctx context.Context) error {
	e, err := show.Resolve(ctx, n.Service, n.Key)
	if err != nil {
		return err
	}
	return write(n.Dir, export.MarkdownFilename(e), n.Out, func(w io.Writer) error {
		return export.Markdown(w, e)
	})
}

// CSV exports every entry, newest first, as one CSV file.
type CSV struct {
	Service *app.Service
	Dir     string
	Out     io.Writer
}

func (n *CSV) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	entries, err := n.Service.Entries(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return export.ErrNoEntries
	}
	name := export.CSVFilename(entry.FormatDate(n.Service.Today().Time))
	return write(n.Dir, name, n.Out, func(w io.Writer) error {
		return export.CSV(w, entries)
	})
}

func write(dir, name string, out io.Writer, render func(io.Writer) error) error {
	if dir == Stdout {
		if err := render(out); err != nil {
			return err
		}
		_, err := io.WriteString(out, "\n")
		return err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: ensure directory: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Wrote %s\n", path)
	return err
}
