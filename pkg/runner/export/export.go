// Package export provides the runner that writes the iCalendar feed.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/entry"
	ics "tableflip.dev/agenda/pkg/export"
)

// Export writes the feed to File, or to Out when File is empty.
type Export struct {
	File    string
	Options ics.Options

	Service *app.Service
	Out     io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var entries []*entry.Entry
	for _, k := range entry.Kinds() {
		entries = append(entries, n.Service.Book.List(k).Entries()...)
	}
	if n.Options.Stamp.IsZero() {
		n.Options.Stamp = n.Service.Clock()
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.File == "" || n.File == "-" {
		return ics.Write(out, entries, n.Options)
	}

	f, err := os.Create(n.File)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := ics.Write(f, entries, n.Options); err != nil {
		_ = f.Close()
		return fmt.Errorf("export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	_, _ = color.New(color.FgGreen).Fprint(out, "Exported: ")
	_, _ = fmt.Fprintln(out, n.File)
	return nil
}
