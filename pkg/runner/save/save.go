// Package save provides the runner that copies the agenda to another store.
package save

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

// Save writes every entry and the history to the store at Path. The
// session keeps using the store it was opened from.
type Save struct {
	Path    string
	Backend string

	Service *app.Service
	Format  string
	Out     io.Writer
}

type savedView struct {
	Location string `json:"location" yaml:"location"`
	Entries  int    `json:"entries" yaml:"entries"`
}

func (n *Save) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not save, no service")
	}
	if n.Path == "" {
		return errors.New("save: no path given")
	}

	p, err := store.Load(&store.Settings{Path: n.Path, Store: n.Backend})
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := n.Service.SaveTo(ctx, p); err != nil {
		_ = p.Close()
		return fmt.Errorf("save: %w", err)
	}
	if err := p.Close(); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	view := savedView{Location: p.Location(), Entries: n.Service.Book.Len()}
	pp := printers.PrettyPrint{Out: n.Out}
	if n.Format != "" && n.Format != printers.FormatText {
		return pp.Encode(n.Format, view)
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.FgGreen).Fprint(out, "Saved: ")
	_, _ = fmt.Fprintf(out, "%d entries to %s\n", view.Entries, view.Location)
	return nil
}
