// Package history provides the undo, redo and history runners.
package history

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/printers"
)

// Undo reverses the latest change, or replays the latest undone change
// when Redo is set.
type Undo struct {
	Redo bool

	Service *app.Service
	Format  string
	Out     io.Writer
}

func (n *Undo) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not undo, no service")
	}

	verb := "Undone"
	apply := n.Service.Undo
	if n.Redo {
		verb = "Redone"
		apply = n.Service.Redo
	}
	r, err := apply()
	if err != nil {
		return err
	}
	if err := n.Service.Persist(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Now: n.Service.Clock(), Out: n.Out}
	if n.Format != "" && n.Format != printers.FormatText {
		return pp.Encode(n.Format, map[string]printers.RecordView{strings.ToLower(verb): printers.NewRecordView(r)})
	}
	pp.Undone(verb, r)
	pp.Status(n.Service.Updated())
	return nil
}

// History lists what undo and redo would do. Clear drops both stacks.
type History struct {
	Clear bool

	Service *app.Service
	Format  string
	Out     io.Writer
}

func (n *History) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show history, no service")
	}

	if n.Clear {
		n.Service.ClearHistory()
		if err := n.Service.Persist(ctx); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{Now: n.Service.Clock(), Out: n.Out}
	undo, redo := n.Service.History.Records(), n.Service.History.Undone()
	if n.Format != "" && n.Format != printers.FormatText {
		return pp.Encode(n.Format, map[string][]printers.RecordView{
			"undo": printers.NewRecordViews(undo),
			"redo": printers.NewRecordViews(redo),
		})
	}
	pp.Records(undo, redo)
	return nil
}
