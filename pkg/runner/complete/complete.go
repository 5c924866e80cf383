// Package complete provides the runner logic for marking entries complete.
package complete

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/printers"
)

// Complete archives an entry, either the one Ref points at or the single
// active entry matching Keywords.
type Complete struct {
	Ref      *app.Ref
	Keywords []string

	Service *app.Service
	Format  string
	Out     io.Writer
}

// Do executes the completion. A keyword search becomes the current view
// whether or not it found exactly one entry.
func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	var (
		c   app.Change
		err error
	)
	if n.Ref != nil {
		e, rerr := n.Service.Resolve(*n.Ref)
		if rerr != nil {
			return rerr
		}
		c, err = n.Service.Complete(e.ID)
	} else {
		c, err = n.Service.CompleteMatching(n.Keywords)
		if errors.Is(err, app.ErrAmbiguous) {
			return n.showMatches(ctx, err)
		}
	}
	if err != nil {
		return err
	}
	if err := n.Service.Persist(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Now: n.Service.Clock(), Out: n.Out}
	if n.Format != "" && n.Format != printers.FormatText {
		return pp.Encode(n.Format, printers.NewChangeView(c, pp.Now))
	}
	pp.Change(c)
	pp.Status(n.Service.Updated())
	return nil
}

// showMatches lists the candidates so one can be picked by index.
func (n *Complete) showMatches(ctx context.Context, cause error) error {
	if err := n.Service.Persist(ctx); err != nil {
		return err
	}
	if n.Format == "" || n.Format == printers.FormatText {
		pp := printers.PrettyPrint{Now: n.Service.Clock(), Out: n.Out}
		pp.View(n.Service.View())
	}
	return cause
}
