// Package state provides the runners that move entries between the active
// list, the archive and the bin.
package state

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/printers"
)

// Change moves the referenced entry to To. Purge removes a deleted entry
// for good.
type Change struct {
	Ref   app.Ref
	To    entry.State
	Purge bool

	Service *app.Service
	Format  string
	Out     io.Writer
}

func (n *Change) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not change state, no service")
	}

	e, err := n.Service.Resolve(n.Ref)
	if err != nil {
		return err
	}

	var c app.Change
	if n.Purge {
		c, err = n.Service.Remove(e.ID)
	} else {
		c, err = n.Service.ChangeState(e.ID, n.To)
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
