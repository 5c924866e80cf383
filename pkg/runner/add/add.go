// Package add provides the runner that stores a new entry.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/printers"
)

type Add struct {
	Entry   *entry.Entry
	Service *app.Service
	Format  string
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	c, err := n.Service.Add(n.Entry)
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
