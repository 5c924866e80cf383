// Package review provides the runner that lists overdue entries.
package review

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/printers"
)

type Overdue struct {
	Service *app.Service
	Format  string
	Out     io.Writer
}

func (n *Overdue) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not review, no service")
	}

	candidates := n.Service.Overdue()
	pp := printers.PrettyPrint{Now: n.Service.Clock(), Out: n.Out}
	if n.Format != "" && n.Format != printers.FormatText {
		views := make([]printers.EntryView, 0, len(candidates))
		for _, c := range candidates {
			views = append(views, printers.NewEntryView(c.Entry, pp.Now))
		}
		return pp.Encode(n.Format, views)
	}
	pp.Overdue(candidates)
	return nil
}
