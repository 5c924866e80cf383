// Package get provides the runner behind list and find.
package get

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/search"
)

// Get lists entries. With a Query it runs the search and remembers it as
// the current view; without one it shows the current view again.
type Get struct {
	Query  *search.Query
	ShowID bool

	Service *app.Service
	Format  string
	Out     io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	var (
		q   search.Query
		res search.Result
	)
	if n.Query != nil {
		q = *n.Query
		res = n.Service.Find(q)
		if err := n.Service.Save(ctx); err != nil {
			return err
		}
	} else {
		q, res = n.Service.View()
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Now: n.Service.Clock(), Out: n.Out}
	if n.Format != "" && n.Format != printers.FormatText {
		return pp.Encode(n.Format, printers.NewResultView(res, pp.Now))
	}
	pp.View(q, res)
	return nil
}
