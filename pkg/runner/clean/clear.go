// Package clean provides the runner that empties the archive or the bin.
package clean

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/printers"
)

type Clear struct {
	Scope app.ClearScope

	Service *app.Service
	Format  string
	Out     io.Writer
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not clear, no service")
	}

	count, err := n.Service.Clear(n.Scope)
	if err != nil {
		return err
	}
	if count > 0 {
		if err := n.Service.Persist(ctx); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{Now: n.Service.Clock(), Out: n.Out}
	if n.Format != "" && n.Format != printers.FormatText {
		return pp.Encode(n.Format, map[string]interface{}{"scope": n.Scope.String(), "entries": count})
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if count == 0 {
		_, _ = color.New(color.Faint).Fprintf(out, "Nothing to clear in the %s.\n", n.Scope)
		return nil
	}
	_, _ = color.New(color.FgGreen).Fprint(out, "Cleared: ")
	_, _ = fmt.Fprintf(out, "%d %s from the %s\n", count, plural(count), n.Scope)
	pp.Status(n.Service.Updated())
	return nil
}

func plural(n int) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}
