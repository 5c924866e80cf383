// Package calendar provides the runner that prints a month of events and
// deadlines.
package calendar

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/printers"
)

// Calendar prints the active events and deadlines of Month, or of the
// current month when Month is zero.
type Calendar struct {
	Month time.Time

	Service *app.Service
	Out     io.Writer
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no service")
	}

	now := n.Service.Clock()
	on := n.Month
	if on.IsZero() {
		on = now
	}

	var entries []*entry.Entry
	for _, k := range []entry.Kind{entry.Event, entry.Deadline} {
		entries = append(entries, n.Service.Book.List(k).Filter(func(e *entry.Entry) bool {
			return e.State == entry.Active
		})...)
	}

	pp := printers.PrettyPrint{Now: now, Out: n.Out}
	pp.Calendar(on, entries...)
	return nil
}
