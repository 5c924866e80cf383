// Package watch provides the runner that follows changes made by other
// agenda processes.
package watch

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/log"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

// Watch reloads the book whenever the store changes and prints the current
// view, until ctx is done.
type Watch struct {
	ShowID bool

	Service *app.Service
	Out     io.Writer
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not watch, no service")
	}
	logger := log.Module("watch")

	out := n.Out
	if out == nil {
		out = color.Output
	}

	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}

	show := func() {
		pp := printers.PrettyPrint{ShowID: n.ShowID, Now: n.Service.Clock(), Out: out}
		pp.View(n.Service.View())
		pp.Status(n.Service.Updated())
	}
	unsubscribe := n.Service.Subscribe(show)
	defer unsubscribe()

	show()
	_, _ = color.New(color.Faint, color.Italic).Fprintf(out, "Watching %s, ctrl-c to stop.\n", n.Service.Persistence.Location())

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			logger.Debug("store changed", "collection", ev.Collection, "type", ev.Type)
			if ev.Type == store.EventCollectionChanged {
				_, _ = color.New(color.Faint).Fprintf(out, "%s changed\n", ev.Collection)
			}
			if err := n.Service.Open(ctx); err != nil {
				logger.Warn("reload", "err", err)
			}
		}
	}
}
