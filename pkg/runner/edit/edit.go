// Package edit provides the runner that rewrites the fields of an entry.
package edit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/printers"
)

// Edit changes only the fields that are set. Start and End apply to
// events, Due to deadlines.
type Edit struct {
	Ref       app.Ref
	Name      string
	Tags      []string
	ClearTags bool
	Start     *time.Time
	End       *time.Time
	Due       *time.Time

	Service *app.Service
	Format  string
	Out     io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}

	current, err := n.Service.Resolve(n.Ref)
	if err != nil {
		return err
	}
	updated, err := n.apply(current)
	if err != nil {
		return err
	}

	c, err := n.Service.Edit(current.ID, updated)
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

func (n *Edit) apply(current *entry.Entry) (*entry.Entry, error) {
	updated := current.Clone()
	if n.Name != "" {
		updated.Name = n.Name
	}
	switch {
	case n.ClearTags:
		updated.Tags = append([]string(nil), n.Tags...)
	case len(n.Tags) > 0:
		updated.Tags = append(updated.Tags, n.Tags...)
	}

	switch w := updated.When.(type) {
	case entry.EventTimes:
		if n.Due != nil {
			return nil, fmt.Errorf("%w: %q is an event, use --from and --to", entry.ErrTypeMismatch, current.Name)
		}
		if n.Start != nil {
			w.Start = *n.Start
		}
		if n.End != nil {
			w.End = *n.End
		}
		updated.When = w
	case entry.DueTime:
		if n.Start != nil || n.End != nil {
			return nil, fmt.Errorf("%w: %q is a deadline, use --by", entry.ErrTypeMismatch, current.Name)
		}
		if n.Due != nil {
			w.Due = *n.Due
		}
		updated.When = w
	default:
		if n.Start != nil || n.End != nil || n.Due != nil {
			return nil, fmt.Errorf("%w: %q is a floating task and has no times", entry.ErrTypeMismatch, current.Name)
		}
	}
	return updated, nil
}
