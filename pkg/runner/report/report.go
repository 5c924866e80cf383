// Package report provides the runner that lists recently completed entries.
package report

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/timeutil"
)

// Report lists what was completed within Window of now, for example "3d".
type Report struct {
	Window string

	Service *app.Service
	Format  string
	Out     io.Writer
}

type itemView struct {
	Entry       printers.EntryView `json:"entry" yaml:"entry"`
	Completed   bool               `json:"completed" yaml:"completed"`
	CompletedAt time.Time          `json:"completedAt" yaml:"completedAt"`
}

type reportView struct {
	Window string     `json:"window" yaml:"window"`
	Since  time.Time  `json:"since" yaml:"since"`
	Until  time.Time  `json:"until" yaml:"until"`
	Items  []itemView `json:"items" yaml:"items"`
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}

	w, err := timeutil.ParseWindow(n.Window)
	if err != nil {
		return err
	}
	since, until := w.Behind(n.Service.Clock())
	result := n.Service.Report(since, until)

	pp := printers.PrettyPrint{Now: until, Out: n.Out}
	if n.Format != "" && n.Format != printers.FormatText {
		v := reportView{Window: w.String(), Since: result.Since, Until: result.Until, Items: []itemView{}}
		for _, section := range result.Sections {
			for _, item := range section.Entries {
				v.Items = append(v.Items, itemView{
					Entry:       printers.NewEntryView(item.Entry, until),
					Completed:   item.Completed,
					CompletedAt: item.CompletedAt,
				})
			}
		}
		return pp.Encode(n.Format, v)
	}
	pp.Report(result)
	return nil
}
