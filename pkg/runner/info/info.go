package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

type Info struct {
	Config  *store.Settings
	Service *app.Service
	Format  string
	Out     io.Writer
}

// Summary is the structured form of info.
type Summary struct {
	ConfigPath string                    `json:"configPath,omitempty" yaml:"configPath,omitempty"`
	Settings   *store.Settings           `json:"settings" yaml:"settings"`
	Location   string                    `json:"location" yaml:"location"`
	Counts     map[string]map[string]int `json:"counts" yaml:"counts"`
	Undo       int                       `json:"undo" yaml:"undo"`
	Redo       int                       `json:"redo" yaml:"redo"`
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if n.Service == nil || n.Service.Persistence == nil {
		return errors.New("failed to create persistence object")
	}

	s := Summary{
		ConfigPath: os.Getenv("AGENDA_CONFIG_PATH"),
		Settings:   n.Config,
		Location:   n.Service.Persistence.Location(),
		Counts:     map[string]map[string]int{},
		Undo:       len(n.Service.History.Records()),
		Redo:       len(n.Service.History.Undone()),
	}
	for _, k := range entry.Kinds() {
		counts := map[string]int{}
		for _, e := range n.Service.Book.List(k).Entries() {
			counts[e.State.String()]++
		}
		s.Counts[k.Plural()] = counts
	}

	pp := printers.PrettyPrint{Out: out}
	if n.Format != "" && n.Format != printers.FormatText {
		return pp.Encode(n.Format, s)
	}

	if s.ConfigPath != "" {
		fmt.Fprintln(out, "AGENDA_CONFIG_PATH found on env, using ", s.ConfigPath)
	} else {
		fmt.Fprintln(out, "AGENDA_CONFIG_PATH env var not set")
	}
	fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	fmt.Fprintln(out, "Config.backend: ", n.Config.Backend())
	fmt.Fprintln(out, "Stored at: ", s.Location)
	fmt.Fprintf(out, "Overdue policy: add %s, edit %s\n", n.Service.Policy.Add, n.Service.Policy.Edit)
	fmt.Fprintln(out, "")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", entry.Active.String(), entry.Archived.String(), entry.Deleted.String())
	for _, k := range entry.Kinds() {
		c := s.Counts[k.Plural()]
		tbl.AddRow(k.Plural(), c[entry.Active.String()], c[entry.Archived.String()], c[entry.Deleted.String()])
	}
	fmt.Fprintln(out, tbl)
	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "History: %d to undo, %d to redo\n", s.Undo, s.Redo)
	pp.Status(n.Service.Updated())
	return nil
}
