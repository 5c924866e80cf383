package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/history"
	"tableflip.dev/agenda/pkg/rules"
	"tableflip.dev/agenda/pkg/search"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EntryView is the machine readable form of an entry.
type EntryView struct {
	ID      string     `json:"id" yaml:"id"`
	Kind    string     `json:"kind" yaml:"kind"`
	Name    string     `json:"name" yaml:"name"`
	Tags    []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	State   string     `json:"state" yaml:"state"`
	Start   *time.Time `json:"start,omitempty" yaml:"start,omitempty"`
	End     *time.Time `json:"end,omitempty" yaml:"end,omitempty"`
	Overdue bool       `json:"overdue,omitempty" yaml:"overdue,omitempty"`
}

// NewEntryView converts e, marking it overdue relative to now when active.
func NewEntryView(e *entry.Entry, now time.Time) EntryView {
	v := EntryView{
		ID:      e.ID,
		Kind:    e.Kind().Plural(),
		Name:    e.Name,
		Tags:    e.Tags,
		State:   e.State.String(),
		Overdue: e.State == entry.Active && rules.IsOverdue(e, now),
	}
	if t, ok := e.Start(); ok {
		v.Start = &t
	}
	if t, ok := e.End(); ok {
		v.End = &t
	}
	return v
}

// ResultView is the machine readable form of a view.
type ResultView struct {
	Events    []EntryView `json:"events" yaml:"events"`
	Deadlines []EntryView `json:"deadlines" yaml:"deadlines"`
	Tasks     []EntryView `json:"tasks" yaml:"tasks"`
}

func NewResultView(res search.Result, now time.Time) ResultView {
	conv := func(entries []*entry.Entry) []EntryView {
		out := make([]EntryView, 0, len(entries))
		for _, e := range entries {
			out = append(out, NewEntryView(e, now))
		}
		return out
	}
	return ResultView{
		Events:    conv(res.Events),
		Deadlines: conv(res.Deadlines),
		Tasks:     conv(res.Floating),
	}
}

// ChangeView is the machine readable form of a committed change.
type ChangeView struct {
	Op      string     `json:"op" yaml:"op"`
	Before  *EntryView `json:"before,omitempty" yaml:"before,omitempty"`
	After   *EntryView `json:"after,omitempty" yaml:"after,omitempty"`
	Overdue bool       `json:"overdue,omitempty" yaml:"overdue,omitempty"`
}

func NewChangeView(c app.Change, now time.Time) ChangeView {
	v := ChangeView{Op: string(c.Op), Overdue: c.Overdue}
	if c.Before != nil {
		b := NewEntryView(c.Before, now)
		v.Before = &b
	}
	if c.After != nil {
		a := NewEntryView(c.After, now)
		v.After = &a
	}
	return v
}

// RecordView is the machine readable form of a history record.
type RecordView struct {
	Op      string    `json:"op" yaml:"op"`
	At      time.Time `json:"at" yaml:"at"`
	Summary string    `json:"summary" yaml:"summary"`
}

func NewRecordView(r history.Record) RecordView {
	return RecordView{Op: string(r.Op), At: r.At, Summary: r.Describe()}
}

func NewRecordViews(records []history.Record) []RecordView {
	out := make([]RecordView, 0, len(records))
	for _, r := range records {
		out = append(out, NewRecordView(r))
	}
	return out
}

// Encode writes v to w as JSON or YAML.
func Encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("printers: unsupported format %q", format)
}

// Encode writes v in format to the printer's output.
func (pp *PrettyPrint) Encode(format string, v interface{}) error {
	return Encode(pp.out(), format, v)
}
