package store

import (
	"fmt"
	"time"

	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/history"
	"tableflip.dev/agenda/pkg/search"
)

// schemaVersion is written into every document.
const schemaVersion = 1

// entryDoc is the stored form of an entry. Seq keeps the insertion order of
// the list the entry belongs to.
type entryDoc struct {
	Schema int              `json:"schema"`
	ID     string           `json:"id"`
	Type   string           `json:"type"`
	Name   string           `json:"name"`
	Tags   []string         `json:"tags,omitempty"`
	State  string           `json:"state"`
	Start  *entry.Timestamp `json:"start,omitempty"`
	End    *entry.Timestamp `json:"end,omitempty"`
	Seq    int              `json:"seq"`
}

func typeTag(k entry.Kind) string {
	switch k {
	case entry.Event:
		return "event"
	case entry.Deadline:
		return "deadline"
	default:
		return "task"
	}
}

func stamp(t time.Time) *entry.Timestamp {
	return &entry.Timestamp{Time: t}
}

func encodeEntry(e *entry.Entry, seq int) *entryDoc {
	if e == nil {
		return nil
	}
	d := &entryDoc{
		Schema: schemaVersion,
		ID:     e.ID,
		Type:   typeTag(e.Kind()),
		Name:   e.Name,
		Tags:   e.Tags,
		State:  e.State.String(),
		Seq:    seq,
	}
	switch w := e.When.(type) {
	case entry.EventTimes:
		d.Start, d.End = stamp(w.Start), stamp(w.End)
	case entry.DueTime:
		d.End = stamp(w.Due)
	}
	return d
}

func decodeEntry(d *entryDoc) (*entry.Entry, error) {
	if d == nil {
		return nil, nil
	}
	state, err := entry.ParseState(d.State)
	if err != nil {
		return nil, err
	}
	e := &entry.Entry{
		ID:    d.ID,
		Name:  d.Name,
		Tags:  entry.NormalizeTags(d.Tags),
		State: state,
	}
	switch d.Type {
	case "event":
		if d.Start == nil || d.End == nil {
			return nil, fmt.Errorf("%w: event %s is missing times", entry.ErrInvalidField, d.ID)
		}
		e.When = entry.EventTimes{Start: d.Start.Time, End: d.End.Time}
	case "deadline":
		if d.End == nil {
			return nil, fmt.Errorf("%w: deadline %s is missing its end", entry.ErrInvalidField, d.ID)
		}
		e.When = entry.DueTime{Due: d.End.Time}
	case "task":
		e.When = entry.Unscheduled{}
	default:
		return nil, fmt.Errorf("store: unknown entry type %q", d.Type)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

type recordDoc struct {
	Op     string          `json:"op"`
	Kind   string          `json:"kind,omitempty"`
	Before *entryDoc       `json:"before,omitempty"`
	After  *entryDoc       `json:"after,omitempty"`
	Index  int             `json:"index"`
	Steps  []recordDoc     `json:"steps,omitempty"`
	Label  string          `json:"label,omitempty"`
	At     entry.Timestamp `json:"at"`
}

func encodeRecord(r history.Record) recordDoc {
	d := recordDoc{
		Op:     string(r.Op),
		Before: encodeEntry(r.Before, 0),
		After:  encodeEntry(r.After, 0),
		Index:  r.Index,
		Label:  r.Label,
		At:     entry.Timestamp{Time: r.At},
	}
	if r.Op != history.OpBatch {
		d.Kind = r.Kind.Plural()
	}
	for _, s := range r.Steps {
		d.Steps = append(d.Steps, encodeRecord(s))
	}
	return d
}

func decodeRecord(d recordDoc) (history.Record, error) {
	r := history.Record{
		Op:    history.Op(d.Op),
		Index: d.Index,
		Label: d.Label,
		At:    d.At.Time,
	}
	if d.Kind != "" {
		k, err := entry.ParseKind(d.Kind)
		if err != nil {
			return r, err
		}
		r.Kind = k
	}
	var err error
	if r.Before, err = decodeEntry(d.Before); err != nil {
		return r, err
	}
	if r.After, err = decodeEntry(d.After); err != nil {
		return r, err
	}
	for _, s := range d.Steps {
		step, err := decodeRecord(s)
		if err != nil {
			return r, err
		}
		r.Steps = append(r.Steps, step)
	}
	return r, nil
}

type queryDoc struct {
	Keywords []string         `json:"keywords,omitempty"`
	From     *entry.Timestamp `json:"from,omitempty"`
	To       *entry.Timestamp `json:"to,omitempty"`
	State    string           `json:"state"`
	Mode     string           `json:"mode"`
	Order    string           `json:"order,omitempty"`
}

func encodeQuery(q *search.Query) *queryDoc {
	if q == nil {
		return nil
	}
	d := &queryDoc{Keywords: q.Keywords, State: q.State.String(), Mode: q.Mode.String()}
	if q.Order != search.Inserted {
		d.Order = q.Order.String()
	}
	if !q.From.IsZero() {
		d.From = stamp(q.From)
	}
	if !q.To.IsZero() {
		d.To = stamp(q.To)
	}
	return d
}

func decodeQuery(d *queryDoc) (*search.Query, error) {
	if d == nil {
		return nil, nil
	}
	state, err := entry.ParseState(d.State)
	if err != nil {
		return nil, err
	}
	q := &search.Query{Keywords: d.Keywords, State: state, Order: search.ParseOrder(d.Order)}
	if d.Mode == search.Strict.String() {
		q.Mode = search.Strict
	}
	if d.From != nil {
		q.From = d.From.Time
	}
	if d.To != nil {
		q.To = d.To.Time
	}
	return q, nil
}

type journalDoc struct {
	Schema     int             `json:"schema"`
	Updated    entry.Timestamp `json:"updated"`
	Undo       []recordDoc     `json:"undo"`
	Redo       []recordDoc     `json:"redo"`
	LastSearch *queryDoc       `json:"lastSearch,omitempty"`
}

func encodeJournal(j history.Journal, updated time.Time) journalDoc {
	d := journalDoc{
		Schema:     schemaVersion,
		Updated:    entry.Timestamp{Time: updated},
		Undo:       []recordDoc{},
		Redo:       []recordDoc{},
		LastSearch: encodeQuery(j.LastSearch),
	}
	for _, r := range j.Undo {
		d.Undo = append(d.Undo, encodeRecord(r))
	}
	for _, r := range j.Redo {
		d.Redo = append(d.Redo, encodeRecord(r))
	}
	return d
}

func decodeJournal(d journalDoc) (history.Journal, time.Time, error) {
	var j history.Journal
	for _, rd := range d.Undo {
		r, err := decodeRecord(rd)
		if err != nil {
			return j, time.Time{}, err
		}
		j.Undo = append(j.Undo, r)
	}
	for _, rd := range d.Redo {
		r, err := decodeRecord(rd)
		if err != nil {
			return j, time.Time{}, err
		}
		j.Redo = append(j.Redo, r)
	}
	q, err := decodeQuery(d.LastSearch)
	if err != nil {
		return j, time.Time{}, err
	}
	j.LastSearch = q
	return j, d.Updated.Time, nil
}
