package history

import (
	"fmt"
	"time"

	"tableflip.dev/agenda/pkg/collection"
	"tableflip.dev/agenda/pkg/entry"
)

// Op names the kind of mutation a Record captures.
type Op string

const (
	OpAdd    Op = "add"
	OpEdit   Op = "edit"
	OpState  Op = "state"
	OpRemove Op = "remove"
	OpBatch  Op = "batch"
)

// Record is one committed mutation with the snapshots needed to replay or
// reverse it. Before is nil for adds, After is nil for removals. Index is the
// ordinal position of the entry in its list, so a reversed removal puts the
// entry back where it was.
type Record struct {
	Op     Op
	Kind   entry.Kind
	Before *entry.Entry
	After  *entry.Entry
	Index  int
	Steps  []Record
	Label  string
	At     time.Time
}

// Describe renders a short past tense summary of the record.
func (r Record) Describe() string {
	switch r.Op {
	case OpAdd:
		return "added " + r.After.String()
	case OpEdit:
		return "edited " + r.After.String()
	case OpState:
		return fmt.Sprintf("%s %s", transitionVerb(r.Before.State, r.After.State), r.After.String())
	case OpRemove:
		return "purged " + r.Before.String()
	case OpBatch:
		if r.Label != "" {
			return fmt.Sprintf("%s (%d entries)", r.Label, len(r.Steps))
		}
		return fmt.Sprintf("changed %d entries", len(r.Steps))
	}
	return string(r.Op)
}

func transitionVerb(from, to entry.State) string {
	switch to {
	case entry.Archived:
		return "completed"
	case entry.Deleted:
		return "deleted"
	case entry.Active:
		return "restored"
	}
	return fmt.Sprintf("moved from %s to %s", from, to)
}

// apply replays the record against b, or reverses it when forward is false.
// A failed apply leaves b unchanged.
func (r Record) apply(b *collection.Book, forward bool) error {
	switch r.Op {
	case OpAdd:
		if forward {
			return b.List(r.Kind).Insert(r.Index, r.After)
		}
		_, err := b.List(r.Kind).Remove(r.After.ID)
		return err
	case OpEdit, OpState:
		if forward {
			return b.List(r.Kind).Put(r.After)
		}
		return b.List(r.Kind).Put(r.Before)
	case OpRemove:
		if forward {
			_, err := b.List(r.Kind).Remove(r.Before.ID)
			return err
		}
		return b.List(r.Kind).Insert(r.Index, r.Before)
	case OpBatch:
		return r.applyBatch(b, forward)
	}
	return fmt.Errorf("history: unknown operation %q", r.Op)
}

func (r Record) applyBatch(b *collection.Book, forward bool) error {
	order := make([]Record, len(r.Steps))
	copy(order, r.Steps)
	if !forward {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}
	for i, step := range order {
		if err := step.apply(b, forward); err != nil {
			for k := i - 1; k >= 0; k-- {
				if rerr := order[k].apply(b, !forward); rerr != nil {
					panic(fmt.Sprintf("history: rollback of %s failed: %v", order[k].Op, rerr))
				}
			}
			return err
		}
	}
	return nil
}
