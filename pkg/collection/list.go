// Package collection stores entries in three insertion ordered pools, one
// per entry kind, each holding entries in every lifecycle state.
package collection

import (
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/entry"
)

var (
	// ErrDuplicate is returned when an equal entry already exists in the same
	// list and state.
	ErrDuplicate = errors.New("collection: duplicate entry")
	// ErrNotFound is returned when no entry has the requested ID.
	ErrNotFound = errors.New("collection: entry not found")
)

// List is an insertion ordered sequence of entries of a single kind.
// Removal leaves a hole that is compacted lazily, keeping add, remove and
// replace constant time on average.
type List struct {
	kind  entry.Kind
	slots []*entry.Entry
	pos   map[string]int
	seen  map[string]int
	dead  int
}

// NewList returns an empty list for entries of kind k.
func NewList(k entry.Kind) *List {
	return &List{
		kind: k,
		pos:  make(map[string]int),
		seen: make(map[string]int),
	}
}

// Kind returns the kind of entries held.
func (l *List) Kind() entry.Kind {
	return l.kind
}

// Len returns the number of stored entries.
func (l *List) Len() int {
	return len(l.pos)
}

// Add appends e after checking kind, ID uniqueness and duplicates.
func (l *List) Add(e *entry.Entry) error {
	if err := l.admit(e); err != nil {
		return err
	}
	if _, ok := l.pos[e.ID]; ok {
		return fmt.Errorf("%w: id %s already stored", ErrDuplicate, e.ID)
	}
	if l.seen[e.Fingerprint()] > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicate, e)
	}
	l.append(e.Clone())
	return nil
}

// Replace overwrites the stored entry with the same ID, keeping its
// position. It fails if another entry in the list is equal to e.
func (l *List) Replace(e *entry.Entry) error {
	if err := l.admit(e); err != nil {
		return err
	}
	i, ok := l.pos[e.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, e.ID)
	}
	if fp := e.Fingerprint(); fp != l.slots[i].Fingerprint() && l.seen[fp] > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicate, e)
	}
	l.set(i, e.Clone())
	return nil
}

// Put overwrites the stored entry with the same ID without the duplicate
// check. Lifecycle changes and history replay use it.
func (l *List) Put(e *entry.Entry) error {
	if err := l.admit(e); err != nil {
		return err
	}
	i, ok := l.pos[e.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, e.ID)
	}
	l.set(i, e.Clone())
	return nil
}

// Insert places e so that it becomes the entry at ordinal position at,
// shifting later entries back. An out of range position appends.
func (l *List) Insert(at int, e *entry.Entry) error {
	if err := l.admit(e); err != nil {
		return err
	}
	if _, ok := l.pos[e.ID]; ok {
		return fmt.Errorf("%w: id %s already stored", ErrDuplicate, e.ID)
	}
	if at < 0 || at >= l.Len() {
		l.append(e.Clone())
		return nil
	}
	l.compact()
	l.slots = append(l.slots, nil)
	copy(l.slots[at+1:], l.slots[at:])
	l.slots[at] = e.Clone()
	for i := at; i < len(l.slots); i++ {
		l.pos[l.slots[i].ID] = i
	}
	l.seen[e.Fingerprint()]++
	return nil
}

// Remove deletes the entry with the given ID and returns it.
func (l *List) Remove(id string) (*entry.Entry, error) {
	i, ok := l.pos[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	e := l.slots[i]
	l.forget(e)
	delete(l.pos, id)
	l.slots[i] = nil
	l.dead++
	if l.dead > len(l.slots)/2 {
		l.compact()
	}
	return e, nil
}

// Get returns a copy of the entry with the given ID.
func (l *List) Get(id string) (*entry.Entry, bool) {
	i, ok := l.pos[id]
	if !ok {
		return nil, false
	}
	return l.slots[i].Clone(), true
}

// Index returns the ordinal position of id, or -1.
func (l *List) Index(id string) int {
	i, ok := l.pos[id]
	if !ok {
		return -1
	}
	n := 0
	for _, e := range l.slots[:i] {
		if e != nil {
			n++
		}
	}
	return n
}

// Entries returns copies of every entry in insertion order.
func (l *List) Entries() []*entry.Entry {
	return l.Filter(nil)
}

// Filter returns copies of the entries matching keep, in insertion order.
// A nil predicate keeps everything.
func (l *List) Filter(keep func(*entry.Entry) bool) []*entry.Entry {
	out := make([]*entry.Entry, 0, l.Len())
	for _, e := range l.slots {
		if e == nil {
			continue
		}
		if keep != nil && !keep(e) {
			continue
		}
		out = append(out, e.Clone())
	}
	return out
}

// Reset replaces the whole content of the list. Entries are stored as given,
// without duplicate checks, so a persisted collection always loads.
func (l *List) Reset(entries []*entry.Entry) error {
	fresh := NewList(l.kind)
	for _, e := range entries {
		if err := fresh.admit(e); err != nil {
			return err
		}
		if _, ok := fresh.pos[e.ID]; ok {
			return fmt.Errorf("%w: id %s stored twice", ErrDuplicate, e.ID)
		}
		fresh.append(e.Clone())
	}
	*l = *fresh
	return nil
}

func (l *List) admit(e *entry.Entry) error {
	if e == nil {
		return fmt.Errorf("%w: nil entry", entry.ErrInvalidField)
	}
	if e.Kind() != l.kind {
		return fmt.Errorf("%w: %s list cannot hold a %s", entry.ErrTypeMismatch, l.kind, e.Kind())
	}
	if e.ID == "" {
		return fmt.Errorf("%w: entry has no id", entry.ErrInvalidField)
	}
	return nil
}

func (l *List) append(e *entry.Entry) {
	l.pos[e.ID] = len(l.slots)
	l.slots = append(l.slots, e)
	l.seen[e.Fingerprint()]++
}

func (l *List) set(i int, e *entry.Entry) {
	l.forget(l.slots[i])
	l.slots[i] = e
	l.seen[e.Fingerprint()]++
}

func (l *List) forget(e *entry.Entry) {
	fp := e.Fingerprint()
	if l.seen[fp]--; l.seen[fp] <= 0 {
		delete(l.seen, fp)
	}
}

func (l *List) compact() {
	if l.dead == 0 {
		return
	}
	live := l.slots[:0]
	for _, e := range l.slots {
		if e == nil {
			continue
		}
		l.pos[e.ID] = len(live)
		live = append(live, e)
	}
	for i := len(live); i < len(l.slots); i++ {
		l.slots[i] = nil
	}
	l.slots = live
	l.dead = 0
}
