package collection

import (
	"fmt"

	"tableflip.dev/agenda/pkg/entry"
)

// Book holds one List per entry kind.
type Book struct {
	lists map[entry.Kind]*List
}

// NewBook returns a book with empty lists.
func NewBook() *Book {
	b := &Book{lists: make(map[entry.Kind]*List, 3)}
	for _, k := range entry.Kinds() {
		b.lists[k] = NewList(k)
	}
	return b
}

// List returns the list for kind k.
func (b *Book) List(k entry.Kind) *List {
	l, ok := b.lists[k]
	if !ok {
		panic(fmt.Sprintf("collection: no list for %s", k))
	}
	return l
}

// For returns the list that holds e.
func (b *Book) For(e *entry.Entry) *List {
	return b.List(e.Kind())
}

// Find looks up id across all lists.
func (b *Book) Find(id string) (*entry.Entry, bool) {
	for _, k := range entry.Kinds() {
		if e, ok := b.lists[k].Get(id); ok {
			return e, true
		}
	}
	return nil, false
}

// Len returns the total number of entries.
func (b *Book) Len() int {
	n := 0
	for _, l := range b.lists {
		n += l.Len()
	}
	return n
}

// Contents returns copies of every entry, in every state, keyed by kind.
func (b *Book) Contents() map[entry.Kind][]*entry.Entry {
	out := make(map[entry.Kind][]*entry.Entry, len(b.lists))
	for k, l := range b.lists {
		out[k] = l.Entries()
	}
	return out
}

// Load replaces the content of every list. Kinds missing from contents are
// emptied. On error the book is left unchanged.
func (b *Book) Load(contents map[entry.Kind][]*entry.Entry) error {
	fresh := NewBook()
	for k, entries := range contents {
		l, ok := fresh.lists[k]
		if !ok {
			return fmt.Errorf("collection: unknown kind %s", k)
		}
		if err := l.Reset(entries); err != nil {
			return fmt.Errorf("collection: loading %s: %w", k.Plural(), err)
		}
	}
	b.lists = fresh.lists
	return nil
}
