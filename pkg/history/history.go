// Package history keeps the undo and redo stacks of committed mutations and
// the last view the user asked for.
package history

import (
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/collection"
	"tableflip.dev/agenda/pkg/search"
)

// ErrNoHistory is returned by Undo and Redo when their stack is empty.
var ErrNoHistory = errors.New("history: no history")

// DefaultLimit is the configured undo stack bound when the user sets none.
const DefaultLimit = 100

// Manager owns the undo and redo stacks. It is not safe for concurrent use.
type Manager struct {
	undo  []Record
	redo  []Record
	limit int

	view    search.Query
	hasView bool
}

// New returns a manager keeping at most limit undo records. A limit of zero
// or less keeps every record.
func New(limit int) *Manager {
	if limit < 0 {
		limit = 0
	}
	return &Manager{limit: limit}
}

// Record pushes a committed mutation and invalidates the redo stack.
func (m *Manager) Record(r Record) {
	m.undo = append(m.undo, r)
	m.trim()
	m.redo = nil
}

func (m *Manager) trim() {
	if m.limit == 0 {
		return
	}
	if over := len(m.undo) - m.limit; over > 0 {
		m.undo = append(m.undo[:0:0], m.undo[over:]...)
	}
}

// Undo reverses the most recent record. If the reversal fails the stacks
// and b are left untouched.
func (m *Manager) Undo(b *collection.Book) (Record, error) {
	if len(m.undo) == 0 {
		return Record{}, fmt.Errorf("%w: nothing to undo", ErrNoHistory)
	}
	r := m.undo[len(m.undo)-1]
	if err := r.apply(b, false); err != nil {
		return Record{}, fmt.Errorf("history: undo %s: %w", r.Op, err)
	}
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, r)
	return r, nil
}

// Redo replays the most recently undone record.
func (m *Manager) Redo(b *collection.Book) (Record, error) {
	if len(m.redo) == 0 {
		return Record{}, fmt.Errorf("%w: nothing to redo", ErrNoHistory)
	}
	r := m.redo[len(m.redo)-1]
	if err := r.apply(b, true); err != nil {
		return Record{}, fmt.Errorf("history: redo %s: %w", r.Op, err)
	}
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, r)
	return r, nil
}

// CanUndo reports whether Undo has a record to reverse.
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo reports whether Redo has a record to replay.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// Records returns the undo stack, oldest first.
func (m *Manager) Records() []Record {
	return append([]Record(nil), m.undo...)
}

// Undone returns the redo stack, oldest first.
func (m *Manager) Undone() []Record {
	return append([]Record(nil), m.redo...)
}

// Clear drops both stacks. The last view is kept.
func (m *Manager) Clear() {
	m.undo = nil
	m.redo = nil
}

// SetLastSearch remembers q so a caller can re-apply it after a mutation.
func (m *Manager) SetLastSearch(q search.Query) {
	m.view = q
	m.hasView = true
}

// LastSearch returns the remembered view, if any.
func (m *Manager) LastSearch() (search.Query, bool) {
	return m.view, m.hasView
}

// Journal is the persisted form of a Manager.
type Journal struct {
	Undo       []Record
	Redo       []Record
	LastSearch *search.Query
}

// Journal snapshots the manager for persistence.
func (m *Manager) Journal() Journal {
	j := Journal{Undo: m.Records(), Redo: m.Undone()}
	if m.hasView {
		q := m.view
		j.LastSearch = &q
	}
	return j
}

// Restore replaces the manager state with j, trimming to the limit.
func (m *Manager) Restore(j Journal) {
	m.undo = append([]Record(nil), j.Undo...)
	m.trim()
	m.redo = append([]Record(nil), j.Redo...)
	m.hasView = j.LastSearch != nil
	if m.hasView {
		m.view = *j.LastSearch
	} else {
		m.view = search.Query{}
	}
}
