package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/agenda/pkg/collection"
	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/history"
	"tableflip.dev/agenda/pkg/log"
	"tableflip.dev/agenda/pkg/rules"
	"tableflip.dev/agenda/pkg/search"
	"tableflip.dev/agenda/pkg/store"
)

var (
	ErrIllegalTransition = errors.New("app: illegal state transition")
	ErrOverlap           = errors.New("app: overlapping event")
	ErrOverdue           = errors.New("app: entry is overdue")
	ErrNoMatch           = errors.New("app: no entries found")
	ErrAmbiguous         = errors.New("app: more than one entry found")
	// ErrNotFound is collection.ErrNotFound, re-exported for callers of Service.
	ErrNotFound = collection.ErrNotFound
)

// Service provides the lifecycle operations over a collection.Book and
// records each committed change in History. It is not safe for concurrent
// use: one command runs to completion before the next starts.
type Service struct {
	Book        *collection.Book
	History     *history.Manager
	Policy      Policy
	Persistence store.Persistence
	// Now is the clock used for overdue checks and history timestamps.
	Now func() time.Time

	updated     time.Time
	subscribers map[int]func()
	nextSub     int
	log         *slog.Logger
}

// New returns a service with an empty book. Persistence may be nil.
func New(p store.Persistence, policy Policy, historyLimit int) *Service {
	return &Service{
		Book:        collection.NewBook(),
		History:     history.New(historyLimit),
		Policy:      policy,
		Persistence: p,
		Now:         time.Now,
		subscribers: make(map[int]func()),
		log:         log.Module("app"),
	}
}

// Change describes a committed mutation.
type Change struct {
	Op     history.Op
	Before *entry.Entry
	After  *entry.Entry
	// Overdue is set when a lenient policy let an overdue entry through.
	Overdue bool
}

// Clock returns the current time of the service clock.
func (s *Service) Clock() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Open replaces the book and history with the stored snapshot.
func (s *Service) Open(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	snap, err := s.Persistence.Load(ctx)
	if err != nil {
		return err
	}
	if err := s.Book.Load(snap.Entries); err != nil {
		return err
	}
	s.History.Restore(snap.Journal)
	s.updated = snap.Updated
	s.notify()
	return nil
}

// Save writes the book and history to persistence.
func (s *Service) Save(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	return s.SaveTo(ctx, s.Persistence)
}

// Persist saves like Save. When the save fails the service reloads from
// the store, so a long running session never runs ahead of what is stored.
func (s *Service) Persist(ctx context.Context) error {
	err := s.Save(ctx)
	if err == nil || s.Persistence == nil {
		return err
	}
	if rerr := s.Open(ctx); rerr != nil {
		return errors.Join(err, fmt.Errorf("app: reload after failed save: %w", rerr))
	}
	s.log.Warn("save failed, reloaded from store", "err", err)
	return err
}

// SaveTo writes the book and history to p, which need not be the store the
// service was opened from.
func (s *Service) SaveTo(ctx context.Context, p store.Persistence) error {
	return p.Save(ctx, s.Snapshot())
}

// Snapshot copies the book and history in their persisted form.
func (s *Service) Snapshot() *store.Snapshot {
	return &store.Snapshot{
		Entries: s.Book.Contents(),
		Journal: s.History.Journal(),
		Updated: s.updated,
	}
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}

// Updated is the time of the last committed change, undo or redo.
func (s *Service) Updated() time.Time {
	return s.updated
}

// Subscribe registers fn to run after every committed change, undo, redo
// and reload. The returned func removes the subscription.
func (s *Service) Subscribe(fn func()) func() {
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	return func() { delete(s.subscribers, id) }
}

// notify calls the subscribers registered when it starts, in subscription
// order. A subscriber removed by an earlier callback is skipped.
func (s *Service) notify() {
	ids := make([]int, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := s.subscribers[id]; ok {
			fn()
		}
	}
}

func (s *Service) commit(r history.Record) {
	r.At = s.Clock()
	s.History.Record(r)
	s.updated = r.At
	s.log.Debug("committed", "op", r.Op, "summary", r.Describe())
	s.notify()
}

func activeOnly(e *entry.Entry) bool {
	return e.State == entry.Active
}

// checkTemporal runs the overlap and overdue rules against the active pool.
// Overlap always blocks; overdue blocks only under a strict policy.
func (s *Service) checkTemporal(candidate *entry.Entry, policy OverduePolicy) (bool, error) {
	var errs []error
	pool := s.Book.For(candidate).Filter(activeOnly)
	if hits := rules.Conflicts(candidate, pool); len(hits) > 0 {
		errs = append(errs, fmt.Errorf("%w: %q conflicts with %s", ErrOverlap, candidate.Name, hits[0]))
	}
	overdue := rules.IsOverdue(candidate, s.Clock())
	if overdue && policy == Strict {
		errs = append(errs, fmt.Errorf("%w: %s", ErrOverdue, candidate))
	}
	return overdue, errors.Join(errs...)
}

// Add stores e as a new active entry.
func (s *Service) Add(e *entry.Entry) (Change, error) {
	if e == nil {
		return Change{}, fmt.Errorf("%w: nil entry", entry.ErrInvalidField)
	}
	candidate := e.Clone()
	candidate.State = entry.Active
	candidate.Tags = entry.NormalizeTags(candidate.Tags)
	if candidate.ID == "" {
		candidate.ID = uuid.NewString()
	}
	if err := candidate.Validate(); err != nil {
		return Change{}, err
	}
	overdue, err := s.checkTemporal(candidate, s.Policy.Add)
	if err != nil {
		return Change{}, err
	}
	list := s.Book.For(candidate)
	if err := list.Add(candidate); err != nil {
		return Change{}, err
	}
	s.commit(history.Record{
		Op:    history.OpAdd,
		Kind:  candidate.Kind(),
		After: candidate.Clone(),
		Index: list.Index(candidate.ID),
	})
	return Change{Op: history.OpAdd, After: candidate, Overdue: overdue}, nil
}

// Edit overwrites the name, tags and times of the entry with the given id
// with those of updated. Active entries are checked against the other
// active entries; the entry being edited never conflicts with itself.
func (s *Service) Edit(id string, updated *entry.Entry) (Change, error) {
	before, ok := s.Book.Find(id)
	if !ok {
		return Change{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	after := before.Clone()
	if err := after.Reset(updated); err != nil {
		return Change{}, err
	}
	after.Tags = entry.NormalizeTags(after.Tags)
	if err := after.Validate(); err != nil {
		return Change{}, err
	}
	var overdue bool
	if after.State == entry.Active {
		var err error
		if overdue, err = s.checkTemporal(after, s.Policy.Edit); err != nil {
			return Change{}, err
		}
	}
	if after.Equal(before) {
		return Change{Op: history.OpEdit, Before: before, After: after, Overdue: overdue}, nil
	}
	if err := s.Book.For(after).Replace(after); err != nil {
		return Change{}, err
	}
	s.commit(history.Record{
		Op:     history.OpEdit,
		Kind:   after.Kind(),
		Before: before.Clone(),
		After:  after.Clone(),
	})
	return Change{Op: history.OpEdit, Before: before, After: after, Overdue: overdue}, nil
}

// ChangeState moves the entry with the given id to state to. Leaving the
// active pool never conflicts and re-entering it is not re-validated.
func (s *Service) ChangeState(id string, to entry.State) (Change, error) {
	before, ok := s.Book.Find(id)
	if !ok {
		return Change{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if !CanTransition(before.State, to) {
		return Change{}, fmt.Errorf("%w: %q is %s and cannot become %s", ErrIllegalTransition, before.Name, before.State, to)
	}
	after := before.Clone()
	after.State = to
	if err := s.Book.For(after).Put(after); err != nil {
		panic(fmt.Sprintf("app: entry %s vanished during state change: %v", id, err))
	}
	s.commit(history.Record{
		Op:     history.OpState,
		Kind:   after.Kind(),
		Before: before.Clone(),
		After:  after.Clone(),
	})
	return Change{Op: history.OpState, Before: before, After: after}, nil
}

// Complete archives an active entry.
func (s *Service) Complete(id string) (Change, error) {
	return s.ChangeState(id, entry.Archived)
}

// Delete moves an active or archived entry to the bin.
func (s *Service) Delete(id string) (Change, error) {
	return s.ChangeState(id, entry.Deleted)
}

// Restore returns an archived or deleted entry to the active pool.
func (s *Service) Restore(id string) (Change, error) {
	return s.ChangeState(id, entry.Active)
}

// Remove permanently destroys an entry that is already in the bin.
func (s *Service) Remove(id string) (Change, error) {
	before, ok := s.Book.Find(id)
	if !ok {
		return Change{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if before.State != entry.Deleted {
		return Change{}, fmt.Errorf("%w: %q is %s, only deleted entries can be purged", ErrIllegalTransition, before.Name, before.State)
	}
	list := s.Book.For(before)
	index := list.Index(id)
	if _, err := list.Remove(id); err != nil {
		panic(fmt.Sprintf("app: entry %s vanished during removal: %v", id, err))
	}
	s.commit(history.Record{
		Op:     history.OpRemove,
		Kind:   before.Kind(),
		Before: before.Clone(),
		Index:  index,
	})
	return Change{Op: history.OpRemove, Before: before}, nil
}

// CompleteMatching archives the single active entry whose name and tags
// contain every keyword. The search becomes the current view.
func (s *Service) CompleteMatching(keywords []string) (Change, error) {
	q := search.Query{Keywords: search.Keywords(keywords), State: entry.Active, Mode: search.Strict}
	hits := s.Find(q).All()
	switch len(hits) {
	case 0:
		return Change{}, fmt.Errorf("%w: nothing active matches %q", ErrNoMatch, keywords)
	case 1:
		return s.Complete(hits[0].ID)
	default:
		return Change{}, fmt.Errorf("%w: %d active entries match %q", ErrAmbiguous, len(hits), keywords)
	}
}

// Undo reverses the most recent change.
func (s *Service) Undo() (history.Record, error) {
	r, err := s.History.Undo(s.Book)
	if err != nil {
		return r, err
	}
	s.updated = s.Clock()
	s.notify()
	return r, nil
}

// Redo replays the most recently undone change.
func (s *Service) Redo() (history.Record, error) {
	r, err := s.History.Redo(s.Book)
	if err != nil {
		return r, err
	}
	s.updated = s.Clock()
	s.notify()
	return r, nil
}

// ClearHistory drops the undo and redo stacks.
func (s *Service) ClearHistory() {
	s.History.Clear()
}

// Find runs q and remembers it as the current view.
func (s *Service) Find(q search.Query) search.Result {
	s.History.SetLastSearch(q)
	return q.Apply(s.Book)
}

// View re-applies the last search, or lists every active entry if nothing
// was searched yet.
func (s *Service) View() (search.Query, search.Result) {
	q, ok := s.History.LastSearch()
	if !ok {
		q = search.Active()
	}
	return q, q.Apply(s.Book)
}
