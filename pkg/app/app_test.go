package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/agenda/pkg/collection"
	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/history"
	"tableflip.dev/agenda/pkg/search"
	"tableflip.dev/agenda/pkg/store"
)

type memoryPersistence struct {
	mu       sync.Mutex
	snap     *store.Snapshot
	saves    int
	failSave error
}

func (m *memoryPersistence) Load(_ context.Context) (*store.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap == nil {
		return &store.Snapshot{Entries: map[entry.Kind][]*entry.Entry{}}, nil
	}
	return m.snap, nil
}

func (m *memoryPersistence) Save(_ context.Context, s *store.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSave != nil {
		return m.failSave
	}
	m.snap = s
	m.saves++
	return nil
}

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	return nil, errors.New("memory: watch unsupported")
}

func (m *memoryPersistence) Location() string { return "memory" }

func (m *memoryPersistence) Close() error { return nil }

// morning is the fixed "now" of these tests.
var morning = time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC)

func newService(policy Policy) *Service {
	s := New(&memoryPersistence{}, policy, 0)
	s.Now = func() time.Time { return morning }
	return s
}

func at(h, m int) time.Time {
	return time.Date(2024, time.March, 4, h, m, 0, 0, time.UTC)
}

func event(t *testing.T, name string, from, to time.Time) *entry.Entry {
	t.Helper()
	e, err := entry.NewEvent(name, from, to)
	require.NoError(t, err)
	return e
}

func TestAddOverlapScenario(t *testing.T) {
	s := newService(DefaultPolicy())

	_, err := s.Add(event(t, "Standup", at(9, 0), at(9, 30)))
	require.NoError(t, err)

	_, err = s.Add(event(t, "Sync", at(9, 15), at(9, 45)))
	require.ErrorIs(t, err, ErrOverlap)

	_, err = s.Add(event(t, "Sync", at(9, 30), at(10, 0)))
	require.NoError(t, err, "touching boundary does not overlap")

	assert.Equal(t, 2, s.Book.List(entry.Event).Len())
}

func TestAddOverdueStrictAndLenient(t *testing.T) {
	yesterday := morning.Add(-24 * time.Hour)

	strict := newService(Policy{Add: Strict, Edit: Lenient})
	d, err := entry.NewDeadline("Report", yesterday)
	require.NoError(t, err)
	_, err = strict.Add(d)
	require.ErrorIs(t, err, ErrOverdue)
	assert.Zero(t, strict.Book.Len())
	assert.False(t, strict.History.CanUndo())

	lenient := newService(DefaultPolicy())
	change, err := lenient.Add(d)
	require.NoError(t, err)
	assert.True(t, change.Overdue)
	assert.Equal(t, 1, lenient.Book.Len())

	dueNow, err := entry.NewDeadline("Now", morning)
	require.NoError(t, err)
	_, err = strict.Add(dueNow)
	require.ErrorIs(t, err, ErrOverdue, "a deadline due now is overdue")

	soon, err := entry.NewDeadline("Soon", morning.Add(time.Microsecond))
	require.NoError(t, err)
	change, err = strict.Add(soon)
	require.NoError(t, err)
	assert.False(t, change.Overdue)
}

func TestAddReportsOverlapAndOverdueTogether(t *testing.T) {
	s := newService(Policy{Add: Strict})
	s.Now = func() time.Time { return at(12, 0) }

	first := event(t, "Standup", at(9, 0), at(9, 30))
	s.Policy.Add = Lenient
	_, err := s.Add(first)
	require.NoError(t, err)
	s.Policy.Add = Strict

	_, err = s.Add(event(t, "Sync", at(9, 15), at(9, 45)))
	assert.ErrorIs(t, err, ErrOverlap)
	assert.ErrorIs(t, err, ErrOverdue)
}

func TestAddDuplicate(t *testing.T) {
	s := newService(DefaultPolicy())
	a, err := entry.NewFloatingTask("Laundry", "home")
	require.NoError(t, err)
	b, err := entry.NewFloatingTask("Laundry", "home")
	require.NoError(t, err)

	_, err = s.Add(a)
	require.NoError(t, err)
	_, err = s.Add(b)
	assert.ErrorIs(t, err, collection.ErrDuplicate)
	assert.Len(t, s.History.Records(), 1)
}

func TestAddDoesNotAliasCaller(t *testing.T) {
	s := newService(DefaultPolicy())
	e, err := entry.NewFloatingTask("Laundry", "home")
	require.NoError(t, err)
	_, err = s.Add(e)
	require.NoError(t, err)

	e.Name = "mutated"
	e.Tags[0] = "elsewhere"
	got, ok := s.Book.Find(e.ID)
	require.True(t, ok)
	assert.Equal(t, "Laundry", got.Name)
	assert.Equal(t, []string{"home"}, got.Tags)
}

func TestChangesDoNotAliasHistory(t *testing.T) {
	s := newService(DefaultPolicy())
	e, err := entry.NewFloatingTask("original")
	require.NoError(t, err)
	_, err = s.Add(e)
	require.NoError(t, err)

	renamed, err := entry.NewFloatingTask("renamed")
	require.NoError(t, err)
	ch, err := s.Edit(e.ID, renamed)
	require.NoError(t, err)
	ch.Before.Name = "scribbled"

	ch, err = s.Delete(e.ID)
	require.NoError(t, err)
	ch.Before.State = entry.Archived

	ch, err = s.Remove(e.ID)
	require.NoError(t, err)
	ch.Before.Name = "scribbled again"

	_, err = s.Undo()
	require.NoError(t, err)
	got, ok := s.Book.Find(e.ID)
	require.True(t, ok)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, entry.Deleted, got.State)

	_, err = s.Undo()
	require.NoError(t, err)
	got, _ = s.Book.Find(e.ID)
	assert.Equal(t, entry.Active, got.State)

	_, err = s.Undo()
	require.NoError(t, err)
	got, _ = s.Book.Find(e.ID)
	assert.Equal(t, "original", got.Name)
}

func TestUnboundedHistoryUndoesToEmpty(t *testing.T) {
	s := New(nil, DefaultPolicy(), 0)
	for i := 0; i < 150; i++ {
		e, err := entry.NewFloatingTask(fmt.Sprintf("task %d", i))
		require.NoError(t, err)
		_, err = s.Add(e)
		require.NoError(t, err)
	}

	undos := 0
	for {
		if _, err := s.Undo(); err != nil {
			require.ErrorIs(t, err, history.ErrNoHistory)
			break
		}
		undos++
	}
	assert.Equal(t, 150, undos)
	assert.Zero(t, s.Book.Len())
}

func TestEditExcludesItselfFromOverlap(t *testing.T) {
	s := newService(DefaultPolicy())
	standup := event(t, "Standup", at(9, 0), at(9, 30))
	_, err := s.Add(standup)
	require.NoError(t, err)
	_, err = s.Add(event(t, "Lunch", at(12, 0), at(13, 0)))
	require.NoError(t, err)

	longer := event(t, "Standup", at(9, 0), at(9, 45))
	change, err := s.Edit(standup.ID, longer)
	require.NoError(t, err)
	end, _ := change.After.End()
	assert.Equal(t, at(9, 45), end)
	assert.Equal(t, standup.ID, change.After.ID)

	_, err = s.Edit(standup.ID, event(t, "Standup", at(12, 30), at(12, 45)))
	require.ErrorIs(t, err, ErrOverlap)

	got, _ := s.Book.Find(standup.ID)
	end, _ = got.End()
	assert.Equal(t, at(9, 45), end, "failed edit leaves the entry untouched")
}

func TestEditErrors(t *testing.T) {
	s := newService(Policy{Edit: Strict})
	task, err := entry.NewFloatingTask("Laundry")
	require.NoError(t, err)
	_, err = s.Add(task)
	require.NoError(t, err)

	d, err := entry.NewDeadline("Report", at(18, 0))
	require.NoError(t, err)
	_, err = s.Edit(task.ID, d)
	assert.ErrorIs(t, err, entry.ErrTypeMismatch)

	_, err = s.Edit("missing", task)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Add(d)
	require.NoError(t, err)
	past, err := entry.NewDeadline("Report", at(7, 0))
	require.NoError(t, err)
	_, err = s.Edit(d.ID, past)
	assert.ErrorIs(t, err, ErrOverdue)
}

func TestEditArchivedSkipsTemporalChecks(t *testing.T) {
	s := newService(Policy{Edit: Strict})
	d, err := entry.NewDeadline("Report", at(18, 0))
	require.NoError(t, err)
	_, err = s.Add(d)
	require.NoError(t, err)
	_, err = s.Complete(d.ID)
	require.NoError(t, err)

	past, err := entry.NewDeadline("Report (late)", at(7, 0))
	require.NoError(t, err)
	change, err := s.Edit(d.ID, past)
	require.NoError(t, err)
	assert.Equal(t, entry.Archived, change.After.State)
}

func TestCompleteUndoRedoScenario(t *testing.T) {
	s := newService(DefaultPolicy())
	task, err := entry.NewFloatingTask("Laundry")
	require.NoError(t, err)
	_, err = s.Add(task)
	require.NoError(t, err)

	change, err := s.Complete(task.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.Archived, change.After.State)

	_, err = s.Undo()
	require.NoError(t, err)
	got, _ := s.Book.Find(task.ID)
	assert.Equal(t, entry.Active, got.State)

	_, err = s.Redo()
	require.NoError(t, err)
	got, _ = s.Book.Find(task.ID)
	assert.Equal(t, entry.Archived, got.State)
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		from, to entry.State
		ok       bool
	}{
		{entry.Active, entry.Archived, true},
		{entry.Active, entry.Deleted, true},
		{entry.Archived, entry.Deleted, true},
		{entry.Archived, entry.Active, true},
		{entry.Deleted, entry.Active, true},
		{entry.Deleted, entry.Archived, false},
		{entry.Active, entry.Active, false},
		{entry.Archived, entry.Archived, false},
		{entry.Deleted, entry.Deleted, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s to %s", tt.from, tt.to), func(t *testing.T) {
			s := newService(DefaultPolicy())
			e, err := entry.NewFloatingTask("Laundry")
			require.NoError(t, err)
			e.State = tt.from
			require.NoError(t, s.Book.For(e).Add(e))

			_, err = s.ChangeState(e.ID, tt.to)
			if tt.ok {
				require.NoError(t, err)
				got, _ := s.Book.Find(e.ID)
				assert.Equal(t, tt.to, got.State)
				return
			}
			assert.ErrorIs(t, err, ErrIllegalTransition)
			got, _ := s.Book.Find(e.ID)
			assert.Equal(t, tt.from, got.State)
		})
	}
}

func TestRestoreSkipsOverlapCheck(t *testing.T) {
	s := newService(DefaultPolicy())
	first := event(t, "Standup", at(9, 0), at(9, 30))
	_, err := s.Add(first)
	require.NoError(t, err)
	_, err = s.Delete(first.ID)
	require.NoError(t, err)

	_, err = s.Add(event(t, "Sync", at(9, 0), at(9, 30)))
	require.NoError(t, err)

	change, err := s.Restore(first.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.Active, change.After.State)
}

func TestRestoreOverdueIsNotRevalidated(t *testing.T) {
	s := newService(Policy{Add: Strict, Edit: Strict})
	d, err := entry.NewDeadline("Report", at(18, 0))
	require.NoError(t, err)
	_, err = s.Add(d)
	require.NoError(t, err)
	_, err = s.Complete(d.ID)
	require.NoError(t, err)

	s.Now = func() time.Time { return at(20, 0) }
	_, err = s.Restore(d.ID)
	assert.NoError(t, err)
}

func TestRemove(t *testing.T) {
	s := newService(DefaultPolicy())
	task, err := entry.NewFloatingTask("Laundry")
	require.NoError(t, err)
	_, err = s.Add(task)
	require.NoError(t, err)

	_, err = s.Remove(task.ID)
	require.ErrorIs(t, err, ErrIllegalTransition)

	_, err = s.Delete(task.ID)
	require.NoError(t, err)
	_, err = s.Remove(task.ID)
	require.NoError(t, err)
	assert.Zero(t, s.Book.Len())

	_, err = s.Remove(task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Undo()
	require.NoError(t, err)
	got, ok := s.Book.Find(task.ID)
	require.True(t, ok)
	assert.Equal(t, entry.Deleted, got.State)
}

func TestUndoEmpty(t *testing.T) {
	s := newService(DefaultPolicy())
	_, err := s.Undo()
	assert.ErrorIs(t, err, history.ErrNoHistory)
	_, err = s.Redo()
	assert.ErrorIs(t, err, history.ErrNoHistory)
}

func TestUndoAllThenRedoAll(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := newService(DefaultPolicy())

	var ids []string
	for step := 0; step < 60; step++ {
		switch op := rng.Intn(6); {
		case op == 0 || len(ids) == 0:
			e, err := entry.NewFloatingTask(fmt.Sprintf("task %d", step), fmt.Sprintf("t%d", rng.Intn(3)))
			require.NoError(t, err)
			if _, err := s.Add(e); err == nil {
				ids = append(ids, e.ID)
			}
		case op == 1:
			start := at(9, 0).Add(time.Duration(rng.Intn(48)) * 15 * time.Minute)
			e := event(t, fmt.Sprintf("event %d", step), start, start.Add(30*time.Minute))
			if _, err := s.Add(e); err == nil {
				ids = append(ids, e.ID)
			}
		case op == 2:
			id := ids[rng.Intn(len(ids))]
			cur, _ := s.Book.Find(id)
			upd := cur.Clone()
			upd.Name = fmt.Sprintf("%s edited %d", cur.Name, step)
			_, _ = s.Edit(id, upd)
		case op == 3:
			_, _ = s.Complete(ids[rng.Intn(len(ids))])
		case op == 4:
			_, _ = s.Delete(ids[rng.Intn(len(ids))])
		default:
			_, _ = s.Restore(ids[rng.Intn(len(ids))])
		}
	}

	final := s.Book.Contents()
	undone := 0
	for {
		if _, err := s.Undo(); err != nil {
			require.ErrorIs(t, err, history.ErrNoHistory)
			break
		}
		undone++
	}
	assert.Zero(t, s.Book.Len(), "undoing everything empties the book")

	for i := 0; i < undone; i++ {
		_, err := s.Redo()
		require.NoError(t, err)
	}
	replayed := s.Book.Contents()
	for _, k := range entry.Kinds() {
		require.Len(t, replayed[k], len(final[k]))
		for i := range final[k] {
			assert.Equal(t, final[k][i].ID, replayed[k][i].ID)
			assert.True(t, final[k][i].Equal(replayed[k][i]))
		}
	}
}

func TestCompleteMatching(t *testing.T) {
	s := newService(DefaultPolicy())
	for _, name := range []string{"Quarterly report", "Report draft", "Call mom"} {
		e, err := entry.NewFloatingTask(name)
		require.NoError(t, err)
		_, err = s.Add(e)
		require.NoError(t, err)
	}

	_, err := s.CompleteMatching([]string{"report"})
	assert.ErrorIs(t, err, ErrAmbiguous)
	_, view := s.View()
	assert.Len(t, view.Floating, 2, "the ambiguous search becomes the view")

	_, err = s.CompleteMatching([]string{"dentist"})
	assert.ErrorIs(t, err, ErrNoMatch)

	change, err := s.CompleteMatching([]string{"report", "draft"})
	require.NoError(t, err)
	assert.Equal(t, "Report draft", change.After.Name)

	_, err = s.CompleteMatching([]string{"report"})
	require.NoError(t, err, "only one active report remains")
}

func TestClear(t *testing.T) {
	s := newService(DefaultPolicy())
	var ids []string
	for _, name := range []string{"a", "b", "c", "d"} {
		e, err := entry.NewFloatingTask(name)
		require.NoError(t, err)
		_, err = s.Add(e)
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}
	_, err := s.Complete(ids[0])
	require.NoError(t, err)
	_, err = s.Delete(ids[1])
	require.NoError(t, err)
	_, err = s.Delete(ids[2])
	require.NoError(t, err)

	n, err := s.Clear(ClearBin)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, s.Book.Len())

	n, err = s.Clear(ClearAll)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "archive moved to bin then purged")
	assert.Equal(t, 1, s.Book.Len())

	_, err = s.Undo()
	require.NoError(t, err)
	got, ok := s.Book.Find(ids[0])
	require.True(t, ok)
	assert.Equal(t, entry.Archived, got.State)

	_, err = s.Undo()
	require.NoError(t, err)
	var names []string
	for _, e := range s.Book.List(entry.Floating).Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, names, "purged entries return to their positions")

	n, err = s.Clear(ClearArchive)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = s.Clear(ClearArchive)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFindRemembersView(t *testing.T) {
	s := newService(DefaultPolicy())
	for _, name := range []string{"Quarterly report", "Call mom"} {
		e, err := entry.NewFloatingTask(name)
		require.NoError(t, err)
		_, err = s.Add(e)
		require.NoError(t, err)
	}

	q, res := s.View()
	assert.Equal(t, entry.Active, q.State)
	assert.Equal(t, 2, res.Len())

	res = s.Find(search.Query{Keywords: []string{"report"}})
	assert.Equal(t, 1, res.Len())

	e, err := entry.NewFloatingTask("Annual report")
	require.NoError(t, err)
	_, err = s.Add(e)
	require.NoError(t, err)
	_, res = s.View()
	assert.Equal(t, 2, res.Len(), "view re-applies the last search")
}

func TestResolve(t *testing.T) {
	s := newService(DefaultPolicy())
	a, err := entry.NewFloatingTask("alpha")
	require.NoError(t, err)
	b, err := entry.NewFloatingTask("beta")
	require.NoError(t, err)
	a.ID = "abc-1"
	b.ID = "abd-2"
	_, err = s.Add(a)
	require.NoError(t, err)
	_, err = s.Add(b)
	require.NoError(t, err)

	got, err := s.Resolve(Ref{Kind: entry.Floating, Index: 2})
	require.NoError(t, err)
	assert.Equal(t, "beta", got.Name)

	_, err = s.Resolve(Ref{Kind: entry.Floating, Index: 3})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Resolve(Ref{Kind: entry.Event, Index: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	got, err = s.Resolve(Ref{ID: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "alpha", got.Name)

	_, err = s.Resolve(Ref{ID: "ab"})
	assert.ErrorIs(t, err, ErrAmbiguous)
	_, err = s.Resolve(Ref{ID: "zzz"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubscribe(t *testing.T) {
	s := newService(DefaultPolicy())
	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	e, err := entry.NewFloatingTask("Laundry")
	require.NoError(t, err)
	_, err = s.Add(e)
	require.NoError(t, err)
	_, err = s.Add(e)
	require.Error(t, err)
	assert.Equal(t, 1, calls, "failed mutations do not notify")

	_, err = s.Undo()
	require.NoError(t, err)
	_, err = s.Redo()
	require.NoError(t, err)
	assert.Equal(t, 3, calls)

	unsubscribe()
	_, err = s.Complete(e.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, morning, s.Updated())
}

func TestSubscriberMayUnsubscribeAnother(t *testing.T) {
	s := newService(DefaultPolicy())
	var second func()
	first := 0
	s.Subscribe(func() {
		first++
		second()
	})
	second = s.Subscribe(func() { t.Fatal("removed subscriber was called") })

	e, err := entry.NewFloatingTask("Laundry")
	require.NoError(t, err)
	require.NotPanics(t, func() {
		_, err = s.Add(e)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, s.Book.Len())
}

func TestSaveAndOpen(t *testing.T) {
	ctx := context.Background()
	mem := &memoryPersistence{}
	s := New(mem, DefaultPolicy(), 0)
	s.Now = func() time.Time { return morning }

	e, err := entry.NewFloatingTask("Laundry")
	require.NoError(t, err)
	_, err = s.Add(e)
	require.NoError(t, err)
	s.Find(search.Query{Keywords: []string{"laundry"}})
	require.NoError(t, s.Save(ctx))
	assert.Equal(t, 1, mem.saves)

	other := New(mem, DefaultPolicy(), 0)
	require.NoError(t, other.Open(ctx))
	assert.Equal(t, 1, other.Book.Len())
	assert.True(t, other.History.CanUndo())
	assert.Equal(t, morning, other.Updated())
	q, _ := other.View()
	assert.Equal(t, []string{"laundry"}, q.Keywords)

	_, err = other.Undo()
	require.NoError(t, err)
	assert.Zero(t, other.Book.Len())
}

func TestPersistReloadsAfterFailedSave(t *testing.T) {
	p := &memoryPersistence{}
	s := New(p, DefaultPolicy(), 0)
	s.Now = func() time.Time { return morning }
	ctx := context.Background()

	kept, err := entry.NewFloatingTask("Laundry")
	require.NoError(t, err)
	_, err = s.Add(kept)
	require.NoError(t, err)
	require.NoError(t, s.Persist(ctx))

	disk := errors.New("disk full")
	p.failSave = disk
	lost, err := entry.NewFloatingTask("Taxes")
	require.NoError(t, err)
	_, err = s.Add(lost)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Persist(ctx), disk)

	assert.Equal(t, 1, s.Book.Len())
	_, ok := s.Book.Find(lost.ID)
	assert.False(t, ok)
	assert.Len(t, s.History.Records(), 1)

	p.failSave = nil
	_, err = s.Undo()
	require.NoError(t, err)
	require.NoError(t, s.Persist(ctx))
	assert.Zero(t, s.Book.Len())
}

func TestNoPersistence(t *testing.T) {
	s := New(nil, DefaultPolicy(), 0)
	assert.Error(t, s.Open(context.Background()))
	assert.Error(t, s.Save(context.Background()))
}

func TestReportAndOverdue(t *testing.T) {
	s := newService(DefaultPolicy())
	d, err := entry.NewDeadline("Report", at(7, 0))
	require.NoError(t, err)
	_, err = s.Add(d)
	require.NoError(t, err)
	ev := event(t, "Breakfast", at(6, 0), at(6, 30))
	_, err = s.Add(ev)
	require.NoError(t, err)
	later, err := entry.NewDeadline("Later", at(20, 0))
	require.NoError(t, err)
	_, err = s.Add(later)
	require.NoError(t, err)

	overdue := s.Overdue()
	require.Len(t, overdue, 2)
	assert.Equal(t, "Breakfast", overdue[0].Entry.Name)
	assert.Equal(t, 90*time.Minute, overdue[0].Late)

	_, err = s.Complete(d.ID)
	require.NoError(t, err)
	report := s.Report(morning.Add(-time.Hour), morning.Add(time.Hour))
	require.Equal(t, 1, report.Total)
	require.Len(t, report.Sections, 1)
	assert.Equal(t, entry.Deadline, report.Sections[0].Kind)
	assert.True(t, report.Sections[0].Entries[0].Completed)

	_, err = s.Restore(d.ID)
	require.NoError(t, err)
	report = s.Report(morning.Add(time.Hour), morning.Add(-time.Hour))
	require.Equal(t, 1, report.Total)
	assert.False(t, report.Sections[0].Entries[0].Completed)
}

func TestParseOverduePolicy(t *testing.T) {
	p, err := ParseOverduePolicy("STRICT")
	require.NoError(t, err)
	assert.Equal(t, Strict, p)
	p, err = ParseOverduePolicy("")
	require.NoError(t, err)
	assert.Equal(t, Lenient, p)
	_, err = ParseOverduePolicy("sometimes")
	assert.Error(t, err)
}
