package collection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/agenda/pkg/entry"
)

func task(t *testing.T, name string, tags ...string) *entry.Entry {
	t.Helper()
	e, err := entry.NewFloatingTask(name, tags...)
	require.NoError(t, err)
	return e
}

func names(entries []*entry.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	l := NewList(entry.Floating)
	for _, n := range []string{"c", "a", "b"} {
		require.NoError(t, l.Add(task(t, n)))
	}
	assert.Equal(t, []string{"c", "a", "b"}, names(l.Entries()))
	assert.Equal(t, 3, l.Len())
}

func TestAddRejectsDuplicates(t *testing.T) {
	l := NewList(entry.Floating)
	require.NoError(t, l.Add(task(t, "Laundry", "home")))
	assert.ErrorIs(t, l.Add(task(t, "Laundry", "home")), ErrDuplicate)

	archived := task(t, "Laundry", "home")
	archived.State = entry.Archived
	assert.NoError(t, l.Add(archived), "same fields in another state are not duplicates")
}

func TestAddRejectsWrongKind(t *testing.T) {
	l := NewList(entry.Event)
	assert.ErrorIs(t, l.Add(task(t, "Laundry")), entry.ErrTypeMismatch)
}

func TestReplaceInPlace(t *testing.T) {
	l := NewList(entry.Floating)
	a, b, c := task(t, "a"), task(t, "b"), task(t, "c")
	for _, e := range []*entry.Entry{a, b, c} {
		require.NoError(t, l.Add(e))
	}

	edited := b.Clone()
	edited.Name = "b2"
	require.NoError(t, l.Replace(edited))
	assert.Equal(t, []string{"a", "b2", "c"}, names(l.Entries()))

	clash := c.Clone()
	clash.Name = "a"
	assert.ErrorIs(t, l.Replace(clash), ErrDuplicate)

	assert.ErrorIs(t, l.Replace(task(t, "ghost")), ErrNotFound)

	same := a.Clone()
	assert.NoError(t, l.Replace(same), "replacing an entry with itself is not a duplicate")
}

func TestRemoveAndInsertRestoresPosition(t *testing.T) {
	l := NewList(entry.Floating)
	var all []*entry.Entry
	for _, n := range []string{"a", "b", "c", "d"} {
		e := task(t, n)
		all = append(all, e)
		require.NoError(t, l.Add(e))
	}

	at := l.Index(all[1].ID)
	assert.Equal(t, 1, at)
	removed, err := l.Remove(all[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "b", removed.Name)
	assert.Equal(t, []string{"a", "c", "d"}, names(l.Entries()))
	assert.Equal(t, 1, l.Index(all[2].ID))

	require.NoError(t, l.Insert(at, removed))
	assert.Equal(t, []string{"a", "b", "c", "d"}, names(l.Entries()))

	_, err = l.Remove("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, -1, l.Index("missing"))
}

func TestRemoveCompacts(t *testing.T) {
	l := NewList(entry.Floating)
	var ids []string
	for i := 0; i < 10; i++ {
		e := task(t, string(rune('a'+i)))
		ids = append(ids, e.ID)
		require.NoError(t, l.Add(e))
	}
	for _, id := range ids[:8] {
		_, err := l.Remove(id)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"i", "j"}, names(l.Entries()))
	assert.LessOrEqual(t, len(l.slots), 10)
	assert.Equal(t, 1, l.Index(ids[9]))

	require.NoError(t, l.Add(task(t, "a")), "removed fingerprint is forgotten")
}

func TestGetReturnsCopy(t *testing.T) {
	l := NewList(entry.Floating)
	e := task(t, "Laundry", "home")
	require.NoError(t, l.Add(e))

	got, ok := l.Get(e.ID)
	require.True(t, ok)
	got.Name = "changed"
	got.Tags[0] = "work"

	again, _ := l.Get(e.ID)
	assert.Equal(t, "Laundry", again.Name)
	assert.Equal(t, []string{"home"}, again.Tags)
}

func TestFilterPreservesOrder(t *testing.T) {
	l := NewList(entry.Floating)
	for _, n := range []string{"one", "two", "three", "four"} {
		require.NoError(t, l.Add(task(t, n)))
	}
	got := l.Filter(func(e *entry.Entry) bool { return len(e.Name) > 3 })
	assert.Equal(t, []string{"three", "four"}, names(got))
	assert.Equal(t, 4, l.Len())
}

func TestPutSkipsDuplicateCheck(t *testing.T) {
	l := NewList(entry.Floating)
	a := task(t, "Laundry")
	b := task(t, "Laundry")
	b.State = entry.Archived
	require.NoError(t, l.Add(a))
	require.NoError(t, l.Add(b))

	b.State = entry.Active
	require.NoError(t, l.Put(b))
	assert.Equal(t, 2, l.Len())
}

func TestBookLoadAndContents(t *testing.T) {
	b := NewBook()
	ev, err := entry.NewEvent("Standup", time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, b.List(entry.Event).Add(ev))
	require.NoError(t, b.For(task(t, "x")).Add(task(t, "Laundry")))

	contents := b.Contents()
	assert.Len(t, contents[entry.Event], 1)
	assert.Len(t, contents[entry.Floating], 1)
	assert.Len(t, contents[entry.Deadline], 0)

	found, ok := b.Find(ev.ID)
	require.True(t, ok)
	assert.Equal(t, "Standup", found.Name)

	other := NewBook()
	require.NoError(t, other.Load(contents))
	assert.Equal(t, 2, other.Len())

	bad := map[entry.Kind][]*entry.Entry{entry.Event: {task(t, "wrong")}}
	require.Error(t, other.Load(bad))
	assert.Equal(t, 2, other.Len(), "failed load leaves the book untouched")
}
