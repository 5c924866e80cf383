package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/agenda/pkg/entry"
)

var day = time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

func event(t *testing.T, name string, from, to time.Duration) *entry.Entry {
	t.Helper()
	e, err := entry.NewEvent(name, day.Add(from), day.Add(to))
	require.NoError(t, err)
	return e
}

func hm(h, m int) time.Duration {
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
}

func TestIsOverdue(t *testing.T) {
	now := day.Add(hm(12, 0))

	d, err := entry.NewDeadline("Report", now)
	require.NoError(t, err)
	assert.True(t, IsOverdue(d, now), "deadline at now is overdue")
	assert.False(t, IsOverdue(d, now.Add(-time.Microsecond)), "deadline a microsecond ahead is not overdue")

	ev := event(t, "Standup", hm(9, 0), hm(9, 30))
	assert.True(t, IsOverdue(ev, now))
	assert.False(t, IsOverdue(ev, day.Add(hm(9, 15))), "running event is not overdue")

	f, err := entry.NewFloatingTask("Laundry")
	require.NoError(t, err)
	assert.False(t, IsOverdue(f, now.Add(1000*time.Hour)))
}

func TestOverlapsScenario(t *testing.T) {
	standup := event(t, "Standup", hm(9, 0), hm(9, 30))
	pool := []*entry.Entry{standup}

	assert.True(t, Overlaps(event(t, "Sync", hm(9, 15), hm(9, 45)), pool))
	assert.False(t, Overlaps(event(t, "Sync", hm(9, 30), hm(10, 0)), pool))
	assert.False(t, Overlaps(event(t, "Early", hm(8, 0), hm(9, 0)), pool))
}

func TestOverlapsSymmetric(t *testing.T) {
	spans := [][2]time.Duration{
		{hm(9, 0), hm(9, 30)},
		{hm(9, 15), hm(9, 45)},
		{hm(9, 30), hm(10, 0)},
		{hm(8, 0), hm(11, 0)},
		{hm(10, 0), hm(10, 0)},
	}
	for i, a := range spans {
		for j, b := range spans {
			if i == j {
				continue
			}
			ea := event(t, "a", a[0], a[1])
			eb := event(t, "b", b[0], b[1])
			assert.Equal(t, Overlaps(ea, []*entry.Entry{eb}), Overlaps(eb, []*entry.Entry{ea}), "spans %d and %d", i, j)
		}
	}
}

func TestConflictsSkipsInactiveAndSelf(t *testing.T) {
	standup := event(t, "Standup", hm(9, 0), hm(9, 30))
	archived := event(t, "Old", hm(9, 0), hm(9, 30))
	archived.State = entry.Archived
	deleted := event(t, "Binned", hm(9, 0), hm(9, 30))
	deleted.State = entry.Deleted
	pool := []*entry.Entry{standup, archived, deleted}

	moved := standup.Clone()
	moved.When = entry.EventTimes{Start: day.Add(hm(9, 10)), End: day.Add(hm(9, 40))}
	assert.Empty(t, Conflicts(moved, pool))

	other := event(t, "Other", hm(9, 10), hm(9, 20))
	hits := Conflicts(other, pool)
	require.Len(t, hits, 1)
	assert.Equal(t, standup.ID, hits[0].ID)
}

func TestConflictsIgnoresNonEvents(t *testing.T) {
	d, err := entry.NewDeadline("Report", day.Add(hm(9, 15)))
	require.NoError(t, err)
	standup := event(t, "Standup", hm(9, 0), hm(9, 30))
	assert.False(t, Overlaps(d, []*entry.Entry{standup}))
	assert.False(t, Overlaps(standup, []*entry.Entry{d}))
}
