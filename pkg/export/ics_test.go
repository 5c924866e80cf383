package export

import (
	"bytes"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/agenda/pkg/entry"
)

func fixtures(t *testing.T) []*entry.Entry {
	t.Helper()
	start := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)

	ev, err := entry.NewEvent("Standup", start, start.Add(30*time.Minute), "work")
	require.NoError(t, err)
	dl, err := entry.NewDeadline("Report", start.Add(48*time.Hour))
	require.NoError(t, err)
	task, err := entry.NewFloatingTask("Laundry", "home")
	require.NoError(t, err)
	done, err := entry.NewDeadline("Taxes", start.Add(-24*time.Hour))
	require.NoError(t, err)
	done.State = entry.Archived
	gone, err := entry.NewFloatingTask("Old")
	require.NoError(t, err)
	gone.State = entry.Deleted

	return []*entry.Entry{ev, dl, task, done, gone}
}

func parse(t *testing.T, entries []*entry.Entry, opts Options) *ical.Calendar {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, entries, opts))
	cal, err := ical.ParseCalendar(&buf)
	require.NoError(t, err)
	return cal
}

func TestWriteDefaults(t *testing.T) {
	entries := fixtures(t)
	cal := parse(t, entries, Options{})

	events := cal.Events()
	require.Len(t, events, 1)
	assert.Equal(t, entries[0].ID, events[0].Id())
	assert.Equal(t, "Standup", events[0].GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "work", events[0].GetProperty(ical.ComponentPropertyCategories).Value)

	startAt, err := events[0].GetStartAt()
	require.NoError(t, err)
	assert.True(t, startAt.Equal(entries[0].When.(entry.EventTimes).Start))

	todos := cal.Todos()
	require.Len(t, todos, 1)
	assert.Equal(t, "Report", todos[0].GetProperty(ical.ComponentPropertySummary).Value)
	due, err := todos[0].GetDueAt()
	require.NoError(t, err)
	assert.True(t, due.Equal(entries[1].When.(entry.DueTime).Due))
}

func TestWriteArchivedAndFloating(t *testing.T) {
	cal := parse(t, fixtures(t), Options{Archived: true, Floating: true})

	require.Len(t, cal.Events(), 1)
	todos := cal.Todos()
	require.Len(t, todos, 3)

	status := map[string]string{}
	for _, todo := range todos {
		status[todo.GetProperty(ical.ComponentPropertySummary).Value] = todo.GetProperty(ical.ComponentPropertyStatus).Value
	}
	assert.Equal(t, map[string]string{
		"Report":  string(ical.ObjectStatusNeedsAction),
		"Laundry": string(ical.ObjectStatusNeedsAction),
		"Taxes":   string(ical.ObjectStatusCompleted),
	}, status)
}

func TestCalendarStamp(t *testing.T) {
	stamp := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	cal := Calendar(fixtures(t)[:1], Options{Stamp: stamp})
	out := cal.Serialize()
	assert.Contains(t, out, "DTSTAMP:20240101T000000Z")
	assert.Contains(t, out, "PRODID:"+productID)
	assert.Contains(t, out, "METHOD:PUBLISH")
}
