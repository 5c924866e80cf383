package entry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2017, time.July, 7, hour, min, 0, 0, time.UTC)
}

func TestNewEventValidation(t *testing.T) {
	tests := []struct {
		name       string
		entryName  string
		start, end time.Time
		wantErr    bool
	}{
		{name: "ok", entryName: "Standup", start: at(9, 0), end: at(9, 30)},
		{name: "instant", entryName: "Ping", start: at(9, 0), end: at(9, 0)},
		{name: "empty name", entryName: "  ", start: at(9, 0), end: at(9, 30), wantErr: true},
		{name: "start after end", entryName: "Backwards", start: at(10, 0), end: at(9, 0), wantErr: true},
		{name: "missing start", entryName: "Half", end: at(9, 0), wantErr: true},
		{name: "missing end", entryName: "Half", start: at(9, 0), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEvent(tt.entryName, tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidField))
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Event, e.Kind())
			assert.Equal(t, Active, e.State)
			assert.NotEmpty(t, e.ID)
		})
	}
}

func TestNewDeadlineRequiresEnd(t *testing.T) {
	_, err := NewDeadline("Report", time.Time{})
	require.ErrorIs(t, err, ErrInvalidField)

	d, err := NewDeadline("Report", at(18, 30), "work")
	require.NoError(t, err)
	end, ok := d.End()
	require.True(t, ok)
	assert.Equal(t, at(18, 30), end)
	_, ok = d.Start()
	assert.False(t, ok)
}

func TestFloatingTaskHasNoTimes(t *testing.T) {
	f, err := NewFloatingTask("Read book")
	require.NoError(t, err)
	assert.Equal(t, Floating, f.Kind())
	_, ok := f.End()
	assert.False(t, ok)
}

func TestTagsAreNormalized(t *testing.T) {
	e, err := NewFloatingTask("Groceries", "home", " errands ", "Home", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"errands", "home"}, e.Tags)

	_, err = NewFloatingTask("Groceries", "two words")
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestString(t *testing.T) {
	d, err := NewDeadline("SampleName1", at(18, 30), "tag1")
	require.NoError(t, err)
	assert.Equal(t, "SampleName1, Deadline: Jul 7, 2017 6:30 PM, Tags: [tag1]", d.String())

	e, err := NewEvent("Standup", at(9, 0), at(9, 30))
	require.NoError(t, err)
	assert.Equal(t, "Standup, Event: Jul 7, 2017 9:00 AM to Jul 7, 2017 9:30 AM, Tags: []", e.String())

	f, err := NewFloatingTask("Laundry", "b", "a")
	require.NoError(t, err)
	assert.Equal(t, "Laundry, Floating Task, Tags: [a, b]", f.String())
}

func TestEqualIgnoresID(t *testing.T) {
	a, err := NewEvent("Standup", at(9, 0), at(9, 30), "work")
	require.NoError(t, err)
	b, err := NewEvent("Standup", at(9, 0), at(9, 30), "work")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.State = Archived
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	d, err := NewDeadline("Standup", at(9, 30), "work")
	require.NoError(t, err)
	assert.False(t, a.Equal(d))
}

func TestReset(t *testing.T) {
	a, err := NewEvent("Standup", at(9, 0), at(9, 30))
	require.NoError(t, err)
	a.State = Archived
	b, err := NewEvent("Retro", at(14, 0), at(15, 0), "team")
	require.NoError(t, err)

	id := a.ID
	require.NoError(t, a.Reset(b))
	assert.Equal(t, id, a.ID)
	assert.Equal(t, Archived, a.State)
	assert.Equal(t, "Retro", a.Name)
	assert.Equal(t, []string{"team"}, a.Tags)
	start, _ := a.Start()
	assert.Equal(t, at(14, 0), start)

	b.Tags[0] = "changed"
	assert.Equal(t, []string{"team"}, a.Tags)

	d, err := NewDeadline("Report", at(18, 0))
	require.NoError(t, err)
	assert.ErrorIs(t, a.Reset(d), ErrTypeMismatch)
	assert.ErrorIs(t, a.Reset(nil), ErrTypeMismatch)
}

func TestCloneIsDeep(t *testing.T) {
	a, err := NewFloatingTask("Laundry", "home")
	require.NoError(t, err)
	c := a.Clone()
	c.Tags[0] = "work"
	assert.Equal(t, []string{"home"}, a.Tags)
}

func TestCompare(t *testing.T) {
	early, _ := NewDeadline("early", at(8, 0))
	late, _ := NewDeadline("late", at(20, 0))
	assert.Equal(t, -1, Compare(early, late))
	assert.Equal(t, 1, Compare(late, early))

	entries := []*Entry{late, early}
	SortUpcoming(entries)
	assert.Equal(t, "early", entries[0].Name)

	ev, _ := NewEvent("ev", at(8, 0), at(9, 0))
	assert.Panics(t, func() { Compare(ev, early) })
}

func TestCompareBreaksEventTiesOnEnd(t *testing.T) {
	long, _ := NewEvent("long", at(8, 0), at(10, 0))
	short, _ := NewEvent("short", at(8, 0), at(9, 0))
	assert.Equal(t, 1, Compare(long, short))

	entries := []*Entry{long, short}
	SortUpcoming(entries)
	assert.Equal(t, "short", entries[0].Name)
	SortLatest(entries)
	assert.Equal(t, "long", entries[0].Name)
}

func TestFloatingTasksKeepInsertionOrder(t *testing.T) {
	zeta, _ := NewFloatingTask("zeta")
	alpha, _ := NewFloatingTask("alpha")
	mid, _ := NewFloatingTask("mid")
	assert.Zero(t, Compare(zeta, alpha))

	entries := []*Entry{zeta, alpha, mid}
	SortUpcoming(entries)
	assert.Equal(t, []*Entry{zeta, alpha, mid}, entries)
	SortLatest(entries)
	assert.Equal(t, []*Entry{zeta, alpha, mid}, entries)
}

func TestParseKindAndState(t *testing.T) {
	k, err := ParseKind("Deadlines")
	require.NoError(t, err)
	assert.Equal(t, Deadline, k)
	_, err = ParseKind("meeting")
	assert.Error(t, err)

	s, err := ParseState("bin")
	require.NoError(t, err)
	assert.Equal(t, Deleted, s)
	_, err = ParseState("lost")
	assert.Error(t, err)
}

func TestTimestampJSON(t *testing.T) {
	ts := Timestamp{Time: at(18, 30)}
	b, err := ts.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2017-07-07T18:30:00Z"`, string(b))

	var back Timestamp
	require.NoError(t, back.UnmarshalJSON(b))
	assert.True(t, back.Equal(ts.Time))

	require.NoError(t, back.UnmarshalJSON([]byte(`""`)))
	assert.True(t, back.IsZero())
}
