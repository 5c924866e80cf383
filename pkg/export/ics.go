// Package export renders the book as an iCalendar feed. Events become
// VEVENTs; deadlines and floating tasks become VTODOs.
package export

import (
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"tableflip.dev/agenda/pkg/entry"
)

const productID = "-//tableflip.dev//agenda//EN"

// Options selects what goes into the feed.
type Options struct {
	// Archived adds completed entries with STATUS:COMPLETED.
	Archived bool
	// Floating adds tasks without a due time.
	Floating bool
	// Stamp is written as DTSTAMP; zero means time.Now.
	Stamp time.Time
}

// Calendar builds the feed for entries. Deleted entries are never exported.
func Calendar(entries []*entry.Entry, opts Options) *ical.Calendar {
	stamp := opts.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName("agenda")

	for _, e := range entries {
		switch e.State {
		case entry.Deleted:
			continue
		case entry.Archived:
			if !opts.Archived {
				continue
			}
		}

		var c *ical.ComponentBase
		switch w := e.When.(type) {
		case entry.EventTimes:
			ev := cal.AddEvent(e.ID)
			ev.SetStartAt(w.Start)
			ev.SetEndAt(w.End)
			if e.State == entry.Archived {
				ev.SetStatus(ical.ObjectStatusCompleted)
			} else {
				ev.SetStatus(ical.ObjectStatusConfirmed)
			}
			c = &ev.ComponentBase
		case entry.DueTime:
			todo := cal.AddTodo(e.ID)
			todo.SetDueAt(w.Due)
			c = &todo.ComponentBase
			setTodoStatus(c, e.State)
		default:
			if !opts.Floating {
				continue
			}
			todo := cal.AddTodo(e.ID)
			c = &todo.ComponentBase
			setTodoStatus(c, e.State)
		}

		c.SetSummary(e.Name)
		c.SetDtStampTime(stamp)
		for _, tag := range e.Tags {
			c.AddCategory(tag)
		}
	}
	return cal
}

func setTodoStatus(c *ical.ComponentBase, s entry.State) {
	if s == entry.Archived {
		c.SetStatus(ical.ObjectStatusCompleted)
		return
	}
	c.SetStatus(ical.ObjectStatusNeedsAction)
}

// Write serializes the feed for entries to w.
func Write(w io.Writer, entries []*entry.Entry, opts Options) error {
	return Calendar(entries, opts).SerializeTo(w)
}
