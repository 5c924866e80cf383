// Package rules holds the temporal predicates checked before any change to
// the active pools is committed.
package rules

import (
	"time"

	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/timeutil"
)

// IsOverdue reports whether an event or deadline ends at or before now.
// Floating tasks are never overdue.
func IsOverdue(e *entry.Entry, now time.Time) bool {
	end, ok := e.End()
	if !ok {
		return false
	}
	return !end.After(now)
}

// Conflicts returns the active events in pool whose interval intersects the
// candidate's. The candidate itself, matched by ID, is never reported, so an
// edited event does not collide with its stored version.
func Conflicts(candidate *entry.Entry, pool []*entry.Entry) []*entry.Entry {
	cw, ok := candidate.When.(entry.EventTimes)
	if !ok {
		return nil
	}
	var hits []*entry.Entry
	for _, other := range pool {
		if other == nil || other.State != entry.Active {
			continue
		}
		if candidate.ID != "" && other.ID == candidate.ID {
			continue
		}
		ow, ok := other.When.(entry.EventTimes)
		if !ok {
			continue
		}
		if timeutil.Intersects(cw.Start, cw.End, ow.Start, ow.End) {
			hits = append(hits, other)
		}
	}
	return hits
}

// Overlaps reports whether candidate intersects any other active event.
func Overlaps(candidate *entry.Entry, pool []*entry.Entry) bool {
	return len(Conflicts(candidate, pool)) > 0
}
