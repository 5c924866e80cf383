package app

import (
	"sort"
	"time"

	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/rules"
)

// ReviewCandidate is an active entry whose end has passed.
type ReviewCandidate struct {
	Entry *entry.Entry
	// Late is how long ago the entry ended.
	Late time.Duration
}

// Overdue returns the active events and deadlines that are overdue now,
// longest overdue first. Candidates are what a user should complete, delete
// or reschedule.
func (s *Service) Overdue() []ReviewCandidate {
	now := s.Clock()
	var out []ReviewCandidate
	for _, k := range []entry.Kind{entry.Event, entry.Deadline} {
		for _, e := range s.Book.List(k).Filter(activeOnly) {
			if !rules.IsOverdue(e, now) {
				continue
			}
			end, _ := e.End()
			out = append(out, ReviewCandidate{Entry: e, Late: now.Sub(end)})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Late > out[j].Late })
	return out
}
