package app

import (
	"time"

	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/history"
)

// ReportItem captures a completed entry and the time it was completed.
type ReportItem struct {
	Entry *entry.Entry
	// Completed is false when the entry has since been restored, deleted or
	// purged.
	Completed   bool
	CompletedAt time.Time
}

// ReportSection groups completed entries of one kind.
type ReportSection struct {
	Kind    entry.Kind
	Entries []ReportItem
}

// ReportResult encapsulates a completed-entries report for a time window.
type ReportResult struct {
	Since    time.Time
	Until    time.Time
	Sections []ReportSection
	Total    int
}

// Report returns the entries completed between the provided bounds, using
// the undo history as the record of completions. Only completions still on
// the undo stack are reported.
func (s *Service) Report(since, until time.Time) ReportResult {
	if since.After(until) {
		since, until = until, since
	}

	latest := make(map[string]*ReportItem)
	var order []string
	for _, r := range s.History.Records() {
		if r.Op != history.OpState || r.After == nil || r.After.State != entry.Archived {
			continue
		}
		if r.At.Before(since) || r.At.After(until) {
			continue
		}
		item, ok := latest[r.After.ID]
		if !ok {
			item = &ReportItem{}
			latest[r.After.ID] = item
			order = append(order, r.After.ID)
		}
		item.Entry = r.After
		item.CompletedAt = r.At
	}

	result := ReportResult{Since: since, Until: until}
	grouped := make(map[entry.Kind][]ReportItem)
	for _, id := range order {
		item := latest[id]
		if current, ok := s.Book.Find(id); ok {
			item.Entry = current
			item.Completed = current.State == entry.Archived
		}
		grouped[item.Entry.Kind()] = append(grouped[item.Entry.Kind()], *item)
		result.Total++
	}
	for _, k := range entry.Kinds() {
		if items := grouped[k]; len(items) > 0 {
			result.Sections = append(result.Sections, ReportSection{Kind: k, Entries: items})
		}
	}
	return result
}
