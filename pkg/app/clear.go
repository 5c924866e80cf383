package app

import (
	"fmt"

	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/history"
)

// ClearScope selects what Clear empties.
type ClearScope int

const (
	// ClearBin purges every deleted entry.
	ClearBin ClearScope = iota
	// ClearArchive moves every archived entry to the bin.
	ClearArchive
	// ClearAll moves the archive to the bin and purges the bin.
	ClearAll
)

func (c ClearScope) String() string {
	switch c {
	case ClearArchive:
		return "archive"
	case ClearAll:
		return "all"
	}
	return "bin"
}

// Clear empties the archive, the bin or both as a single undoable change and
// returns the number of entries touched.
func (s *Service) Clear(scope ClearScope) (int, error) {
	var steps []history.Record
	if scope == ClearArchive || scope == ClearAll {
		steps = append(steps, s.archiveToBin()...)
	}
	if scope == ClearBin || scope == ClearAll {
		steps = append(steps, s.purgeBin()...)
	}
	if len(steps) == 0 {
		return 0, nil
	}
	s.commit(history.Record{
		Op:    history.OpBatch,
		Steps: steps,
		Label: "cleared " + scope.String(),
	})
	return len(steps), nil
}

func (s *Service) archiveToBin() []history.Record {
	var steps []history.Record
	for _, k := range entry.Kinds() {
		list := s.Book.List(k)
		for _, before := range list.Filter(func(e *entry.Entry) bool { return e.State == entry.Archived }) {
			after := before.Clone()
			after.State = entry.Deleted
			if err := list.Put(after); err != nil {
				panic(fmt.Sprintf("app: archived entry %s vanished: %v", before.ID, err))
			}
			steps = append(steps, history.Record{Op: history.OpState, Kind: k, Before: before, After: after.Clone()})
		}
	}
	return steps
}

func (s *Service) purgeBin() []history.Record {
	var steps []history.Record
	for _, k := range entry.Kinds() {
		list := s.Book.List(k)
		for _, before := range list.Filter(func(e *entry.Entry) bool { return e.State == entry.Deleted }) {
			index := list.Index(before.ID)
			if _, err := list.Remove(before.ID); err != nil {
				panic(fmt.Sprintf("app: deleted entry %s vanished: %v", before.ID, err))
			}
			steps = append(steps, history.Record{Op: history.OpRemove, Kind: k, Before: before, Index: index})
		}
	}
	return steps
}
