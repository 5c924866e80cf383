package app

import (
	"fmt"
	"strings"

	"tableflip.dev/agenda/pkg/entry"
)

// Ref points at one entry, either by ID (or a unique ID prefix) or by its
// 1-based position in one list of the current view.
type Ref struct {
	ID    string
	Kind  entry.Kind
	Index int
}

func (r Ref) String() string {
	if r.ID != "" {
		return r.ID
	}
	return fmt.Sprintf("%s #%d", strings.ToLower(r.Kind.String()), r.Index)
}

// Resolve finds the entry r points at.
func (s *Service) Resolve(r Ref) (*entry.Entry, error) {
	if r.ID != "" {
		return s.byID(r.ID)
	}
	_, res := s.View()
	list := res.Of(r.Kind)
	if r.Index < 1 || r.Index > len(list) {
		return nil, fmt.Errorf("%w: no %s at index %d, the view has %d", ErrNotFound, strings.ToLower(r.Kind.String()), r.Index, len(list))
	}
	return list[r.Index-1], nil
}

func (s *Service) byID(prefix string) (*entry.Entry, error) {
	if e, ok := s.Book.Find(prefix); ok {
		return e, nil
	}
	var hits []*entry.Entry
	for _, k := range entry.Kinds() {
		hits = append(hits, s.Book.List(k).Filter(func(e *entry.Entry) bool {
			return strings.HasPrefix(e.ID, prefix)
		})...)
	}
	switch len(hits) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, prefix)
	case 1:
		return hits[0], nil
	}
	return nil, fmt.Errorf("%w: %d entries share the id prefix %q", ErrAmbiguous, len(hits), prefix)
}
