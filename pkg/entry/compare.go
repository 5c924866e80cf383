package entry

import (
	"fmt"
	"sort"
)

// Compare orders two entries of the same kind: events by start then end
// time and deadlines by due time. Floating tasks are never ordered and
// always compare equal. Comparing entries of different kinds is a
// programming error and panics.
func Compare(a, b *Entry) int {
	if a.Kind() != b.Kind() {
		panic(fmt.Sprintf("entry: cannot compare %s with %s", a.Kind(), b.Kind()))
	}
	switch aw := a.When.(type) {
	case EventTimes:
		bw := b.When.(EventTimes)
		if c := aw.Start.Compare(bw.Start); c != 0 {
			return c
		}
		return aw.End.Compare(bw.End)
	case DueTime:
		return aw.Due.Compare(b.When.(DueTime).Due)
	}
	return 0
}

// SortUpcoming sorts entries of one kind in place, soonest first. The sort is
// stable so entries with equal times keep their insertion order.
func SortUpcoming(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return Compare(entries[i], entries[j]) < 0
	})
}

// SortLatest sorts entries of one kind in place, latest first. Entries with
// equal times keep their insertion order.
func SortLatest(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return Compare(entries[i], entries[j]) > 0
	})
}
