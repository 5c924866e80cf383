package entry

import (
	"fmt"
	"strings"
	"time"
)

// DisplayLayout is the time layout used in single line renderings.
const DisplayLayout = "Jan 2, 2006 3:04 PM"

// String renders the entry on one line, for example
// "Report, Deadline: Jul 7, 2017 6:30 PM, Tags: [work]".
func (e *Entry) String() string {
	var when string
	switch w := e.When.(type) {
	case EventTimes:
		when = fmt.Sprintf("Event: %s to %s", w.Start.Format(DisplayLayout), w.End.Format(DisplayLayout))
	case DueTime:
		when = fmt.Sprintf("Deadline: %s", w.Due.Format(DisplayLayout))
	default:
		when = Floating.String()
	}
	return fmt.Sprintf("%s, %s, Tags: [%s]", e.Name, when, strings.Join(e.Tags, ", "))
}

// Timing renders only the time portion, or "" for floating tasks.
func (e *Entry) Timing() string {
	switch w := e.When.(type) {
	case EventTimes:
		if SameDay(w.Start, w.End) {
			return fmt.Sprintf("%s - %s", w.Start.Format(DisplayLayout), w.End.Format("3:04 PM"))
		}
		return fmt.Sprintf("%s - %s", w.Start.Format(DisplayLayout), w.End.Format(DisplayLayout))
	case DueTime:
		return "by " + w.Due.Format(DisplayLayout)
	}
	return ""
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return Timestamp{Time: a}.SameDay(b)
}
