// Package entry defines the schedulable items tracked by agenda: timed events,
// deadlines, and undated floating tasks.
package entry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidField is returned when an entry is built from malformed input.
	ErrInvalidField = errors.New("entry: invalid field")
	// ErrTypeMismatch is returned when two entries of different kinds are combined.
	ErrTypeMismatch = errors.New("entry: type mismatch")
)

// Kind identifies the variant of an entry.
type Kind int

const (
	Event Kind = iota
	Deadline
	Floating
)

// Kinds lists every kind in display order.
func Kinds() []Kind {
	return []Kind{Event, Deadline, Floating}
}

func (k Kind) String() string {
	switch k {
	case Event:
		return "Event"
	case Deadline:
		return "Deadline"
	case Floating:
		return "Floating Task"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Plural is the lower case collection name used for storage keys and flags.
func (k Kind) Plural() string {
	switch k {
	case Event:
		return "events"
	case Deadline:
		return "deadlines"
	case Floating:
		return "tasks"
	default:
		return ""
	}
}

// ParseKind accepts the singular or plural spelling of a kind.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "event", "events", "e":
		return Event, nil
	case "deadline", "deadlines", "d":
		return Deadline, nil
	case "task", "tasks", "floating", "f":
		return Floating, nil
	}
	return Event, fmt.Errorf("entry: unknown kind %q", raw)
}

// State is the lifecycle pool an entry lives in.
type State int

const (
	Active State = iota
	Archived
	Deleted
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Archived:
		return "archived"
	case Deleted:
		return "deleted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Valid reports whether s is one of the known states.
func (s State) Valid() bool {
	return s == Active || s == Archived || s == Deleted
}

// ParseState converts a state name, accepting the bin/archive aliases.
func ParseState(raw string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "active":
		return Active, nil
	case "archived", "archive", "completed", "done":
		return Archived, nil
	case "deleted", "bin":
		return Deleted, nil
	}
	return Active, fmt.Errorf("entry: unknown state %q", raw)
}

// Schedule is the variant specific time payload of an entry. The set of
// implementations is closed: EventTimes, DueTime and Unscheduled.
type Schedule interface {
	kind() Kind
}

// EventTimes holds the half-open interval [Start, End) of an event.
type EventTimes struct {
	Start time.Time
	End   time.Time
}

// DueTime holds the end time of a deadline.
type DueTime struct {
	Due time.Time
}

// Unscheduled is the empty payload of a floating task.
type Unscheduled struct{}

func (EventTimes) kind() Kind  { return Event }
func (DueTime) kind() Kind     { return Deadline }
func (Unscheduled) kind() Kind { return Floating }

// Entry is a single schedulable item. ID is storage identity only and takes
// no part in Equal.
type Entry struct {
	ID    string
	Name  string
	Tags  []string
	State State
	When  Schedule
}

// NewEvent builds an active event spanning [start, end).
func NewEvent(name string, start, end time.Time, tags ...string) (*Entry, error) {
	return build(name, EventTimes{Start: start, End: end}, tags)
}

// NewDeadline builds an active deadline due at end.
func NewDeadline(name string, end time.Time, tags ...string) (*Entry, error) {
	return build(name, DueTime{Due: end}, tags)
}

// NewFloatingTask builds an active task without time fields.
func NewFloatingTask(name string, tags ...string) (*Entry, error) {
	return build(name, Unscheduled{}, tags)
}

func build(name string, when Schedule, tags []string) (*Entry, error) {
	e := &Entry{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Tags:  NormalizeTags(tags),
		State: Active,
		When:  when,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Kind returns the variant of the entry.
func (e *Entry) Kind() Kind {
	if e.When == nil {
		return Floating
	}
	return e.When.kind()
}

// Start returns the start time of an event.
func (e *Entry) Start() (time.Time, bool) {
	if w, ok := e.When.(EventTimes); ok {
		return w.Start, true
	}
	return time.Time{}, false
}

// End returns the end time of an event or the due time of a deadline.
func (e *Entry) End() (time.Time, bool) {
	switch w := e.When.(type) {
	case EventTimes:
		return w.End, true
	case DueTime:
		return w.Due, true
	}
	return time.Time{}, false
}

// Validate checks the name, tags, state and the variant specific time fields.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidField)
	}
	for _, t := range e.Tags {
		if t == "" || strings.ContainsAny(t, " \t\n") {
			return fmt.Errorf("%w: tag %q must be a single word", ErrInvalidField, t)
		}
	}
	if !e.State.Valid() {
		return fmt.Errorf("%w: unknown state %d", ErrInvalidField, int(e.State))
	}
	switch w := e.When.(type) {
	case EventTimes:
		if w.Start.IsZero() {
			return fmt.Errorf("%w: event requires a start time", ErrInvalidField)
		}
		if w.End.IsZero() {
			return fmt.Errorf("%w: event requires an end time", ErrInvalidField)
		}
		if w.Start.After(w.End) {
			return fmt.Errorf("%w: event starts after it ends", ErrInvalidField)
		}
	case DueTime:
		if w.Due.IsZero() {
			return fmt.Errorf("%w: deadline requires an end time", ErrInvalidField)
		}
	case Unscheduled:
	case nil:
		return fmt.Errorf("%w: missing schedule", ErrInvalidField)
	default:
		return fmt.Errorf("%w: unknown schedule %T", ErrInvalidField, w)
	}
	return nil
}

// Reset overwrites name, tags and time fields with those of other, keeping
// the ID and state of e.
func (e *Entry) Reset(other *Entry) error {
	if other == nil || e.Kind() != other.Kind() {
		return fmt.Errorf("%w: cannot reset %s from %s", ErrTypeMismatch, e.Kind(), kindOf(other))
	}
	e.Name = other.Name
	e.Tags = append([]string(nil), other.Tags...)
	e.When = other.When
	return nil
}

func kindOf(e *Entry) string {
	if e == nil {
		return "nothing"
	}
	return e.Kind().String()
}

// Clone returns a deep copy.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	c := *e
	c.Tags = append([]string(nil), e.Tags...)
	return &c
}

// Equal reports whether e and o are the same entry: equal name, tags, state
// and time fields. IDs are ignored.
func (e *Entry) Equal(o *Entry) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Name != o.Name || e.State != o.State || e.Kind() != o.Kind() {
		return false
	}
	if !sameTags(e.Tags, o.Tags) {
		return false
	}
	switch w := e.When.(type) {
	case EventTimes:
		ow := o.When.(EventTimes)
		return w.Start.Equal(ow.Start) && w.End.Equal(ow.End)
	case DueTime:
		return w.Due.Equal(o.When.(DueTime).Due)
	}
	return true
}

// Fingerprint is a string that is equal for two entries exactly when Equal
// holds.
func (e *Entry) Fingerprint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%d|%q|", e.Kind(), e.State, e.Name)
	tags := NormalizeTags(e.Tags)
	b.WriteString(strings.Join(tags, ","))
	switch w := e.When.(type) {
	case EventTimes:
		fmt.Fprintf(&b, "|%d|%d", w.Start.UnixNano(), w.End.UnixNano())
	case DueTime:
		fmt.Fprintf(&b, "|%d", w.Due.UnixNano())
	}
	return b.String()
}

func sameTags(a, b []string) bool {
	na, nb := NormalizeTags(a), NormalizeTags(b)
	if len(na) != len(nb) {
		return false
	}
	for i := range na {
		if na[i] != nb[i] {
			return false
		}
	}
	return true
}

// NormalizeTags trims, drops empty and duplicate tags and sorts the result.
// Duplicates are detected case-insensitively; the first spelling wins.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		result = append(result, trimmed)
	}
	sort.Strings(result)
	return result
}
