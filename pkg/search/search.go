// Package search builds filtered views of a collection.Book.
package search

import (
	"strings"
	"time"
	"unicode"

	"tableflip.dev/agenda/pkg/collection"
	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/timeutil"
)

// Mode selects how keywords are matched.
type Mode int

const (
	// Loose matches when any keyword is a substring of the name or a tag.
	Loose Mode = iota
	// Strict matches when every keyword equals a word of the name or a tag.
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "loose"
}

// Order arranges the matches of each list.
type Order int

const (
	// Inserted keeps the order entries were added in.
	Inserted Order = iota
	// Upcoming sorts soonest first.
	Upcoming
	// Latest sorts latest first.
	Latest
)

func (o Order) String() string {
	switch o {
	case Upcoming:
		return "upcoming"
	case Latest:
		return "latest"
	}
	return "inserted"
}

// ParseOrder is the inverse of Order.String.
func ParseOrder(raw string) Order {
	switch raw {
	case "upcoming":
		return Upcoming
	case "latest":
		return Latest
	}
	return Inserted
}

// Query describes a view. Zero From or To leave that side of the date range
// open; no keywords match every entry.
type Query struct {
	Keywords []string
	From     time.Time
	To       time.Time
	State    entry.State
	Mode     Mode
	Order    Order
}

// Active is the default view: every active entry.
func Active() Query {
	return Query{State: entry.Active}
}

// Result holds the matches of each list, each in insertion order.
type Result struct {
	Events    []*entry.Entry
	Deadlines []*entry.Entry
	Floating  []*entry.Entry
}

// Of returns the matches for kind k.
func (r Result) Of(k entry.Kind) []*entry.Entry {
	switch k {
	case entry.Event:
		return r.Events
	case entry.Deadline:
		return r.Deadlines
	default:
		return r.Floating
	}
}

// Len is the total number of matches.
func (r Result) Len() int {
	return len(r.Events) + len(r.Deadlines) + len(r.Floating)
}

// All returns the matches of every list, events first.
func (r Result) All() []*entry.Entry {
	out := make([]*entry.Entry, 0, r.Len())
	out = append(out, r.Events...)
	out = append(out, r.Deadlines...)
	return append(out, r.Floating...)
}

// Apply runs q against every list of b. It never fails; an empty Result is
// a valid answer.
func (q Query) Apply(b *collection.Book) Result {
	return Result{
		Events:    q.arrange(b.List(entry.Event).Filter(q.Matches)),
		Deadlines: q.arrange(b.List(entry.Deadline).Filter(q.Matches)),
		Floating:  q.arrange(b.List(entry.Floating).Filter(q.Matches)),
	}
}

func (q Query) arrange(entries []*entry.Entry) []*entry.Entry {
	switch q.Order {
	case Upcoming:
		entry.SortUpcoming(entries)
	case Latest:
		entry.SortLatest(entries)
	}
	return entries
}

// Matches reports whether e satisfies the state, date and keyword filters.
func (q Query) Matches(e *entry.Entry) bool {
	return e.State == q.State && q.inRange(e) && q.matchKeywords(e)
}

func (q Query) inRange(e *entry.Entry) bool {
	if q.From.IsZero() && q.To.IsZero() {
		return true
	}
	switch w := e.When.(type) {
	case entry.EventTimes:
		return timeutil.Touches(w.Start, w.End, q.From, q.To)
	case entry.DueTime:
		return timeutil.Within(w.Due, q.From, q.To)
	}
	return true
}

func (q Query) matchKeywords(e *entry.Entry) bool {
	keywords := Keywords(q.Keywords)
	if len(keywords) == 0 {
		return true
	}
	if q.Mode == Strict {
		words := make(map[string]struct{})
		for _, w := range Tokens(e.Name) {
			words[w] = struct{}{}
		}
		for _, t := range e.Tags {
			words[strings.ToLower(t)] = struct{}{}
			for _, w := range Tokens(t) {
				words[w] = struct{}{}
			}
		}
		for _, k := range keywords {
			if !hasWord(words, k) {
				return false
			}
		}
		return true
	}
	name := strings.ToLower(e.Name)
	for _, k := range keywords {
		if strings.Contains(name, k) {
			return true
		}
		for _, t := range e.Tags {
			if strings.Contains(strings.ToLower(t), k) {
				return true
			}
		}
	}
	return false
}

// hasWord reports whether k is one of words, either whole or as the
// sequence of its tokens, so "q3-report" finds "Q3-report draft".
func hasWord(words map[string]struct{}, k string) bool {
	if _, ok := words[k]; ok {
		return true
	}
	tokens := Tokens(k)
	if len(tokens) == 0 {
		return false
	}
	for _, w := range tokens {
		if _, ok := words[w]; !ok {
			return false
		}
	}
	return true
}

// Keywords lower cases and drops blank keywords.
func Keywords(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, k := range raw {
		for _, w := range strings.Fields(k) {
			out = append(out, strings.ToLower(w))
		}
	}
	return out
}

// Tokens splits s into lower case words on anything that is not a letter or
// digit.
func Tokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
