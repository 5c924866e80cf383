package app

import (
	"fmt"
	"strings"

	"tableflip.dev/agenda/pkg/entry"
)

// OverduePolicy decides what happens when an add or edit would leave an
// active entry overdue.
type OverduePolicy int

const (
	// Lenient accepts the entry and flags the change as overdue.
	Lenient OverduePolicy = iota
	// Strict rejects the entry with ErrOverdue.
	Strict
)

func (p OverduePolicy) String() string {
	if p == Strict {
		return "strict"
	}
	return "lenient"
}

// ParseOverduePolicy accepts "strict" or "lenient"; empty means lenient.
func ParseOverduePolicy(raw string) (OverduePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	}
	return Lenient, fmt.Errorf("app: unknown overdue policy %q", raw)
}

// Policy holds the overdue policy of each operation that checks it.
type Policy struct {
	Add  OverduePolicy
	Edit OverduePolicy
}

// DefaultPolicy lets overdue entries through on both add and edit.
func DefaultPolicy() Policy {
	return Policy{Add: Lenient, Edit: Lenient}
}

var transitions = map[entry.State][]entry.State{
	entry.Active:   {entry.Archived, entry.Deleted},
	entry.Archived: {entry.Deleted, entry.Active},
	entry.Deleted:  {entry.Active},
}

// CanTransition reports whether an entry may move from one state to another.
func CanTransition(from, to entry.State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
