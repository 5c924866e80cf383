package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DefaultWindow is how far listings look ahead and reports look back when
// no window is given.
const DefaultWindow = "1w"

const (
	day  = 24 * time.Hour
	week = 7 * day
)

type windowUnit struct {
	label   string
	size    time.Duration
	aliases []string
}

// windowUnits is ordered largest first; FormatWindow relies on it.
var windowUnits = []windowUnit{
	{"w", week, []string{"wk", "wks", "week", "weeks"}},
	{"d", day, []string{"day", "days"}},
	{"h", time.Hour, []string{"hr", "hrs", "hour", "hours"}},
	{"m", time.Minute, []string{"min", "mins", "minute", "minutes"}},
}

func unitFor(name string) (time.Duration, bool) {
	for _, u := range windowUnits {
		if name == u.label {
			return u.size, true
		}
		for _, a := range u.aliases {
			if name == a {
				return u.size, true
			}
		}
	}
	return 0, false
}

// Window is a span such as "3d" or "1w2d" measured from now.
type Window struct {
	Duration time.Duration
}

// ParseWindow reads a window made of number and unit pairs: "2h", "3 days",
// "1w2d6h30m". Units go down to minutes since entries carry no seconds. An
// empty input means DefaultWindow.
func ParseWindow(input string) (Window, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		rest = DefaultWindow
	}

	var total time.Duration
	for rest != "" {
		digits := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsDigit(r) })
		if digits == 0 {
			return Window{}, fmt.Errorf("window %q: expected a number at %q", input, rest)
		}
		if digits < 0 {
			return Window{}, fmt.Errorf("window %q: %q has no unit", input, rest)
		}
		n, err := strconv.Atoi(rest[:digits])
		if err != nil {
			return Window{}, fmt.Errorf("window %q: %w", input, err)
		}
		rest = strings.TrimLeft(rest[digits:], " ")

		letters := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsLetter(r) })
		if letters < 0 {
			letters = len(rest)
		}
		size, ok := unitFor(rest[:letters])
		if !ok {
			return Window{}, fmt.Errorf("window %q: unknown unit %q", input, rest[:letters])
		}
		total += time.Duration(n) * size
		rest = strings.TrimLeft(rest[letters:], " ,")
	}

	if total <= 0 {
		return Window{}, fmt.Errorf("window %q must be longer than zero", input)
	}
	return Window{Duration: total}, nil
}

// Ahead is the closed range from now to the end of the window, used to list
// what is coming up.
func (w Window) Ahead(now time.Time) (from, to time.Time) {
	return now, now.Add(w.Duration)
}

// Behind is the closed range from the start of the window up to now, used
// to report what was done.
func (w Window) Behind(now time.Time) (from, to time.Time) {
	return now.Add(-w.Duration), now
}

func (w Window) String() string {
	return FormatWindow(w.Duration)
}

// FormatWindow spells d with the largest units first, dropping anything
// below a minute: 54h becomes "2d6h".
func FormatWindow(d time.Duration) string {
	var b strings.Builder
	for _, u := range windowUnits {
		if n := d / u.size; n > 0 {
			fmt.Fprintf(&b, "%d%s", n, u.label)
			d -= n * u.size
		}
	}
	if b.Len() == 0 {
		return "0m"
	}
	return b.String()
}
