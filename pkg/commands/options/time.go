package options

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/agenda/pkg/timeutil"
)

const (
	layoutISO      = "2006-01-02"
	layoutShort    = "1/2"
	layoutUSTime   = "1/2 15:04"
	layoutDateTime = "2006-01-02 15:04"
	layoutDateT    = "2006-01-02T15:04"
)

// ParseTime reads a point in time relative to now. Accepted forms are
// "now", "today", "tomorrow", "2020-02-28", "2020-02-28 13:30",
// "2020-02-28T13:30", RFC3339, "2/28" and "2/28 13:30". A date without a
// time means the start of that day, or its last instant when endOfDay is set.
func ParseTime(raw string, now time.Time, endOfDay bool) (time.Time, error) {
	s := strings.TrimSpace(raw)
	day := func(t time.Time) time.Time {
		if endOfDay {
			return timeutil.EndOfDay(t)
		}
		return timeutil.StartOfDay(t)
	}

	switch strings.ToLower(s) {
	case "":
		return time.Time{}, fmt.Errorf("empty time")
	case "now":
		return now, nil
	case "today":
		return day(now), nil
	case "tomorrow":
		return day(now.AddDate(0, 0, 1)), nil
	case "yesterday":
		return day(now.AddDate(0, 0, -1)), nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local(), nil
	}
	for _, layout := range []string{layoutDateTime, layoutDateT} {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}
	if t, err := time.ParseInLocation(layoutISO, s, now.Location()); err == nil {
		return day(t), nil
	}

	// Let the year be the same.
	if t, err := time.ParseInLocation(layoutUSTime, s, now.Location()); err == nil {
		return nearestYear(t, now), nil
	}
	if t, err := time.ParseInLocation(layoutShort, s, now.Location()); err == nil {
		return day(nearestYear(t, now)), nil
	}
	return time.Time{}, fmt.Errorf("can not read %q as a time, try 2006-01-02 15:04", raw)
}

// nearestYear places a month/day in the current year, or the next one if
// that day has already passed.
func nearestYear(t, now time.Time) time.Time {
	t = time.Date(now.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if timeutil.EndOfDay(t).Before(now) {
		t = t.AddDate(1, 0, 0)
	}
	return t
}
