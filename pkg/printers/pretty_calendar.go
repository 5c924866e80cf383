package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints a compact month grid with busy days in bold, followed by
// one line per day that has events or deadlines.
func (pp *PrettyPrint) Calendar(on time.Time, entries ...*entry.Entry) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	pp.PrintMonthCount(then, CountByDay(then, entries...))
	pp.PrintMonthLong(then, entries...)
}

// CountByDay counts the entries of each day of then's month. Events count
// on every day they touch; deadlines on their due day.
func CountByDay(then time.Time, entries ...*entry.Entry) []int {
	days := DaysIn(then)
	count := make([]int, days)
	for _, e := range entries {
		for day := 1; day <= days; day++ {
			if onDay(e, time.Date(then.Year(), then.Month(), day, 0, 0, 0, 0, then.Location())) {
				count[day-1]++
			}
		}
	}
	return count
}

func onDay(e *entry.Entry, day time.Time) bool {
	next := day.AddDate(0, 0, 1)
	switch w := e.When.(type) {
	case entry.EventTimes:
		return w.Start.Before(next) && !w.End.Before(day)
	case entry.DueTime:
		return !w.Due.Before(day) && w.Due.Before(next)
	}
	return false
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	out := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(out, "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(out, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func (pp *PrettyPrint) PrintMonthLong(then time.Time, entries ...*entry.Entry) {
	out := pp.out()
	p := color.New()
	b := color.New(color.Bold)
	s := color.New(color.Underline)
	bs := color.New(color.Underline, color.Bold)
	f := color.New(color.Faint)

	now := pp.now()
	d := StartDay(then)
	for i := 0; i < DaysIn(then); i++ {
		day := time.Date(then.Year(), then.Month(), i+1, 0, 0, 0, 0, then.Location())
		today := entry.SameDay(day, now)
		printer := p
		switch {
		case d == time.Sunday && today:
			printer = bs
		case d == time.Sunday:
			printer = s
		case today:
			printer = b
		}

		var lines []string
		for _, e := range entries {
			if onDay(e, day) {
				lines = append(lines, dayLine(e))
			}
		}
		if len(lines) > 0 {
			_, _ = printer.Fprintf(out, "%2d %s", i+1, d.String()[0:1])
			for j, line := range lines {
				if j > 0 {
					_, _ = fmt.Fprint(out, "    ")
				}
				_, _ = f.Fprint(out, "  ")
				_, _ = fmt.Fprintln(out, line)
			}
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
		}
	}
}

func dayLine(e *entry.Entry) string {
	switch w := e.When.(type) {
	case entry.EventTimes:
		return fmt.Sprintf("%s %s-%s", e.Name, w.Start.Format("3:04PM"), w.End.Format("3:04PM"))
	case entry.DueTime:
		return fmt.Sprintf("%s due %s", e.Name, w.Due.Format("3:04PM"))
	}
	return e.Name
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
