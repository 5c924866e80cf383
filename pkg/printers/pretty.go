package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/history"
	"tableflip.dev/agenda/pkg/rules"
	"tableflip.dev/agenda/pkg/search"
)

// NameWidth is the widest a name is printed in a listing before it is cut.
const NameWidth = 40

type PrettyPrint struct {
	ShowID bool
	// Now decides overdue and today highlighting; zero means time.Now.
	Now time.Time
	Out io.Writer
}

const idWidth = 8

var spacing = strings.Repeat(" ", idWidth+2)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now.IsZero() {
		return time.Now()
	}
	return pp.Now
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// View prints every list of res under a heading describing q.
func (pp *PrettyPrint) View(q search.Query, res search.Result) {
	if d := Describe(q); d != "" {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), d)
		pp.NewLine()
	}
	for _, k := range entry.Kinds() {
		items := res.Of(k)
		pp.TitleWithCount(sectionTitle(k), len(items))
		pp.Section(k, items...)
	}
}

func sectionTitle(k entry.Kind) string {
	switch k {
	case entry.Event:
		return "Events"
	case entry.Deadline:
		return "Deadlines"
	}
	return "Floating Tasks"
}

// Describe renders the filters of q, or "" for the default view.
func Describe(q search.Query) string {
	var parts []string
	if q.State != entry.Active {
		parts = append(parts, q.State.String())
	}
	if len(q.Keywords) > 0 {
		parts = append(parts, fmt.Sprintf("%s match %q", q.Mode, strings.Join(q.Keywords, " ")))
	}
	if !q.From.IsZero() {
		parts = append(parts, "from "+q.From.Format(entry.DisplayLayout))
	}
	if !q.To.IsZero() {
		parts = append(parts, "to "+q.To.Format(entry.DisplayLayout))
	}
	if q.Order != search.Inserted {
		parts = append(parts, q.Order.String()+" first")
	}
	return strings.Join(parts, ", ")
}

// Section prints entries of one kind as an indexed table. The index is the
// position the -e/-d/-f flags refer to.
func (pp *PrettyPrint) Section(k entry.Kind, entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	now := pp.now()

	for i, e := range entries {
		style := pp.style(e, now)
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, y.Sprint(ShortID(e.ID)))
		}
		row = append(row,
			strconv.Itoa(i+1)+".",
			style.Sprint(truncate.StringWithTail(e.Name, NameWidth, "…")),
		)
		if k != entry.Floating {
			row = append(row, style.Sprint(e.Timing()))
		}
		row = append(row, color.New(color.FgCyan).Sprint(tagList(e.Tags)))
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) style(e *entry.Entry, now time.Time) *color.Color {
	switch {
	case e.State != entry.Active:
		return color.New(color.Faint)
	case rules.IsOverdue(e, now):
		return color.New(color.FgRed)
	}
	if end, ok := e.End(); ok && entry.SameDay(end, now) {
		return color.New(color.Bold)
	}
	return color.New()
}

func tagList(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return strings.Join(out, " ")
}

// ShortID is the prefix of an ID shown in listings; it is accepted by --id.
func ShortID(id string) string {
	if len(id) <= idWidth {
		return id
	}
	return id[:idWidth]
}

// Change prints the outcome of a committed change.
func (pp *PrettyPrint) Change(c app.Change) {
	verb, subject := describeChange(c)
	_, _ = color.New(color.FgGreen).Fprintf(pp.out(), "%s: ", verb)
	_, _ = fmt.Fprintln(pp.out(), subject)
	if c.Overdue {
		_, _ = color.New(color.FgYellow).Fprintln(pp.out(), "Warning: this entry is already overdue.")
	}
}

func describeChange(c app.Change) (string, string) {
	switch c.Op {
	case history.OpAdd:
		return "Added", c.After.String()
	case history.OpEdit:
		return "Edited", c.After.String()
	case history.OpRemove:
		return "Purged", c.Before.String()
	case history.OpState:
		switch c.After.State {
		case entry.Archived:
			return "Completed", c.After.String()
		case entry.Deleted:
			return "Deleted", c.After.String()
		default:
			return "Restored", c.After.String()
		}
	}
	return string(c.Op), ""
}

// Undone prints the record an undo or redo just applied.
func (pp *PrettyPrint) Undone(verb string, r history.Record) {
	_, _ = color.New(color.FgGreen).Fprintf(pp.out(), "%s: ", verb)
	_, _ = fmt.Fprintln(pp.out(), r.Describe())
}

// Records lists history records oldest first; the last line is what undo
// reverses next.
func (pp *PrettyPrint) Records(undo, redo []history.Record) {
	pp.TitleWithCount("History", len(undo))
	if len(undo) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(pp.out(), " none\n\n")
	} else {
		tbl := uitable.New()
		tbl.Separator = "  "
		f := color.New(color.Faint)
		for i, r := range undo {
			tbl.AddRow(strconv.Itoa(i+1)+".", f.Sprint(r.At.Format(entry.DisplayLayout)), r.Describe())
		}
		_, _ = fmt.Fprintln(pp.out(), tbl)
		pp.NewLine()
	}
	if len(redo) > 0 {
		pp.TitleWithCount("Undone", len(redo))
		f := color.New(color.Faint)
		for i := len(redo) - 1; i >= 0; i-- {
			_, _ = f.Fprintln(pp.out(), "   "+redo[i].Describe())
		}
		pp.NewLine()
	}
}

// Status prints when the book last changed.
func (pp *PrettyPrint) Status(updated time.Time) {
	when := "never"
	if !updated.IsZero() {
		when = updated.Local().Format(entry.DisplayLayout)
	}
	_, _ = color.New(color.Faint).Fprintf(pp.out(), "Last Updated: %s\n", when)
}

// Overdue prints entries waiting for review.
func (pp *PrettyPrint) Overdue(c []app.ReviewCandidate) {
	pp.TitleWithCount("Overdue", len(c))
	if len(c) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(pp.out(), " none\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	r := color.New(color.FgRed)
	for _, item := range c {
		tbl.AddRow(
			ShortID(item.Entry.ID),
			truncate.StringWithTail(item.Entry.Name, NameWidth, "…"),
			item.Entry.Timing(),
			r.Sprint(late(item.Late)),
		)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func late(d time.Duration) string {
	switch {
	case d >= 24*time.Hour:
		return fmt.Sprintf("%dd late", int(d/(24*time.Hour)))
	case d >= time.Hour:
		return fmt.Sprintf("%dh late", int(d/time.Hour))
	}
	return fmt.Sprintf("%dm late", int(d/time.Minute))
}

// Report prints entries completed in a window.
func (pp *PrettyPrint) Report(r app.ReportResult) {
	_, _ = color.New(color.Faint, color.Italic).Fprintf(pp.out(), "Completed %s to %s\n\n",
		r.Since.Local().Format(entry.DisplayLayout), r.Until.Local().Format(entry.DisplayLayout))
	if r.Total == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(pp.out(), " nothing completed\n\n")
		return
	}
	for _, section := range r.Sections {
		pp.TitleWithCount(sectionTitle(section.Kind), len(section.Entries))
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, item := range section.Entries {
			mark := "✓"
			if !item.Completed {
				mark = "~"
			}
			tbl.AddRow(mark, truncate.StringWithTail(item.Entry.Name, NameWidth, "…"),
				color.New(color.Faint).Sprint(item.CompletedAt.Local().Format(entry.DisplayLayout)))
		}
		_, _ = fmt.Fprintln(pp.out(), tbl)
		pp.NewLine()
	}
}
