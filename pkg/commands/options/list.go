package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/search"
	"tableflip.dev/agenda/pkg/timeutil"
)

// ListOptions captures the filters shared by list and find.
type ListOptions struct {
	Archive  bool
	Bin      bool
	Upcoming bool
	Reverse  bool
	From     string
	To       string
	Within   string
	Strict   bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVarP(&o.Archive, "archive", "a", false,
		"List completed entries.")
	cmd.Flags().BoolVarP(&o.Bin, "bin", "b", false,
		"List deleted entries.")
	cmd.Flags().BoolVarP(&o.Upcoming, "upcoming", "u", false,
		"Order by time, soonest first.")
	cmd.Flags().BoolVarP(&o.Reverse, "reverse", "r", false,
		"Order by time, latest first.")
	cmd.Flags().StringVar(&o.From, "from", "",
		`Only entries on or after this time, example: --from=2020-02-28.`)
	cmd.Flags().StringVar(&o.To, "to", "",
		`Only entries on or before this time, example: --to=2020-03-01.`)
	cmd.Flags().StringVarP(&o.Within, "within", "w", "",
		"Only entries between now and a window such as 3d or 1w2d.")
	cmd.MarkFlagsMutuallyExclusive("archive", "bin")
	cmd.MarkFlagsMutuallyExclusive("upcoming", "reverse")
	cmd.MarkFlagsMutuallyExclusive("within", "from")
	cmd.MarkFlagsMutuallyExclusive("within", "to")
}

func AddStrictArg(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVarP(&o.Strict, "strict", "s", false,
		"Every keyword must match a whole word of the name or a tag.")
}

// Query builds the search for keywords relative to now.
func (o *ListOptions) Query(keywords []string, now time.Time) (search.Query, error) {
	q := search.Query{Keywords: search.Keywords(keywords)}

	switch {
	case o.Archive:
		q.State = entry.Archived
	case o.Bin:
		q.State = entry.Deleted
	default:
		q.State = entry.Active
	}

	switch {
	case o.Upcoming:
		q.Order = search.Upcoming
	case o.Reverse:
		q.Order = search.Latest
	}

	if o.Strict {
		q.Mode = search.Strict
	}

	if o.Within != "" {
		w, err := timeutil.ParseWindow(o.Within)
		if err != nil {
			return q, fmt.Errorf("--within: %w", err)
		}
		q.From, q.To = w.Ahead(now)
		return q, nil
	}
	if o.From != "" {
		t, err := ParseTime(o.From, now, false)
		if err != nil {
			return q, fmt.Errorf("--from: %w", err)
		}
		q.From = t
	}
	if o.To != "" {
		t, err := ParseTime(o.To, now, true)
		if err != nil {
			return q, fmt.Errorf("--to: %w", err)
		}
		q.To = t
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
		return q, fmt.Errorf("--from %s is after --to %s", o.From, o.To)
	}
	return q, nil
}
