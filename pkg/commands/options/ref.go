package options

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/entry"
)

// RefOptions addresses one entry either by id or by its index in the last
// listing.
type RefOptions struct {
	ShowID   bool
	ID       string
	Event    int
	Deadline int
	Task     int
}

func AddShowIDArgs(cmd *cobra.Command, o *RefOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each entry.")
}

func AddRefArgs(cmd *cobra.Command, o *RefOptions) {
	cmd.Flags().StringVar(&o.ID, "id", "",
		"Specify the id, or a unique id prefix, of an entry.")
	cmd.Flags().IntVarP(&o.Event, "event", "e", 0,
		"Specify an event by its index in the last listing.")
	cmd.Flags().IntVarP(&o.Deadline, "deadline", "d", 0,
		"Specify a deadline by its index in the last listing.")
	cmd.Flags().IntVarP(&o.Task, "task", "f", 0,
		"Specify a floating task by its index in the last listing.")
	cmd.MarkFlagsMutuallyExclusive("id", "event", "deadline", "task")
}

// Given reports whether any ref flag was set.
func (o *RefOptions) Given() bool {
	return o.ID != "" || o.Event != 0 || o.Deadline != 0 || o.Task != 0
}

// Ref converts the flags to an app.Ref. A positional id is used when no
// flag was given.
func (o *RefOptions) Ref(args []string) (app.Ref, error) {
	switch {
	case o.ID != "":
		return app.Ref{ID: o.ID}, nil
	case o.Event != 0:
		return app.Ref{Kind: entry.Event, Index: o.Event}, nil
	case o.Deadline != 0:
		return app.Ref{Kind: entry.Deadline, Index: o.Deadline}, nil
	case o.Task != 0:
		return app.Ref{Kind: entry.Floating, Index: o.Task}, nil
	case len(args) == 1:
		return app.Ref{ID: args[0]}, nil
	case len(args) > 1:
		return app.Ref{}, errors.New("expected a single entry id")
	}
	return app.Ref{}, errors.New("requires an entry: an id, --event N, --deadline N or --task N")
}
