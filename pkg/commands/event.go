package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/runner/add"
)

func addEvent(topLevel *cobra.Command, s *session) {
	so := &options.ScheduleOptions{}
	to := &options.TagOptions{}
	oo := &options.OutputOptions{}
	var name string
	var tags []string

	cmd := &cobra.Command{
		Use:     "event <name>",
		Aliases: []string{"e"},
		Short:   "Add an event with a start and an end",
		Example: `
agenda add event a fun party --from="1999-12-31 20:00" --to="2000-01-01 02:00"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an event name")
			}
			name, tags = options.SplitName(args)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := s.service(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			format, err := oo.Resolved()
			if err != nil {
				return err
			}

			start, end, err := so.Event(svc.Clock())
			if err != nil {
				return oo.HandleError(err)
			}
			e, err := entry.NewEvent(name, start, end, append(tags, to.Tags...)...)
			if err != nil {
				return oo.HandleError(err)
			}

			r := add.Add{
				Entry:   e,
				Service: svc,
				Format:  format,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddEventArgs(cmd, so)
	options.AddTagArgs(cmd, to)
	registerTagCompletion(cmd, s)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
