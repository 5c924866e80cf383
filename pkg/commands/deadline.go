package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/runner/add"
)

func addDeadline(topLevel *cobra.Command, s *session) {
	so := &options.ScheduleOptions{}
	to := &options.TagOptions{}
	oo := &options.OutputOptions{}
	var name string
	var tags []string

	cmd := &cobra.Command{
		Use:     "deadline <name>",
		Aliases: []string{"d"},
		Short:   "Add a deadline that is due at a time",
		Example: `
agenda add deadline submit report #work --by="2024-03-08 17:00"
agenda add deadline pay rent --by=4/1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a deadline name")
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

			due, err := so.Deadline(svc.Clock())
			if err != nil {
				return oo.HandleError(err)
			}
			e, err := entry.NewDeadline(name, due, append(tags, to.Tags...)...)
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

	options.AddDeadlineArgs(cmd, so)
	options.AddTagArgs(cmd, to)
	registerTagCompletion(cmd, s)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
