package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/runner/add"
)

func addTask(topLevel *cobra.Command, s *session) {
	to := &options.TagOptions{}
	oo := &options.OutputOptions{}
	var name string
	var tags []string

	cmd := &cobra.Command{
		Use:     "task <name>",
		Aliases: []string{"t", "floating", "f"},
		Short:   "Add a floating task without a time",
		Example: `
agenda add task this is a task
agenda add task buy milk #errands
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task name")
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

			e, err := entry.NewFloatingTask(name, append(tags, to.Tags...)...)
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

	options.AddTagArgs(cmd, to)
	registerTagCompletion(cmd, s)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
