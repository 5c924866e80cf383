package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/review"
)

func addOverdue(topLevel *cobra.Command, s *session) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "overdue",
		Aliases: []string{"review", "late"},
		Short:   "List active events and deadlines whose end has passed",
		Example: `
agenda overdue
`,
		Args: cobra.NoArgs,
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

			r := review.Overdue{
				Service: svc,
				Format:  format,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
